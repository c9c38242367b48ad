package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"shopbot-checkout/internal/domain/checkout"
	"shopbot-checkout/internal/domain/order"
	"shopbot-checkout/internal/domain/wallet"
	"shopbot-checkout/internal/infra"
	"shopbot-checkout/internal/pkg/clock"
	"shopbot-checkout/internal/pkg/config"
	"shopbot-checkout/internal/pkg/errs"
)

// CheckoutCommands drives one buyer's checkout conversation: method choice,
// discount handling, the three payment branches, the first-purchase plan,
// and cancellation. Order and wallet writes that must land together run in
// one UnitOfWork transaction.
type CheckoutCommands interface {
	Start(ctx context.Context, userID, orderID int64, method order.PaymentType) (Summary, error)
	StageDiscountCode(ctx context.Context, userID, orderID int64, code string) error
	ApplyDiscount(ctx context.Context, userID, orderID int64) (Summary, error)
	RemoveDiscount(ctx context.Context, userID, orderID int64) (bool, error)
	Proceed(ctx context.Context, userID, orderID int64) (ProceedResult, error)
	SubmitReceipt(ctx context.Context, userID, orderID int64, payload ReceiptPayload) (ReviewView, error)
	SubmitReceiptComment(ctx context.Context, userID, orderID int64, text string) (ReviewView, error)
	EditReceipt(ctx context.Context, userID, orderID int64) error
	ConfirmReceipt(ctx context.Context, userID, orderID int64) error
	SubmitWalletComment(ctx context.Context, userID, orderID int64, text string) error
	ConfirmWallet(ctx context.Context, userID, orderID int64) (WalletResult, error)
	SubmitMixedAmount(ctx context.Context, userID, orderID, amount int64) (MixedResult, error)
	StartFirstPlan(ctx context.Context, userID, orderID int64) error
	SubmitPlanComment(ctx context.Context, userID, orderID int64, text string) (PlanReview, error)
	EditPlan(ctx context.Context, userID, orderID int64) error
	ConfirmPlan(ctx context.Context, userID, orderID int64) error
	Cancel(ctx context.Context, userID, orderID int64) (CancelResult, error)
	Back(ctx context.Context, userID, orderID int64) error
}

type checkoutCommands struct {
	uow      UnitOfWork
	orders   OrderRepository
	users    UserRepository
	sessions SessionStore
	notifier Notifier
	clock    clock.Clock
	payment  config.PaymentConfig
}

func NewCheckoutCommands(
	uow UnitOfWork,
	orders OrderRepository,
	users UserRepository,
	sessions SessionStore,
	notifier Notifier,
	clk clock.Clock,
	payment config.PaymentConfig,
) CheckoutCommands {
	return &checkoutCommands{
		uow:      uow,
		orders:   orders,
		users:    users,
		sessions: sessions,
		notifier: notifier,
		clock:    clk,
		payment:  payment,
	}
}

func (c *checkoutCommands) Start(ctx context.Context, userID, orderID int64, method order.PaymentType) (Summary, error) {
	user, err := c.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return Summary{}, errs.Mark(err, ErrUserNotFound)
		}
		return Summary{}, errs.Mark(err, ErrStorageFailure)
	}
	if !user.ContactVerified {
		return Summary{}, ErrContactNotVerified
	}
	if !method.IsChoosable() {
		return Summary{}, ErrInvalidMethod
	}

	o, err := c.loadPayableOrder(ctx, userID, orderID)
	if err != nil {
		return Summary{}, err
	}

	sess := checkout.New(userID, orderID, method)
	sess.UpdatedAt = c.clock.Now()
	if err := c.sessions.Put(ctx, sess); err != nil {
		return Summary{}, errs.Mark(err, ErrStorageFailure)
	}
	return buildSummary(o, sess), nil
}

func (c *checkoutCommands) StageDiscountCode(ctx context.Context, userID, orderID int64, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.Mark(errs.New("blank discount code"), ErrInvalidInput)
	}

	sess, err := c.sessions.Get(ctx, userID)
	if err != nil || !sess.BindsOrder(orderID) {
		sess = checkout.New(userID, orderID, order.PaymentTypeUnset)
	}
	sess.PendingDiscountCode = code
	sess.Stage = checkout.StageDiscountCode
	sess.UpdatedAt = c.clock.Now()
	if err := c.sessions.Put(ctx, sess); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

func (c *checkoutCommands) ApplyDiscount(ctx context.Context, userID, orderID int64) (Summary, error) {
	sess, err := c.sessions.Get(ctx, userID)
	if err != nil || !sess.BindsOrder(orderID) || sess.PendingDiscountCode == "" {
		return Summary{}, ErrNoPendingCode
	}
	code := sess.PendingDiscountCode

	o, err := c.loadPayableOrder(ctx, userID, orderID)
	if err != nil {
		return Summary{}, err
	}
	if o.HasDiscount() {
		return Summary{}, ErrDiscountAlreadyApplied
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		d, err := tx.Discounts().FindByCodeForUpdate(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrDiscountNotFound)
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		if err := d.ValidateUsage(c.clock.Now()); err != nil {
			return discountErr(err)
		}

		amount := d.AmountFor(o.AmountTotal())
		if err := tx.Orders().ApplyDiscount(ctx, orderID, code, amount); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrDiscountAlreadyApplied)
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		return tx.Discounts().IncrementUsage(ctx, code)
	})
	if err != nil {
		return Summary{}, err
	}

	sess.PendingDiscountCode = ""
	sess.Stage = checkout.StageSummary
	sess.UpdatedAt = c.clock.Now()
	if err := c.sessions.Put(ctx, sess); err != nil {
		return Summary{}, errs.Mark(err, ErrStorageFailure)
	}

	o, err = c.orders.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		return Summary{}, orderReadErr(err)
	}
	return buildSummary(o, sess), nil
}

func (c *checkoutCommands) RemoveDiscount(ctx context.Context, userID, orderID int64) (bool, error) {
	o, err := c.orders.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		return false, orderReadErr(err)
	}
	if !o.Status().IsPayable() || !o.HasDiscount() {
		return false, nil
	}

	var removed bool
	err = c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		removed, err = tx.Orders().RemoveDiscount(ctx, orderID, order.StatusAwaitingPayment, order.StatusPendingConfirm)
		return err
	})
	if err != nil {
		return false, errs.Mark(err, ErrStorageFailure)
	}
	return removed, nil
}

func (c *checkoutCommands) Proceed(ctx context.Context, userID, orderID int64) (ProceedResult, error) {
	sess, err := c.sessions.Get(ctx, userID)
	if err != nil || !sess.BindsOrder(orderID) {
		return ProceedResult{}, ErrSessionMismatch
	}

	o, err := c.loadPayableOrder(ctx, userID, orderID)
	if err != nil {
		return ProceedResult{}, err
	}

	owed := o.AmountOwed()
	if owed == 0 {
		return c.completeZeroOwed(ctx, sess, o)
	}

	switch sess.Method {
	case order.PaymentTypeCard:
		sess.ResetReceipt()
		sess.UpdatedAt = c.clock.Now()
		if err := c.sessions.Put(ctx, sess); err != nil {
			return ProceedResult{}, errs.Mark(err, ErrStorageFailure)
		}
		card := c.cardDetails()
		return ProceedResult{
			Outcome: OutcomeAwaitReceipt,
			Summary: buildSummary(o, sess),
			Card:    &card,
			Owed:    owed,
		}, nil

	case order.PaymentTypeWallet:
		user, err := c.users.FindByID(ctx, userID)
		if err != nil {
			return ProceedResult{}, errs.Mark(err, ErrStorageFailure)
		}
		if user.WalletBalance < owed {
			return ProceedResult{}, ErrInsufficientBalance
		}
		sess.WalletAmount = owed
		sess.Stage = checkout.StageAwaitWalletComment
		sess.UpdatedAt = c.clock.Now()
		if err := c.sessions.Put(ctx, sess); err != nil {
			return ProceedResult{}, errs.Mark(err, ErrStorageFailure)
		}
		return ProceedResult{
			Outcome: OutcomeAwaitWalletNote,
			Summary: buildSummary(o, sess),
			Owed:    owed,
		}, nil

	case order.PaymentTypeMixed:
		sess.MixedTotal = o.Payable()
		sess.Stage = checkout.StageAwaitMixedAmount
		sess.UpdatedAt = c.clock.Now()
		if err := c.sessions.Put(ctx, sess); err != nil {
			return ProceedResult{}, errs.Mark(err, ErrStorageFailure)
		}
		return ProceedResult{
			Outcome: OutcomeAwaitMixedAmount,
			Summary: buildSummary(o, sess),
			Owed:    owed,
		}, nil

	default:
		return ProceedResult{}, ErrInvalidMethod
	}
}

// completeZeroOwed settles an order whose remaining due is zero: a full
// discount settles as DISCOUNT, a reservation covering the payable keeps the
// chosen method.
func (c *checkoutCommands) completeZeroOwed(ctx context.Context, sess *checkout.Session, o *order.Order) (ProceedResult, error) {
	pt := sess.Method
	if o.Payable() == 0 || !pt.IsChoosable() {
		pt = order.PaymentTypeDiscount
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.Orders().SetPaymentType(ctx, o.ID(), pt); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		if err := tx.Orders().UpdateStatus(ctx, o.ID(), order.StatusInProgress, order.TransitionSources(order.StatusInProgress)...); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrSessionMismatch)
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
	if err != nil {
		return ProceedResult{}, err
	}

	if err := c.sessions.Delete(ctx, sess.UserID); err != nil {
		slog.Warn("failed to clear checkout session", "user_id", sess.UserID, "error", err.Error())
	}
	c.notifier.NotifyOperators(ctx, Notice{
		Text: fmt.Sprintf("Order #%d settled without payment (type %s), amount %d.", o.ID(), pt, o.AmountTotal()),
	})

	o2, err := c.orders.FindByIDForUser(ctx, o.ID(), sess.UserID)
	if err != nil {
		return ProceedResult{}, orderReadErr(err)
	}
	return ProceedResult{Outcome: OutcomeCompleted, Summary: buildSummary(o2, nil)}, nil
}

func (c *checkoutCommands) SubmitReceipt(ctx context.Context, userID, orderID int64, payload ReceiptPayload) (ReviewView, error) {
	sess, err := c.sessions.Get(ctx, userID)
	if err != nil || !sess.BindsOrder(orderID) {
		return ReviewView{}, ErrSessionMismatch
	}
	if sess.Stage != checkout.StageAwaitReceipt && sess.Stage != checkout.StageAwaitReceiptComment {
		return ReviewView{}, ErrSessionMismatch
	}

	if err := validateReceipt(payload); err != nil {
		return ReviewView{}, err
	}

	caption, _ := checkout.NormalizeComment(payload.Caption)
	sess.StageReceipt(payload.Kind, payload.FileRef, strings.TrimSpace(payload.Text), caption)
	sess.UpdatedAt = c.clock.Now()
	if err := c.sessions.Put(ctx, sess); err != nil {
		return ReviewView{}, errs.Mark(err, ErrStorageFailure)
	}
	return reviewOf(sess), nil
}

func validateReceipt(p ReceiptPayload) error {
	if !p.Kind.IsValid() {
		return errs.Mark(errs.New("unknown receipt kind"), ErrInvalidInput)
	}
	if p.Kind.IsFile() {
		if strings.TrimSpace(p.FileRef) == "" || strings.TrimSpace(p.Text) != "" {
			return errs.Mark(errs.New("file receipt requires a file reference only"), ErrInvalidInput)
		}
		return nil
	}
	if strings.TrimSpace(p.Text) == "" || strings.TrimSpace(p.FileRef) != "" {
		return errs.Mark(errs.New("text receipt requires text only"), ErrInvalidInput)
	}
	return nil
}

func reviewOf(sess *checkout.Session) ReviewView {
	return ReviewView{
		Kind:    sess.ReceiptKind,
		FileRef: sess.ReceiptFileRef,
		Text:    sess.ReceiptText,
		Comment: sess.ReceiptComment,
	}
}

func (c *checkoutCommands) SubmitReceiptComment(ctx context.Context, userID, orderID int64, text string) (ReviewView, error) {
	sess, err := c.sessions.Get(ctx, userID)
	if err != nil || !sess.BindsOrder(orderID) || sess.Stage != checkout.StageAwaitReceiptComment {
		return ReviewView{}, ErrSessionMismatch
	}

	comment, ok := checkout.NormalizeComment(text)
	if !ok {
		return ReviewView{}, errs.Mark(errs.New("blank comment"), ErrInvalidInput)
	}
	// sentinel answers normalize to "" and erase any caption carried over
	sess.ReceiptComment = comment
	sess.Stage = checkout.StageReviewReceipt
	sess.UpdatedAt = c.clock.Now()
	if err := c.sessions.Put(ctx, sess); err != nil {
		return ReviewView{}, errs.Mark(err, ErrStorageFailure)
	}
	return reviewOf(sess), nil
}

func (c *checkoutCommands) EditReceipt(ctx context.Context, userID, orderID int64) error {
	sess, err := c.sessions.Get(ctx, userID)
	if err != nil || !sess.BindsOrder(orderID) || sess.Stage != checkout.StageReviewReceipt {
		return ErrSessionMismatch
	}
	// staged payload survives; only the comment step is replayed
	sess.Stage = checkout.StageAwaitReceiptComment
	sess.UpdatedAt = c.clock.Now()
	if err := c.sessions.Put(ctx, sess); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

func (c *checkoutCommands) ConfirmReceipt(ctx context.Context, userID, orderID int64) error {
	sess, err := c.sessions.Get(ctx, userID)
	if err != nil || !sess.BindsOrder(orderID) || sess.Stage != checkout.StageReviewReceipt {
		return ErrSessionMismatch
	}

	o, err := c.loadPayableOrder(ctx, userID, orderID)
	if err != nil {
		return err
	}

	pt := order.PaymentTypeCard
	if o.WalletReserved() > 0 {
		pt = order.PaymentTypeMixed
	}

	var fileRef, text *string
	if sess.ReceiptKind.IsFile() {
		fileRef = &sess.ReceiptFileRef
	} else {
		text = &sess.ReceiptText
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.Orders().SetReceipt(ctx, orderID, fileRef, text); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		if err := tx.Orders().SetCustomerMessage(ctx, orderID, sess.ReceiptComment); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		if err := tx.Orders().SetPaymentType(ctx, orderID, pt); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		if err := tx.Orders().UpdateStatus(ctx, orderID, order.StatusPendingConfirm, order.TransitionSources(order.StatusPendingConfirm)...); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrSessionMismatch)
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := c.sessions.Delete(ctx, userID); err != nil {
		slog.Warn("failed to clear checkout session", "user_id", userID, "error", err.Error())
	}

	notice := Notice{
		Text: fmt.Sprintf("Order #%d: payment receipt submitted (owed %d).", orderID, o.AmountOwed()),
	}
	if sess.ReceiptComment != "" {
		notice.Text += " Comment: " + sess.ReceiptComment
	}
	if sess.ReceiptKind.IsFile() {
		notice.FileRef = sess.ReceiptFileRef
		notice.FileKind = sess.ReceiptKind
	} else {
		notice.Text += " Receipt: " + sess.ReceiptText
	}
	c.notifier.NotifyOperators(ctx, notice)
	return nil
}

func (c *checkoutCommands) SubmitWalletComment(ctx context.Context, userID, orderID int64, text string) error {
	sess, err := c.sessions.Get(ctx, userID)
	if err != nil || !sess.BindsOrder(orderID) || sess.Stage != checkout.StageAwaitWalletComment {
		return ErrSessionMismatch
	}

	comment, ok := checkout.NormalizeComment(text)
	if !ok {
		return errs.Mark(errs.New("blank comment"), ErrInvalidInput)
	}
	sess.WalletComment = comment
	sess.UpdatedAt = c.clock.Now()
	if err := c.sessions.Put(ctx, sess); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

func (c *checkoutCommands) ConfirmWallet(ctx context.Context, userID, orderID int64) (WalletResult, error) {
	sess, err := c.sessions.Get(ctx, userID)
	if err != nil || !sess.BindsOrder(orderID) || sess.Stage != checkout.StageAwaitWalletComment {
		return WalletResult{}, ErrSessionMismatch
	}

	o, err := c.loadPayableOrder(ctx, userID, orderID)
	if err != nil {
		return WalletResult{}, err
	}

	// the staged amount may have gone stale against a late discount
	amount := sess.WalletAmount
	if payable := o.Payable(); amount > payable {
		amount = payable
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		if amount > 0 {
			note := fmt.Sprintf("wallet payment for order #%d", orderID)
			if err := tx.Wallet().Change(ctx, userID, wallet.KindDebit, amount, note, orderID); err != nil {
				if infra.IsKind(err, infra.KindInsufficientFunds) {
					return errs.Mark(err, ErrInsufficientBalance)
				}
				return errs.Mark(err, ErrStorageFailure)
			}
			if err := tx.Orders().SetWalletUsed(ctx, orderID, amount); err != nil {
				return errs.Mark(err, ErrStorageFailure)
			}
		}
		if err := tx.Orders().SetPaymentType(ctx, orderID, order.PaymentTypeWallet); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		if err := tx.Orders().SetCustomerMessage(ctx, orderID, sess.WalletComment); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		if err := tx.Orders().UpdateStatus(ctx, orderID, order.StatusInProgress, order.TransitionSources(order.StatusInProgress)...); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrSessionMismatch)
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
	if err != nil {
		return WalletResult{}, err
	}

	if err := c.sessions.Delete(ctx, userID); err != nil {
		slog.Warn("failed to clear checkout session", "user_id", userID, "error", err.Error())
	}

	notice := Notice{
		Text: fmt.Sprintf("Order #%d paid from wallet: %d.", orderID, amount),
	}
	if sess.WalletComment != "" {
		notice.Text += " Comment: " + sess.WalletComment
	}
	c.notifier.NotifyOperators(ctx, notice)

	return WalletResult{AmountDebited: amount, Status: order.StatusInProgress}, nil
}

func (c *checkoutCommands) SubmitMixedAmount(ctx context.Context, userID, orderID, amount int64) (MixedResult, error) {
	sess, err := c.sessions.Get(ctx, userID)
	if err != nil || !sess.BindsOrder(orderID) || sess.Stage != checkout.StageAwaitMixedAmount {
		return MixedResult{}, ErrSessionMismatch
	}

	o, err := c.loadPayableOrder(ctx, userID, orderID)
	if err != nil {
		return MixedResult{}, err
	}

	payable := o.Payable()
	if amount <= 0 || amount > payable {
		return MixedResult{}, errs.Mark(errs.New("reserve amount out of range"), ErrInvalidInput)
	}
	user, err := c.users.FindByID(ctx, userID)
	if err != nil {
		return MixedResult{}, errs.Mark(err, ErrStorageFailure)
	}
	if user.WalletBalance < amount {
		return MixedResult{}, ErrInsufficientBalance
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		note := fmt.Sprintf("wallet reserve for order #%d", orderID)
		if err := tx.Wallet().Change(ctx, userID, wallet.KindReserve, amount, note, orderID); err != nil {
			if infra.IsKind(err, infra.KindInsufficientFunds) {
				return errs.Mark(err, ErrInsufficientBalance)
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		if err := tx.Orders().SetWalletReserved(ctx, orderID, amount); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		if err := tx.Orders().SetPaymentType(ctx, orderID, order.PaymentTypeMixed); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
	if err != nil {
		return MixedResult{}, err
	}

	sess.ResetReceipt()
	sess.UpdatedAt = c.clock.Now()
	if err := c.sessions.Put(ctx, sess); err != nil {
		return MixedResult{}, errs.Mark(err, ErrStorageFailure)
	}

	return MixedResult{
		Reserved:      amount,
		RemainingCard: payable - amount,
		Card:          c.cardDetails(),
	}, nil
}

func (c *checkoutCommands) StartFirstPlan(ctx context.Context, userID, orderID int64) error {
	user, err := c.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrUserNotFound)
		}
		return errs.Mark(err, ErrStorageFailure)
	}
	if !user.ContactVerified {
		return ErrContactNotVerified
	}

	o, err := c.loadPayableOrder(ctx, userID, orderID)
	if err != nil {
		return err
	}
	if err := c.checkPlanEligibility(ctx, userID, o); err != nil {
		return err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		return tx.Orders().SetPaymentType(ctx, orderID, order.PaymentTypeFirstPlan)
	})
	if err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}

	sess := checkout.New(userID, orderID, order.PaymentTypeFirstPlan)
	sess.Stage = checkout.StageAwaitPlanComment
	sess.UpdatedAt = c.clock.Now()
	if err := c.sessions.Put(ctx, sess); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

func (c *checkoutCommands) checkPlanEligibility(ctx context.Context, userID int64, o *order.Order) error {
	if !o.AllowsFirstPlan() {
		return ErrPlanIneligible
	}
	delivered, err := c.orders.HasDeliveredOrder(ctx, userID)
	if err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	if delivered {
		return ErrPlanAlreadyUsed
	}
	return nil
}

func (c *checkoutCommands) SubmitPlanComment(ctx context.Context, userID, orderID int64, text string) (PlanReview, error) {
	sess, err := c.sessions.Get(ctx, userID)
	if err != nil || !sess.BindsOrder(orderID) || sess.Stage != checkout.StageAwaitPlanComment {
		return PlanReview{}, ErrSessionMismatch
	}

	comment, ok := checkout.NormalizeComment(text)
	if !ok {
		return PlanReview{}, errs.Mark(errs.New("blank comment"), ErrInvalidInput)
	}
	sess.PlanComment = comment
	sess.Stage = checkout.StageReviewPlan
	sess.UpdatedAt = c.clock.Now()
	if err := c.sessions.Put(ctx, sess); err != nil {
		return PlanReview{}, errs.Mark(err, ErrStorageFailure)
	}

	o, err := c.orders.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		return PlanReview{}, orderReadErr(err)
	}
	return PlanReview{PlanTitle: o.PlanTitle(), Comment: comment}, nil
}

func (c *checkoutCommands) EditPlan(ctx context.Context, userID, orderID int64) error {
	sess, err := c.sessions.Get(ctx, userID)
	if err != nil || !sess.BindsOrder(orderID) || sess.Stage != checkout.StageReviewPlan {
		return ErrSessionMismatch
	}
	sess.Stage = checkout.StageAwaitPlanComment
	sess.UpdatedAt = c.clock.Now()
	if err := c.sessions.Put(ctx, sess); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

func (c *checkoutCommands) ConfirmPlan(ctx context.Context, userID, orderID int64) error {
	sess, err := c.sessions.Get(ctx, userID)
	if err != nil || !sess.BindsOrder(orderID) || sess.Stage != checkout.StageReviewPlan {
		return ErrSessionMismatch
	}

	o, err := c.loadPayableOrder(ctx, userID, orderID)
	if err != nil {
		return err
	}
	// eligibility can change between start and confirm
	if err := c.checkPlanEligibility(ctx, userID, o); err != nil {
		return err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.Orders().SetCustomerMessage(ctx, orderID, sess.PlanComment); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		if err := tx.Orders().SetPaymentType(ctx, orderID, order.PaymentTypeFirstPlan); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		if err := tx.Orders().UpdateStatus(ctx, orderID, order.StatusPendingPlan, order.TransitionSources(order.StatusPendingPlan)...); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrSessionMismatch)
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := c.sessions.Delete(ctx, userID); err != nil {
		slog.Warn("failed to clear checkout session", "user_id", userID, "error", err.Error())
	}

	notice := Notice{
		Text: fmt.Sprintf("Order #%d: first-purchase plan requested (%s).", orderID, o.PlanTitle()),
	}
	if sess.PlanComment != "" {
		notice.Text += " Comment: " + sess.PlanComment
	}
	c.notifier.NotifyOperators(ctx, notice)
	return nil
}

func (c *checkoutCommands) Cancel(ctx context.Context, userID, orderID int64) (CancelResult, error) {
	o, err := c.orders.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		return CancelResult{}, orderReadErr(err)
	}
	if !o.Status().IsPayable() {
		return CancelResult{}, ErrOrderNotCancelable
	}

	refund := o.WalletReserved()
	err = c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		if refund > 0 {
			note := fmt.Sprintf("reservation refund for canceled order #%d", orderID)
			if err := tx.Wallet().Change(ctx, userID, wallet.KindRefund, refund, note, orderID); err != nil {
				return errs.Mark(err, ErrStorageFailure)
			}
			if err := tx.Orders().SetWalletReserved(ctx, orderID, 0); err != nil {
				return errs.Mark(err, ErrStorageFailure)
			}
		}
		if err := tx.Orders().UpdateStatus(ctx, orderID, order.StatusCanceled, order.TransitionSources(order.StatusCanceled)...); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrOrderNotCancelable)
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
	if err != nil {
		return CancelResult{}, err
	}

	if err := c.sessions.Delete(ctx, userID); err != nil {
		slog.Warn("failed to clear checkout session", "user_id", userID, "error", err.Error())
	}
	c.notifier.NotifyOperators(ctx, Notice{
		Text: fmt.Sprintf("Order #%d canceled by the buyer.", orderID),
	})
	return CancelResult{Refunded: refund}, nil
}

func (c *checkoutCommands) Back(ctx context.Context, userID, _ int64) error {
	if err := c.sessions.Delete(ctx, userID); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

func (c *checkoutCommands) cardDetails() CardDetails {
	return CardDetails{
		Number:   c.payment.CardNumber,
		Holder:   c.payment.CardHolder,
		Currency: c.payment.Currency,
	}
}

// loadPayableOrder reads the order ownership-scoped and enforces the payable
// guards. An unparseable deadline triggers a one-shot refresh and re-read;
// if the refreshed value still fails to parse the order stays payable.
func (c *checkoutCommands) loadPayableOrder(ctx context.Context, userID, orderID int64) (*order.Order, error) {
	o, err := c.orders.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		return nil, orderReadErr(err)
	}
	if !o.Status().IsPayable() {
		return nil, ErrOrderNotFound
	}

	passed, err := o.DeadlinePassed(c.clock.Now())
	if err != nil {
		if refreshErr := c.orders.RefreshDeadline(ctx, orderID); refreshErr != nil {
			return nil, errs.Mark(refreshErr, ErrStorageFailure)
		}
		o, err = c.orders.FindByIDForUser(ctx, orderID, userID)
		if err != nil {
			return nil, orderReadErr(err)
		}
		passed, err = o.DeadlinePassed(c.clock.Now())
		if err != nil {
			slog.Warn("order deadline unparseable after refresh", "order_id", orderID, "error", err.Error())
			passed = false
		}
	}
	if passed {
		return nil, ErrOrderExpired
	}
	if err := o.CheckInvariant(); err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return o, nil
}
