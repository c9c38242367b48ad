package commands

import (
	"shopbot-checkout/internal/domain/checkout"
	"shopbot-checkout/internal/domain/order"
)

// Summary is the buyer-facing money breakdown for one order mid-checkout.
type Summary struct {
	OrderID        int64
	Status         order.Status
	Method         order.PaymentType
	AmountTotal    int64
	DiscountCode   string
	DiscountAmount int64
	Payable        int64
	Reserved       int64
	Owed           int64
	PendingCode    string
}

func buildSummary(o *order.Order, sess *checkout.Session) Summary {
	s := Summary{
		OrderID:        o.ID(),
		Status:         o.Status(),
		Method:         o.PaymentType(),
		AmountTotal:    o.AmountTotal(),
		DiscountCode:   o.DiscountCode(),
		DiscountAmount: o.DiscountAmount(),
		Payable:        o.Payable(),
		Reserved:       o.ReservedTowardPayable(),
		Owed:           o.AmountOwed(),
	}
	if sess != nil {
		if sess.Method != order.PaymentTypeUnset {
			s.Method = sess.Method
		}
		s.PendingCode = sess.PendingDiscountCode
	}
	return s
}

// CardDetails are the transfer instructions shown alongside a card step.
type CardDetails struct {
	Number   string
	Holder   string
	Currency string
}

type ProceedOutcome string

const (
	OutcomeCompleted        ProceedOutcome = "completed"
	OutcomeAwaitReceipt     ProceedOutcome = "await_receipt"
	OutcomeAwaitWalletNote  ProceedOutcome = "await_wallet_comment"
	OutcomeAwaitMixedAmount ProceedOutcome = "await_mixed_amount"
)

// ProceedResult reports where the checkout moved after Proceed. Card holds
// transfer details only for the card branch; Owed is the amount still due.
type ProceedResult struct {
	Outcome ProceedOutcome
	Summary Summary
	Card    *CardDetails
	Owed    int64
}

// ReceiptPayload is the proof-of-transfer submission: exactly one of a file
// reference (image or document) or free text.
type ReceiptPayload struct {
	Kind    checkout.ReceiptKind
	FileRef string
	Text    string
	Caption string
}

// ReviewView echoes the staged receipt and comment back for confirmation.
type ReviewView struct {
	Kind    checkout.ReceiptKind
	FileRef string
	Text    string
	Comment string
}

type WalletResult struct {
	AmountDebited int64
	Status        order.Status
}

type MixedResult struct {
	Reserved      int64
	RemainingCard int64
	Card          CardDetails
}

type PlanReview struct {
	PlanTitle string
	Comment   string
}

type CancelResult struct {
	Refunded int64
}

// Cart is the back-navigation view of one order.
type Cart struct {
	OrderID        int64
	Title          string
	Status         order.Status
	AmountTotal    int64
	DiscountAmount int64
	Payable        int64
	Reserved       int64
	RemainingCard  int64
	PlanEligible   bool
}
