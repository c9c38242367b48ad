// Package queries serves the read-only checkout views.
package queries

import (
	"context"
	"fmt"

	"shopbot-checkout/internal/domain/checkout"
	"shopbot-checkout/internal/domain/order"
	"shopbot-checkout/internal/infra"
	"shopbot-checkout/internal/pkg/errs"
)

var (
	ErrOrderNotFound  = errs.New("order not found")
	ErrStorageFailure = errs.New("storage failure")
)

// OrderReader is the read surface the views need.
type OrderReader interface {
	FindByIDForUser(ctx context.Context, orderID, userID int64) (*order.Order, error)
	HasDeliveredOrder(ctx context.Context, userID int64) (bool, error)
}

// SessionReader exposes the live session, if any.
type SessionReader interface {
	Get(ctx context.Context, userID int64) (*checkout.Session, error)
}

// SummaryView mirrors the mid-checkout money breakdown.
type SummaryView struct {
	OrderID        int64             `json:"order_id"`
	Status         order.Status      `json:"status"`
	Method         order.PaymentType `json:"method,omitempty"`
	AmountTotal    int64             `json:"amount_total"`
	DiscountCode   string            `json:"discount_code,omitempty"`
	DiscountAmount int64             `json:"discount_amount"`
	Payable        int64             `json:"payable"`
	Reserved       int64             `json:"reserved"`
	Owed           int64             `json:"owed"`
	PendingCode    string            `json:"pending_code,omitempty"`
}

// CartView is the back-navigation order card.
type CartView struct {
	OrderID        int64        `json:"order_id"`
	Title          string       `json:"title"`
	Status         order.Status `json:"status"`
	AmountTotal    int64        `json:"amount_total"`
	DiscountAmount int64        `json:"discount_amount"`
	Payable        int64        `json:"payable"`
	Reserved       int64        `json:"reserved"`
	RemainingCard  int64        `json:"remaining_card"`
	PlanEligible   bool         `json:"plan_eligible"`
}

type CheckoutQueries interface {
	Summary(ctx context.Context, userID, orderID int64) (SummaryView, error)
	Cart(ctx context.Context, userID, orderID int64) (CartView, error)
}

type checkoutQueries struct {
	orders   OrderReader
	sessions SessionReader
}

func NewCheckoutQueries(orders OrderReader, sessions SessionReader) CheckoutQueries {
	return &checkoutQueries{orders: orders, sessions: sessions}
}

func (q *checkoutQueries) Summary(ctx context.Context, userID, orderID int64) (SummaryView, error) {
	o, err := q.readOrder(ctx, userID, orderID)
	if err != nil {
		return SummaryView{}, err
	}

	view := SummaryView{
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

	sess, err := q.sessions.Get(ctx, userID)
	if err == nil && sess.BindsOrder(orderID) {
		view.PendingCode = sess.PendingDiscountCode
		if sess.Method != order.PaymentTypeUnset {
			view.Method = sess.Method
		}
	}
	return view, nil
}

func (q *checkoutQueries) Cart(ctx context.Context, userID, orderID int64) (CartView, error) {
	o, err := q.readOrder(ctx, userID, orderID)
	if err != nil {
		return CartView{}, err
	}

	planEligible := false
	if o.Status().IsPayable() && o.AllowsFirstPlan() {
		delivered, err := q.orders.HasDeliveredOrder(ctx, userID)
		if err != nil {
			return CartView{}, errs.Mark(err, ErrStorageFailure)
		}
		planEligible = !delivered
	}

	return CartView{
		OrderID:        o.ID(),
		Title:          cartTitle(o),
		Status:         o.Status(),
		AmountTotal:    o.AmountTotal(),
		DiscountAmount: o.DiscountAmount(),
		Payable:        o.Payable(),
		Reserved:       o.ReservedTowardPayable(),
		RemainingCard:  o.AmountOwed(),
		PlanEligible:   planEligible,
	}, nil
}

func (q *checkoutQueries) readOrder(ctx context.Context, userID, orderID int64) (*order.Order, error) {
	o, err := q.orders.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return o, nil
}

func cartTitle(o *order.Order) string {
	switch {
	case o.PlanTitle() != "":
		return o.PlanTitle()
	case o.ServiceCode() != "":
		return fmt.Sprintf("%s / %s", o.ServiceCategory(), o.ServiceCode())
	default:
		return o.ServiceCategory()
	}
}
