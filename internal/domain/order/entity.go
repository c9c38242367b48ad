package order

import (
	"errors"
	"time"
)

var (
	ErrInvariantViolated = errors.New("discount plus reserved amount exceeds order total")
	ErrNegativeAmount    = errors.New("order amounts cannot be negative")
)

// deadline values are persisted as text by the order intake side; both layouts
// below occur in existing rows.
var deadlineLayouts = []string{time.RFC3339, "2006-01-02 15:04:05"}

// Order is the payment-side view of a persisted order. Amounts are integer
// currency units.
type Order struct {
	id              int64
	userID          int64
	status          Status
	amountTotal     int64
	discountCode    string
	discountAmount  int64
	walletReserved  int64
	walletUsed      int64
	paymentType     PaymentType
	awaitDeadline   string
	serviceCategory string
	serviceCode     string
	planTitle       string
	notes           string
	allowFirstPlan  bool
	customerMessage string
	receiptFileRef  string
	receiptText     string
	createdAt       time.Time
	updatedAt       time.Time
}

// Reconstruct rehydrates an Order from storage without re-running creation
// rules; intake owns creation, checkout only mutates.
func Reconstruct(
	id, userID int64,
	status Status,
	amountTotal int64,
	discountCode string,
	discountAmount, walletReserved, walletUsed int64,
	paymentType PaymentType,
	awaitDeadline, serviceCategory, serviceCode, planTitle, notes string,
	allowFirstPlan bool,
	customerMessage, receiptFileRef, receiptText string,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:              id,
		userID:          userID,
		status:          status,
		amountTotal:     amountTotal,
		discountCode:    discountCode,
		discountAmount:  discountAmount,
		walletReserved:  walletReserved,
		walletUsed:      walletUsed,
		paymentType:     paymentType,
		awaitDeadline:   awaitDeadline,
		serviceCategory: serviceCategory,
		serviceCode:     serviceCode,
		planTitle:       planTitle,
		notes:           notes,
		allowFirstPlan:  allowFirstPlan,
		customerMessage: customerMessage,
		receiptFileRef:  receiptFileRef,
		receiptText:     receiptText,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Payable is the order total minus the applied discount, floored at zero.
// Callers must recompute this on every render and payment attempt; the
// discount can change between taps.
func (o *Order) Payable() int64 {
	payable := o.amountTotal - o.discountAmount
	if payable < 0 {
		return 0
	}
	return payable
}

// AmountOwed is what is still due after the wallet reservation.
func (o *Order) AmountOwed() int64 {
	owed := o.Payable() - o.walletReserved
	if owed < 0 {
		return 0
	}
	return owed
}

// ReservedTowardPayable caps the reservation at the payable amount for
// display; a later discount can make the raw reservation exceed it.
func (o *Order) ReservedTowardPayable() int64 {
	if o.walletReserved > o.Payable() {
		return o.Payable()
	}
	return o.walletReserved
}

func (o *Order) HasDiscount() bool {
	return o.discountCode != ""
}

// AllowsFirstPlan reports first-purchase-plan eligibility from the order
// itself; the no-prior-delivery check lives with the caller.
func (o *Order) AllowsFirstPlan() bool {
	return o.allowFirstPlan || o.serviceCategory == firstPlanCategory
}

// DeadlinePassed reports whether the payment deadline is at or before now.
// A non-empty value that cannot be parsed is returned as an error so the
// caller can trigger the one-shot deadline refresh.
func (o *Order) DeadlinePassed(now time.Time) (bool, error) {
	raw := o.awaitDeadline
	if raw == "" {
		return false, nil
	}
	var lastErr error
	for _, layout := range deadlineLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return !t.After(now), nil
		}
		lastErr = err
	}
	return false, lastErr
}

// CheckInvariant validates the money bounds that must hold after every
// mutation.
func (o *Order) CheckInvariant() error {
	if o.amountTotal < 0 || o.discountAmount < 0 || o.walletReserved < 0 || o.walletUsed < 0 {
		return ErrNegativeAmount
	}
	if o.discountAmount+o.walletReserved > o.amountTotal {
		return ErrInvariantViolated
	}
	return nil
}

func (o *Order) ID() int64                { return o.id }
func (o *Order) UserID() int64            { return o.userID }
func (o *Order) Status() Status           { return o.status }
func (o *Order) AmountTotal() int64       { return o.amountTotal }
func (o *Order) DiscountCode() string     { return o.discountCode }
func (o *Order) DiscountAmount() int64    { return o.discountAmount }
func (o *Order) WalletReserved() int64    { return o.walletReserved }
func (o *Order) WalletUsed() int64        { return o.walletUsed }
func (o *Order) PaymentType() PaymentType { return o.paymentType }
func (o *Order) AwaitDeadline() string    { return o.awaitDeadline }
func (o *Order) ServiceCategory() string  { return o.serviceCategory }
func (o *Order) ServiceCode() string      { return o.serviceCode }
func (o *Order) PlanTitle() string        { return o.planTitle }
func (o *Order) Notes() string            { return o.notes }
func (o *Order) AllowFirstPlan() bool     { return o.allowFirstPlan }
func (o *Order) CustomerMessage() string  { return o.customerMessage }
func (o *Order) ReceiptFileRef() string   { return o.receiptFileRef }
func (o *Order) ReceiptText() string      { return o.receiptText }
func (o *Order) CreatedAt() time.Time     { return o.createdAt }
func (o *Order) UpdatedAt() time.Time     { return o.updatedAt }
