package order

// Status is the persisted order lifecycle state. Checkout only ever moves an
// order along the transition table below; everything after IN_PROGRESS /
// PENDING_* belongs to the fulfillment side.
type Status string

const (
	StatusAwaitingPayment Status = "AWAITING_PAYMENT"
	StatusPendingConfirm  Status = "PENDING_CONFIRM"
	StatusInProgress      Status = "IN_PROGRESS"
	StatusPendingPlan     Status = "PENDING_PLAN"
	StatusCanceled        Status = "CANCELED"
	StatusDelivered       Status = "DELIVERED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAwaitingPayment, StatusPendingConfirm, StatusInProgress,
		StatusPendingPlan, StatusCanceled, StatusDelivered:
		return true
	default:
		return false
	}
}

// IsPayable reports whether checkout may still act on the order.
func (s Status) IsPayable() bool {
	return s == StatusAwaitingPayment || s == StatusPendingConfirm
}

// checkoutTransitions is the closed transition table for the payment flow.
// PENDING_CONFIRM loops on itself: a buyer may re-submit a receipt while the
// previous one is still under review.
var checkoutTransitions = map[Status][]Status{
	StatusAwaitingPayment: {StatusPendingConfirm, StatusInProgress, StatusPendingPlan, StatusCanceled},
	StatusPendingConfirm:  {StatusPendingConfirm, StatusInProgress, StatusPendingPlan, StatusCanceled},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range checkoutTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionSources lists the statuses an order may hold immediately before
// moving to next. Conditional status updates use it as their from-set so the
// table above stays the single source of truth for the flow.
func TransitionSources(next Status) []Status {
	var from []Status
	for _, s := range []Status{StatusAwaitingPayment, StatusPendingConfirm} {
		if s.CanTransitionTo(next) {
			from = append(from, s)
		}
	}
	return from
}

// PaymentType records how the buyer settled (or is settling) the order.
type PaymentType string

const (
	PaymentTypeUnset     PaymentType = ""
	PaymentTypeCard      PaymentType = "CARD"
	PaymentTypeWallet    PaymentType = "WALLET"
	PaymentTypeMixed     PaymentType = "MIXED"
	PaymentTypeFirstPlan PaymentType = "FIRST_PLAN"
	PaymentTypeDiscount  PaymentType = "DISCOUNT"
)

func (p PaymentType) String() string {
	return string(p)
}

func (p PaymentType) IsValid() bool {
	switch p {
	case PaymentTypeUnset, PaymentTypeCard, PaymentTypeWallet,
		PaymentTypeMixed, PaymentTypeFirstPlan, PaymentTypeDiscount:
		return true
	default:
		return false
	}
}

// IsChoosable reports whether a buyer can pick this payment type at the start
// of checkout. FIRST_PLAN and DISCOUNT are reached through dedicated paths.
func (p PaymentType) IsChoosable() bool {
	switch p {
	case PaymentTypeCard, PaymentTypeWallet, PaymentTypeMixed:
		return true
	default:
		return false
	}
}

// firstPlanCategory is the service category that always qualifies for the
// first-purchase plan regardless of the per-order flag.
const firstPlanCategory = "AI"
