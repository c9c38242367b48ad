package commands

import (
	"errors"

	"shopbot-checkout/internal/domain/discount"
	"shopbot-checkout/internal/infra"
	"shopbot-checkout/internal/pkg/errs"
)

// Guard failures surface as sentinel errors so the handler can map them to
// stable response codes. Storage failures are marked ErrStorageFailure with
// the cause chain preserved.
var (
	ErrUserNotFound           = errs.New("user not found")
	ErrContactNotVerified     = errs.New("contact not verified")
	ErrOrderNotFound          = errs.New("order not found")
	ErrOrderExpired           = errs.New("order payment deadline has passed")
	ErrOrderNotCancelable     = errs.New("order can no longer be canceled")
	ErrInvalidMethod          = errs.New("payment method not available")
	ErrInvalidInput           = errs.New("invalid input")
	ErrInsufficientBalance    = errs.New("wallet balance is insufficient")
	ErrDiscountNotFound       = errs.New("discount code not found")
	ErrDiscountAlreadyApplied = errs.New("a discount is already applied")
	ErrDiscountExpired        = errs.New("discount code has expired")
	ErrDiscountIneligible     = errs.New("discount code cannot be used")
	ErrNoPendingCode          = errs.New("no discount code staged")
	ErrSessionMismatch        = errs.New("checkout session does not match this order")
	ErrPlanIneligible         = errs.New("order does not qualify for the first-purchase plan")
	ErrPlanAlreadyUsed        = errs.New("first-purchase plan already used")
	ErrStorageFailure         = errs.New("storage failure")
)

// orderReadErr translates repository kinds on the order read path.
func orderReadErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrOrderNotFound)
	}
	return errs.Mark(err, ErrStorageFailure)
}

// discountErr translates discount validation failures to their sentinels.
func discountErr(err error) error {
	switch {
	case errors.Is(err, discount.ErrExpired):
		return errs.Mark(err, ErrDiscountExpired)
	case errors.Is(err, discount.ErrInactive),
		errors.Is(err, discount.ErrNotYetValid),
		errors.Is(err, discount.ErrExhausted):
		return errs.Mark(err, ErrDiscountIneligible)
	default:
		return errs.Mark(err, ErrStorageFailure)
	}
}
