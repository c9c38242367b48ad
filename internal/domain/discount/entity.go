package discount

import (
	"errors"
	"time"
)

var (
	ErrInactive    = errors.New("discount code is inactive")
	ErrNotYetValid = errors.New("discount code is not yet valid")
	ErrExpired     = errors.New("discount code has expired")
	ErrExhausted   = errors.New("discount code usage limit reached")
)

// Discount is a promo code. A code may carry a fixed amount off, a percent
// off, or both; the fixed part is subtracted first.
type Discount struct {
	code       string
	amountOff  *int64
	percentOff *float64
	validFrom  *time.Time
	validTo    *time.Time
	active     bool
	usageLimit *int32
	usedCount  int32
}

func Reconstruct(
	code string,
	amountOff *int64,
	percentOff *float64,
	validFrom, validTo *time.Time,
	active bool,
	usageLimit *int32,
	usedCount int32,
) *Discount {
	return &Discount{
		code:       code,
		amountOff:  amountOff,
		percentOff: percentOff,
		validFrom:  validFrom,
		validTo:    validTo,
		active:     active,
		usageLimit: usageLimit,
		usedCount:  usedCount,
	}
}

// ValidateUsage applies the code's own validity policy at time t.
func (d *Discount) ValidateUsage(t time.Time) error {
	if !d.active {
		return ErrInactive
	}
	if d.validFrom != nil && t.Before(*d.validFrom) {
		return ErrNotYetValid
	}
	if d.validTo != nil && t.After(*d.validTo) {
		return ErrExpired
	}
	if d.usageLimit != nil && d.usedCount >= *d.usageLimit {
		return ErrExhausted
	}
	return nil
}

// AmountFor computes the discount amount against an order total, clamped to
// [0, total].
func (d *Discount) AmountFor(total int64) int64 {
	if total <= 0 {
		return 0
	}
	var off int64
	if d.amountOff != nil {
		off = *d.amountOff
	}
	if d.percentOff != nil {
		remaining := total - off
		if remaining > 0 {
			off += int64(float64(remaining) * *d.percentOff / 100.0)
		}
	}
	if off < 0 {
		return 0
	}
	if off > total {
		return total
	}
	return off
}

func (d *Discount) Code() string          { return d.code }
func (d *Discount) Active() bool          { return d.active }
func (d *Discount) ValidFrom() *time.Time { return d.validFrom }
func (d *Discount) ValidTo() *time.Time   { return d.validTo }
func (d *Discount) UsedCount() int32      { return d.usedCount }
