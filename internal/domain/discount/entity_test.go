//go:build unit

package discount_test

import (
	"testing"
	"time"

	"shopbot-checkout/internal/domain/discount"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrI64(v int64) *int64     { return &v }
func ptrF64(v float64) *float64 { return &v }
func ptrI32(v int32) *int32     { return &v }
func ptrTime(t time.Time) *time.Time {
	return &t
}

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestValidateUsage(t *testing.T) {
	tests := []struct {
		name       string
		active     bool
		validFrom  *time.Time
		validTo    *time.Time
		usageLimit *int32
		usedCount  int32
		wantErr    error
	}{
		{name: "active with no window", active: true},
		{name: "inactive", active: false, wantErr: discount.ErrInactive},
		{
			name:      "not yet valid",
			active:    true,
			validFrom: ptrTime(now.Add(time.Hour)),
			wantErr:   discount.ErrNotYetValid,
		},
		{
			name:    "expired",
			active:  true,
			validTo: ptrTime(now.Add(-time.Hour)),
			wantErr: discount.ErrExpired,
		},
		{
			name:      "inside window",
			active:    true,
			validFrom: ptrTime(now.Add(-time.Hour)),
			validTo:   ptrTime(now.Add(time.Hour)),
		},
		{
			name:       "usage limit reached",
			active:     true,
			usageLimit: ptrI32(5),
			usedCount:  5,
			wantErr:    discount.ErrExhausted,
		},
		{
			name:       "usage below limit",
			active:     true,
			usageLimit: ptrI32(5),
			usedCount:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := discount.Reconstruct("SAVE10", ptrI64(100), nil, tt.validFrom, tt.validTo, tt.active, tt.usageLimit, tt.usedCount)
			err := d.ValidateUsage(now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAmountFor(t *testing.T) {
	tests := []struct {
		name       string
		amountOff  *int64
		percentOff *float64
		total      int64
		want       int64
	}{
		{name: "fixed amount", amountOff: ptrI64(300), total: 1000, want: 300},
		{name: "fixed amount above total clamps", amountOff: ptrI64(1500), total: 1000, want: 1000},
		{name: "percent only", percentOff: ptrF64(25), total: 1000, want: 250},
		{name: "fixed then percent on remainder", amountOff: ptrI64(200), percentOff: ptrF64(50), total: 1000, want: 600},
		{name: "hundred percent", percentOff: ptrF64(100), total: 1000, want: 1000},
		{name: "no components", total: 1000, want: 0},
		{name: "zero total", amountOff: ptrI64(100), total: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := discount.Reconstruct("SAVE", tt.amountOff, tt.percentOff, nil, nil, true, nil, 0)
			got := d.AmountFor(tt.total)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, int64(0))
			assert.LessOrEqual(t, got, tt.total)
		})
	}
}
