//go:build unit

package wallet_test

import (
	"testing"

	"shopbot-checkout/internal/domain/wallet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		name    string
		kind    wallet.OperationKind
		amount  int64
		want    int64
		wantErr bool
	}{
		{name: "debit is negative", kind: wallet.KindDebit, amount: 500, want: -500},
		{name: "reserve is negative", kind: wallet.KindReserve, amount: 200, want: -200},
		{name: "refund is positive", kind: wallet.KindRefund, amount: 200, want: 200},
		{name: "zero amount", kind: wallet.KindDebit, amount: 0, want: 0},
		{name: "negative amount rejected", kind: wallet.KindDebit, amount: -1, wantErr: true},
		{name: "unknown kind rejected", kind: wallet.OperationKind("TRANSFER"), amount: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.kind.SignedAmount(tt.amount)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOperationKindValidity(t *testing.T) {
	assert.True(t, wallet.KindDebit.IsValid())
	assert.True(t, wallet.KindReserve.IsValid())
	assert.True(t, wallet.KindRefund.IsValid())
	assert.False(t, wallet.OperationKind("").IsValid())
}
