package wallet

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidOperation = errors.New("invalid wallet operation kind")

// OperationKind is the signed ledger operation against a user's wallet.
type OperationKind string

const (
	// KindDebit is a final, non-refundable spend.
	KindDebit OperationKind = "DEBIT"
	// KindReserve holds part of the balance for a mixed payment while the
	// card portion is pending.
	KindReserve OperationKind = "RESERVE"
	// KindRefund reverses a reservation, e.g. on cancellation.
	KindRefund OperationKind = "REFUND"
)

func (k OperationKind) String() string {
	return string(k)
}

func (k OperationKind) IsValid() bool {
	switch k {
	case KindDebit, KindReserve, KindRefund:
		return true
	default:
		return false
	}
}

// SignedAmount maps a non-negative operation amount to the balance delta.
func (k OperationKind) SignedAmount(amount int64) (int64, error) {
	if amount < 0 {
		return 0, errors.New("wallet operation amount cannot be negative")
	}
	switch k {
	case KindDebit, KindReserve:
		return -amount, nil
	case KindRefund:
		return amount, nil
	default:
		return 0, ErrInvalidOperation
	}
}

// Entry is one audit row in the wallet ledger. Amount is stored signed.
type Entry struct {
	ID        uuid.UUID
	UserID    int64
	Kind      OperationKind
	Amount    int64
	Note      string
	OrderID   int64
	CreatedAt time.Time
}
