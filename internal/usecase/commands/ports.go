package commands

import (
	"context"

	"shopbot-checkout/internal/domain/checkout"
	"shopbot-checkout/internal/domain/discount"
	"shopbot-checkout/internal/domain/order"
	"shopbot-checkout/internal/domain/wallet"
)

// UnitOfWork runs fn inside one storage transaction: every wallet mutation
// and its paired order update commit together or not at all.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes transaction-scoped repositories.
type Tx interface {
	Orders() OrderTxRepository
	Wallet() WalletTxRepository
	Discounts() DiscountTxRepository
}

// OrderRepository is the non-transactional read side plus the deadline
// self-heal write.
type OrderRepository interface {
	// FindByIDForUser is ownership-scoped: an order belonging to another
	// user reads as not found.
	FindByIDForUser(ctx context.Context, orderID, userID int64) (*order.Order, error)
	RefreshDeadline(ctx context.Context, orderID int64) error
	HasDeliveredOrder(ctx context.Context, userID int64) (bool, error)
}

type OrderTxRepository interface {
	// UpdateStatus advances the order only when its current status is one of
	// from; a lost race surfaces as KindConflict.
	UpdateStatus(ctx context.Context, orderID int64, to order.Status, from ...order.Status) error
	SetPaymentType(ctx context.Context, orderID int64, pt order.PaymentType) error
	SetWalletReserved(ctx context.Context, orderID int64, amount int64) error
	SetWalletUsed(ctx context.Context, orderID int64, amount int64) error
	SetReceipt(ctx context.Context, orderID int64, fileRef, text *string) error
	SetCustomerMessage(ctx context.Context, orderID int64, message string) error
	// ApplyDiscount binds code to the order only while no code is applied;
	// a concurrent double-apply surfaces as KindConflict.
	ApplyDiscount(ctx context.Context, orderID int64, code string, amount int64) error
	RemoveDiscount(ctx context.Context, orderID int64, removableIn ...order.Status) (bool, error)
}

type WalletTxRepository interface {
	// Change applies one signed ledger operation atomically; a balance that
	// would go negative surfaces as KindInsufficientFunds and leaves the
	// wallet untouched.
	Change(ctx context.Context, userID int64, kind wallet.OperationKind, amount int64, note string, orderID int64) error
}

type DiscountTxRepository interface {
	// FindByCodeForUpdate row-locks the code so usage accounting cannot race.
	FindByCodeForUpdate(ctx context.Context, code string) (*discount.Discount, error)
	IncrementUsage(ctx context.Context, code string) error
}

type UserSnapshot struct {
	ID              int64
	Username        string
	DisplayName     string
	WalletBalance   int64
	ContactVerified bool
}

type UserRepository interface {
	FindByID(ctx context.Context, userID int64) (*UserSnapshot, error)
}

// SessionStore keeps the ephemeral per-user checkout session. Put replaces
// the whole session object; last write wins.
type SessionStore interface {
	Get(ctx context.Context, userID int64) (*checkout.Session, error)
	Put(ctx context.Context, session *checkout.Session) error
	Delete(ctx context.Context, userID int64) error
}

// Notice is one operator notification; FileRef carries a receipt attachment
// when the buyer submitted a file.
type Notice struct {
	Text     string
	FileRef  string
	FileKind checkout.ReceiptKind
}

// Notifier fans a notice out to all operators best-effort; per-recipient
// failures must never surface to the caller.
type Notifier interface {
	NotifyOperators(ctx context.Context, notice Notice)
}
