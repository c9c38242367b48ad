package repository

import (
	"context"

	"shopbot-checkout/internal/domain/wallet"
	"shopbot-checkout/internal/infra"
	"shopbot-checkout/internal/pkg/clock"

	"github.com/google/uuid"
)

const (
	updateWalletBalanceQuery = `
		UPDATE users
		SET wallet_balance = wallet_balance + $2
		WHERE id = $1 AND wallet_balance + $2 >= 0`

	insertWalletEntryQuery = `
		INSERT INTO wallet_ledger (id, user_id, kind, amount, note, order_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	selectWalletEntriesQuery = `
		SELECT id, user_id, kind, amount, note, order_id, created_at
		FROM wallet_ledger
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`
)

type WalletRepository struct {
	db    DBTX
	clock clock.Clock
}

func NewWalletRepository(db DBTX, clk clock.Clock) *WalletRepository {
	return &WalletRepository{db: db, clock: clk}
}

// Change applies a balance delta and records the ledger entry in one pass.
// The balance update is conditional so a debit or reserve can never push the
// balance below zero, whatever the caller read earlier.
func (r *WalletRepository) Change(ctx context.Context, userID int64, kind wallet.OperationKind, amount int64, note string, orderID int64) error {
	signed, err := kind.SignedAmount(amount)
	if err != nil {
		return infra.WrapRepoErr("invalid wallet operation", err)
	}

	tag, err := r.db.Exec(ctx, updateWalletBalanceQuery, userID, signed)
	if err != nil {
		return infra.WrapRepoErr("failed to update wallet balance", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("wallet balance would go negative", nil, infra.KindInsufficientFunds)
	}

	entry := wallet.Entry{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		Amount:    signed,
		Note:      note,
		OrderID:   orderID,
		CreatedAt: r.clock.Now(),
	}
	if _, err := r.db.Exec(ctx, insertWalletEntryQuery,
		entry.ID, entry.UserID, entry.Kind.String(), entry.Amount, entry.Note, entry.OrderID, entry.CreatedAt,
	); err != nil {
		return infra.WrapRepoErr("failed to insert wallet ledger entry", err)
	}
	return nil
}

func (r *WalletRepository) Entries(ctx context.Context, userID int64, limit int32) ([]wallet.Entry, error) {
	rows, err := r.db.Query(ctx, selectWalletEntriesQuery, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query wallet ledger", err)
	}
	defer rows.Close()

	var entries []wallet.Entry
	for rows.Next() {
		var (
			e    wallet.Entry
			kind string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &kind, &e.Amount, &e.Note, &e.OrderID, &e.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan wallet ledger entry", err)
		}
		e.Kind = wallet.OperationKind(kind)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read wallet ledger rows", err)
	}
	return entries, nil
}
