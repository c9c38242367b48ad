package repository

import (
	"context"
	"errors"

	"shopbot-checkout/internal/infra"
	"shopbot-checkout/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
)

const selectUserByIDQuery = `
	SELECT id, COALESCE(username, ''), COALESCE(display_name, ''), wallet_balance, contact_verified
	FROM users
	WHERE id = $1`

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, userID int64) (*commands.UserSnapshot, error) {
	var u commands.UserSnapshot
	err := r.db.QueryRow(ctx, selectUserByIDQuery, userID).Scan(
		&u.ID, &u.Username, &u.DisplayName, &u.WalletBalance, &u.ContactVerified,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &u, nil
}
