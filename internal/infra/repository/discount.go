package repository

import (
	"context"
	"errors"
	"time"

	"shopbot-checkout/internal/domain/discount"
	"shopbot-checkout/internal/infra"

	"github.com/jackc/pgx/v5"
)

const (
	selectDiscountForUpdateQuery = `
		SELECT code, amount_off, percent_off, valid_from, valid_to, active, usage_limit, used_count
		FROM discount_codes
		WHERE code = $1
		FOR UPDATE`

	incrementDiscountUsageQuery = `
		UPDATE discount_codes SET used_count = used_count + 1 WHERE code = $1`
)

type DiscountRepository struct {
	db DBTX
}

func NewDiscountRepository(db DBTX) *DiscountRepository {
	return &DiscountRepository{db: db}
}

// FindByCodeForUpdate locks the code row for the rest of the transaction so
// usage counting stays serialized across concurrent checkouts.
func (r *DiscountRepository) FindByCodeForUpdate(ctx context.Context, code string) (*discount.Discount, error) {
	var (
		gotCode    string
		amountOff  *int64
		percentOff *float64
		validFrom  *time.Time
		validTo    *time.Time
		active     bool
		usageLimit *int32
		usedCount  int32
	)
	err := r.db.QueryRow(ctx, selectDiscountForUpdateQuery, code).Scan(
		&gotCode, &amountOff, &percentOff, &validFrom, &validTo, &active, &usageLimit, &usedCount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.WrapRepoErr("discount code not found", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find discount code", err)
	}
	return discount.Reconstruct(gotCode, amountOff, percentOff, validFrom, validTo, active, usageLimit, usedCount), nil
}

func (r *DiscountRepository) IncrementUsage(ctx context.Context, code string) error {
	tag, err := r.db.Exec(ctx, incrementDiscountUsageQuery, code)
	if err != nil {
		return infra.WrapRepoErr("failed to increment discount usage", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount code disappeared", nil, infra.KindNotFound)
	}
	return nil
}
