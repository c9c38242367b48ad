package repository

import (
	"context"
	"errors"
	"time"

	"shopbot-checkout/internal/domain/order"
	"shopbot-checkout/internal/infra"
	"shopbot-checkout/internal/pkg/clock"

	"github.com/jackc/pgx/v5"
)

const orderColumns = `
	id, user_id, status, amount_total,
	COALESCE(discount_code, ''), discount_amount,
	wallet_reserved_amount, wallet_used_amount, payment_type,
	COALESCE(await_deadline, ''), service_category, service_code,
	COALESCE(plan_title, ''), COALESCE(notes, ''), allow_first_plan,
	customer_message, COALESCE(receipt_file_ref, ''), COALESCE(receipt_text, ''),
	created_at, updated_at
`

const (
	selectOrderByIDForUserQuery = `
		SELECT ` + orderColumns + ` FROM orders WHERE id = $1 AND user_id = $2`

	updateOrderStatusQuery = `
		UPDATE orders SET status = $2, updated_at = now()
		WHERE id = $1 AND status = ANY($3)`

	updateOrderPaymentTypeQuery = `
		UPDATE orders SET payment_type = $2, updated_at = now() WHERE id = $1`

	updateOrderWalletReservedQuery = `
		UPDATE orders SET wallet_reserved_amount = $2, updated_at = now() WHERE id = $1`

	updateOrderWalletUsedQuery = `
		UPDATE orders SET wallet_used_amount = $2, updated_at = now() WHERE id = $1`

	updateOrderReceiptQuery = `
		UPDATE orders SET receipt_file_ref = $2, receipt_text = $3, updated_at = now()
		WHERE id = $1`

	updateOrderCustomerMessageQuery = `
		UPDATE orders SET customer_message = $2, updated_at = now() WHERE id = $1`

	updateOrderDeadlineQuery = `
		UPDATE orders SET await_deadline = $2, updated_at = now() WHERE id = $1`

	applyOrderDiscountQuery = `
		UPDATE orders SET discount_code = $2, discount_amount = $3, updated_at = now()
		WHERE id = $1 AND discount_code IS NULL`

	removeOrderDiscountQuery = `
		UPDATE orders SET discount_code = NULL, discount_amount = 0, updated_at = now()
		WHERE id = $1 AND discount_code IS NOT NULL AND status = ANY($2)`

	selectHasDeliveredQuery = `
		SELECT EXISTS (SELECT 1 FROM orders WHERE user_id = $1 AND status = $2)`
)

type OrderRepository struct {
	db             DBTX
	clock          clock.Clock
	deadlineWindow time.Duration
}

func NewOrderRepository(db DBTX, clk clock.Clock, deadlineWindow time.Duration) *OrderRepository {
	return &OrderRepository{
		db:             db,
		clock:          clk,
		deadlineWindow: deadlineWindow,
	}
}

func (r *OrderRepository) FindByIDForUser(ctx context.Context, orderID, userID int64) (*order.Order, error) {
	return r.scanOrder(r.db.QueryRow(ctx, selectOrderByIDForUserQuery, orderID, userID))
}

func (r *OrderRepository) scanOrder(row pgx.Row) (*order.Order, error) {
	var (
		id, userID                                                     int64
		status, paymentType                                            string
		amountTotal, discountAmount, walletReserved, walletUsed        int64
		discountCode, awaitDeadline, serviceCategory, serviceCode      string
		planTitle, notes, customerMessage, receiptFileRef, receiptText string
		allowFirstPlan                                                 bool
		createdAt, updatedAt                                           time.Time
	)

	err := row.Scan(
		&id, &userID, &status, &amountTotal,
		&discountCode, &discountAmount,
		&walletReserved, &walletUsed, &paymentType,
		&awaitDeadline, &serviceCategory, &serviceCode,
		&planTitle, &notes, &allowFirstPlan,
		&customerMessage, &receiptFileRef, &receiptText,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read order", err)
	}

	return order.Reconstruct(
		id, userID,
		order.Status(status),
		amountTotal,
		discountCode,
		discountAmount, walletReserved, walletUsed,
		order.PaymentType(paymentType),
		awaitDeadline, serviceCategory, serviceCode, planTitle, notes,
		allowFirstPlan,
		customerMessage, receiptFileRef, receiptText,
		createdAt, updatedAt,
	), nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID int64, to order.Status, from ...order.Status) error {
	fromSet := make([]string, len(from))
	for i, s := range from {
		fromSet[i] = s.String()
	}

	tag, err := r.db.Exec(ctx, updateOrderStatusQuery, orderID, to.String(), fromSet)
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order status no longer allows this transition", nil, infra.KindConflict)
	}
	return nil
}

func (r *OrderRepository) SetPaymentType(ctx context.Context, orderID int64, pt order.PaymentType) error {
	if _, err := r.db.Exec(ctx, updateOrderPaymentTypeQuery, orderID, pt.String()); err != nil {
		return infra.WrapRepoErr("failed to set order payment type", err)
	}
	return nil
}

func (r *OrderRepository) SetWalletReserved(ctx context.Context, orderID int64, amount int64) error {
	if _, err := r.db.Exec(ctx, updateOrderWalletReservedQuery, orderID, amount); err != nil {
		return infra.WrapRepoErr("failed to set order reserved amount", err)
	}
	return nil
}

func (r *OrderRepository) SetWalletUsed(ctx context.Context, orderID int64, amount int64) error {
	if _, err := r.db.Exec(ctx, updateOrderWalletUsedQuery, orderID, amount); err != nil {
		return infra.WrapRepoErr("failed to set order wallet-used amount", err)
	}
	return nil
}

func (r *OrderRepository) SetReceipt(ctx context.Context, orderID int64, fileRef, text *string) error {
	if _, err := r.db.Exec(ctx, updateOrderReceiptQuery, orderID, fileRef, text); err != nil {
		return infra.WrapRepoErr("failed to set order receipt", err)
	}
	return nil
}

func (r *OrderRepository) SetCustomerMessage(ctx context.Context, orderID int64, message string) error {
	if _, err := r.db.Exec(ctx, updateOrderCustomerMessageQuery, orderID, message); err != nil {
		return infra.WrapRepoErr("failed to set order customer message", err)
	}
	return nil
}

// RefreshDeadline rewrites a corrupt deadline as now plus the configured
// window, in the canonical layout.
func (r *OrderRepository) RefreshDeadline(ctx context.Context, orderID int64) error {
	deadline := r.clock.Now().Add(r.deadlineWindow).Format(time.RFC3339)
	if _, err := r.db.Exec(ctx, updateOrderDeadlineQuery, orderID, deadline); err != nil {
		return infra.WrapRepoErr("failed to refresh order deadline", err)
	}
	return nil
}

func (r *OrderRepository) ApplyDiscount(ctx context.Context, orderID int64, code string, amount int64) error {
	tag, err := r.db.Exec(ctx, applyOrderDiscountQuery, orderID, code, amount)
	if err != nil {
		return infra.WrapRepoErr("failed to apply discount to order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order already carries a discount", nil, infra.KindConflict)
	}
	return nil
}

func (r *OrderRepository) RemoveDiscount(ctx context.Context, orderID int64, removableIn ...order.Status) (bool, error) {
	statusSet := make([]string, len(removableIn))
	for i, s := range removableIn {
		statusSet[i] = s.String()
	}

	tag, err := r.db.Exec(ctx, removeOrderDiscountQuery, orderID, statusSet)
	if err != nil {
		return false, infra.WrapRepoErr("failed to remove order discount", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *OrderRepository) HasDeliveredOrder(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, selectHasDeliveredQuery, userID, order.StatusDelivered.String()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check delivered orders", err)
	}
	return exists, nil
}
