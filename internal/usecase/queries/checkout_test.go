//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"shopbot-checkout/internal/domain/checkout"
	"shopbot-checkout/internal/domain/order"
	"shopbot-checkout/internal/infra"
	"shopbot-checkout/internal/infra/sessionstore"
	"shopbot-checkout/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderSpec struct {
	id             int64
	userID         int64
	status         order.Status
	total          int64
	discountCode   string
	discountAmount int64
	reserved       int64
	paymentType    order.PaymentType
	category       string
	serviceCode    string
	planTitle      string
	allowFirstPlan bool
}

type fakeOrderReader struct {
	orders    []orderSpec
	delivered bool
}

func (f fakeOrderReader) FindByIDForUser(_ context.Context, orderID, userID int64) (*order.Order, error) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, s := range f.orders {
		if s.id != orderID || s.userID != userID {
			continue
		}
		return order.Reconstruct(
			s.id, s.userID, s.status, s.total,
			s.discountCode, s.discountAmount, s.reserved, 0,
			s.paymentType, now.Add(time.Hour).Format(time.RFC3339),
			s.category, s.serviceCode, s.planTitle, "",
			s.allowFirstPlan, "", "", "", now, now,
		), nil
	}
	return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
}

func (f fakeOrderReader) HasDeliveredOrder(context.Context, int64) (bool, error) {
	return f.delivered, nil
}

func TestSummaryQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("money breakdown with session overlay", func(t *testing.T) {
		reader := fakeOrderReader{orders: []orderSpec{{
			id: 10, userID: 1, status: order.StatusAwaitingPayment,
			total: 1000, discountCode: "SAVE300", discountAmount: 300, reserved: 200,
		}}}
		sessions := sessionstore.NewMemoryStore()
		sess := checkout.New(1, 10, order.PaymentTypeMixed)
		sess.PendingDiscountCode = "EXTRA"
		require.NoError(t, sessions.Put(ctx, sess))

		q := queries.NewCheckoutQueries(reader, sessions)
		view, err := q.Summary(ctx, 1, 10)
		require.NoError(t, err)

		assert.Equal(t, int64(700), view.Payable)
		assert.Equal(t, int64(200), view.Reserved)
		assert.Equal(t, int64(500), view.Owed)
		assert.Equal(t, order.PaymentTypeMixed, view.Method, "session method wins over the stored one")
		assert.Equal(t, "EXTRA", view.PendingCode)
	})

	t.Run("foreign session is ignored", func(t *testing.T) {
		reader := fakeOrderReader{orders: []orderSpec{{
			id: 10, userID: 1, status: order.StatusAwaitingPayment, total: 1000,
			paymentType: order.PaymentTypeCard,
		}}}
		sessions := sessionstore.NewMemoryStore()
		require.NoError(t, sessions.Put(ctx, checkout.New(1, 99, order.PaymentTypeWallet)))

		q := queries.NewCheckoutQueries(reader, sessions)
		view, err := q.Summary(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, order.PaymentTypeCard, view.Method)
		assert.Empty(t, view.PendingCode)
	})

	t.Run("missing order", func(t *testing.T) {
		q := queries.NewCheckoutQueries(fakeOrderReader{}, sessionstore.NewMemoryStore())
		_, err := q.Summary(ctx, 1, 10)
		require.ErrorIs(t, err, queries.ErrOrderNotFound)
	})
}

func TestCartQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("plan eligible while payable and undelivered", func(t *testing.T) {
		reader := fakeOrderReader{orders: []orderSpec{{
			id: 10, userID: 1, status: order.StatusAwaitingPayment,
			total: 1000, category: "AI", serviceCode: "gpt-pro",
		}}}
		q := queries.NewCheckoutQueries(reader, sessionstore.NewMemoryStore())

		view, err := q.Cart(ctx, 1, 10)
		require.NoError(t, err)
		assert.True(t, view.PlanEligible)
		assert.Equal(t, "AI / gpt-pro", view.Title)
		assert.Equal(t, int64(1000), view.RemainingCard)
	})

	t.Run("prior delivery turns the plan off", func(t *testing.T) {
		reader := fakeOrderReader{
			orders: []orderSpec{{
				id: 10, userID: 1, status: order.StatusAwaitingPayment,
				total: 1000, category: "AI",
			}},
			delivered: true,
		}
		q := queries.NewCheckoutQueries(reader, sessionstore.NewMemoryStore())

		view, err := q.Cart(ctx, 1, 10)
		require.NoError(t, err)
		assert.False(t, view.PlanEligible)
	})

	t.Run("plan title wins the card title", func(t *testing.T) {
		reader := fakeOrderReader{orders: []orderSpec{{
			id: 10, userID: 1, status: order.StatusInProgress,
			total: 1000, category: "AI", serviceCode: "gpt-pro", planTitle: "Starter",
		}}}
		q := queries.NewCheckoutQueries(reader, sessionstore.NewMemoryStore())

		view, err := q.Cart(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, "Starter", view.Title)
		assert.False(t, view.PlanEligible, "settled orders are never plan eligible")
	})
}
