//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"shopbot-checkout/internal/domain/order"
	"shopbot-checkout/internal/handler/api"
	resdto "shopbot-checkout/internal/handler/dto/response"
	"shopbot-checkout/internal/handler/middleware"
	"shopbot-checkout/internal/pkg/jwt"
	"shopbot-checkout/internal/usecase/commands"
	"shopbot-checkout/internal/usecase/queries"
	"shopbot-checkout/tests/common/httptest"
	commandsmock "shopbot-checkout/tests/mock/commands"
	queriesmock "shopbot-checkout/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUserID int64 = 1

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	mockQueries  *queriesmock.MockCheckoutQueries
	handler      *api.CheckoutHandler
	token        string
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCheckoutQueries(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands, s.mockQueries)

	tokens := jwt.NewService("unit-test-secret", time.Hour)
	token, err := tokens.GenerateToken(testUserID)
	s.Require().NoError(err)
	s.token = token

	auth := middleware.NewAuthMiddleware(tokens)

	orders := s.router.Group("/api/checkout/orders/:id")
	orders.Use(auth.RequireAuth())
	orders.POST("/method", s.handler.ChooseMethod)
	orders.GET("/summary", s.handler.GetSummary)
	orders.POST("/discount/code", s.handler.StageDiscountCode)
	orders.POST("/discount/apply", s.handler.ApplyDiscount)
	orders.DELETE("/discount", s.handler.RemoveDiscount)
	orders.POST("/proceed", s.handler.Proceed)
	orders.POST("/receipt", s.handler.SubmitReceipt)
	orders.POST("/receipt/comment", s.handler.SubmitReceiptComment)
	orders.POST("/receipt/confirm", s.handler.ConfirmReceipt)
	orders.POST("/wallet/confirm", s.handler.ConfirmWallet)
	orders.POST("/mixed/amount", s.handler.SubmitMixedAmount)
	orders.POST("/plan", s.handler.StartFirstPlan)
	orders.POST("/cancel", s.handler.Cancel)
	orders.POST("/back", s.handler.Back)
	orders.GET("/cart", s.handler.GetCart)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

// ================================================================================
// TestChooseMethod
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestChooseMethod() {
	url := "/api/checkout/orders/10/method"
	body := map[string]any{"method": "CARD"}

	s.Run("success: returns 200 with the money summary", func() {
		s.mockCommands.EXPECT().
			Start(gomock.Any(), testUserID, int64(10), order.PaymentTypeCard).
			Return(commands.Summary{OrderID: 10, Status: order.StatusAwaitingPayment, AmountTotal: 1000, Payable: 1000, Owed: 1000}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.token)

		var resp resdto.SummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(10), resp.OrderID)
		s.Equal(int64(1000), resp.Payable)
	})

	s.Run("unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("rejects a token signed with another secret", func() {
		forged, err := jwt.NewService("other-secret", time.Hour).GenerateToken(testUserID)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, forged)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("invalid order id in path", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/checkout/orders/abc/method", body, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order id")
	})

	s.Run("missing method field", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("unverified contact maps to 403 with hint", func() {
		s.mockCommands.EXPECT().
			Start(gomock.Any(), testUserID, int64(10), order.PaymentTypeCard).
			Return(commands.Summary{}, commands.ErrContactNotVerified).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "verification required")

		var resp struct {
			Detail struct {
				Hint string `json:"hint"`
			} `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("verification_required", resp.Detail.Hint)
	})

	s.Run("expired order maps to 409", func() {
		s.mockCommands.EXPECT().
			Start(gomock.Any(), testUserID, int64(10), order.PaymentTypeCard).
			Return(commands.Summary{}, commands.ErrOrderExpired).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "deadline")
	})
}

// ================================================================================
// TestDiscount
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestStageDiscountCode() {
	url := "/api/checkout/orders/10/discount/code"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().
			StageDiscountCode(gomock.Any(), testUserID, int64(10), "SAVE300").
			Return(nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": "SAVE300"}, s.token)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("missing code field", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *CheckoutHandlerTestSuite) TestApplyDiscount() {
	url := "/api/checkout/orders/10/discount/apply"

	errorCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "nothing staged maps to 400", err: commands.ErrNoPendingCode, expectCode: http.StatusBadRequest},
		{name: "unknown code maps to 404", err: commands.ErrDiscountNotFound, expectCode: http.StatusNotFound},
		{name: "already applied maps to 409", err: commands.ErrDiscountAlreadyApplied, expectCode: http.StatusConflict},
		{name: "expired code maps to 409", err: commands.ErrDiscountExpired, expectCode: http.StatusConflict},
		{name: "ineligible code maps to 422", err: commands.ErrDiscountIneligible, expectCode: http.StatusUnprocessableEntity},
	}

	s.Run("success: returns 200 with reduced payable", func() {
		s.mockCommands.EXPECT().
			ApplyDiscount(gomock.Any(), testUserID, int64(10)).
			Return(commands.Summary{OrderID: 10, AmountTotal: 1000, DiscountCode: "SAVE300", DiscountAmount: 300, Payable: 700, Owed: 700}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.token)

		var resp resdto.SummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(700), resp.Payable)
		s.Equal("SAVE300", resp.DiscountCode)
	})

	for _, tc := range errorCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().
				ApplyDiscount(gomock.Any(), testUserID, int64(10)).
				Return(commands.Summary{}, tc.err).
				Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.token)
			s.Equal(tc.expectCode, rec.Code)
		})
	}
}

func (s *CheckoutHandlerTestSuite) TestRemoveDiscount() {
	url := "/api/checkout/orders/10/discount"

	s.Run("reports whether anything was removed", func() {
		s.mockCommands.EXPECT().
			RemoveDiscount(gomock.Any(), testUserID, int64(10)).
			Return(true, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, s.token)

		var resp resdto.RemoveDiscountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Removed)
	})
}

// ================================================================================
// TestProceed
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestProceed() {
	url := "/api/checkout/orders/10/proceed"

	s.Run("card branch carries transfer details", func() {
		s.mockCommands.EXPECT().
			Proceed(gomock.Any(), testUserID, int64(10)).
			Return(commands.ProceedResult{
				Outcome: commands.OutcomeAwaitReceipt,
				Summary: commands.Summary{OrderID: 10, Payable: 1000, Owed: 1000},
				Card:    &commands.CardDetails{Number: "6037-0000-1111-2222", Holder: "Shop Operator", Currency: "IRT"},
				Owed:    1000,
			}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.token)

		var resp resdto.ProceedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("await_receipt", resp.Outcome)
		s.Require().NotNil(resp.Card)
		s.Equal("6037-0000-1111-2222", resp.Card.Number)
	})

	s.Run("zero owed settles without a card block", func() {
		s.mockCommands.EXPECT().
			Proceed(gomock.Any(), testUserID, int64(10)).
			Return(commands.ProceedResult{
				Outcome: commands.OutcomeCompleted,
				Summary: commands.Summary{OrderID: 10, Status: order.StatusInProgress},
			}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.token)

		var resp resdto.ProceedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("completed", resp.Outcome)
		s.Nil(resp.Card)
	})

	s.Run("insufficient balance maps to 409", func() {
		s.mockCommands.EXPECT().
			Proceed(gomock.Any(), testUserID, int64(10)).
			Return(commands.ProceedResult{}, commands.ErrInsufficientBalance).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "insufficient")
	})
}

// ================================================================================
// TestReceipt
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestSubmitReceipt() {
	url := "/api/checkout/orders/10/receipt"

	s.Run("success: echoes the staged receipt", func() {
		s.mockCommands.EXPECT().
			SubmitReceipt(gomock.Any(), testUserID, int64(10), gomock.Any()).
			Return(commands.ReviewView{Kind: "image", FileRef: "file-abc", Comment: "paid"}, nil).
			Times(1)

		body := map[string]any{"kind": "image", "file_ref": "file-abc", "caption": "paid"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.token)

		var resp resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("file-abc", resp.FileRef)
	})

	s.Run("unknown kind fails binding", func() {
		body := map[string]any{"kind": "audio", "file_ref": "file-abc"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *CheckoutHandlerTestSuite) TestConfirmReceipt() {
	url := "/api/checkout/orders/10/receipt/confirm"

	s.Run("success: reports the pending status", func() {
		s.mockCommands.EXPECT().
			ConfirmReceipt(gomock.Any(), testUserID, int64(10)).
			Return(nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.token)

		var resp map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("PENDING_CONFIRM", resp["status"])
	})

	s.Run("stale session maps to 409", func() {
		s.mockCommands.EXPECT().
			ConfirmReceipt(gomock.Any(), testUserID, int64(10)).
			Return(commands.ErrSessionMismatch).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.token)
		s.Equal(http.StatusConflict, rec.Code)
	})
}

// ================================================================================
// TestWalletAndMixed
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestConfirmWallet() {
	url := "/api/checkout/orders/10/wallet/confirm"

	s.mockCommands.EXPECT().
		ConfirmWallet(gomock.Any(), testUserID, int64(10)).
		Return(commands.WalletResult{AmountDebited: 1000, Status: order.StatusInProgress}, nil).
		Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.token)

	var resp resdto.WalletConfirmResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Equal(int64(1000), resp.AmountDebited)
	s.Equal("IN_PROGRESS", resp.Status)
}

func (s *CheckoutHandlerTestSuite) TestSubmitMixedAmount() {
	url := "/api/checkout/orders/10/mixed/amount"

	s.Run("success: returns the split", func() {
		s.mockCommands.EXPECT().
			SubmitMixedAmount(gomock.Any(), testUserID, int64(10), int64(300)).
			Return(commands.MixedResult{
				Reserved:      300,
				RemainingCard: 700,
				Card:          commands.CardDetails{Number: "6037-0000-1111-2222"},
			}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount": "300"}, s.token)

		var resp resdto.MixedAmountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(300), resp.Reserved)
		s.Equal(int64(700), resp.RemainingCard)
	})

	s.Run("non-numeric amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount": "lots"}, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "non-negative integer")
	})

	s.Run("negative amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount": "-5"}, s.token)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestFirstPlan
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestStartFirstPlan() {
	url := "/api/checkout/orders/10/plan"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().
			StartFirstPlan(gomock.Any(), testUserID, int64(10)).
			Return(nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.token)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("ineligible maps to 422", func() {
		s.mockCommands.EXPECT().
			StartFirstPlan(gomock.Any(), testUserID, int64(10)).
			Return(commands.ErrPlanIneligible).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.token)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("already used maps to 409", func() {
		s.mockCommands.EXPECT().
			StartFirstPlan(gomock.Any(), testUserID, int64(10)).
			Return(commands.ErrPlanAlreadyUsed).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.token)
		s.Equal(http.StatusConflict, rec.Code)
	})
}

// ================================================================================
// TestCancelAndBack
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestCancel() {
	url := "/api/checkout/orders/10/cancel"

	s.Run("success: reports the refunded reservation", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), testUserID, int64(10)).
			Return(commands.CancelResult{Refunded: 300}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.token)

		var resp resdto.CancelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(300), resp.Refunded)
	})

	s.Run("settled order maps to 409", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), testUserID, int64(10)).
			Return(commands.CancelResult{}, commands.ErrOrderNotCancelable).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.token)
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *CheckoutHandlerTestSuite) TestBack() {
	url := "/api/checkout/orders/10/back"

	s.mockCommands.EXPECT().
		Back(gomock.Any(), testUserID, int64(10)).
		Return(nil).
		Times(1)
	s.mockQueries.EXPECT().
		Cart(gomock.Any(), testUserID, int64(10)).
		Return(queries.CartView{OrderID: 10, Title: "AI / gpt-pro", Status: order.StatusAwaitingPayment, PlanEligible: true}, nil).
		Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.token)

	var resp resdto.CartResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Equal("AI / gpt-pro", resp.Title)
	s.True(resp.PlanEligible)
}

func (s *CheckoutHandlerTestSuite) TestGetSummary() {
	url := "/api/checkout/orders/10/summary"

	s.Run("success", func() {
		s.mockQueries.EXPECT().
			Summary(gomock.Any(), testUserID, int64(10)).
			Return(queries.SummaryView{OrderID: 10, Status: order.StatusAwaitingPayment, Payable: 700, Owed: 500, Reserved: 200}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.token)

		var resp resdto.SummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(500), resp.Owed)
	})

	s.Run("missing order maps to 404", func() {
		s.mockQueries.EXPECT().
			Summary(gomock.Any(), testUserID, int64(10)).
			Return(queries.SummaryView{}, queries.ErrOrderNotFound).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.token)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
