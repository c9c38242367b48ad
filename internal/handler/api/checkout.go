package api

import (
	"errors"
	"net/http"
	"strconv"

	"shopbot-checkout/internal/domain/checkout"
	"shopbot-checkout/internal/domain/order"
	reqdto "shopbot-checkout/internal/handler/dto/request"
	resdto "shopbot-checkout/internal/handler/dto/response"
	"shopbot-checkout/internal/handler/httperr"
	"shopbot-checkout/internal/handler/middleware"
	"shopbot-checkout/internal/usecase/commands"
	"shopbot-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	commands commands.CheckoutCommands
	queries  queries.CheckoutQueries
}

func NewCheckoutHandler(cmd commands.CheckoutCommands, qry queries.CheckoutQueries) *CheckoutHandler {
	return &CheckoutHandler{
		commands: cmd,
		queries:  qry,
	}
}

func (h *CheckoutHandler) ChooseMethod(c *gin.Context) {
	userID, orderID, ok := h.identify(c)
	if !ok {
		return
	}

	var req reqdto.StartCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	summary, err := h.commands.Start(c.Request.Context(), userID, orderID, order.PaymentType(req.Method))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummary(summary))
}

func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	userID, orderID, ok := h.identify(c)
	if !ok {
		return
	}

	view, err := h.queries.Summary(c.Request.Context(), userID, orderID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummaryView(view))
}

func (h *CheckoutHandler) StageDiscountCode(c *gin.Context) {
	userID, orderID, ok := h.identify(c)
	if !ok {
		return
	}

	var req reqdto.DiscountCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.commands.StageDiscountCode(c.Request.Context(), userID, orderID, req.Code); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CheckoutHandler) ApplyDiscount(c *gin.Context) {
	userID, orderID, ok := h.identify(c)
	if !ok {
		return
	}

	summary, err := h.commands.ApplyDiscount(c.Request.Context(), userID, orderID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummary(summary))
}

func (h *CheckoutHandler) RemoveDiscount(c *gin.Context) {
	userID, orderID, ok := h.identify(c)
	if !ok {
		return
	}

	removed, err := h.commands.RemoveDiscount(c.Request.Context(), userID, orderID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RemoveDiscountResponse{Removed: removed})
}

func (h *CheckoutHandler) Proceed(c *gin.Context) {
	userID, orderID, ok := h.identify(c)
	if !ok {
		return
	}

	result, err := h.commands.Proceed(c.Request.Context(), userID, orderID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProceedResult(result))
}

func (h *CheckoutHandler) SubmitReceipt(c *gin.Context) {
	userID, orderID, ok := h.identify(c)
	if !ok {
		return
	}

	var req reqdto.ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	payload := commands.ReceiptPayload{
		Kind:    checkout.ReceiptKind(req.Kind),
		FileRef: req.FileRef,
		Text:    req.Text,
		Caption: req.Caption,
	}
	view, err := h.commands.SubmitReceipt(c.Request.Context(), userID, orderID, payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReview(view))
}

func (h *CheckoutHandler) SubmitReceiptComment(c *gin.Context) {
	userID, orderID, ok := h.identify(c)
	if !ok {
		return
	}

	var req reqdto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.SubmitReceiptComment(c.Request.Context(), userID, orderID, req.Text)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReview(view))
}

func (h *CheckoutHandler) EditReceipt(c *gin.Context) {
	userID, orderID, ok := h.identify(c)
	if !ok {
		return
	}

	if err := h.commands.EditReceipt(c.Request.Context(), userID, orderID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CheckoutHandler) ConfirmReceipt(c *gin.Context) {
	userID, orderID, ok := h.identify(c)
	if !ok {
		return
	}

	if err := h.commands.ConfirmReceipt(c.Request.Context(), userID, orderID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": order.StatusPendingConfirm.String()})
}

func (h *CheckoutHandler) SubmitWalletComment(c *gin.Context) {
	userID, orderID, ok := h.identify(c)
	if !ok {
		return
	}

	var req reqdto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.commands.SubmitWalletComment(c.Request.Context(), userID, orderID, req.Text); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CheckoutHandler) ConfirmWallet(c *gin.Context) {
	userID, orderID, ok := h.identify(c)
	if !ok {
		return
	}

	result, err := h.commands.ConfirmWallet(c.Request.Context(), userID, orderID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.WalletConfirmResponse{
		AmountDebited: result.AmountDebited,
		Status:        result.Status.String(),
	})
}

func (h *CheckoutHandler) SubmitMixedAmount(c *gin.Context) {
	userID, orderID, ok := h.identify(c)
	if !ok {
		return
	}

	var req reqdto.MixedAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	amount, ok := req.ParseAmount()
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Amount must be a non-negative integer", nil)
		return
	}

	result, err := h.commands.SubmitMixedAmount(c.Request.Context(), userID, orderID, amount)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMixedResult(result))
}

func (h *CheckoutHandler) StartFirstPlan(c *gin.Context) {
	userID, orderID, ok := h.identify(c)
	if !ok {
		return
	}

	if err := h.commands.StartFirstPlan(c.Request.Context(), userID, orderID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CheckoutHandler) SubmitPlanComment(c *gin.Context) {
	userID, orderID, ok := h.identify(c)
	if !ok {
		return
	}

	var req reqdto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	review, err := h.commands.SubmitPlanComment(c.Request.Context(), userID, orderID, req.Text)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PlanReviewResponse{
		PlanTitle: review.PlanTitle,
		Comment:   review.Comment,
	})
}

func (h *CheckoutHandler) EditPlan(c *gin.Context) {
	userID, orderID, ok := h.identify(c)
	if !ok {
		return
	}

	if err := h.commands.EditPlan(c.Request.Context(), userID, orderID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CheckoutHandler) ConfirmPlan(c *gin.Context) {
	userID, orderID, ok := h.identify(c)
	if !ok {
		return
	}

	if err := h.commands.ConfirmPlan(c.Request.Context(), userID, orderID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": order.StatusPendingPlan.String()})
}

func (h *CheckoutHandler) Cancel(c *gin.Context) {
	userID, orderID, ok := h.identify(c)
	if !ok {
		return
	}

	result, err := h.commands.Cancel(c.Request.Context(), userID, orderID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CancelResponse{Refunded: result.Refunded})
}

func (h *CheckoutHandler) Back(c *gin.Context) {
	userID, orderID, ok := h.identify(c)
	if !ok {
		return
	}

	if err := h.commands.Back(c.Request.Context(), userID, orderID); err != nil {
		h.respondError(c, err)
		return
	}

	view, err := h.queries.Cart(c.Request.Context(), userID, orderID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

func (h *CheckoutHandler) GetCart(c *gin.Context) {
	userID, orderID, ok := h.identify(c)
	if !ok {
		return
	}

	view, err := h.queries.Cart(c.Request.Context(), userID, orderID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

func (h *CheckoutHandler) identify(c *gin.Context) (userID, orderID int64, ok bool) {
	userID, ok = middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return 0, 0, false
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || orderID <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return 0, 0, false
	}
	return userID, orderID, true
}

func (h *CheckoutHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrOrderNotFound), errors.Is(err, queries.ErrOrderNotFound),
		errors.Is(err, commands.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
	case errors.Is(err, commands.ErrDiscountNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Discount code not found", nil)
	case errors.Is(err, commands.ErrContactNotVerified):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Contact verification required",
			gin.H{"hint": "verification_required"})
	case errors.Is(err, commands.ErrInvalidInput), errors.Is(err, commands.ErrInvalidMethod):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid input", nil)
	case errors.Is(err, commands.ErrNoPendingCode):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "No discount code staged", nil)
	case errors.Is(err, commands.ErrOrderExpired):
		httperr.AbortWithError(c, http.StatusConflict, err, "Order payment deadline has passed", nil)
	case errors.Is(err, commands.ErrDiscountAlreadyApplied):
		httperr.AbortWithError(c, http.StatusConflict, err, "A discount is already applied", nil)
	case errors.Is(err, commands.ErrDiscountExpired):
		httperr.AbortWithError(c, http.StatusConflict, err, "Discount code has expired", nil)
	case errors.Is(err, commands.ErrDiscountIneligible):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Discount code cannot be used", nil)
	case errors.Is(err, commands.ErrInsufficientBalance):
		httperr.AbortWithError(c, http.StatusConflict, err, "Wallet balance is insufficient", nil)
	case errors.Is(err, commands.ErrSessionMismatch):
		httperr.AbortWithError(c, http.StatusConflict, err, "Checkout session does not match this order", nil)
	case errors.Is(err, commands.ErrOrderNotCancelable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Order can no longer be canceled", nil)
	case errors.Is(err, commands.ErrPlanIneligible):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Order does not qualify for the first-purchase plan", nil)
	case errors.Is(err, commands.ErrPlanAlreadyUsed):
		httperr.AbortWithError(c, http.StatusConflict, err, "First-purchase plan already used", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
