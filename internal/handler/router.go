package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopbot-checkout/internal/handler/api"
	"shopbot-checkout/internal/handler/middleware"
	"shopbot-checkout/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, checkoutHandler *api.CheckoutHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, checkoutHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, checkoutHandler *api.CheckoutHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		orders := apiGroup.Group("/checkout/orders/:id")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "/method", Handler: checkoutHandler.ChooseMethod},
				{Method: http.MethodGet, Path: "/summary", Handler: checkoutHandler.GetSummary},
				{Method: http.MethodPost, Path: "/discount/code", Handler: checkoutHandler.StageDiscountCode},
				{Method: http.MethodPost, Path: "/discount/apply", Handler: checkoutHandler.ApplyDiscount},
				{Method: http.MethodDelete, Path: "/discount", Handler: checkoutHandler.RemoveDiscount},
				{Method: http.MethodPost, Path: "/proceed", Handler: checkoutHandler.Proceed},
				{Method: http.MethodPost, Path: "/receipt", Handler: checkoutHandler.SubmitReceipt},
				{Method: http.MethodPost, Path: "/receipt/comment", Handler: checkoutHandler.SubmitReceiptComment},
				{Method: http.MethodPost, Path: "/receipt/edit", Handler: checkoutHandler.EditReceipt},
				{Method: http.MethodPost, Path: "/receipt/confirm", Handler: checkoutHandler.ConfirmReceipt},
				{Method: http.MethodPost, Path: "/wallet/comment", Handler: checkoutHandler.SubmitWalletComment},
				{Method: http.MethodPost, Path: "/wallet/confirm", Handler: checkoutHandler.ConfirmWallet},
				{Method: http.MethodPost, Path: "/mixed/amount", Handler: checkoutHandler.SubmitMixedAmount},
				{Method: http.MethodPost, Path: "/plan", Handler: checkoutHandler.StartFirstPlan},
				{Method: http.MethodPost, Path: "/plan/comment", Handler: checkoutHandler.SubmitPlanComment},
				{Method: http.MethodPost, Path: "/plan/edit", Handler: checkoutHandler.EditPlan},
				{Method: http.MethodPost, Path: "/plan/confirm", Handler: checkoutHandler.ConfirmPlan},
				{Method: http.MethodPost, Path: "/cancel", Handler: checkoutHandler.Cancel},
				{Method: http.MethodPost, Path: "/back", Handler: checkoutHandler.Back},
				{Method: http.MethodGet, Path: "/cart", Handler: checkoutHandler.GetCart},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
