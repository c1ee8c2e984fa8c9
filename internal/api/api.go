package api

import (
	"net/http"

	authHandler "github.com/GanonMaor/spectra-salon-website-sub004/internal/auth/handler"
	billingHandler "github.com/GanonMaor/spectra-salon-website-sub004/internal/billing/handler"
	funnelHandler "github.com/GanonMaor/spectra-salon-website-sub004/internal/funnel/handler"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/ratelimit"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"
	supportHandler "github.com/GanonMaor/spectra-salon-website-sub004/internal/support/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type API struct {
	router         *gin.RouterGroup
	authHandler    authHandler.Handler
	funnelHandler  funnelHandler.Handler
	billingHandler billingHandler.Handler
	supportHandler supportHandler.Handler
	rateLimiter    *ratelimit.Service
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	funnelHandler funnelHandler.Handler,
	billingHandler billingHandler.Handler,
	supportHandler supportHandler.Handler,
	rateLimiter *ratelimit.Service,
) API {
	return API{
		router:         router,
		authHandler:    authHandler,
		funnelHandler:  funnelHandler,
		billingHandler: billingHandler,
		supportHandler: supportHandler,
		rateLimiter:    rateLimiter,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := a.router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.POST("/login", a.authHandler.HandleEmailLogin)
		authGroup.GET("/me", a.authHandler.RequireRole(store.UserRoleAdmin, store.UserRoleSupport), a.authHandler.GetUserInfo)
	}

	// Public funnel and checkout
	apiGroup.POST("/leads", a.funnelHandler.HandleRecordLead)
	apiGroup.GET("/leads/:id", a.funnelHandler.HandleGetLead)
	apiGroup.POST("/cta-clicks", a.funnelHandler.HandleCTAClick)
	apiGroup.POST("/checkout", a.billingHandler.HandleCheckout)

	// Public support, throttled per client IP
	supportGroup := apiGroup.Group("/support", a.rateLimiter.Middleware())
	{
		supportGroup.POST("/tickets", a.supportHandler.HandleCreateTicket)
		supportGroup.POST("/messages", a.supportHandler.HandleCustomerMessage)
	}

	// Provider callbacks
	apiGroup.POST("/billing/webhook", a.billingHandler.HandleWebhook)
	apiGroup.POST("/webhooks/whatsapp", a.supportHandler.HandleWhatsAppWebhook)

	// Server-to-server checkout confirmation
	apiGroup.POST("/subscribers", a.authHandler.RequireInternalOrRole(store.UserRoleAdmin), a.billingHandler.HandlePromote)

	adminGroup := apiGroup.Group("/admin")
	{
		// The live feed authenticates from the query string
		adminGroup.GET("/support/stream",
			a.authHandler.RequireRoleFromQuery(store.UserRoleAdmin, store.UserRoleSupport),
			a.supportHandler.HandleStream,
		)

		ownerGroup := adminGroup.Group("", a.authHandler.RequireRole(store.UserRoleAdmin))
		{
			ownerGroup.GET("/leads", a.funnelHandler.HandleListLeads)
			ownerGroup.GET("/leads/:id", a.funnelHandler.HandleGetLeadDetail)
			ownerGroup.GET("/funnel/summary", a.funnelHandler.HandleSummary)
			ownerGroup.GET("/funnel/daily", a.funnelHandler.HandleDaily)
			ownerGroup.GET("/subscribers", a.billingHandler.HandleListSubscribers)
			ownerGroup.POST("/subscribers/:id/cancel", a.billingHandler.HandleCancelSubscriber)
		}

		supportAdmin := adminGroup.Group("/support", a.authHandler.RequireRole(store.UserRoleAdmin, store.UserRoleSupport))
		{
			supportAdmin.GET("/tickets", a.supportHandler.HandleListTickets)
			supportAdmin.GET("/tickets/:id", a.supportHandler.HandleGetTicket)
			supportAdmin.PATCH("/tickets/:id/status", a.supportHandler.HandleSetStatus)
			supportAdmin.POST("/messages", a.supportHandler.HandleAgentMessage)
		}
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
