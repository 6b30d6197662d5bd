package api

import (
	"github.com/gin-gonic/gin"

	"github.com/swajayfour/swajay_go_server/config"
	"github.com/swajayfour/swajay_go_server/internal/api/handler"
	"github.com/swajayfour/swajay_go_server/internal/api/middleware"
)

type Router struct {
	authHandler         *handler.AuthHandler
	channelHandler      *handler.ChannelHandler
	paymentHandler      *handler.PaymentHandler
	subscriptionHandler *handler.SubscriptionHandler
	trialHandler        *handler.TrialHandler
	adminHandler        *handler.AdminHandler
	cfg                 *config.Config
}

func NewRouter(
	authHandler *handler.AuthHandler,
	channelHandler *handler.ChannelHandler,
	paymentHandler *handler.PaymentHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	trialHandler *handler.TrialHandler,
	adminHandler *handler.AdminHandler,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:         authHandler,
		channelHandler:      channelHandler,
		paymentHandler:      paymentHandler,
		subscriptionHandler: subscriptionHandler,
		trialHandler:        trialHandler,
		adminHandler:        adminHandler,
		cfg:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))

	api := engine.Group("/api")
	{
		// Auth
		api.POST("/signup", r.authHandler.Signup)
		api.POST("/login", r.authHandler.Login)

		// Channels
		api.GET("/channels", r.channelHandler.List)
		api.GET("/channels/:id", r.channelHandler.Get)

		// Payment simulation + subscription check
		api.GET("/plans", r.paymentHandler.ListPlans)
		api.POST("/pay", r.paymentHandler.Pay)
		api.GET("/subscription/:phone", r.subscriptionHandler.Status)

		// Anonymous trial playback (websocket)
		api.GET("/trial/:id", r.trialHandler.Handle)

		// Admin endpoints require a session token.
		admin := api.Group("/admin")
		admin.Use(middleware.Auth(r.cfg.JWT.Secret))
		{
			admin.POST("/seed", r.adminHandler.Seed)
			admin.GET("/db", r.adminHandler.Dump)
		}
	}

	return engine
}
