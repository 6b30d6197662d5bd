package main

import (
	"fmt"
	"log"

	"github.com/swajayfour/swajay_go_server/config"
	"github.com/swajayfour/swajay_go_server/internal/api"
	"github.com/swajayfour/swajay_go_server/internal/api/handler"
	"github.com/swajayfour/swajay_go_server/internal/database"
	"github.com/swajayfour/swajay_go_server/internal/pkg/cron"
	"github.com/swajayfour/swajay_go_server/internal/pkg/mirror"
	"github.com/swajayfour/swajay_go_server/internal/pkg/oss"
	"github.com/swajayfour/swajay_go_server/internal/pkg/queue"
	"github.com/swajayfour/swajay_go_server/internal/pkg/ws"
	"github.com/swajayfour/swajay_go_server/internal/plan"
	"github.com/swajayfour/swajay_go_server/internal/repository"
	"github.com/swajayfour/swajay_go_server/internal/service"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	defer database.Close(db)
	log.Println("Database connected")

	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Printf("Redis unavailable, continuing without cache/queue: %v", err)
		rdb = nil
	} else {
		log.Println("Redis connected")
	}

	// Mirror sink: queued when redis is up, direct otherwise, noop when no
	// mirror endpoint is configured.
	sink := mirror.NewNoop()
	if cfg.Mirror.Endpoint != "" {
		if rdb != nil && cfg.Queue.MirrorQueue != "" {
			sink = mirror.NewQueued(queue.NewQueue(rdb, cfg.Queue.MirrorQueue))
			log.Println("Mirror enabled (queued)")
		} else {
			ossClient, err := oss.NewClient(&cfg.Mirror)
			if err != nil {
				log.Printf("Mirror disabled: %v", err)
			} else {
				sink = mirror.NewOSS(ossClient)
				log.Println("Mirror enabled (direct)")
			}
		}
	}

	hub := ws.NewHub()
	catalog := plan.NewCatalog(cfg.Plans)

	userRepo := repository.NewUserRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	channelRepo := repository.NewChannelRepository(db)

	entitlementService := service.NewEntitlementService(userRepo, catalog)
	authService := service.NewAuthService(userRepo, sink, cfg)
	channelService := service.NewChannelService(channelRepo, rdb, sink)
	paymentService := service.NewPaymentService(paymentRepo, userRepo, entitlementService, catalog, sink)
	adminService := service.NewAdminService(userRepo, paymentRepo, channelRepo, hub, sink)

	if err := channelService.SeedIfEmpty(); err != nil {
		log.Fatalf("Failed to seed channels: %v", err)
	}

	cronService := cron.NewService(entitlementService, adminService)
	cronService.Start()
	defer cronService.Stop()

	authHandler := handler.NewAuthHandler(authService)
	channelHandler := handler.NewChannelHandler(channelService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	subscriptionHandler := handler.NewSubscriptionHandler(entitlementService)
	trialHandler := handler.NewTrialHandler(channelService, hub, cfg.Trial.DurationSeconds)
	adminHandler := handler.NewAdminHandler(adminService, channelService)

	router := api.NewRouter(
		authHandler,
		channelHandler,
		paymentHandler,
		subscriptionHandler,
		trialHandler,
		adminHandler,
		cfg,
	)
	engine := router.Setup()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("SwajayFour backend running on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
