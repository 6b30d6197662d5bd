package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/swajayfour/swajay_go_server/config"
	"github.com/swajayfour/swajay_go_server/internal/api/middleware"
	"github.com/swajayfour/swajay_go_server/internal/pkg/mirror"
	"github.com/swajayfour/swajay_go_server/internal/pkg/ws"
	"github.com/swajayfour/swajay_go_server/internal/plan"
	"github.com/swajayfour/swajay_go_server/internal/repository"
	"github.com/swajayfour/swajay_go_server/internal/service"
	"github.com/swajayfour/swajay_go_server/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testJWTSecret = "test-secret-key"

// trialSeconds keeps websocket tests fast; production uses the configured 180.
const trialSeconds = 2

type testEnv struct {
	engine      *gin.Engine
	db          *gorm.DB
	hub         *ws.Hub
	entitlement *service.EntitlementService
	channels    *service.ChannelService
}

func setupTestEnv(t *testing.T) (*testEnv, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)

	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: testJWTSecret, ExpireHours: 720},
	}

	sink := mirror.NewNoop()
	hub := ws.NewHub()
	catalog := plan.NewCatalog(nil)

	userRepo := repository.NewUserRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	channelRepo := repository.NewChannelRepository(db)

	entitlementService := service.NewEntitlementService(userRepo, catalog)
	authService := service.NewAuthService(userRepo, sink, cfg)
	channelService := service.NewChannelService(channelRepo, nil, sink)
	paymentService := service.NewPaymentService(paymentRepo, userRepo, entitlementService, catalog, sink)
	adminService := service.NewAdminService(userRepo, paymentRepo, channelRepo, hub, sink)

	engine := gin.New()
	api := engine.Group("/api")

	authHandler := NewAuthHandler(authService)
	channelHandler := NewChannelHandler(channelService)
	paymentHandler := NewPaymentHandler(paymentService)
	subscriptionHandler := NewSubscriptionHandler(entitlementService)
	trialHandler := NewTrialHandler(channelService, hub, trialSeconds)
	adminHandler := NewAdminHandler(adminService, channelService)

	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)
	api.GET("/channels", channelHandler.List)
	api.GET("/channels/:id", channelHandler.Get)
	api.GET("/plans", paymentHandler.ListPlans)
	api.POST("/pay", paymentHandler.Pay)
	api.GET("/subscription/:phone", subscriptionHandler.Status)
	api.GET("/trial/:id", trialHandler.Handle)

	admin := api.Group("/admin")
	admin.Use(middleware.Auth(testJWTSecret))
	admin.POST("/seed", adminHandler.Seed)
	admin.GET("/db", adminHandler.Dump)

	env := &testEnv{
		engine:      engine,
		db:          db,
		hub:         hub,
		entitlement: entitlementService,
		channels:    channelService,
	}
	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return env, cleanup
}

func performRequest(engine *gin.Engine, method, path string, body interface{}, headers ...http.Header) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, h := range headers {
		for k, vs := range h {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("Failed to parse response %q: %v", w.Body.String(), err)
	}
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}
