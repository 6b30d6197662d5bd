package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/swajayfour/swajay_go_server/internal/pkg/response"
	"github.com/swajayfour/swajay_go_server/internal/service"
)

type SubscriptionHandler struct {
	entitlementService *service.EntitlementService
}

func NewSubscriptionHandler(entitlementService *service.EntitlementService) *SubscriptionHandler {
	return &SubscriptionHandler{
		entitlementService: entitlementService,
	}
}

// Status reports whether the phone currently holds an active subscription.
// Evaluated against the clock on every request.
// GET /api/subscription/:phone
func (h *SubscriptionHandler) Status(c *gin.Context) {
	resp, err := h.entitlementService.Status(c.Param("phone"))
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OK(c, resp)
}
