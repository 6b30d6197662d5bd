package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/swajayfour/swajay_go_server/internal/model/dto"
	"github.com/swajayfour/swajay_go_server/internal/pkg/response"
	"github.com/swajayfour/swajay_go_server/internal/service"
)

type AdminHandler struct {
	adminService   *service.AdminService
	channelService *service.ChannelService
}

func NewAdminHandler(adminService *service.AdminService, channelService *service.ChannelService) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		channelService: channelService,
	}
}

// Seed replaces the channel set. An empty list keeps the current one.
// POST /api/admin/seed
func (h *AdminHandler) Seed(c *gin.Context) {
	var req dto.SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid seed payload")
		return
	}

	count, err := h.channelService.Seed(c.Request.Context(), req.Channels)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OK(c, dto.SeedResponse{OK: true, Count: count})
}

// Dump returns the full store.
// GET /api/admin/db
func (h *AdminHandler) Dump(c *gin.Context) {
	dump, err := h.adminService.Dump()
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OK(c, dump)
}
