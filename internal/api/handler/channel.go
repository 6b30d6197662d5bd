package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/swajayfour/swajay_go_server/internal/pkg/response"
	"github.com/swajayfour/swajay_go_server/internal/service"
)

type ChannelHandler struct {
	channelService *service.ChannelService
}

func NewChannelHandler(channelService *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{
		channelService: channelService,
	}
}

// List returns all channels.
// GET /api/channels
func (h *ChannelHandler) List(c *gin.Context) {
	channels, err := h.channelService.List(c.Request.Context())
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OK(c, channels)
}

// Get returns one channel.
// GET /api/channels/:id
func (h *ChannelHandler) Get(c *gin.Context) {
	channel, err := h.channelService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrChannelNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.OK(c, channel)
}
