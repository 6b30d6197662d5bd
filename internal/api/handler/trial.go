package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/swajayfour/swajay_go_server/internal/pkg/response"
	"github.com/swajayfour/swajay_go_server/internal/pkg/ws"
	"github.com/swajayfour/swajay_go_server/internal/service"
	"github.com/swajayfour/swajay_go_server/internal/trial"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict Origin once the frontend domain is fixed
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// PaywallRedirect is where an expired trial sends the viewer.
const PaywallRedirect = "/malipo.html"

type TrialHandler struct {
	channelService *service.ChannelService
	hub            *ws.Hub
	duration       int
}

func NewTrialHandler(channelService *service.ChannelService, hub *ws.Hub, durationSeconds int) *TrialHandler {
	return &TrialHandler{
		channelService: channelService,
		hub:            hub,
		duration:       durationSeconds,
	}
}

// Handle opens an anonymous trial playback stream for one channel: a tick per
// second until the countdown expires into the paywall prompt. Closing the
// socket ends the trial with no further transitions.
// GET /api/trial/:id (websocket)
func (h *TrialHandler) Handle(c *gin.Context) {
	channel, err := h.channelService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrChannelNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade trial connection: %v", err)
		return
	}

	client := &ws.Client{
		ChannelID: channel.ID,
		Conn:      conn,
	}
	h.hub.Register(client)

	session := trial.NewSession(channel.ID, channel.Name, h.duration)
	done := make(chan struct{})

	// The read loop exists to detect the viewer closing the surface.
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	go h.runCountdown(client, session, done)
}

func (h *TrialHandler) runCountdown(client *ws.Client, session *trial.Session, done <-chan struct{}) {
	defer func() {
		session.Stop()
		h.hub.Unregister(client)
		client.Conn.Close()
	}()

	start := &ws.Message{
		Type: "start",
		Data: gin.H{
			"channel_id":   session.ChannelID,
			"channel_name": session.ChannelName,
			"remaining":    session.Remaining(),
		},
	}
	if err := client.Send(start); err != nil {
		return
	}

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			// Viewer closed the surface; the session simply ends.
			return
		case <-ticker.C:
			tick, ok := session.Advance()
			if !ok {
				return
			}

			if err := client.Send(&ws.Message{Type: "tick", Data: tick}); err != nil {
				return
			}

			if tick.Expired {
				expired := &ws.Message{
					Type: "expired",
					Data: gin.H{
						"message":  "Trial imeisha. Tafadhali lipia kukamilisha muendelezo.",
						"redirect": PaywallRedirect,
					},
				}
				if err := client.Send(expired); err != nil {
					return
				}
				return
			}
		}
	}
}
