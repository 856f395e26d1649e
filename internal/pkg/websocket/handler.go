package websocket

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler upgrades activity feed subscriptions
type Handler struct {
	hub    *Hub
	logger zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, logger zerolog.Logger) *Handler {
	return &Handler{hub: hub, logger: logger}
}

// HandleConnection subscribes the caller to campus events
// @Summary Subscribe to the campus activity feed
// @Description Upgrades to a WebSocket that streams the outcome of every campus change
// @Tags activity
// @Param topic query string false "Campus area such as library or hostels; all by default"
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Router /activity/ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	topic := strings.ToLower(strings.TrimSpace(c.DefaultQuery("topic", TopicAll)))
	if topic == "" {
		topic = TopicAll
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().Err(err).Str("topic", topic).Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:    h.hub,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		topic:  topic,
		logger: h.logger,
	}
	if !h.hub.subscribe(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
