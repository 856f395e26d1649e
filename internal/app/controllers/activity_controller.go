package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/pkg/websocket"
)

// ActivityController serves the campus activity feed
type ActivityController struct {
	recorder *websocket.Recorder
	stream   *websocket.Handler
}

// NewActivityController creates a new ActivityController
func NewActivityController(recorder *websocket.Recorder, stream *websocket.Handler) *ActivityController {
	return &ActivityController{recorder: recorder, stream: stream}
}

// GetRecent returns the latest campus events
// @Summary Recent campus activity
// @Tags activity
// @Produce json
// @Param topic query string false "Campus area such as library or hostels; all by default"
// @Success 200 {object} dto.APIResponse{data=[]websocket.Event}
// @Router /activity [get]
func (c *ActivityController) GetRecent(ctx *gin.Context) {
	topic := strings.ToLower(strings.TrimSpace(ctx.DefaultQuery("topic", websocket.TopicAll)))
	if topic == "" {
		topic = websocket.TopicAll
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.recorder.Recent(topic), ""))
}

// Subscribe upgrades the request to a WebSocket stream
func (c *ActivityController) Subscribe(ctx *gin.Context) {
	c.stream.HandleConnection(ctx)
}
