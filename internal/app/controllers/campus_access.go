package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/middleware"
	"github.com/yigit/collegeadmin/internal/pkg/websocket"
)

const apiPrefix = "/api/v1/"

// ActivityPublisher receives the outcome of every campus change
type ActivityPublisher interface {
	Publish(event *websocket.Event)
}

// campusAccess runs handler bodies under the campus lock and writes the
// response envelope
type campusAccess struct {
	campus *services.Campus
	feed   ActivityPublisher
}

// mutate runs an operation that reports an outcome
func (a campusAccess) mutate(ctx *gin.Context, fn func() (models.Outcome, interface{}, error)) {
	a.mutateContext(ctx, func(context.Context) (models.Outcome, interface{}, error) {
		return fn()
	})
}

// mutateContext is mutate for operations that take desk delays. Delays
// waited on opCtx do not hold the campus lock.
func (a campusAccess) mutateContext(ctx *gin.Context, fn func(opCtx context.Context) (models.Outcome, interface{}, error)) {
	var (
		outcome models.Outcome
		data    interface{}
	)
	err := a.campus.WithLockContext(ctx.Request.Context(), func(opCtx context.Context) error {
		var err error
		outcome, data, err = fn(opCtx)
		return err
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondOutcome(ctx, outcome, data)
	a.publish(ctx, outcome)
}

func (a campusAccess) publish(ctx *gin.Context, outcome models.Outcome) {
	if a.feed == nil {
		return
	}
	route := ctx.FullPath()
	a.feed.Publish(&websocket.Event{
		Topic:   topicOf(route),
		Route:   route,
		Method:  ctx.Request.Method,
		Status:  string(outcome.Status),
		Message: outcome.Message,
	})
}

// topicOf returns the first path segment after the API prefix
func topicOf(route string) string {
	rest := strings.TrimPrefix(route, apiPrefix)
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" {
		return websocket.TopicAll
	}
	return rest
}

// read runs a lookup and writes its result
func (a campusAccess) read(ctx *gin.Context, fn func() (interface{}, error)) {
	var data interface{}
	err := a.campus.WithLock(func() error {
		var err error
		data, err = fn()
		return err
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(data, ""))
}
