package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/collegeadmin/internal/app/models"
)

// Entity is embedded by every campus manager: a display name, the kind
// shown in front of it and the manager's logger.
type Entity struct {
	Name   string
	kind   string
	logger zerolog.Logger
}

func newEntity(kind, name string, lgr zerolog.Logger) Entity {
	return Entity{
		Name:   name,
		kind:   kind,
		logger: lgr.With().Str("kind", kind).Str("entity", name).Logger(),
	}
}

// Kind returns the manager kind, e.g. "Club" or "Hostel"
func (e *Entity) Kind() string {
	return e.kind
}

// DisplayInfo returns and logs "<Kind>: <Name>"
func (e *Entity) DisplayInfo() string {
	line := fmt.Sprintf("%s: %s", e.kind, e.Name)
	e.logger.Info().Msg(line)
	return line
}

// report logs the outcome at info level on success and warn otherwise
func (e *Entity) report(o models.Outcome) models.Outcome {
	if o.OK() {
		e.logger.Info().Str("status", string(o.Status)).Msg(o.Message)
	} else {
		e.logger.Warn().Str("status", string(o.Status)).Msg(o.Message)
	}
	return o
}

type releaseKey struct{}

// releaser runs wait with the caller's lock released
type releaser func(wait func() error) error

// withReleaser marks ctx as running under a lock that pause may drop
func withReleaser(ctx context.Context, r releaser) context.Context {
	return context.WithValue(ctx, releaseKey{}, r)
}

// pause waits d or until ctx is done. Zero skips the wait. Under
// Campus.WithLockContext the campus lock is released for the wait.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	if release, ok := ctx.Value(releaseKey{}).(releaser); ok {
		return release(func() error { return sleep(ctx, d) })
	}
	return sleep(ctx, d)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
