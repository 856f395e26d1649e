package websocket

import (
	"sync"

	"github.com/rs/zerolog"
)

// DefaultHistorySize is how many recent events a Recorder keeps
const DefaultHistorySize = 100

// Recorder keeps the most recent events so late subscribers can catch up
// over plain HTTP
type Recorder struct {
	hub    *Hub
	size   int
	logger zerolog.Logger

	mu     sync.RWMutex
	events []Event
}

// NewRecorder creates a Recorder holding up to size events
func NewRecorder(hub *Hub, size int, logger zerolog.Logger) *Recorder {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &Recorder{hub: hub, size: size, logger: logger}
}

// Start begins recording the hub's events. It returns a function that stops
// recording.
func (r *Recorder) Start() (stop func()) {
	events := make(chan *Event, broadcastBuffer)
	r.hub.AddListener(events)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range events {
			r.record(*event)
		}
	}()

	return func() {
		r.hub.RemoveListener(events)
		close(events)
		<-done
	}
}

func (r *Recorder) record(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
	if overflow := len(r.events) - r.size; overflow > 0 {
		r.events = append(r.events[:0:0], r.events[overflow:]...)
	}
	r.logger.Debug().Str("topic", event.Topic).Str("status", event.Status).Msg("Event recorded")
}

// Recent returns the recorded events of a topic, oldest first. TopicAll
// returns everything.
func (r *Recorder) Recent(topic string) []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []Event{}
	for _, e := range r.events {
		if topic == TopicAll || e.Topic == topic {
			out = append(out, e)
		}
	}
	return out
}
