package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-hub.done
	})
	return hub
}

func TestRecorder_KeepsRecentEvents(t *testing.T) {
	hub := startHub(t)
	rec := NewRecorder(hub, 2, zerolog.Nop())
	stop := rec.Start()
	defer stop()

	hub.Publish(&Event{Topic: "library", Status: "OK", Message: "first"})
	hub.Publish(&Event{Topic: "hostels", Status: "OK", Message: "second"})
	hub.Publish(&Event{Topic: "library", Status: "CREATED", Message: "third"})

	assert.Eventually(t, func() bool {
		return len(rec.Recent(TopicAll)) == 2
	}, time.Second, 10*time.Millisecond)

	all := rec.Recent(TopicAll)
	assert.Equal(t, "second", all[0].Message)
	assert.Equal(t, "third", all[1].Message)
	assert.False(t, all[0].Timestamp.IsZero())

	library := rec.Recent("library")
	require.Len(t, library, 1)
	assert.Equal(t, "third", library[0].Message)
	assert.Empty(t, rec.Recent("canteens"))
}

func TestRecorder_StopDetaches(t *testing.T) {
	hub := startHub(t)
	rec := NewRecorder(hub, 0, zerolog.Nop())
	assert.Equal(t, DefaultHistorySize, rec.size)

	stop := rec.Start()
	stop()

	hub.Publish(&Event{Topic: "library", Message: "ignored"})
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, rec.Recent(TopicAll))
}

func TestHandler_StreamsTopicEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := startHub(t)

	router := gin.New()
	router.GET("/ws", NewHandler(hub, zerolog.Nop()).HandleConnection)
	srv := httptest.NewServer(router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?topic=library"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return hub.ClientsCount("library") == 1
	}, time.Second, 10*time.Millisecond)

	hub.Publish(&Event{Topic: "hostels", Message: "not for us"})
	hub.Publish(&Event{Topic: "library", Route: "/api/v1/library/issue", Method: "POST", Status: "OK", Message: "Book issued"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "library", event.Topic)
	assert.Equal(t, "Book issued", event.Message)
}

func TestHub_RunClosesClientsOnShutdown(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	client := &Client{hub: hub, send: make(chan []byte, 1), topic: TopicAll, logger: zerolog.Nop()}
	require.True(t, hub.subscribe(client))
	require.Eventually(t, func() bool {
		return hub.ClientsCount(TopicAll) == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-hub.done

	_, open := <-client.send
	assert.False(t, open)
	assert.False(t, hub.subscribe(client))
}
