//go:build unit

package realtime_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marketplace-api/internal/infra/realtime"
	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*realtime.Hub, string) {
	t.Helper()

	hub := realtime.NewHub(config.NewTestConfig().Realtime)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		roomID := uuid.MustParse(r.URL.Query().Get("room"))
		_ = hub.Serve(w, r, shared.ChatRoomTopic(roomID), uuid.New())
	}))
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_PublishReachesTopicSubscribers(t *testing.T) {
	hub, base := startHub(t)
	roomID := uuid.New()
	otherRoom := uuid.New()
	topic := shared.ChatRoomTopic(roomID)

	subscriber := dial(t, base+"?room="+roomID.String())
	bystander := dial(t, base+"?room="+otherRoom.String())

	require.Eventually(t, func() bool {
		return hub.SubscriberCount(topic) == 1 && hub.SubscriberCount(shared.ChatRoomTopic(otherRoom)) == 1
	}, 2*time.Second, 10*time.Millisecond)

	sentAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	hub.Publish(topic, shared.Event{
		Type:   shared.EventNewMessage,
		RoomID: roomID,
		Payload: shared.MessagePayload{
			ID:        uuid.New(),
			SenderID:  uuid.New(),
			Message:   "is this still available?",
			CreatedAt: sentAt,
		},
		OccurredAt: sentAt,
	})

	require.NoError(t, subscriber.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := subscriber.ReadMessage()
	require.NoError(t, err)

	var got struct {
		Type    string `json:"type"`
		RoomID  string `json:"room_id"`
		Payload struct {
			Message string `json:"message"`
		} `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, string(shared.EventNewMessage), got.Type)
	assert.Equal(t, roomID.String(), got.RoomID)
	assert.Equal(t, "is this still available?", got.Payload.Message)

	require.NoError(t, bystander.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err = bystander.ReadMessage()
	assert.Error(t, err, "other rooms must not receive the event")
}

func TestHub_UnsubscribesOnClose(t *testing.T) {
	hub, base := startHub(t)
	roomID := uuid.New()
	topic := shared.ChatRoomTopic(roomID)

	conn := dial(t, base+"?room="+roomID.String())
	require.Eventually(t, func() bool { return hub.SubscriberCount(topic) == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	_ = conn.Close()

	require.Eventually(t, func() bool { return hub.SubscriberCount(topic) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_PublishWithoutSubscribersIsNoop(t *testing.T) {
	hub, _ := startHub(t)

	assert.NotPanics(t, func() {
		hub.Publish(shared.ChatRoomTopic(uuid.New()), shared.Event{Type: shared.EventSaleConfirmed})
	})
}
