package notify

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()

	hub := NewHub(logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readWire(t *testing.T, conn *websocket.Conn) map[string]json.RawMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func subscribe(t *testing.T, conn *websocket.Conn, zoneID string) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(clientMessage{Event: EventSubscribeZone, Data: zoneID}))
	ack := readWire(t, conn)
	assert.JSONEq(t, `"subscribed"`, string(ack["event"]))
	assert.JSONEq(t, `"zone-`+zoneID+`"`, string(ack["data"]))
}

func TestHub_DeliversToZoneSubscribers(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)
	subscribe(t, conn, "Z1")

	slot := domain.Slot{ID: "S1", ZoneID: "Z1", Status: domain.SlotReserved}
	err := hub.Publish(context.Background(), Message{
		Room:  domain.ZoneRoom("Z1"),
		Event: EventSlotUpdate,
		Data:  domain.NewSlotEvent(slot, time.Now()),
	})
	require.NoError(t, err)

	msg := readWire(t, conn)
	assert.JSONEq(t, `"slot-update"`, string(msg["event"]))

	var ev domain.SlotEvent
	require.NoError(t, json.Unmarshal(msg["data"], &ev))
	assert.Equal(t, "S1", ev.Slot.ID)
	assert.Equal(t, "Z1", ev.ZoneID)
}

func TestHub_GlobalRoomOnConnect(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)
	// Подписка гарантирует, что регистрация клиента уже обработана
	subscribe(t, conn, "Z9")

	err := hub.Publish(context.Background(), Message{
		Room:  domain.GlobalRoom,
		Event: EventCapacityAlert,
		Data:  map[string]string{"zoneId": "Z1"},
	})
	require.NoError(t, err)

	msg := readWire(t, conn)
	assert.JSONEq(t, `"capacity-alert"`, string(msg["event"]))
}

func TestHub_UnsubscribedClientSkipsZone(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)
	subscribe(t, conn, "Z1")

	require.NoError(t, conn.WriteJSON(clientMessage{Event: EventUnsubscribeZone, Data: "Z1"}))
	ack := readWire(t, conn)
	assert.JSONEq(t, `"unsubscribed"`, string(ack["event"]))

	require.NoError(t, hub.Publish(context.Background(), Message{Room: "zone-Z1", Event: EventSlotUpdate, Data: "x"}))
	require.NoError(t, hub.Publish(context.Background(), Message{Room: domain.GlobalRoom, Event: EventCapacityAlert, Data: "y"}))

	msg := readWire(t, conn)
	assert.JSONEq(t, `"capacity-alert"`, string(msg["event"]))
}

func TestHub_PublishAfterStop(t *testing.T) {
	hub := NewHub(logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	err := hub.Publish(context.Background(), Message{Room: domain.GlobalRoom, Event: EventCapacityAlert})
	assert.ErrorIs(t, err, ErrHubClosed)
}
