package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 4096

	clientQueueSize    = 64
	broadcastQueueSize = 256
)

// wireMessage формат сообщения на websocket соединении
type wireMessage struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// clientMessage входящее сообщение клиента: {"event": "subscribe-zone", "data": "<zoneId>"}
type clientMessage struct {
	Event string `json:"event"`
	Data  string `json:"data"`
}

type client struct {
	conn  *websocket.Conn
	send  chan []byte
	rooms map[string]struct{}
}

type roomMessage struct {
	room    string
	payload []byte
}

type subscription struct {
	client *client
	room   string
	join   bool
}

// Hub websocket рассылка по комнатам
// Каждый клиент при подключении попадает в общую комнату parking-updates
// и может подписаться на комнаты зон сообщениями subscribe-zone / unsubscribe-zone.
// Состояние комнат меняется только в горутине Run.
type Hub struct {
	upgrader websocket.Upgrader
	logger   Logger

	clients map[*client]struct{}
	rooms   map[string]map[*client]struct{}

	register      chan *client
	unregister    chan *client
	subscriptions chan subscription
	broadcast     chan roomMessage
	done          chan struct{}
}

// NewHub создает hub. Для обработки сообщений нужно запустить Run
func NewHub(logger Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger:        logger,
		clients:       make(map[*client]struct{}),
		rooms:         make(map[string]map[*client]struct{}),
		register:      make(chan *client),
		unregister:    make(chan *client),
		subscriptions: make(chan subscription),
		broadcast:     make(chan roomMessage, broadcastQueueSize),
		done:          make(chan struct{}),
	}
}

// Name имя канала для метрик и логов
func (h *Hub) Name() string {
	return "websocket"
}

// Run обслуживает подключения до отмены ctx
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			h.logger.Info("WebSocket hub stopped")
			return

		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.join(c, domain.GlobalRoom)
			h.logger.Info("WebSocket client connected: total=%d", len(h.clients))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
				h.logger.Info("WebSocket client disconnected: total=%d", len(h.clients))
			}

		case sub := <-h.subscriptions:
			if _, ok := h.clients[sub.client]; !ok {
				continue
			}
			event := EventSubscribed
			if sub.join {
				h.join(sub.client, sub.room)
			} else {
				h.leave(sub.client, sub.room)
				event = EventUnsubscribed
			}
			if payload, err := json.Marshal(wireMessage{Event: event, Data: sub.room}); err == nil {
				h.deliver(sub.client, payload)
			}

		case msg := <-h.broadcast:
			for c := range h.rooms[msg.room] {
				h.deliver(c, msg.payload)
			}
		}
	}
}

// Publish ставит сообщение в очередь рассылки комнаты
// Не блокируется: при переполненной очереди сообщение отбрасывается
func (h *Hub) Publish(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(wireMessage{Event: msg.Event, Data: msg.Data})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, msg.Event, err)
	}

	select {
	case <-h.done:
		return ErrHubClosed
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case h.broadcast <- roomMessage{room: msg.Room, payload: payload}:
		return nil
	default:
		return ErrHubBusy
	}
}

// ServeHTTP переводит соединение на websocket и регистрирует клиента
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("WebSocket: failed to upgrade connection: %v", err)
		return
	}

	c := &client{
		conn:  conn,
		send:  make(chan []byte, clientQueueSize),
		rooms: make(map[string]struct{}),
	}

	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go h.writePump(c)
	go h.readPump(c)
}

func (h *Hub) join(c *client, room string) {
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*client]struct{})
		h.rooms[room] = members
	}
	members[c] = struct{}{}
	c.rooms[room] = struct{}{}
}

func (h *Hub) leave(c *client, room string) {
	if members, ok := h.rooms[room]; ok {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(c.rooms, room)
}

// deliver отключает клиента, который не успевает читать
func (h *Hub) deliver(c *client, payload []byte) {
	select {
	case c.send <- payload:
	default:
		h.logger.Warn("WebSocket: client queue is full, dropping connection")
		h.drop(c)
	}
}

func (h *Hub) drop(c *client) {
	for room := range c.rooms {
		h.leave(c, room)
	}
	delete(h.clients, c)
	close(c.send)
}

func (h *Hub) readPump(c *client) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("WebSocket: read error: %v", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil || msg.Data == "" {
			h.logger.Warn("WebSocket: ignoring malformed client message")
			continue
		}

		var sub subscription
		switch msg.Event {
		case EventSubscribeZone:
			sub = subscription{client: c, room: domain.ZoneRoom(msg.Data), join: true}
		case EventUnsubscribeZone:
			sub = subscription{client: c, room: domain.ZoneRoom(msg.Data)}
		default:
			h.logger.Warn("WebSocket: unknown client event %q", msg.Event)
			continue
		}

		select {
		case h.subscriptions <- sub:
		case <-h.done:
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
