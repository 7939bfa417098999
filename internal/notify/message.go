package notify

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// События, которые получают подписчики
const (
	EventSessionUpdate     = "session-update"
	EventSlotUpdate        = "slot-update"
	EventZoneCapacityAlert = "zone-capacity-alert"
	EventCapacityAlert     = "capacity-alert"

	// Сообщения клиента websocket
	EventSubscribeZone   = "subscribe-zone"
	EventUnsubscribeZone = "unsubscribe-zone"
	EventSubscribed      = "subscribed"
	EventUnsubscribed    = "unsubscribed"
)

// Message адресованное комнате событие
type Message struct {
	Room  string `json:"room"`
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// sessionMessages уведомление о сессии уходит только в комнату её зоны
func sessionMessages(ev domain.SessionEvent) []Message {
	if ev.ZoneID == "" {
		return nil
	}
	return []Message{{
		Room:  domain.ZoneRoom(ev.ZoneID),
		Event: EventSessionUpdate,
		Data:  ev,
	}}
}

func slotMessages(ev domain.SlotEvent) []Message {
	return []Message{{
		Room:  domain.ZoneRoom(ev.ZoneID),
		Event: EventSlotUpdate,
		Data:  ev,
	}}
}

// capacityMessages подписчики зоны получают развёрнутое сообщение, общая комната - краткое
func capacityMessages(alert domain.CapacityAlert) []Message {
	global := alert
	global.Message = alert.GlobalMessage()

	return []Message{
		{
			Room:  domain.ZoneRoom(alert.ZoneID),
			Event: EventZoneCapacityAlert,
			Data:  alert,
		},
		{
			Room:  domain.GlobalRoom,
			Event: EventCapacityAlert,
			Data:  global,
		},
	}
}
