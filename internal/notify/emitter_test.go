package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v4"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type capturePublisher struct {
	name string
	err  error

	mu       sync.Mutex
	messages []Message
}

func (p *capturePublisher) Name() string { return p.name }

func (p *capturePublisher) Publish(_ context.Context, msg Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return p.err
}

type countingObserver struct {
	results map[string]int
}

func (o *countingObserver) ObserveNotification(channel, event string, err error) {
	key := channel + "/" + event
	if err != nil {
		key += "/error"
	}
	o.results[key]++
}

func TestEmitter_ZoneCapacityAlertRoutesToBothRooms(t *testing.T) {
	pub := &capturePublisher{name: "capture"}
	emitter := NewEmitter(logger.NewNop(), nil, pub)

	alert, ok := domain.NewCapacityAlert("Z1", 90, time.Now())
	require.True(t, ok)

	emitter.ZoneCapacityAlert(context.Background(), alert)

	require.Len(t, pub.messages, 2)
	assert.Equal(t, "zone-Z1", pub.messages[0].Room)
	assert.Equal(t, EventZoneCapacityAlert, pub.messages[0].Event)
	assert.Equal(t, "Zone Z1 is 90% full. Consider alternative zones.",
		pub.messages[0].Data.(domain.CapacityAlert).Message)

	assert.Equal(t, domain.GlobalRoom, pub.messages[1].Room)
	assert.Equal(t, EventCapacityAlert, pub.messages[1].Event)
	global := pub.messages[1].Data.(domain.CapacityAlert)
	assert.Equal(t, "Zone Z1 is 90% full.", global.Message)
	assert.Equal(t, domain.SeverityHigh, global.Severity)
}

func TestEmitter_SessionWithoutZoneIsNotSent(t *testing.T) {
	pub := &capturePublisher{name: "capture"}
	emitter := NewEmitter(logger.NewNop(), nil, pub)

	emitter.SessionUpdate(context.Background(), domain.NewSessionEvent(domain.Session{ID: "S"}, time.Now()))
	assert.Empty(t, pub.messages)

	session := domain.Session{ID: "S", ZoneID: null.StringFrom("Z2")}
	emitter.SessionUpdate(context.Background(), domain.NewSessionEvent(session, time.Now()))
	require.Len(t, pub.messages, 1)
	assert.Equal(t, "zone-Z2", pub.messages[0].Room)
	assert.Equal(t, EventSessionUpdate, pub.messages[0].Event)
}

func TestEmitter_PublisherErrorDoesNotStopFanout(t *testing.T) {
	failing := &capturePublisher{name: "failing", err: errors.New("down")}
	healthy := &capturePublisher{name: "healthy"}
	observer := &countingObserver{results: map[string]int{}}
	emitter := NewEmitter(logger.NewNop(), observer, failing, healthy)

	slot := domain.Slot{ID: "S1", ZoneID: "Z1", Status: domain.SlotOccupied}
	emitter.SlotUpdate(context.Background(), domain.NewSlotEvent(slot, time.Now()))

	assert.Len(t, failing.messages, 1)
	require.Len(t, healthy.messages, 1)
	assert.Equal(t, EventSlotUpdate, healthy.messages[0].Event)
	assert.Equal(t, 1, observer.results["failing/slot-update/error"])
	assert.Equal(t, 1, observer.results["healthy/slot-update"])
}
