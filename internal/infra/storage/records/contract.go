package records

import (
	"context"
	"time"
)

// Имена коллекций (совпадают с ключами документа realtime_db.json)
const (
	CollectionZones    = "parking_zones"
	CollectionSlots    = "parking_slots"
	CollectionSessions = "parking_sessions"
)

// Backend хранилище документов коллекций
// Load возвращает nil, nil, если документа нет.
// Save записывает все переданные документы атомарно: либо все, либо ни одного.
type Backend interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, docs map[string][]byte) error
	Close() error
}

// Observer получает длительность операций хранилища (метрики)
type Observer interface {
	ObserveStoreOperation(operation, collection string, duration time.Duration, err error)
}
