package records

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Store адаптер хранилища: чтение и полная замена коллекций zones, slots, sessions
//
// Все изменения слотов и сессий сериализуются одним мьютексом:
// Update держит его на запись на весь цикл read-modify-write,
// чтения держат его на чтение, поэтому видят согласованный снимок.
// Зоны только читаются ядром и защищены отдельной блокировкой.
type Store struct {
	backend  Backend
	observer Observer

	zonesMu sync.RWMutex
	mu      sync.RWMutex
}

// NewStore создает новый экземпляр хранилища
// observer может быть nil
func NewStore(backend Backend, observer Observer) *Store {
	return &Store{
		backend:  backend,
		observer: observer,
	}
}

// Close закрывает backend
func (s *Store) Close() error {
	return s.backend.Close()
}

// Zones возвращает всю коллекцию зон
func (s *Store) Zones(ctx context.Context) ([]domain.Zone, error) {
	s.zonesMu.RLock()
	defer s.zonesMu.RUnlock()

	return loadCollection[domain.Zone](ctx, s, CollectionZones)
}

// ReplaceZones полностью заменяет коллекцию зон
func (s *Store) ReplaceZones(ctx context.Context, zones []domain.Zone) error {
	s.zonesMu.Lock()
	defer s.zonesMu.Unlock()

	return s.save(ctx, map[string]any{CollectionZones: zones})
}

// Slots возвращает всю коллекцию слотов
func (s *Store) Slots(ctx context.Context) ([]domain.Slot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return loadCollection[domain.Slot](ctx, s, CollectionSlots)
}

// ReplaceSlots полностью заменяет коллекцию слотов
func (s *Store) ReplaceSlots(ctx context.Context, slots []domain.Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(ctx, map[string]any{CollectionSlots: slots})
}

// Sessions возвращает всю коллекцию сессий
func (s *Store) Sessions(ctx context.Context) ([]domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return loadCollection[domain.Session](ctx, s, CollectionSessions)
}

// ReplaceSessions полностью заменяет коллекцию сессий
func (s *Store) ReplaceSessions(ctx context.Context, sessions []domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(ctx, map[string]any{CollectionSessions: sessions})
}

// Snapshot читает слоты и сессии под одной блокировкой
func (s *Store) Snapshot(ctx context.Context) ([]domain.Slot, []domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slots, err := loadCollection[domain.Slot](ctx, s, CollectionSlots)
	if err != nil {
		return nil, nil, err
	}
	sessions, err := loadCollection[domain.Session](ctx, s, CollectionSessions)
	if err != nil {
		return nil, nil, err
	}
	return slots, sessions, nil
}

// Update выполняет read-modify-write над слотами и сессиями
// Коллекции читаются один раз, fn меняет их через Tx.
// Если fn вернула ошибку, ничего не записывается.
// Изменённые коллекции записываются одним атомарным Save.
func (s *Store) Update(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots, err := loadCollection[domain.Slot](ctx, s, CollectionSlots)
	if err != nil {
		return err
	}
	sessions, err := loadCollection[domain.Session](ctx, s, CollectionSessions)
	if err != nil {
		return err
	}

	tx := &Tx{slots: slots, sessions: sessions}
	if err := fn(tx); err != nil {
		return err
	}

	docs := make(map[string]any, 2)
	if tx.slotsDirty {
		docs[CollectionSlots] = tx.slots
	}
	if tx.sessionsDirty {
		docs[CollectionSessions] = tx.sessions
	}
	if len(docs) == 0 {
		return nil
	}

	return s.save(ctx, docs)
}

// IsEmpty returns true if no zones and no slots are stored yet
func (s *Store) IsEmpty(ctx context.Context) (bool, error) {
	zones, err := s.Zones(ctx)
	if err != nil {
		return false, err
	}
	slots, err := s.Slots(ctx)
	if err != nil {
		return false, err
	}
	return len(zones) == 0 && len(slots) == 0, nil
}

// Import записывает снимок всех трёх коллекций одной атомарной операцией
func (s *Store) Import(ctx context.Context, snapshot Snapshot) error {
	s.zonesMu.Lock()
	defer s.zonesMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(ctx, map[string]any{
		CollectionZones:    nonNil(snapshot.Zones),
		CollectionSlots:    nonNil(snapshot.Slots),
		CollectionSessions: nonNil(snapshot.Sessions),
	})
}

func (s *Store) save(ctx context.Context, collections map[string]any) error {
	docs := make(map[string][]byte, len(collections))
	for name, items := range collections {
		data, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrEncode, name, err)
		}
		docs[name] = data
	}

	start := time.Now()
	err := s.backend.Save(ctx, docs)
	for name := range docs {
		s.observe("save", name, start, err)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}

	return nil
}

func (s *Store) observe(operation, collection string, start time.Time, err error) {
	if s.observer == nil {
		return
	}
	s.observer.ObserveStoreOperation(operation, collection, time.Since(start), err)
}

// loadCollection читает и декодирует коллекцию, отсутствующий документ - пустая коллекция
func loadCollection[T any](ctx context.Context, s *Store, name string) ([]T, error) {
	start := time.Now()
	data, err := s.backend.Load(ctx, name)
	s.observe("load", name, start, err)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, name, err)
	}

	items := make([]T, 0)
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, name, err)
	}
	if items == nil {
		items = make([]T, 0)
	}

	return items, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return make([]T, 0)
	}
	return items
}
