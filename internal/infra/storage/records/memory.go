package records

import (
	"context"
	"slices"
	"sync"
)

// MemoryBackend хранит документы в памяти процесса (тесты и локальный запуск)
type MemoryBackend struct {
	mu   sync.Mutex
	docs map[string][]byte
}

// NewMemoryBackend создает пустой backend в памяти
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{docs: make(map[string][]byte)}
}

// Load возвращает копию документа коллекции
func (b *MemoryBackend) Load(_ context.Context, name string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Clone(b.docs[name]), nil
}

// Save записывает документы под одной блокировкой
func (b *MemoryBackend) Save(_ context.Context, docs map[string][]byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for name, doc := range docs {
		b.docs[name] = slices.Clone(doc)
	}
	return nil
}

// Close ничего не делает
func (b *MemoryBackend) Close() error {
	return nil
}
