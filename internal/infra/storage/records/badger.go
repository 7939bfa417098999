package records

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
)

const badgerKeyPrefix = "collection:"

// BadgerBackend хранит документы коллекций во встроенной базе badger
// Каждая коллекция - один ключ, Save выполняется в одной транзакции badger.
type BadgerBackend struct {
	db *badger.DB
}

// OpenBadger открывает базу badger в каталоге path
// Пустой path открывает базу в памяти.
func OpenBadger(path string) (*BadgerBackend, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &BadgerBackend{db: db}, nil
}

// Load читает документ коллекции
func (b *BadgerBackend) Load(_ context.Context, name string) ([]byte, error) {
	var data []byte

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(name))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}

		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

// Save записывает все документы в одной транзакции
func (b *BadgerBackend) Save(_ context.Context, docs map[string][]byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		for name, doc := range docs {
			if err := txn.Set(badgerKey(name), doc); err != nil {
				return err
			}
		}
		return nil
	})
}

// Close закрывает базу badger
func (b *BadgerBackend) Close() error {
	return b.db.Close()
}

func badgerKey(name string) []byte {
	return []byte(badgerKeyPrefix + name)
}
