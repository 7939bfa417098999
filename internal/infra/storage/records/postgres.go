package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

const collectionsTable = "parking_collections"

const collectionsSchema = `
CREATE TABLE IF NOT EXISTS parking_collections (
    name text PRIMARY KEY,
    payload jsonb NOT NULL,
    updated_at timestamptz NOT NULL DEFAULT NOW()
);
`

// PostgresBackend хранит каждую коллекцию одной строкой JSONB
// Соединение принадлежит вызывающему коду, Close его не закрывает.
type PostgresBackend struct {
	db *sql.DB
}

// NewPostgresBackend создает новый экземпляр backend поверх *sql.DB
func NewPostgresBackend(db *sql.DB) *PostgresBackend {
	return &PostgresBackend{db: db}
}

// EnsureSchema создает таблицу коллекций, если её нет
func (b *PostgresBackend) EnsureSchema(ctx context.Context) error {
	if _, err := b.db.ExecContext(ctx, collectionsSchema); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// Load читает документ коллекции
func (b *PostgresBackend) Load(ctx context.Context, name string) ([]byte, error) {
	query, args, err := psqlbuilder.Select("payload").
		From(collectionsTable).
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var payload []byte
	err = b.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - scan payload: %v", ErrExecQuery, err)
	}

	return payload, nil
}

// Save записывает документы в одной транзакции (upsert по имени коллекции)
func (b *PostgresBackend) Save(ctx context.Context, docs map[string][]byte) (err error) {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: Save - begin: %v", ErrTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for name, doc := range docs {
		query, args, buildErr := psqlbuilder.Insert(collectionsTable).
			Columns("name", "payload", "updated_at").
			Values(name, string(doc), squirrel.Expr("NOW()")).
			Suffix("ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at").
			ToSql()
		if buildErr != nil {
			return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, buildErr)
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			return fmt.Errorf("%w: Save - upsert %s: %v", ErrExecQuery, name, execErr)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: Save - commit: %v", ErrTransaction, err)
	}

	return nil
}

// Close ничего не делает: *sql.DB закрывает владелец
func (b *PostgresBackend) Close() error {
	return nil
}
