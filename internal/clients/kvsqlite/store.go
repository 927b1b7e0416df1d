package kvsqlite

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"

	// sqlite driver
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

// Store keeps kv values in a local sqlite file.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	// one connection keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	if _, err = db.Exec(schema); err != nil {
		return nil, errors.Wrap(err, "create kv table")
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "kv get")
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	return errors.Wrap(err, "kv set")
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return errors.Wrap(err, "kv delete")
}

func (s *Store) Close() {
	if err := s.db.Close(); err != nil {
		logger.Error("failed to close sqlite", zap.Error(err))
	}
}
