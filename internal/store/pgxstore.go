package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const stateKey = "boolen"

// PgxStore keeps the document as a single JSONB row so the read-modify-write
// cycle can ride a row lock: Update runs SELECT ... FOR UPDATE inside a
// transaction, serializing concurrent writers exactly like the file mutex.
type PgxStore struct {
	pool *pgxpool.Pool
}

// NewPgxStore bootstraps the state table and seeds an empty document if
// none exists.
func NewPgxStore(ctx context.Context, pool *pgxpool.Pool) (*PgxStore, error) {
	s := &PgxStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PgxStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS app_state (
			name TEXT PRIMARY KEY,
			data JSONB NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("%w: create schema: %v", ErrUnavailable, err)
	}

	doc := &Document{}
	doc.seedDefaults()
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: encode seed: %v", ErrUnavailable, err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO app_state (name, data) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
		stateKey, data)
	if err != nil {
		return fmt.Errorf("%w: seed: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *PgxStore) View(ctx context.Context, fn func(doc *Document) error) error {
	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM app_state WHERE name = $1`, stateKey).Scan(&data)
	if err != nil {
		return fmt.Errorf("%w: read: %v", ErrUnavailable, err)
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	doc.seedDefaults()
	return fn(doc)
}

func (s *PgxStore) Update(ctx context.Context, fn func(doc *Document) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin tx: %v", ErrUnavailable, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var data []byte
	err = tx.QueryRow(ctx, `SELECT data FROM app_state WHERE name = $1 FOR UPDATE`, stateKey).Scan(&data)
	if err != nil {
		return fmt.Errorf("%w: read: %v", ErrUnavailable, err)
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	doc.seedDefaults()

	if err := fn(doc); err != nil {
		return err
	}

	next, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrUnavailable, err)
	}
	if _, err := tx.Exec(ctx, `UPDATE app_state SET data = $2 WHERE name = $1`, stateKey, next); err != nil {
		return fmt.Errorf("%w: write: %v", ErrUnavailable, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrUnavailable, err)
	}
	return nil
}
