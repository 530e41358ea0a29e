package snapshot

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// PostgresStore keeps snapshots in a single key-value table. It is the
// backend to use when the store core runs server-side and local disk is not
// durable. The persisted contract is identical to FileStore: one opaque
// snapshot blob per key.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresStore creates a PostgreSQL-backed snapshot store and bootstraps
// its table.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) (*PostgresStore, error) {
	schema := `
		CREATE TABLE IF NOT EXISTS snapshots (
			key        VARCHAR(100) PRIMARY KEY,
			data       BYTEA NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`

	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to create snapshots table: %w", err)
	}

	return &PostgresStore{
		pool:   pool,
		logger: logger.With().Str("snapshot", "postgres").Logger(),
	}, nil
}

// Load returns the snapshot stored under key, or (nil, nil) when absent.
func (s *PostgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT data FROM snapshots WHERE key = $1`

	var data []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&data)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to query snapshot")
		return nil, fmt.Errorf("failed to query snapshot %s: %w", key, err)
	}

	return data, nil
}

// Save upserts the snapshot stored under key.
func (s *PostgresStore) Save(ctx context.Context, key string, data []byte) error {
	query := `
		INSERT INTO snapshots (key, data, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE
		SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`

	if _, err := s.pool.Exec(ctx, query, key, data); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to write snapshot")
		return fmt.Errorf("failed to write snapshot %s: %w", key, err)
	}

	s.logger.Debug().Str("key", key).Int("bytes", len(data)).Msg("snapshot written")

	return nil
}

// Delete removes the snapshot stored under key if present.
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM snapshots WHERE key = $1`, key); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to delete snapshot")
		return fmt.Errorf("failed to delete snapshot %s: %w", key, err)
	}

	return nil
}
