package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wgopar/usd-conversions-agent/internal/domain"
)

const maxListLimit = 500

type AttemptRepository struct {
	pool *pgxpool.Pool
}

// SaveAttempts stores one fetch's provider attempts in a single statement.
func (r *AttemptRepository) SaveAttempts(ctx context.Context, attempts []domain.ProviderAttempt) error {
	if len(attempts) == 0 {
		return nil
	}

	payloadJSON, err := json.Marshal(attempts)
	if err != nil {
		return fmt.Errorf("failed to marshal provider attempts: %w", err)
	}

	const q = `
		insert into provider_attempts (id, fetch_id, provider, position, outcome, error, duration_ms, started_at)
		select r.id, r.fetch_id, r.provider, r.position, r.outcome, coalesce(r.error, ''), r.duration_ms, r.started_at
		from json_to_recordset($1::json) as r(
		  id uuid, fetch_id uuid, provider text, position smallint, outcome text,
		  error text, duration_ms bigint, started_at timestamptz
		)
		on conflict (id) do nothing;
	`

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, q, json.RawMessage(payloadJSON)); err != nil {
		return fmt.Errorf("failed to insert provider attempts: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListRecent returns the newest attempts first. limit is clamped to [1, 500].
func (r *AttemptRepository) ListRecent(ctx context.Context, limit int) ([]domain.ProviderAttempt, error) {
	if limit <= 0 {
		limit = 1
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	const q = `
		select id, fetch_id, provider, position, outcome, error, duration_ms, started_at
		from provider_attempts
		order by started_at desc, position desc
		limit $1;
	`

	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query provider attempts: %w", err)
	}
	defer rows.Close()

	attempts := make([]domain.ProviderAttempt, 0, limit)
	for rows.Next() {
		var a domain.ProviderAttempt
		var outcome string
		if err = rows.Scan(&a.ID, &a.FetchID, &a.Provider, &a.Position, &outcome, &a.Error, &a.ElapsedMS, &a.StartedAt); err != nil {
			return nil, fmt.Errorf("failed to scan provider attempt: %w", err)
		}
		a.Outcome = domain.AttemptOutcome(outcome)
		attempts = append(attempts, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating provider attempts: %w", err)
	}
	return attempts, nil
}

func NewAttemptRepository(pool *pgxpool.Pool) *AttemptRepository {
	return &AttemptRepository{pool: pool}
}
