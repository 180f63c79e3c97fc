package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/rpn-calc/internal/domain"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storer struct {
	db     *pgxpool.Pool
	pool   *ConnectionPool
	health *HealthChecker
}

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	if pool == nil {
		return nil, fmt.Errorf("connection pool is nil")
	}
	return &Storer{db: pool.conn, pool: pool, health: NewHealthChecker(pool)}, nil
}

func (s *Storer) Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error) {
	if evaluation.ID == uuid.Nil {
		evaluation.ID = uuid.New()
	}
	if evaluation.CreatedAt.IsZero() {
		evaluation.CreatedAt = time.Now().UTC()
	}

	cmd := `
        INSERT INTO evaluations (id, expression, result, exact, error_kind, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		evaluation.ID,
		evaluation.Expression,
		evaluation.Result,
		evaluation.Exact,
		evaluation.ErrorKind,
		evaluation.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert evaluation: %w", err)
	}

	return id, nil
}

func (s *Storer) List(ctx context.Context, limit int) ([]domain.Evaluation, error) {
	limit = storage.ClampLimit(limit)

	rows, err := s.db.Query(ctx, `
        SELECT id, expression, result, exact, error_kind, created_at
        FROM evaluations
        ORDER BY created_at DESC, id DESC
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluations: %w", err)
	}

	evaluations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Evaluation, error) {
		var e domain.Evaluation
		err := row.Scan(&e.ID, &e.Expression, &e.Result, &e.Exact, &e.ErrorKind, &e.CreatedAt)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan evaluations: %w", err)
	}

	return evaluations, nil
}

func (s *Storer) Healthy(ctx context.Context) bool {
	return s.health.Healthy(ctx)
}

func (s *Storer) Close() {
	s.pool.Close()
}
