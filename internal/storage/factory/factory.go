package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/rpn-calc/internal/storage"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage/es"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage/jsonfile"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage/pg"
)

// NewStorer creates a new storage.Storer based on the storage type
func NewStorer(ctx context.Context, cfg StorageConfig) (storage.Storer, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		return pg.NewStorer(pool)

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}

		return es.NewStorer(ctx, *cfg.Es)

	case storage.File:
		return jsonfile.NewStorer(cfg.FilePath)

	case storage.InMem:
		return in_mem.NewInMemStorer(), nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
