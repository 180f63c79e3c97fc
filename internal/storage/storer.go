package storage

import (
	"context"

	"github.com/DjordjeVuckovic/rpn-calc/internal/domain"
	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Storer persists evaluation history.
type Storer interface {
	Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error)
	// List returns at most limit evaluations, newest first.
	List(ctx context.Context, limit int) ([]domain.Evaluation, error)
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
	File  Type = "file"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}

// ClampLimit maps a requested page size onto [1, MaxListLimit], defaulting non-positive values.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return min(limit, MaxListLimit)
}
