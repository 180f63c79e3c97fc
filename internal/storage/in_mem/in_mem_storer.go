package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/DjordjeVuckovic/rpn-calc/internal/domain"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage"
	"github.com/google/uuid"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Evaluation
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[uuid.UUID]domain.Evaluation),
	}
}

func (s *InMemStorer) Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error) {
	if evaluation.ID == uuid.Nil {
		evaluation.ID = uuid.New()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.storage[evaluation.ID] = evaluation

	slog.Debug("Saved evaluation to in-memory storage", "id", evaluation.ID, "expression", evaluation.Expression)
	return evaluation.ID, nil
}

func (s *InMemStorer) List(ctx context.Context, limit int) ([]domain.Evaluation, error) {
	limit = storage.ClampLimit(limit)

	s.storageLock.RLock()
	all := make([]domain.Evaluation, 0, len(s.storage))
	for _, e := range s.storage {
		all = append(all, e)
	}
	s.storageLock.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID.String() > all[j].ID.String()
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *InMemStorer) Healthy(ctx context.Context) bool {
	return true
}
