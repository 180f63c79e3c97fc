package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/rpn-calc/internal/domain"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

type Storer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewStorer(ctx context.Context, config ClientConfig) (*Storer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	storer := &Storer{
		client:    client,
		indexName: config.IndexName,
	}

	if err := storer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return storer, nil
}

func (s *Storer) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if exists {
		slog.Info("Index already exists", "index", s.indexName)
		return nil
	}

	mappings := buildMapping()
	createRes, err := s.client.Indices.Create(s.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", s.indexName)
	return nil
}

func (s *Storer) Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error) {
	if evaluation.ID == uuid.Nil {
		evaluation.ID = uuid.New()
	}
	if evaluation.CreatedAt.IsZero() {
		evaluation.CreatedAt = time.Now().UTC()
	}

	doc := toDocument(evaluation)

	res, err := s.client.Index(s.indexName).
		Id(doc.ID).
		Document(doc).
		Refresh(refresh.True).
		Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index evaluation: %w", err)
	}

	slog.Debug("evaluation indexed", "id", doc.ID, "index", s.indexName, "result", res.Result)
	return evaluation.ID, nil
}

func (s *Storer) List(ctx context.Context, limit int) ([]domain.Evaluation, error) {
	limit = storage.ClampLimit(limit)
	desc := sortorder.Desc

	res, err := s.client.Search().
		Index(s.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		Size(limit).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"created_at": {Order: &desc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"id": {Order: &desc},
				},
			},
		).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch history query failed", "error", err, "index", s.indexName)
		return nil, fmt.Errorf("failed to search evaluations: %w", err)
	}

	evaluations := make([]domain.Evaluation, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		e, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		evaluations = append(evaluations, e)
	}

	return evaluations, nil
}

func (s *Storer) Healthy(ctx context.Context) bool {
	ok, err := s.client.Ping().Do(ctx)
	if err != nil {
		slog.Warn("Elasticsearch ping failed", "error", err)
		return false
	}
	return ok
}
