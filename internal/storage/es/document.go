package es

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/rpn-calc/internal/domain"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"
)

// Document is the Elasticsearch representation of a domain.Evaluation.
type Document struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	Exact      string    `json:"exact"`
	ErrorKind  string    `json:"error_kind"`
	Failed     bool      `json:"failed"`
	CreatedAt  time.Time `json:"created_at"`
}

func toDocument(e domain.Evaluation) Document {
	return Document{
		ID:         e.ID.String(),
		Expression: e.Expression,
		Result:     e.Result,
		Exact:      e.Exact,
		ErrorKind:  e.ErrorKind,
		Failed:     e.Failed(),
		CreatedAt:  e.CreatedAt,
	}
}

func (d Document) toDomain() (domain.Evaluation, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("invalid document id %q: %w", d.ID, err)
	}
	return domain.Evaluation{
		ID:         id,
		Expression: d.Expression,
		Result:     d.Result,
		Exact:      d.Exact,
		ErrorKind:  d.ErrorKind,
		CreatedAt:  d.CreatedAt,
	}, nil
}

func buildMapping() types.TypeMapping {
	expression := types.NewTextProperty()
	expression.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}

	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewKeywordProperty(),
			"expression": expression,
			"result":     types.NewKeywordProperty(),
			"exact":      types.NewKeywordProperty(),
			"error_kind": types.NewKeywordProperty(),
			"failed":     types.NewBooleanProperty(),
			"created_at": types.NewDateProperty(),
		},
	}
}
