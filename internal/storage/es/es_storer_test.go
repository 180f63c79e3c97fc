package es

import (
	"context"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/rpn-calc/internal/calc"
	"github.com/DjordjeVuckovic/rpn-calc/internal/domain"
	pkgtesting "github.com/DjordjeVuckovic/rpn-calc/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_RoundTrip(t *testing.T) {
	r, err := calc.Evaluate("5/0")
	e := domain.NewEvaluation("5/0", r, err)

	doc := toDocument(e)
	assert.True(t, doc.Failed)
	assert.Equal(t, e.ID.String(), doc.ID)

	back, err := doc.toDomain()
	require.NoError(t, err)
	assert.Equal(t, e, back)
}

func TestDocument_InvalidID(t *testing.T) {
	_, err := Document{ID: "not-a-uuid"}.toDomain()
	assert.Error(t, err)
}

func TestClientConfig_Validate(t *testing.T) {
	assert.Error(t, ClientConfig{IndexName: "evaluations"}.Validate())
	assert.Error(t, ClientConfig{Addresses: []string{""}, IndexName: "evaluations"}.Validate())
	assert.Error(t, ClientConfig{Addresses: []string{"http://localhost:9200"}}.Validate())
	assert.NoError(t, ClientConfig{Addresses: []string{"http://localhost:9200"}, IndexName: "evaluations"}.Validate())
}

func TestStorer_SaveAndList(t *testing.T) {
	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	s, err := NewStorer(ctx, ClientConfig{
		Addresses: []string{container.Address},
		IndexName: "evaluations_test",
	})
	require.NoError(t, err)
	require.True(t, s.Healthy(ctx))

	// a second call must find the existing index
	require.NoError(t, s.EnsureIndex(ctx))

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, expr := range []string{"2+3*4", "7/2", "(1"} {
		r, err := calc.Evaluate(expr)
		e := domain.NewEvaluation(expr, r, err)
		e.CreatedAt = base.Add(time.Duration(i) * time.Second)

		_, err = s.Save(ctx, e)
		require.NoError(t, err)
	}

	got, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "(1", got[0].Expression)
	assert.Equal(t, "mismatched_parentheses", got[0].ErrorKind)
	assert.Equal(t, "3.5", got[1].Result)
}
