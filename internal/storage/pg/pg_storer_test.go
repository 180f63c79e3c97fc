package pg

import (
	"context"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/rpn-calc/internal/calc"
	"github.com/DjordjeVuckovic/rpn-calc/internal/domain"
	pkgtesting "github.com/DjordjeVuckovic/rpn-calc/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

var (
	testCtx    context.Context
	testPool   *ConnectionPool
	testStorer *Storer
)

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.PGConfig{
		Database: "calc_test_db",
		Username: "test",
		Password: "test",
	})
	if err != nil {
		panic(err)
	}

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString})
	if err != nil {
		_ = testcontainers.TerminateContainer(pg.Container)
		panic(err)
	}

	testStorer, err = NewStorer(testPool)
	if err != nil {
		panic(err)
	}

	code := m.Run()

	testPool.Close()
	_ = testcontainers.TerminateContainer(pg.Container)
	os.Exit(code)
}

func skipShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
}

func truncateTable(t *testing.T) {
	t.Helper()
	_, err := testPool.GetConn().Exec(testCtx, "TRUNCATE TABLE evaluations")
	if err != nil {
		t.Fatalf("failed to truncate table: %v", err)
	}
}

func TestNewStorer_NilPool(t *testing.T) {
	_, err := NewStorer(nil)
	assert.Error(t, err)
}

func TestStorer_SaveAndList(t *testing.T) {
	skipShort(t)
	truncateTable(t)
	defer truncateTable(t)

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, expr := range []string{"2+3*4", "7/2", "5/0"} {
		r, err := calc.Evaluate(expr)
		e := domain.NewEvaluation(expr, r, err)
		e.CreatedAt = base.Add(time.Duration(i) * time.Second)

		id, err := testStorer.Save(testCtx, e)
		require.NoError(t, err)
		assert.Equal(t, e.ID, id)
	}

	got, err := testStorer.List(testCtx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "5/0", got[0].Expression)
	assert.Equal(t, "division_by_zero", got[0].ErrorKind)
	assert.Equal(t, "7/2", got[1].Expression)
	assert.Equal(t, "3.5", got[1].Result)
	assert.Equal(t, "7/2", got[1].Exact)
	assert.Equal(t, "14", got[2].Result)
}

func TestStorer_SaveAssignsID(t *testing.T) {
	skipShort(t)
	truncateTable(t)
	defer truncateTable(t)

	id, err := testStorer.Save(testCtx, domain.Evaluation{Expression: "1+1", Result: "2", Exact: "2"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestStorer_Healthy(t *testing.T) {
	skipShort(t)
	assert.True(t, testStorer.Healthy(testCtx))
}

func TestHealthChecker_NilPool(t *testing.T) {
	assert.False(t, NewHealthChecker(nil).Healthy(context.Background()))
}
