package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/rpn-calc/internal/storage"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage/jsonfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Run("defaults to in-memory", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, storage.InMem, cfg.Type)
		assert.Nil(t, cfg.Pg)
		assert.Nil(t, cfg.Es)
	})

	t.Run("invalid type", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "mongo")
		_, err := LoadEnv()
		assert.Error(t, err)
	})

	t.Run("pg requires connection string", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "pg")
		t.Setenv("PG_CONNECTION_STRING", "")
		_, err := LoadEnv()
		assert.Error(t, err)
	})

	t.Run("pg with max conns", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "pg")
		t.Setenv("PG_CONNECTION_STRING", "postgres://u:p@localhost:5432/calc")
		t.Setenv("PG_MAX_CONNS", "8")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		require.NotNil(t, cfg.Pg)
		assert.Equal(t, int32(8), cfg.Pg.MaxConns)
	})

	t.Run("pg with bad max conns", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "pg")
		t.Setenv("PG_CONNECTION_STRING", "postgres://u:p@localhost:5432/calc")
		t.Setenv("PG_MAX_CONNS", "zero")
		_, err := LoadEnv()
		assert.Error(t, err)
	})

	t.Run("es addresses are split and trimmed", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "es")
		t.Setenv("ES_ADDRESSES", " http://a:9200 , http://b:9200,")
		t.Setenv("ES_INDEX_NAME", "")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		require.NotNil(t, cfg.Es)
		assert.Equal(t, []string{"http://a:9200", "http://b:9200"}, cfg.Es.Addresses)
		assert.Equal(t, "evaluations", cfg.Es.IndexName)
	})

	t.Run("file defaults its path", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "file")
		t.Setenv("HISTORY_FILE", "")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, storage.File, cfg.Type)
		assert.Equal(t, defaultHistoryFile, cfg.FilePath)
	})

	t.Run("es requires addresses", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "es")
		t.Setenv("ES_ADDRESSES", "")
		_, err := LoadEnv()
		assert.Error(t, err)
	})
}

func TestNewStorer(t *testing.T) {
	s, err := NewStorer(context.Background(), StorageConfig{Type: storage.InMem})
	require.NoError(t, err)
	assert.IsType(t, &in_mem.InMemStorer{}, s)

	path := filepath.Join(t.TempDir(), "h.jsonl")
	s, err = NewStorer(context.Background(), StorageConfig{Type: storage.File, FilePath: path})
	require.NoError(t, err)
	assert.IsType(t, &jsonfile.Storer{}, s)
	s.(*jsonfile.Storer).Close()

	_, err = NewStorer(context.Background(), StorageConfig{Type: "mongo"})
	assert.Error(t, err)

	_, err = NewStorer(context.Background(), StorageConfig{Type: storage.PG})
	assert.Error(t, err, "missing pg config")
}
