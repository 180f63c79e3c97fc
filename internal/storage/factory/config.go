package factory

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/rpn-calc/internal/storage"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage/es"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage/pg"
	"github.com/DjordjeVuckovic/rpn-calc/pkg/utils"
)

type StorageConfig struct {
	storage.Type
	Pg *pg.PoolConfig
	Es *es.ClientConfig
	// FilePath is the JSON-lines history file used by the file storer.
	FilePath string
}

const defaultHistoryFile = "data/evaluations.jsonl"

var supportedTypes = []storage.Type{storage.ES, storage.PG, storage.InMem, storage.File}

// LoadEnv reads the history storage configuration. STORAGE_TYPE defaults to in_mem.
func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		slog.Info("STORAGE_TYPE is not set, using in-memory history")
		storageType = storage.InMem
	}
	if !slices.Contains(supportedTypes, storageType) {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			supportedTypes)
	}

	var esCfg *es.ClientConfig
	if storageType == storage.ES {
		esCfg = &es.ClientConfig{
			Addresses: utils.RemoveEmptyStrings(utils.SplitTrim(os.Getenv("ES_ADDRESSES"), ",")),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if esCfg.IndexName == "" {
			esCfg.IndexName = "evaluations"
		}
		if err := esCfg.Validate(); err != nil {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", esCfg.Addresses, "indexName", esCfg.IndexName)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: %w", err)
		}
	}

	var pgCfg *pg.PoolConfig
	if storageType == storage.PG {
		pgCfg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
		if v := os.Getenv("PG_MAX_CONNS"); v != "" {
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid PG_MAX_CONNS value: %q", v)
			}
			pgCfg.MaxConns = int32(n)
		}
	}

	var filePath string
	if storageType == storage.File {
		filePath = strings.TrimSpace(os.Getenv("HISTORY_FILE"))
		if filePath == "" {
			filePath = defaultHistoryFile
		}
	}

	return &StorageConfig{
		Type:     storageType,
		Pg:       pgCfg,
		Es:       esCfg,
		FilePath: filePath,
	}, nil
}
