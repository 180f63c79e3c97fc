package jsonfile

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/rpn-calc/internal/domain"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage"
	"github.com/google/uuid"
)

// Storer appends evaluations to a JSON-lines file, one record per line.
type Storer struct {
	mu       sync.Mutex
	filePath string
	file     *os.File
}

func NewStorer(filePath string) (*Storer, error) {
	if filePath == "" {
		return nil, fmt.Errorf("history file path is empty")
	}
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open history file: %w", err)
	}
	return &Storer{filePath: filePath, file: f}, nil
}

func (s *Storer) Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error) {
	if evaluation.ID == uuid.Nil {
		evaluation.ID = uuid.New()
	}
	if evaluation.CreatedAt.IsZero() {
		evaluation.CreatedAt = time.Now().UTC()
	}

	line, err := json.Marshal(evaluation)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal evaluation: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return uuid.Nil, errors.New("history file is closed")
	}
	if _, err := s.file.Write(line); err != nil {
		return uuid.Nil, fmt.Errorf("append evaluation: %w", err)
	}

	slog.Debug("Saved evaluation to history file", "id", evaluation.ID, "path", s.filePath)
	return evaluation.ID, nil
}

func (s *Storer) List(ctx context.Context, limit int) ([]domain.Evaluation, error) {
	limit = storage.ClampLimit(limit)

	s.mu.Lock()
	all, err := s.readAll()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// readAll skips lines it cannot decode so a torn final write does not hide the rest.
func (s *Storer) readAll() ([]domain.Evaluation, error) {
	f, err := os.Open(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	var out []domain.Evaluation
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for n := 1; sc.Scan(); n++ {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var e domain.Evaluation
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			slog.Warn("Skipping malformed history line", "path", s.filePath, "line", n, "error", err)
			continue
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}
	// newest records are at the end; reverse so equal timestamps keep newest first
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (s *Storer) Healthy(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file != nil
}

func (s *Storer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return
	}
	if err := s.file.Close(); err != nil {
		slog.Warn("Failed to close history file", "path", s.filePath, "error", err)
	}
	s.file = nil
}
