package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/dto"
)

// APIExecutor sends expressions to a running calc_api instance.
type APIExecutor struct {
	name    string
	baseURL string
	client  *http.Client
}

func NewAPIExecutor(name, baseURL string) *APIExecutor {
	return &APIExecutor{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (e *APIExecutor) Execute(ctx context.Context, expression string) (*Execution, error) {
	payload, err := json.Marshal(dto.EvaluateRequest{Expression: expression})
	if err != nil {
		return nil, fmt.Errorf("api marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/evaluate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("api create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("api request: %w", err)
	}
	defer resp.Body.Close()
	latency := time.Since(start)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var evalResp dto.EvaluateResponse
		if err := json.Unmarshal(body, &evalResp); err != nil {
			return nil, fmt.Errorf("api parse response: %w", err)
		}
		return &Execution{Result: evalResp.Result, Exact: evalResp.Exact, Latency: latency}, nil
	case http.StatusUnprocessableEntity:
		var errResp dto.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil {
			return nil, fmt.Errorf("api parse error response: %w", err)
		}
		return &Execution{Kind: apperr.Kind(errResp.Kind), Latency: latency}, nil
	case http.StatusBadRequest:
		// the API rejects blank input before evaluating it
		return &Execution{Kind: apperr.BadExpression, Latency: latency}, nil
	default:
		return nil, fmt.Errorf("api status %d: %s", resp.StatusCode, string(body))
	}
}

func (e *APIExecutor) Name() string { return e.name }
func (e *APIExecutor) Close() error { return nil }
