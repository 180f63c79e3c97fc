package router

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/calc"
	"github.com/DjordjeVuckovic/rpn-calc/internal/domain"
	"github.com/DjordjeVuckovic/rpn-calc/internal/dto"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CalcRouter struct {
	e         *echo.Echo
	evaluator calc.Evaluator
	storage   storage.Storer
	maxLen    int
}

type CalcRouterOption func(*CalcRouter)

func WithMaxExpressionLength(n int) CalcRouterOption {
	return func(r *CalcRouter) {
		r.maxLen = n
	}
}

func NewCalcRouter(e *echo.Echo, evaluator calc.Evaluator, storage storage.Storer, opts ...CalcRouterOption) *CalcRouter {
	r := &CalcRouter{
		e:         e,
		evaluator: evaluator,
		storage:   storage,
		maxLen:    1024,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *CalcRouter) Bind() {
	r.e.POST("/evaluate", r.evaluateHandler)
	r.e.GET("/evaluate", r.evaluateQueryHandler)
	r.e.GET("/history", r.historyHandler)
}

// evaluateHandler godoc
// @Summary Evaluate an arithmetic expression
// @Description Evaluates integers, + - * / and parentheses. Division is exact.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Expression to evaluate"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /evaluate [post]
func (r *CalcRouter) evaluateHandler(c echo.Context) error {
	var req dto.EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	return r.evaluate(c, req.Expression)
}

// evaluateQueryHandler godoc
// @Summary Evaluate an arithmetic expression from the query string
// @Tags calculator
// @Produce json
// @Param expression query string true "Expression to evaluate"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /evaluate [get]
func (r *CalcRouter) evaluateQueryHandler(c echo.Context) error {
	return r.evaluate(c, c.QueryParam("expression"))
}

func (r *CalcRouter) evaluate(c echo.Context, expression string) error {
	if strings.TrimSpace(expression) == "" {
		return apperr.NewValidation("expression is required")
	}
	if utf8.RuneCountInString(expression) > r.maxLen {
		return apperr.NewValidation("expression is too long, max " + strconv.Itoa(r.maxLen) + " characters")
	}

	ctx := c.Request().Context()
	result, evalErr := r.evaluator.Evaluate(ctx, expression)
	if evalErr != nil {
		if _, ok := apperr.KindOf(evalErr); !ok {
			return evalErr
		}
	}

	record := domain.NewEvaluation(expression, result, evalErr)
	id, err := r.storage.Save(ctx, record)
	if err != nil {
		slog.Warn("Failed to record evaluation", "error", err, "expression", expression)
	}

	if evalErr != nil {
		slog.Debug("Expression rejected", "expression", expression, "kind", record.ErrorKind)
		return evalErr
	}

	resp := dto.EvaluateResponse{
		Expression: expression,
		Result:     result.String(),
		Exact:      result.Exact(),
	}
	if err == nil && id != uuid.Nil {
		resp.ID = &id
	}
	return c.JSON(http.StatusOK, resp)
}

// historyHandler godoc
// @Summary List recent evaluations
// @Tags calculator
// @Produce json
// @Param limit query int false "Maximum number of items (1-100)" default(20)
// @Success 200 {object} dto.HistoryResponse
// @Router /history [get]
func (r *CalcRouter) historyHandler(c echo.Context) error {
	limit := storage.DefaultListLimit
	if l := c.QueryParam("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 1 {
			return apperr.NewValidation("limit must be a positive integer")
		}
		limit = n
	}

	items, err := r.storage.List(c.Request().Context(), storage.ClampLimit(limit))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.HistoryResponse{Items: items, Count: len(items)})
}
