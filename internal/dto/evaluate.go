package dto

import (
	"github.com/DjordjeVuckovic/rpn-calc/internal/domain"
	"github.com/google/uuid"
)

type EvaluateRequest struct {
	Expression string `json:"expression" query:"expression" example:"(2+3)*4"`
}

type EvaluateResponse struct {
	ID         *uuid.UUID `json:"id,omitempty" swaggertype:"string" format:"uuid"`
	Expression string     `json:"expression" example:"7/2"`
	Result     string     `json:"result" example:"3.5"`
	Exact      string     `json:"exact" example:"7/2"`
}

type ErrorResponse struct {
	Error  string `json:"error" example:"invalid expression"`
	Kind   string `json:"kind,omitempty" example:"division_by_zero"`
	Detail string `json:"detail,omitempty" example:"division by zero"`
}

type HistoryResponse struct {
	Items []domain.Evaluation `json:"items"`
	Count int                 `json:"count"`
}
