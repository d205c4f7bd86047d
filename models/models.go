package models

import (
	"math"
	"strconv"
)

// EvaluateRequest - запрос на вычисление выражения
type EvaluateRequest struct {
	ID         string `json:"id,omitempty"`
	Expression string `json:"expression"`
}

// EvaluateResponse - результат вычисления или описание ошибки.
// Result - указатель, чтобы 0 отличался от отсутствия результата.
type EvaluateResponse struct {
	ID     string   `json:"id,omitempty"`
	Result *float64 `json:"result,omitempty"`
	Text   string   `json:"text,omitempty"`
	Error  string   `json:"error,omitempty"`
	Kind   string   `json:"kind,omitempty"`
}

// NewEvaluateResponse - ответ с результатом. Inf и NaN не кодируются в JSON
// числом, поэтому для них заполняется только Text.
func NewEvaluateResponse(id string, v float64) EvaluateResponse {
	resp := EvaluateResponse{ID: id, Text: strconv.FormatFloat(v, 'g', -1, 64)}
	if !math.IsInf(v, 0) && !math.IsNaN(v) {
		resp.Result = &v
	}
	return resp
}

// MemoryRequest - операция над памятью: add, subtract, clear
type MemoryRequest struct {
	Op         string `json:"op"`
	Expression string `json:"expression,omitempty"`
}

// MemoryResponse - текущее значение памяти
type MemoryResponse struct {
	Value float64 `json:"value"`
}

// LoginRequest - учетные данные для получения токена
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse - выданный JWT
type LoginResponse struct {
	Token string `json:"token"`
}
