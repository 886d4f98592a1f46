package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest payload de POST /api/expenses.
type CreateExpenseRequest struct {
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate string          `json:"expense_date"` // YYYY-MM-DD, vacío = hoy
}

// ExpenseResponse representación API de un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate time.Time       `json:"expense_date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ExpenseListResponse listado paginado de gastos.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Count    int               `json:"count"`
}
