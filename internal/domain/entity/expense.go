package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense representa un gasto del negocio. Solo lectura para analítica e insights.
type Expense struct {
	ID          string
	CompanyID   string
	Title       string
	Category    string // rent, payroll, inventory, marketing, utilities, other...
	Amount      decimal.Decimal
	ExpenseDate time.Time
	CreatedAt   time.Time
}
