package repository

import (
	"time"

	"github.com/jhoicas/sanka-api/internal/domain/entity"
)

// ExpenseRepository define el puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Expense, error)
	// ListByCompanySince devuelve los gastos con expense_date >= since, más recientes primero.
	ListByCompanySince(companyID string, since time.Time) ([]*entity.Expense, error)
	Delete(id string) error
}
