package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/sanka-api/internal/application/dto"
	"github.com/jhoicas/sanka-api/internal/domain"
	"github.com/jhoicas/sanka-api/internal/domain/entity"
	"github.com/jhoicas/sanka-api/internal/domain/repository"
)

// ExpenseUseCase casos de uso para gastos.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create registra un gasto. Monto estrictamente positivo.
func (uc *ExpenseUseCase) Create(companyID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: el monto debe ser mayor a cero", domain.ErrInvalidInput)
	}
	expenseDate := time.Now()
	if in.ExpenseDate != "" {
		parsed, err := time.Parse("2006-01-02", in.ExpenseDate)
		if err != nil {
			return nil, fmt.Errorf("%w: expense_date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		expenseDate = parsed
	}
	category := in.Category
	if category == "" {
		category = "other"
	}
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Title:       in.Title,
		Category:    category,
		Amount:      in.Amount,
		ExpenseDate: expenseDate,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// GetByID obtiene un gasto por ID.
func (uc *ExpenseUseCase) GetByID(id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}
	return toExpenseResponse(expense), nil
}

// List lista gastos por empresa con paginación.
func (uc *ExpenseUseCase) List(companyID string, limit, offset int) (*dto.ExpenseListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExpenseResponse(e))
	}
	return &dto.ExpenseListResponse{Expenses: items, Count: len(items)}, nil
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	if e == nil {
		return nil
	}
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Title:       e.Title,
		Category:    e.Category,
		Amount:      e.Amount,
		ExpenseDate: e.ExpenseDate,
		CreatedAt:   e.CreatedAt,
	}
}
