package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/sanka-api/internal/application/dto"
	"github.com/jhoicas/sanka-api/internal/domain/entity"
	"github.com/jhoicas/sanka-api/internal/domain/repository"
)

// CompanyUseCase casos de uso para empresas (onboarding y Settings).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create registra un negocio nuevo. Moneda por defecto: USD.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	now := time.Now()
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	company := &entity.Company{
		ID:           uuid.New().String(),
		Name:         in.Name,
		BusinessType: in.BusinessType,
		Email:        in.Email,
		Phone:        in.Phone,
		Currency:     currency,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// Update actualiza los datos del negocio (pantalla Settings).
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.BusinessType != nil {
		company.BusinessType = *in.BusinessType
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Currency != nil {
		company.Currency = *in.Currency
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		BusinessType: c.BusinessType,
		Email:        c.Email,
		Phone:        c.Phone,
		Currency:     c.Currency,
		CreatedAt:    c.CreatedAt,
	}
}
