package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/sanka-api/internal/application/dto"
	"github.com/jhoicas/sanka-api/internal/application/ports"
	"github.com/jhoicas/sanka-api/internal/domain"
	"github.com/jhoicas/sanka-api/internal/domain/entity"
	"github.com/jhoicas/sanka-api/internal/domain/repository"
)

// emailDraftSchema el modelo debe devolver asunto y cuerpo del correo.
var emailDraftSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "subject": {"type": "string"},
    "body": {"type": "string"}
  },
  "required": ["subject", "body"]
}`)

// CustomerUseCase casos de uso para clientes: CRUD, segmentación y correo de
// re-enganche generado por IA.
type CustomerUseCase struct {
	repo   repository.CustomerRepository
	llm    ports.LLMService
	mailer ports.Mailer
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, llm ports.LLMService, mailer ports.Mailer) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, llm: llm, mailer: mailer}
}

// Create registra un cliente nuevo. Email único por empresa cuando se envía.
func (uc *CustomerUseCase) Create(companyID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Email != "" {
		existing, _ := uc.repo.GetByCompanyAndEmail(companyID, in.Email)
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Status:      entity.CustomerStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// Update actualiza datos de contacto y segmento.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.CustomerStatusActive, entity.CustomerStatusVIP,
			entity.CustomerStatusAtRisk, entity.CustomerStatusChurned:
			customer.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes por empresa con paginación.
func (uc *CustomerUseCase) List(companyID string, limit, offset int) (*dto.CustomerListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{Customers: items, Count: len(items)}, nil
}

// GenerateReengagementEmail pide al modelo un correo personalizado para
// recuperar al cliente y, si req.Send es true, lo envía de inmediato.
// Requiere que el cliente tenga email.
func (uc *CustomerUseCase) GenerateReengagementEmail(ctx context.Context, id string, req dto.ReengagementEmailRequest) (*dto.ReengagementEmailResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if req.Send && customer.Email == "" {
		return nil, fmt.Errorf("%w: el cliente no tiene email", domain.ErrInvalidInput)
	}

	raw, err := uc.llm.Invoke(ctx, reengagementPrompt(customer), emailDraftSchema)
	if err != nil {
		return nil, err
	}
	var draft struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("borrador de re-enganche malformado: %w", err)
	}

	resp := &dto.ReengagementEmailResponse{Subject: draft.Subject, Body: draft.Body}
	if req.Send {
		msg := ports.OutgoingEmail{To: customer.Email, Subject: draft.Subject, Body: draft.Body}
		if err := uc.mailer.Send(ctx, msg); err != nil {
			return nil, fmt.Errorf("enviar correo de re-enganche: %w", err)
		}
		resp.Sent = true
	}
	return resp, nil
}

func reengagementPrompt(c *entity.Customer) string {
	lastOrder := "never"
	if c.LastOrderDate != nil {
		lastOrder = c.LastOrderDate.Format("2006-01-02")
	}
	return fmt.Sprintf(`Write a warm, personalized re-engagement email for a customer of a small business.

Customer: %s
Total spent: $%s across %d orders
Last order: %s
Current status: %s

The email should feel personal (not like a mass campaign), reference their history with the business, and include a gentle incentive to come back. Keep it under 150 words. Return a subject line and the email body.`,
		c.Name, c.TotalSpent.StringFixed(2), c.TotalOrders, lastOrder, c.Status)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		TotalSpent:    c.TotalSpent,
		TotalOrders:   c.TotalOrders,
		Status:        c.Status,
		LastOrderDate: c.LastOrderDate,
		CreatedAt:     c.CreatedAt,
	}
}
