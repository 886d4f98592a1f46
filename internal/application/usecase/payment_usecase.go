package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sanka-api/internal/application/dto"
	"github.com/jhoicas/sanka-api/internal/application/ports"
	"github.com/jhoicas/sanka-api/internal/domain"
	"github.com/jhoicas/sanka-api/internal/domain/entity"
	"github.com/jhoicas/sanka-api/internal/domain/repository"
)

// Comisión de procesamiento: 2.9% + $0.30, a cargo del cliente.
var (
	feeRate  = decimal.NewFromFloat(0.029)
	feeFixed = decimal.NewFromFloat(0.30)
)

// PaymentUseCase casos de uso para solicitudes de pago.
type PaymentUseCase struct {
	repo   repository.PaymentRepository
	mailer ports.Mailer
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.PaymentRepository, mailer ports.Mailer) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, mailer: mailer}
}

// Create registra una solicitud de pago. La comisión se calcula acá y el cliente
// la absorbe: total = amount + fee; el negocio recibe amount completo. Si el pago
// queda pending y hay email, se envía la solicitud con el link.
func (uc *PaymentUseCase) Create(ctx context.Context, companyID string, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: el monto debe ser mayor a cero", domain.ErrInvalidInput)
	}

	fee := in.Amount.Mul(feeRate).Add(feeFixed).Round(2)
	now := time.Now()
	payment := &entity.Payment{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		CustomerEmail: in.CustomerEmail,
		Description:   in.Description,
		Amount:        in.Amount,
		FeeAmount:     fee,
		TotalAmount:   in.Amount.Add(fee),
		NetAmount:     in.Amount,
		PaymentLink:   in.PaymentLink,
		Status:        entity.PaymentStatusPending,
		CreatedAt:     now,
	}
	if in.MarkCompleted {
		payment.Status = entity.PaymentStatusCompleted
		payment.PaymentDate = &now
	}

	if err := uc.repo.Create(payment); err != nil {
		return nil, err
	}

	// El correo es best-effort: el pago ya quedó registrado.
	if payment.Status == entity.PaymentStatusPending && payment.CustomerEmail != "" {
		msg := ports.OutgoingEmail{
			To:      payment.CustomerEmail,
			Subject: "Payment request",
			Body:    paymentRequestBody(payment),
		}
		_ = uc.mailer.Send(ctx, msg)
	}
	return toPaymentResponse(payment), nil
}

// MarkCompleted marca un pago pendiente como cobrado.
func (uc *PaymentUseCase) MarkCompleted(id string) (*dto.PaymentResponse, error) {
	payment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	if payment.Status != entity.PaymentStatusPending {
		return nil, fmt.Errorf("%w: el pago no está pendiente", domain.ErrConflict)
	}
	now := time.Now()
	if err := uc.repo.UpdateStatus(id, entity.PaymentStatusCompleted, &now); err != nil {
		return nil, err
	}
	payment.Status = entity.PaymentStatusCompleted
	payment.PaymentDate = &now
	return toPaymentResponse(payment), nil
}

// Cancel cancela un pago pendiente.
func (uc *PaymentUseCase) Cancel(id string) (*dto.PaymentResponse, error) {
	payment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	if payment.Status != entity.PaymentStatusPending {
		return nil, fmt.Errorf("%w: el pago no está pendiente", domain.ErrConflict)
	}
	if err := uc.repo.UpdateStatus(id, entity.PaymentStatusCancelled, nil); err != nil {
		return nil, err
	}
	payment.Status = entity.PaymentStatusCancelled
	return toPaymentResponse(payment), nil
}

// List lista pagos con totales agregados: Σ pendiente y Σ neto procesado.
func (uc *PaymentUseCase) List(companyID string, limit, offset int) (*dto.PaymentListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.PaymentListResponse{
		Payments:       make([]dto.PaymentResponse, 0, len(list)),
		TotalPending:   decimal.Zero,
		TotalProcessed: decimal.Zero,
	}
	for _, p := range list {
		resp.Payments = append(resp.Payments, *toPaymentResponse(p))
		switch p.Status {
		case entity.PaymentStatusPending:
			resp.TotalPending = resp.TotalPending.Add(p.Amount)
		case entity.PaymentStatusCompleted:
			resp.TotalProcessed = resp.TotalProcessed.Add(p.NetAmount)
		}
	}
	resp.Count = len(resp.Payments)
	return resp, nil
}

func paymentRequestBody(p *entity.Payment) string {
	body := fmt.Sprintf("You have a payment request for $%s", p.TotalAmount.StringFixed(2))
	if p.Description != "" {
		body += fmt.Sprintf(" (%s)", p.Description)
	}
	body += "."
	if p.PaymentLink != "" {
		body += fmt.Sprintf("\n\nPay here: %s", p.PaymentLink)
	}
	return body
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:            p.ID,
		CustomerEmail: p.CustomerEmail,
		Description:   p.Description,
		Amount:        p.Amount,
		FeeAmount:     p.FeeAmount,
		TotalAmount:   p.TotalAmount,
		NetAmount:     p.NetAmount,
		PaymentLink:   p.PaymentLink,
		Status:        p.Status,
		PaymentDate:   p.PaymentDate,
		CreatedAt:     p.CreatedAt,
	}
}
