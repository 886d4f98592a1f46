package repository

import (
	"time"

	"github.com/jhoicas/sanka-api/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para Payment.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Payment, error)
	// UpdateStatus cambia el estado; paymentDate solo aplica al pasar a completed.
	UpdateStatus(id, status string, paymentDate *time.Time) error
}
