package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Payment.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusCancelled = "cancelled"
)

// Payment representa una solicitud de pago enviada a un cliente.
// La comisión la paga el cliente: TotalAmount = Amount + FeeAmount.
// El link de pago lo genera un proveedor externo; aquí solo se guarda.
type Payment struct {
	ID            string
	CompanyID     string
	CustomerEmail string
	Description   string
	Amount        decimal.Decimal // monto solicitado por el negocio
	FeeAmount     decimal.Decimal // comisión de procesamiento (2.9% + 0.30)
	TotalAmount   decimal.Decimal // lo que paga el cliente
	NetAmount     decimal.Decimal // lo que recibe el negocio (= Amount)
	PaymentLink   string
	Status        string     // pending, completed, cancelled
	PaymentDate   *time.Time // fecha en que se completó
	CreatedAt     time.Time
}
