package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest payload de POST /api/payments. Si MarkCompleted es true
// el pago se registra ya cobrado (venta en persona); si no, queda pending y se
// envía la solicitud por correo al cliente.
type CreatePaymentRequest struct {
	CustomerEmail string          `json:"customer_email"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentLink   string          `json:"payment_link"` // generado por el proveedor externo
	MarkCompleted bool            `json:"mark_completed"`
}

// PaymentResponse representación API de un pago.
type PaymentResponse struct {
	ID            string          `json:"id"`
	CustomerEmail string          `json:"customer_email,omitempty"`
	Description   string          `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	FeeAmount     decimal.Decimal `json:"fee_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	NetAmount     decimal.Decimal `json:"net_amount"`
	PaymentLink   string          `json:"payment_link,omitempty"`
	Status        string          `json:"status"`
	PaymentDate   *time.Time      `json:"payment_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// PaymentListResponse listado paginado de pagos con totales agregados.
type PaymentListResponse struct {
	Payments       []PaymentResponse `json:"payments"`
	Count          int               `json:"count"`
	TotalPending   decimal.Decimal   `json:"total_pending"`   // Σ amount de pendientes
	TotalProcessed decimal.Decimal   `json:"total_processed"` // Σ net_amount de completados
}
