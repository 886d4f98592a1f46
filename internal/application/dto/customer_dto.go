package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest payload de POST /api/customers.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UpdateCustomerRequest payload de PUT /api/customers/:id.
type UpdateCustomerRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Status *string `json:"status"` // active, vip, at_risk, churned
}

// CustomerResponse representación API de un cliente.
type CustomerResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	TotalOrders   int             `json:"total_orders"`
	Status        string          `json:"status"`
	LastOrderDate *time.Time      `json:"last_order_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CustomerListResponse listado paginado de clientes.
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Count     int                `json:"count"`
}

// ReengagementEmailRequest payload de POST /api/customers/:id/reengage.
// Si Send es true el correo se envía de inmediato; si no, solo se genera el
// borrador para edición en la UI.
type ReengagementEmailRequest struct {
	Send bool `json:"send"`
}

// ReengagementEmailResponse borrador generado por el modelo.
type ReengagementEmailResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Sent    bool   `json:"sent"`
}
