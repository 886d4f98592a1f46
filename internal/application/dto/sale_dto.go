package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de una venta nueva.
type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateSaleRequest payload de POST /api/sales. El precio unitario y los totales
// se toman del catálogo al momento de registrar, no del cliente HTTP.
type CreateSaleRequest struct {
	CustomerID    string            `json:"customer_id"` // opcional
	PaymentMethod string            `json:"payment_method"`
	SaleDate      string            `json:"sale_date"` // YYYY-MM-DD, vacío = hoy
	Items         []SaleItemRequest `json:"items"`
}

// SaleItemResponse línea de venta persistida.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// SaleResponse representación API de una venta.
type SaleResponse struct {
	ID            string             `json:"id"`
	CustomerID    string             `json:"customer_id,omitempty"`
	SaleDate      time.Time          `json:"sale_date"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	Items         []SaleItemResponse `json:"items"`
	CreatedAt     time.Time          `json:"created_at"`
}

// SaleListResponse listado paginado de ventas.
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
	Count int            `json:"count"`
}
