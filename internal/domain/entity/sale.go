package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem línea de una venta. Se denormaliza product_name para que el histórico
// sobreviva a renombres o borrados del producto.
type SaleItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// Sale representa una venta registrada. Inmutable una vez creada: el pipeline de
// insights y la analítica la consumen solo en lectura.
type Sale struct {
	ID            string
	CompanyID     string
	CustomerID    string // opcional: venta anónima si está vacío
	SaleDate      time.Time
	TotalAmount   decimal.Decimal
	PaymentMethod string // cash, card, transfer, other
	Items         []SaleItem
	CreatedAt     time.Time
}
