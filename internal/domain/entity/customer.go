package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Segmentos de cliente. El segmento lo mantiene la aplicación según el comportamiento de compra.
const (
	CustomerStatusActive  = "active"
	CustomerStatusVIP     = "vip"
	CustomerStatusAtRisk  = "at_risk"
	CustomerStatusChurned = "churned"
)

// Customer representa un cliente del negocio con sus acumulados de compra.
type Customer struct {
	ID            string
	CompanyID     string
	Name          string
	Email         string
	Phone         string
	TotalSpent    decimal.Decimal // acumulado histórico de compras
	TotalOrders   int
	Status        string // active, vip, at_risk, churned
	LastOrderDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
