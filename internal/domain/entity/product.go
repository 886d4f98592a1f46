package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Product.
const (
	ProductStatusActive       = "active"
	ProductStatusInactive     = "inactive"
	ProductStatusDiscontinued = "discontinued"
)

// DefaultLowStockThreshold umbral de stock bajo cuando el producto no define uno propio.
const DefaultLowStockThreshold = 10

// Product representa un producto o SKU del catálogo del negocio.
// El stock es un contador simple por producto; el umbral de stock bajo es configurable por SKU.
type Product struct {
	ID                string
	CompanyID         string
	SKU               string // código único por empresa
	Name              string
	Description       string
	Category          string
	Price             decimal.Decimal // precio de venta
	Cost              decimal.Decimal // costo unitario
	StockQuantity     int             // nunca negativo
	LowStockThreshold int             // 0 = usar DefaultLowStockThreshold
	Status            string          // active, inactive, discontinued
	ImageURL          string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// EffectiveLowStockThreshold devuelve el umbral configurado o el default (10).
func (p *Product) EffectiveLowStockThreshold() int {
	if p.LowStockThreshold > 0 {
		return p.LowStockThreshold
	}
	return DefaultLowStockThreshold
}

// IsLowStock indica si el producto está en o por debajo de su umbral de stock bajo.
// Solo aplica a productos activos; un producto descontinuado con poco stock no es alerta.
func (p *Product) IsLowStock() bool {
	return p.Status == ProductStatusActive && p.StockQuantity <= p.EffectiveLowStockThreshold()
}
