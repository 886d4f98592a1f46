package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsRepository define las consultas de lectura para el dashboard Pulse.
// Las implementaciones son read-only (no modifican datos). A diferencia de los
// repos CRUD, estas consultas reciben context para poder cancelar agregaciones
// costosas.
type AnalyticsRepository interface {
	// GetSalesMetrics devuelve ingresos totales y número de órdenes en el período.
	GetSalesMetrics(ctx context.Context, companyID string, start, end time.Time) (revenue decimal.Decimal, orders int, err error)

	// GetExpenseTotal devuelve el gasto total del período.
	GetExpenseTotal(ctx context.Context, companyID string, start, end time.Time) (decimal.Decimal, error)

	// CountLowStock cuenta los productos activos en o bajo su umbral de stock bajo.
	CountLowStock(ctx context.Context, companyID string) (int, error)

	// GetInventoryValue devuelve Σ price × stock_quantity sobre todo el catálogo.
	GetInventoryValue(ctx context.Context, companyID string) (decimal.Decimal, error)

	// CountCustomers devuelve el total de clientes y cuántos son VIP.
	CountCustomers(ctx context.Context, companyID string) (total, vip int, err error)
}
