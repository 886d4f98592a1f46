package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sanka-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para el dashboard Pulse.
// A diferencia de los repos CRUD recibe context: son agregaciones que conviene
// poder cancelar.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de consultas analíticas.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetSalesMetrics devuelve ingresos totales y número de órdenes en el período.
func (r *AnalyticsRepo) GetSalesMetrics(ctx context.Context, companyID string, start, end time.Time) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM sales
		WHERE company_id = $1 AND sale_date >= $2 AND sale_date <= $3`
	var revenue decimal.Decimal
	var orders int
	if err := r.q.QueryRow(ctx, query, companyID, start, end).Scan(&revenue, &orders); err != nil {
		return decimal.Zero, 0, fmt.Errorf("sales metrics: %w", err)
	}
	return revenue, orders, nil
}

// GetExpenseTotal devuelve el gasto total del período.
func (r *AnalyticsRepo) GetExpenseTotal(ctx context.Context, companyID string, start, end time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE company_id = $1 AND expense_date >= $2 AND expense_date <= $3`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, companyID, start, end).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("expense total: %w", err)
	}
	return total, nil
}

// CountLowStock cuenta los productos activos en o bajo su umbral de stock bajo.
// El CASE replica EffectiveLowStockThreshold: umbral 0 usa el default 10.
func (r *AnalyticsRepo) CountLowStock(ctx context.Context, companyID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM products
		WHERE company_id = $1 AND status = 'active'
		  AND stock_quantity <= CASE WHEN low_stock_threshold > 0 THEN low_stock_threshold ELSE 10 END`
	var count int
	if err := r.q.QueryRow(ctx, query, companyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return count, nil
}

// GetInventoryValue devuelve Σ price × stock_quantity sobre todo el catálogo.
func (r *AnalyticsRepo) GetInventoryValue(ctx context.Context, companyID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(price * stock_quantity), 0)
		FROM products
		WHERE company_id = $1`
	var value decimal.Decimal
	if err := r.q.QueryRow(ctx, query, companyID).Scan(&value); err != nil {
		return decimal.Zero, fmt.Errorf("inventory value: %w", err)
	}
	return value, nil
}

// CountCustomers devuelve el total de clientes y cuántos son VIP.
func (r *AnalyticsRepo) CountCustomers(ctx context.Context, companyID string) (int, int, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'vip')
		FROM customers
		WHERE company_id = $1`
	var total, vip int
	if err := r.q.QueryRow(ctx, query, companyID).Scan(&total, &vip); err != nil {
		return 0, 0, fmt.Errorf("count customers: %w", err)
	}
	return total, vip, nil
}
