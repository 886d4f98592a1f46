// Package analytics implementa los KPIs del dashboard Pulse: métricas del día,
// de la semana móvil, inventario y clientes, calculadas con consultas agregadas
// en paralelo.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sanka-api/internal/application/dto"
	"github.com/jhoicas/sanka-api/internal/domain/repository"
)

// DashboardUseCase arma el resumen Pulse a partir del repositorio analítico.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase constructor.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

type salesResult struct {
	revenue decimal.Decimal
	orders  int
	err     error
}

type decimalResult struct {
	value decimal.Decimal
	err   error
}

type intResult struct {
	value int
	err   error
}

type customersResult struct {
	total int
	vip   int
	err   error
}

// GetSummary ejecuta las seis consultas agregadas en paralelo y combina los
// resultados. Cualquier error aborta el resumen completo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, companyID string) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := startOfToday.AddDate(0, 0, -7)

	todayCh := make(chan salesResult, 1)
	weekCh := make(chan salesResult, 1)
	expensesCh := make(chan decimalResult, 1)
	lowStockCh := make(chan intResult, 1)
	inventoryCh := make(chan decimalResult, 1)
	customersCh := make(chan customersResult, 1)

	go func() {
		revenue, orders, err := uc.analyticsRepo.GetSalesMetrics(ctx, companyID, startOfToday, now)
		todayCh <- salesResult{revenue: revenue, orders: orders, err: err}
	}()
	go func() {
		revenue, orders, err := uc.analyticsRepo.GetSalesMetrics(ctx, companyID, weekStart, now)
		weekCh <- salesResult{revenue: revenue, orders: orders, err: err}
	}()
	go func() {
		total, err := uc.analyticsRepo.GetExpenseTotal(ctx, companyID, weekStart, now)
		expensesCh <- decimalResult{value: total, err: err}
	}()
	go func() {
		count, err := uc.analyticsRepo.CountLowStock(ctx, companyID)
		lowStockCh <- intResult{value: count, err: err}
	}()
	go func() {
		value, err := uc.analyticsRepo.GetInventoryValue(ctx, companyID)
		inventoryCh <- decimalResult{value: value, err: err}
	}()
	go func() {
		total, vip, err := uc.analyticsRepo.CountCustomers(ctx, companyID)
		customersCh <- customersResult{total: total, vip: vip, err: err}
	}()

	today := <-todayCh
	week := <-weekCh
	expenses := <-expensesCh
	lowStock := <-lowStockCh
	inventory := <-inventoryCh
	customers := <-customersCh

	for _, err := range []error{today.err, week.err, expenses.err, lowStock.err, inventory.err, customers.err} {
		if err != nil {
			return nil, err
		}
	}

	return &dto.DashboardSummaryDTO{
		TodayRevenue:        today.revenue,
		TodayOrders:         today.orders,
		WeekRevenue:         week.revenue,
		WeekExpenses:        expenses.value,
		WeekProfit:          week.revenue.Sub(expenses.value),
		LowStockCount:       lowStock.value,
		TotalInventoryValue: inventory.value,
		TotalCustomers:      customers.total,
		VIPCustomers:        customers.vip,
	}, nil
}
