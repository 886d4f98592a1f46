package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary: los KPIs de la
// vista Pulse (hoy, semana móvil, inventario y clientes).
type DashboardSummaryDTO struct {
	// Hoy (00:00 – ahora)
	TodayRevenue decimal.Decimal `json:"today_revenue"`
	TodayOrders  int             `json:"today_orders"`

	// Semana móvil (7 días hacia atrás)
	WeekRevenue  decimal.Decimal `json:"week_revenue"`
	WeekExpenses decimal.Decimal `json:"week_expenses"`
	WeekProfit   decimal.Decimal `json:"week_profit"` // revenue - expenses

	// Inventario
	LowStockCount       int             `json:"low_stock_count"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`

	// Clientes
	TotalCustomers int `json:"total_customers"`
	VIPCustomers   int `json:"vip_customers"`
}
