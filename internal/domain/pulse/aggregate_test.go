package pulse_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sanka-api/internal/domain/entity"
	"github.com/jhoicas/sanka-api/internal/domain/pulse"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var windowStart = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// saleOf crea una venta de una sola línea con total = unitPrice × qty.
func saleOf(date time.Time, productID string, qty int, unitPrice string) *entity.Sale {
	price := dec(unitPrice)
	total := price.Mul(decimal.NewFromInt(int64(qty)))
	return &entity.Sale{
		ID:          "sale-" + productID,
		CompanyID:   "co-1",
		SaleDate:    date,
		TotalAmount: total,
		Items: []entity.SaleItem{{
			ProductID:   productID,
			ProductName: "Producto " + productID,
			Quantity:    qty,
			UnitPrice:   price,
			Total:       total,
		}},
	}
}

func expenseOf(date time.Time, category, amount string) *entity.Expense {
	return &entity.Expense{
		ID:          "exp-" + category,
		CompanyID:   "co-1",
		Title:       "Gasto " + category,
		Category:    category,
		Amount:      dec(amount),
		ExpenseDate: date,
	}
}

func productOf(id string, stock int, price string) *entity.Product {
	return &entity.Product{
		ID:            id,
		CompanyID:     "co-1",
		Name:          "Producto " + id,
		Price:         dec(price),
		StockQuantity: stock,
		Status:        entity.ProductStatusActive,
	}
}

func customerOf(id, status, totalSpent string) *entity.Customer {
	return &entity.Customer{
		ID:         id,
		CompanyID:  "co-1",
		Name:       "Cliente " + id,
		Status:     status,
		TotalSpent: dec(totalSpent),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventana de análisis
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildSnapshot_VentanaFiltraVentasYGastos(t *testing.T) {
	inside := windowStart.AddDate(0, 0, 5)
	outside := windowStart.AddDate(0, 0, -1)

	sales := []*entity.Sale{
		saleOf(inside, "p1", 2, "10.00"),  // dentro: 20.00
		saleOf(outside, "p2", 5, "50.00"), // fuera: no cuenta
	}
	expenses := []*entity.Expense{
		expenseOf(inside, "rent", "100.00"),
		expenseOf(outside, "rent", "999.00"),
	}

	snap := pulse.BuildSnapshot(sales, expenses, nil, nil, windowStart)

	assert.Equal(t, 1, snap.OrderCount, "solo la venta dentro de la ventana cuenta")
	assert.True(t, snap.Revenue.Equal(dec("20.00")), "revenue = ventas dentro de la ventana")
	assert.True(t, snap.TotalExpenses.Equal(dec("100.00")), "gastos fuera de la ventana se ignoran")
	assert.NotContains(t, snap.ProductSales, "p2", "los productos de ventas viejas no entran al acumulado")
}

func TestBuildSnapshot_VentaExactaEnElLimiteEntra(t *testing.T) {
	// Fecha == windowStart no es Before(windowStart): entra.
	snap := pulse.BuildSnapshot(
		[]*entity.Sale{saleOf(windowStart, "p1", 1, "15.00")},
		nil, nil, nil, windowStart,
	)
	assert.Equal(t, 1, snap.OrderCount)
	assert.True(t, snap.Revenue.Equal(dec("15.00")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Rankings
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildSnapshot_TopProductsLimitaACinco(t *testing.T) {
	date := windowStart.AddDate(0, 0, 1)
	var sales []*entity.Sale
	// 6 productos con revenue creciente: 10, 20, ..., 60
	for i := 1; i <= 6; i++ {
		sales = append(sales, saleOf(date, fmt.Sprintf("p%d", i), 1, fmt.Sprintf("%d.00", i*10)))
	}

	snap := pulse.BuildSnapshot(sales, nil, nil, nil, windowStart)

	require.Len(t, snap.TopProducts, 5, "el ranking se corta en 5")
	assert.Equal(t, "p6", snap.TopProducts[0].ProductID, "primero el de mayor revenue")
	assert.Equal(t, "p2", snap.TopProducts[4].ProductID, "p1 (el menor) queda fuera")
}

func TestBuildSnapshot_EmpatesConservanOrdenDeAparicion(t *testing.T) {
	date := windowStart.AddDate(0, 0, 1)
	sales := []*entity.Sale{
		saleOf(date, "pa", 1, "30.00"),
		saleOf(date, "pb", 1, "30.00"),
		saleOf(date, "pc", 1, "50.00"),
	}

	snap := pulse.BuildSnapshot(sales, nil, nil, nil, windowStart)

	require.Len(t, snap.TopProducts, 3)
	assert.Equal(t, "pc", snap.TopProducts[0].ProductID)
	assert.Equal(t, "pa", snap.TopProducts[1].ProductID, "empate: gana el que apareció primero")
	assert.Equal(t, "pb", snap.TopProducts[2].ProductID)
}

func TestBuildSnapshot_GastosPorCategoria(t *testing.T) {
	date := windowStart.AddDate(0, 0, 2)
	expenses := []*entity.Expense{
		expenseOf(date, "rent", "500.00"),
		expenseOf(date, "payroll", "800.00"),
		{ID: "exp-x", CompanyID: "co-1", Title: "Sin categoría", Amount: dec("50.00"), ExpenseDate: date},
	}

	snap := pulse.BuildSnapshot(nil, expenses, nil, nil, windowStart)

	assert.True(t, snap.TotalExpenses.Equal(dec("1350.00")))
	assert.True(t, snap.ExpensesByCategory["other"].Equal(dec("50.00")), "categoría vacía cae en other")
	require.NotEmpty(t, snap.TopExpenseCategories)
	assert.Equal(t, "payroll", snap.TopExpenseCategories[0].Category, "ranking por monto descendente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Financiero
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildSnapshot_MargenConUnDecimal(t *testing.T) {
	date := windowStart.AddDate(0, 0, 1)
	snap := pulse.BuildSnapshot(
		[]*entity.Sale{saleOf(date, "p1", 3, "100.00")}, // revenue 300
		[]*entity.Expense{expenseOf(date, "rent", "100.00")},
		nil, nil, windowStart,
	)

	assert.True(t, snap.Profit.Equal(dec("200.00")))
	assert.True(t, snap.ProfitMargin.Equal(dec("66.7")), "margen 200/300 redondeado a 1 decimal, fue %s", snap.ProfitMargin)
}

func TestBuildSnapshot_MargenCeroSinRevenue(t *testing.T) {
	date := windowStart.AddDate(0, 0, 1)
	snap := pulse.BuildSnapshot(
		nil,
		[]*entity.Expense{expenseOf(date, "rent", "400.00")},
		nil, nil, windowStart,
	)

	assert.True(t, snap.Profit.Equal(dec("-400.00")), "profit puede ser negativo")
	assert.True(t, snap.ProfitMargin.IsZero(), "sin revenue el margen es 0, nunca división por cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildSnapshot_LowStock(t *testing.T) {
	low := productOf("p-low", 3, "10.00") // umbral default 10
	ok := productOf("p-ok", 50, "10.00")
	custom := productOf("p-custom", 15, "10.00")
	custom.LowStockThreshold = 20 // umbral propio: 15 <= 20 → bajo
	inactive := productOf("p-inactive", 1, "10.00")
	inactive.Status = entity.ProductStatusInactive

	snap := pulse.BuildSnapshot(nil, nil, []*entity.Product{low, ok, custom, inactive}, nil, windowStart)

	ids := make([]string, 0, len(snap.LowStock))
	for _, p := range snap.LowStock {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []string{"p-low", "p-custom"}, ids,
		"solo productos activos bajo su umbral efectivo; los inactivos no alertan")
	assert.Equal(t, 4, snap.TotalProducts)
}

func TestBuildSnapshot_Overstock(t *testing.T) {
	date := windowStart.AddDate(0, 0, 1)
	sales := []*entity.Sale{
		saleOf(date, "p-over", 2, "10.00"),  // vendidas 2, stock 7 > 6 → overstock
		saleOf(date, "p-justo", 2, "10.00"), // vendidas 2, stock 6 = 3×2 → no
	}
	products := []*entity.Product{
		productOf("p-over", 7, "10.00"),
		productOf("p-justo", 6, "10.00"),
		productOf("p-muerto", 1000, "10.00"), // sin ventas en la ventana: nunca overstock
	}

	snap := pulse.BuildSnapshot(sales, nil, products, nil, windowStart)

	require.Len(t, snap.Overstock, 1, "solo cuenta stock > 3× unidades vendidas con ventas > 0")
	assert.Equal(t, "p-over", snap.Overstock[0].ID)
}

func TestBuildSnapshot_ValorDeInventario(t *testing.T) {
	products := []*entity.Product{
		productOf("p1", 10, "2.50"), // 25.00
		productOf("p2", 4, "100.00"), // 400.00
	}
	snap := pulse.BuildSnapshot(nil, nil, products, nil, windowStart)
	assert.True(t, snap.TotalInventoryValue.Equal(dec("425.00")), "Σ price × stock")
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildSnapshot_SegmentosYTopClientes(t *testing.T) {
	customers := []*entity.Customer{
		customerOf("c1", entity.CustomerStatusVIP, "900.00"),
		customerOf("c2", entity.CustomerStatusActive, "100.00"),
		customerOf("c3", entity.CustomerStatusAtRisk, "300.00"),
		customerOf("c4", entity.CustomerStatusChurned, "0.00"),
	}

	snap := pulse.BuildSnapshot(nil, nil, nil, customers, windowStart)

	assert.Equal(t, 4, snap.TotalCustomers)
	assert.Equal(t, 1, snap.VIPCustomers)
	assert.Equal(t, 1, snap.AtRiskCustomers)
	assert.True(t, snap.TotalCustomerValue.Equal(dec("1300.00")))
	require.NotEmpty(t, snap.TopCustomers)
	assert.Equal(t, "c1", snap.TopCustomers[0].ID, "ranking por total_spent descendente")
}
