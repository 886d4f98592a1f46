// Package pulse contiene la lógica pura del motor de insights: la agregación de
// ventas, gastos, productos y clientes en un snapshot inmutable que consumen los
// cuatro analizadores. Sin dependencias de infraestructura; determinista para
// entradas fijas, lo que permite probarlo sin mocks.
package pulse

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/sanka-api/internal/domain/entity"
)

const (
	// topN tamaño de los rankings del snapshot (productos, categorías de gasto, clientes).
	topN = 5

	// overstockFactor un producto se considera sobre-stockeado cuando su stock supera
	// overstockFactor × unidades vendidas en la ventana. Política fija del producto.
	overstockFactor = 3
)

var hundred = decimal.NewFromInt(100)

// ProductSales acumulado de ventas de un producto dentro de la ventana.
type ProductSales struct {
	ProductID string
	Name      string
	Quantity  int
	Revenue   decimal.Decimal
}

// CategoryExpense total de gasto de una categoría dentro de la ventana.
type CategoryExpense struct {
	Category string
	Amount   decimal.Decimal
}

// Snapshot estadísticas derivadas de una corrida del pipeline. Inmutable: los
// analizadores solo lo leen.
type Snapshot struct {
	WindowStart time.Time

	// Ventas (ventana)
	OrderCount   int
	Revenue      decimal.Decimal
	ProductSales map[string]*ProductSales // por product_id
	TopProducts  []ProductSales           // top 5 por revenue descendente, empates en orden de aparición

	// Gastos (ventana)
	TotalExpenses        decimal.Decimal
	ExpensesByCategory   map[string]decimal.Decimal
	TopExpenseCategories []CategoryExpense // top 5 por monto descendente

	// Financiero (ventana)
	Profit       decimal.Decimal
	ProfitMargin decimal.Decimal // porcentaje con 1 decimal; 0 cuando Revenue es 0

	// Inventario (stock actual, no ventaneado)
	TotalProducts       int
	LowStock            []*entity.Product // activos con stock <= umbral
	Overstock           []*entity.Product // stock > 3× unidades vendidas en la ventana (y ventas > 0)
	TotalInventoryValue decimal.Decimal   // Σ price × stock sobre todos los productos

	// Clientes (acumulados históricos)
	TotalCustomers     int
	VIPCustomers       int
	AtRiskCustomers    int
	TotalCustomerValue decimal.Decimal    // Σ total_spent
	TopCustomers       []*entity.Customer // top 5 por total_spent descendente
}

// BuildSnapshot reduce las colecciones crudas al snapshot de la ventana.
// Ventas y gastos se filtran a fecha >= windowStart; el inventario y los clientes
// se miran completos (el sobre-stock cruza ventas ventaneadas contra stock total).
// No muta sus argumentos.
func BuildSnapshot(
	sales []*entity.Sale,
	expenses []*entity.Expense,
	products []*entity.Product,
	customers []*entity.Customer,
	windowStart time.Time,
) *Snapshot {
	s := &Snapshot{
		WindowStart:        windowStart,
		Revenue:            decimal.Zero,
		TotalExpenses:      decimal.Zero,
		ProductSales:       make(map[string]*ProductSales),
		ExpensesByCategory: make(map[string]decimal.Decimal),
	}

	// ── Ventas ventaneadas: acumulado por producto y revenue total ────────────
	// El orden de primera aparición se conserva para que los empates del ranking
	// sean deterministas.
	var productOrder []string
	for _, sale := range sales {
		if sale.SaleDate.Before(windowStart) {
			continue
		}
		s.OrderCount++
		s.Revenue = s.Revenue.Add(sale.TotalAmount)
		for _, item := range sale.Items {
			ps, ok := s.ProductSales[item.ProductID]
			if !ok {
				ps = &ProductSales{ProductID: item.ProductID, Name: item.ProductName, Revenue: decimal.Zero}
				s.ProductSales[item.ProductID] = ps
				productOrder = append(productOrder, item.ProductID)
			}
			ps.Quantity += item.Quantity
			ps.Revenue = ps.Revenue.Add(item.Total)
		}
	}

	ranked := make([]ProductSales, 0, len(productOrder))
	for _, id := range productOrder {
		ranked = append(ranked, *s.ProductSales[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})
	s.TopProducts = topSlice(ranked, topN)

	// ── Gastos ventaneados por categoría ──────────────────────────────────────
	var categoryOrder []string
	for _, e := range expenses {
		if e.ExpenseDate.Before(windowStart) {
			continue
		}
		s.TotalExpenses = s.TotalExpenses.Add(e.Amount)
		cat := e.Category
		if cat == "" {
			cat = "other"
		}
		if _, ok := s.ExpensesByCategory[cat]; !ok {
			categoryOrder = append(categoryOrder, cat)
		}
		s.ExpensesByCategory[cat] = s.ExpensesByCategory[cat].Add(e.Amount)
	}

	cats := make([]CategoryExpense, 0, len(categoryOrder))
	for _, cat := range categoryOrder {
		cats = append(cats, CategoryExpense{Category: cat, Amount: s.ExpensesByCategory[cat]})
	}
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].Amount.GreaterThan(cats[j].Amount)
	})
	s.TopExpenseCategories = topSlice(cats, topN)

	// ── Financiero ────────────────────────────────────────────────────────────
	s.Profit = s.Revenue.Sub(s.TotalExpenses)
	if s.Revenue.IsPositive() {
		s.ProfitMargin = s.Profit.Div(s.Revenue).Mul(hundred).Round(1)
	} else {
		// Margen 0 con revenue 0, sin importar los gastos (nunca división por cero)
		s.ProfitMargin = decimal.Zero
	}

	// ── Inventario ────────────────────────────────────────────────────────────
	s.TotalProducts = len(products)
	s.TotalInventoryValue = decimal.Zero
	for _, p := range products {
		s.TotalInventoryValue = s.TotalInventoryValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.StockQuantity))))
		if p.IsLowStock() {
			s.LowStock = append(s.LowStock, p)
		}
		// Un producto sin ventas recientes nunca se marca overstock, sin importar su stock.
		if ps, ok := s.ProductSales[p.ID]; ok && ps.Quantity > 0 && p.StockQuantity > ps.Quantity*overstockFactor {
			s.Overstock = append(s.Overstock, p)
		}
	}

	// ── Clientes ──────────────────────────────────────────────────────────────
	s.TotalCustomers = len(customers)
	s.TotalCustomerValue = decimal.Zero
	rankedCustomers := make([]*entity.Customer, 0, len(customers))
	for _, c := range customers {
		s.TotalCustomerValue = s.TotalCustomerValue.Add(c.TotalSpent)
		switch c.Status {
		case entity.CustomerStatusVIP:
			s.VIPCustomers++
		case entity.CustomerStatusAtRisk:
			s.AtRiskCustomers++
		}
		rankedCustomers = append(rankedCustomers, c)
	}
	sort.SliceStable(rankedCustomers, func(i, j int) bool {
		return rankedCustomers[i].TotalSpent.GreaterThan(rankedCustomers[j].TotalSpent)
	})
	s.TopCustomers = topSlice(rankedCustomers, topN)

	return s
}

// topSlice devuelve los primeros n elementos (o todos si hay menos).
func topSlice[T any](in []T, n int) []T {
	if len(in) > n {
		return in[:n]
	}
	return in
}
