package insights

import (
	"fmt"
	"strings"

	"github.com/jhoicas/sanka-api/internal/domain/pulse"
)

// Los prompts se envían en inglés: es el idioma del producto y el que mejor
// rinde con los modelos para este tipo de análisis. Cada prompt resume la parte
// del snapshot que le corresponde a su analizador y pide 2-3 insights accionables.

const (
	promptLowStockLimit  = 5 // productos con stock bajo listados en el prompt
	promptOverstockLimit = 3 // productos sobre-stockeados listados en el prompt
)

func salesPrompt(s *pulse.Snapshot) string {
	var b strings.Builder
	b.WriteString("Analyze this sales data and provide actionable insights:\n\n")
	b.WriteString("Top 5 Products (last 30 days):\n")
	for _, p := range s.TopProducts {
		fmt.Fprintf(&b, "- %s: %d units sold, $%s revenue\n", p.Name, p.Quantity, p.Revenue.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal Products: %d\n", s.TotalProducts)
	fmt.Fprintf(&b, "Total Sales: %d orders\n", s.OrderCount)
	fmt.Fprintf(&b, "Total Revenue: $%s\n", s.Revenue.StringFixed(2))
	b.WriteString(`
Provide 2-3 specific, actionable insights about:
1. Which products to stock more of based on demand
2. Forecasting and inventory recommendations
3. Product bundling or promotion opportunities`)
	return b.String()
}

func customerPrompt(s *pulse.Snapshot) string {
	var b strings.Builder
	b.WriteString("Analyze customer data and identify patterns:\n\n")
	fmt.Fprintf(&b, "Total Customers: %d\n", s.TotalCustomers)
	fmt.Fprintf(&b, "VIP Customers: %d\n", s.VIPCustomers)
	fmt.Fprintf(&b, "At-Risk Customers: %d\n", s.AtRiskCustomers)
	fmt.Fprintf(&b, "Total Customer Lifetime Value: $%s\n", s.TotalCustomerValue.StringFixed(2))
	b.WriteString("\nTop 5 Customers by Spend:\n")
	for _, c := range s.TopCustomers {
		fmt.Fprintf(&b, "- %s: $%s (%d orders)\n", c.Name, c.TotalSpent.StringFixed(2), c.TotalOrders)
	}
	b.WriteString(`
Provide 2-3 specific insights about:
1. Customer retention opportunities
2. Targeted promotion suggestions for different customer segments
3. Re-engagement strategies for at-risk customers`)
	return b.String()
}

func inventoryPrompt(s *pulse.Snapshot) string {
	var b strings.Builder
	b.WriteString("Analyze inventory situation:\n\n")
	fmt.Fprintf(&b, "Low Stock Products (%d):\n", len(s.LowStock))
	for i, p := range s.LowStock {
		if i == promptLowStockLimit {
			break
		}
		fmt.Fprintf(&b, "- %s: %d units (threshold: %d)\n", p.Name, p.StockQuantity, p.EffectiveLowStockThreshold())
	}
	fmt.Fprintf(&b, "\nPotential Overstock (%d):\n", len(s.Overstock))
	for i, p := range s.Overstock {
		if i == promptOverstockLimit {
			break
		}
		fmt.Fprintf(&b, "- %s: %d units in stock\n", p.Name, p.StockQuantity)
	}
	fmt.Fprintf(&b, "\nTotal Inventory Value: $%s\n", s.TotalInventoryValue.StringFixed(2))
	b.WriteString(`
Provide 2-3 specific insights about:
1. Urgent restocking needs and quantities
2. Overstock reduction strategies
3. Inventory optimization opportunities`)
	return b.String()
}

func financialPrompt(s *pulse.Snapshot) string {
	var b strings.Builder
	b.WriteString("Analyze financial performance (last 30 days):\n\n")
	fmt.Fprintf(&b, "Revenue: $%s\n", s.Revenue.StringFixed(2))
	fmt.Fprintf(&b, "Expenses: $%s\n", s.TotalExpenses.StringFixed(2))
	fmt.Fprintf(&b, "Net Profit: $%s\n", s.Profit.StringFixed(2))
	fmt.Fprintf(&b, "Profit Margin: %s%%\n", s.ProfitMargin.StringFixed(1))
	b.WriteString("\nTop Expense Categories:\n")
	for _, c := range s.TopExpenseCategories {
		fmt.Fprintf(&b, "- %s: $%s\n", strings.ReplaceAll(c.Category, "_", " "), c.Amount.StringFixed(2))
	}
	b.WriteString(`
Provide 2-3 specific insights about:
1. Cost-saving opportunities in high-expense categories
2. Profit margin improvement strategies
3. Cash flow optimization recommendations`)
	return b.String()
}
