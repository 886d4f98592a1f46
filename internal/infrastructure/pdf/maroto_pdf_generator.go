// Package pdf implementa la generación del reporte Pulse en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  "Pulse Report" + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: hoy / semana / inventario / clientes                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INSIGHTS: tabla tipo | prioridad | título + mensaje        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/sanka-api/internal/application/dto"
	"github.com/jhoicas/sanka-api/internal/application/report"
	"github.com/jhoicas/sanka-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que implementa el puerto.
var _ report.PulseReportGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 17, Green: 94, Blue: 89}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorHigh     = &props.Color{Red: 190, Green: 60, Blue: 40}
	colorCritical = &props.Color{Red: 150, Green: 20, Blue: 20}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.PulseReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GeneratePulseReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GeneratePulseReport(
	_ context.Context,
	company *entity.Company,
	summary *dto.DashboardSummaryDTO,
	insights []*entity.PulseInsight,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Pulse Report", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRows(summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("INSIGHTS", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		}),
	)))
	if len(insights) == 0 {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New("No active insights. Generate a new batch from the dashboard.", props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
		)))
	}
	for _, ins := range insights {
		m.AddRows(insightRows(ins)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y título + fecha (der).
func headerRow(company *entity.Company) core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(company.BusinessType, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PULSE REPORT", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// kpiRows: los KPIs del dashboard en dos filas de cuatro celdas.
func kpiRows(s *dto.DashboardSummaryDTO) []core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		)
	}
	return []core.Row{
		row.New(14).Add(
			cell("Ventas de hoy", "$"+s.TodayRevenue.StringFixed(2)),
			cell("Órdenes de hoy", fmt.Sprintf("%d", s.TodayOrders)),
			cell("Ventas 7 días", "$"+s.WeekRevenue.StringFixed(2)),
			cell("Utilidad 7 días", "$"+s.WeekProfit.StringFixed(2)),
		),
		row.New(14).Add(
			cell("Gastos 7 días", "$"+s.WeekExpenses.StringFixed(2)),
			cell("Stock bajo", fmt.Sprintf("%d productos", s.LowStockCount)),
			cell("Valor inventario", "$"+s.TotalInventoryValue.StringFixed(2)),
			cell("Clientes", fmt.Sprintf("%d (%d VIP)", s.TotalCustomers, s.VIPCustomers)),
		),
	}
}

// insightRows: dos filas por insight (cabecera con tipo/prioridad y cuerpo).
func insightRows(ins *entity.PulseInsight) []core.Row {
	return []core.Row{
		row.New(6).Add(
			col.New(2).Add(text.New(ins.Type, props.Text{
				Size: 7, Style: fontstyle.Bold, Color: colorPrimary, Top: 1,
			})),
			col.New(2).Add(text.New(ins.Priority, props.Text{
				Size: 7, Style: fontstyle.Bold, Color: priorityColor(ins.Priority), Top: 1,
			})),
			col.New(8).Add(text.New(ins.Title, props.Text{
				Size: 9, Style: fontstyle.Bold, Top: 1,
			})),
		),
		row.New(8).Add(
			col.New(4),
			col.New(8).Add(text.New(ins.Message, props.Text{
				Size: 8, Color: colorGray, Top: 1,
			})),
		),
	}
}

func priorityColor(priority string) *props.Color {
	switch priority {
	case entity.InsightPriorityCritical:
		return colorCritical
	case entity.InsightPriorityHigh:
		return colorHigh
	default:
		return colorGray
	}
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
