// Package insights implementa el motor de recomendaciones: agrega los datos
// transaccionales del negocio, pide a un modelo de lenguaje insights por
// categoría (ventas, clientes, inventario, finanzas) y persiste el batch
// normalizado como registros PulseInsight.
package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/sanka-api/internal/application/ports"
	"github.com/jhoicas/sanka-api/internal/domain/entity"
	"github.com/jhoicas/sanka-api/internal/domain/pulse"
	"github.com/jhoicas/sanka-api/internal/domain/repository"
)

// WindowDays tamaño de la ventana de recencia del análisis.
const WindowDays = 30

// stageSaving etiqueta de progreso de la fase de persistencia.
const stageSaving = "Saving insights..."

// Input colecciones crudas de una corrida del pipeline. El caller decide de
// dónde salen (repos en producción, fixtures en tests).
type Input struct {
	CompanyID string
	Sales     []*entity.Sale
	Expenses  []*entity.Expense
	Products  []*entity.Product
	Customers []*entity.Customer
}

// ProgressFunc recibe la etiqueta humana de la etapa en curso. Solo informativo:
// no afecta el contrato de corrección del pipeline. Puede ser nil.
type ProgressFunc func(stageLabel string)

// Pipeline orquesta una corrida completa: Agregador → 4 analizadores en orden
// fijo → normalización → una creación secuencial por insight.
//
// Política de fallos: cualquier error (modelo caído, respuesta malformada,
// fallo del store) aborta la corrida entera sin reintentos; no hay reporte de
// éxito parcial. Si el store falla a mitad del batch, los registros ya creados
// permanecen (ventana de inconsistencia conocida, heredada del producto).
type Pipeline struct {
	llm         ports.LLMService
	insightRepo repository.InsightRepository
}

// NewPipeline construye el pipeline con sus dos colaboradores externos.
func NewPipeline(llm ports.LLMService, insightRepo repository.InsightRepository) *Pipeline {
	return &Pipeline{llm: llm, insightRepo: insightRepo}
}

// WindowStart devuelve el inicio de la ventana de análisis: 30 días antes del
// inicio del día de now.
func WindowStart(now time.Time) time.Time {
	return dateOnly(now).AddDate(0, 0, -WindowDays)
}

// Generate ejecuta una corrida del pipeline y devuelve el batch persistido en
// orden determinista: categorías [sales, customers, inventory, finance] y,
// dentro de cada categoría, el orden en que el modelo devolvió los candidatos.
//
// now se recibe explícito (en lugar de leer el reloj adentro) para que las
// corridas sean deterministas y testeables.
func (p *Pipeline) Generate(ctx context.Context, in Input, now time.Time, progress ProgressFunc) ([]*entity.PulseInsight, error) {
	snap := pulse.BuildSnapshot(in.Sales, in.Expenses, in.Products, in.Customers, WindowStart(now))
	day := dateOnly(now)

	// Primero todos los análisis: si cualquiera falla, no se persiste nada.
	batch := make([]*entity.PulseInsight, 0, len(stages)*3)
	for _, st := range stages {
		report(progress, st.stageLabel)
		candidates, err := analyze(ctx, p.llm, st, snap)
		if err != nil {
			return nil, fmt.Errorf("insights: análisis de %s: %w", st.category, err)
		}
		for _, c := range candidates {
			batch = append(batch, normalize(c, st, in.CompanyID, day))
		}
	}

	report(progress, stageSaving)
	stored := make([]*entity.PulseInsight, 0, len(batch))
	for _, ins := range batch {
		saved, err := p.insightRepo.Create(ins)
		if err != nil {
			// Sin rollback compensatorio: los creados quedan. Documentado.
			return nil, fmt.Errorf("insights: guardar insight %q: %w", ins.Title, err)
		}
		stored = append(stored, saved)
	}
	return stored, nil
}

func report(progress ProgressFunc, label string) {
	if progress != nil {
		progress(label)
	}
}
