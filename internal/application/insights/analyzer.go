package insights

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/sanka-api/internal/application/ports"
	"github.com/jhoicas/sanka-api/internal/domain/entity"
	"github.com/jhoicas/sanka-api/internal/domain/pulse"
)

// insightSchema es el JSON Schema fijo que todo analizador exige al modelo:
// un objeto con un arreglo insights de {title, message, action_label, priority}.
var insightSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"insights": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"title": {"type": "string"},
					"message": {"type": "string"},
					"action_label": {"type": "string"},
					"priority": {"type": "string"}
				}
			}
		}
	}
}`)

// candidate es un insight crudo tal como lo devuelve el modelo, antes de
// etiquetado de categoría/tipo y de coerción de prioridad.
type candidate struct {
	Title       string `json:"title"`
	Message     string `json:"message"`
	ActionLabel string `json:"action_label"`
	Priority    string `json:"priority"`
}

type analyzerResponse struct {
	Insights []candidate `json:"insights"`
}

// stage es uno de los cuatro analizadores del pipeline. La categoría y el tipo
// los asigna el pipeline, nunca el modelo; stageLabel es la etiqueta de progreso
// que la UI muestra durante la corrida.
type stage struct {
	category    string
	insightType string
	stageLabel  string
	buildPrompt func(*pulse.Snapshot) string
}

// stages en orden fijo de ejecución y de salida: sales, customers, inventory,
// finance. El orden del batch final depende de esta lista, no del tiempo de
// respuesta del modelo.
var stages = []stage{
	{
		category:    entity.InsightCategorySales,
		insightType: entity.InsightTypeOpportunity,
		stageLabel:  "Analyzing sales trends and top products...",
		buildPrompt: salesPrompt,
	},
	{
		category:    entity.InsightCategoryCustomers,
		insightType: entity.InsightTypeTip,
		stageLabel:  "Detecting customer purchasing patterns...",
		buildPrompt: customerPrompt,
	},
	{
		category:    entity.InsightCategoryInventory,
		insightType: entity.InsightTypeAlert,
		stageLabel:  "Checking inventory levels and forecasting...",
		buildPrompt: inventoryPrompt,
	},
	{
		category:    entity.InsightCategoryFinance,
		insightType: entity.InsightTypeOpportunity,
		stageLabel:  "Analyzing financials and finding opportunities...",
		buildPrompt: financialPrompt,
	},
}

// analyze invoca el LLM con el prompt de la etapa y decodifica la respuesta.
// Una respuesta que no cumple el schema (sin campo insights, tipos incorrectos)
// es fatal para la corrida: el pipeline no genera resultados parciales.
func analyze(ctx context.Context, llm ports.LLMService, st stage, snap *pulse.Snapshot) ([]candidate, error) {
	raw, err := llm.Invoke(ctx, st.buildPrompt(snap), insightSchema)
	if err != nil {
		return nil, fmt.Errorf("invocar modelo: %w", err)
	}
	var resp analyzerResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("respuesta malformada del modelo: %w", err)
	}
	if resp.Insights == nil {
		return nil, fmt.Errorf("respuesta del modelo sin campo insights")
	}
	return resp.Insights, nil
}
