package insights_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sanka-api/internal/application/insights"
	"github.com/jhoicas/sanka-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

// stubLLM devuelve una respuesta fija por llamada, en orden. Si se agota la
// lista, repite la última. Cualquier entrada "ERR" simula el modelo caído.
type stubLLM struct {
	responses []string
	calls     int
	prompts   []string
}

func (s *stubLLM) Invoke(_ context.Context, prompt string, _ json.RawMessage) (json.RawMessage, error) {
	s.prompts = append(s.prompts, prompt)
	i := s.calls
	if i >= len(s.responses) {
		i = len(s.responses) - 1
	}
	s.calls++
	r := s.responses[i]
	if r == "ERR" {
		return nil, errors.New("modelo no disponible")
	}
	return json.RawMessage(r), nil
}

// memInsightRepo guarda en memoria y puede fallar a partir de la creación N.
type memInsightRepo struct {
	stored  []*entity.PulseInsight
	failAt  int // 0 = nunca falla; n>0 = la n-ésima creación falla
	creates int
}

func (m *memInsightRepo) Create(ins *entity.PulseInsight) (*entity.PulseInsight, error) {
	m.creates++
	if m.failAt > 0 && m.creates >= m.failAt {
		return nil, errors.New("base de datos caída")
	}
	saved := *ins
	saved.ID = fmt.Sprintf("ins-%d", m.creates)
	m.stored = append(m.stored, &saved)
	return &saved, nil
}

func (m *memInsightRepo) GetByID(string) (*entity.PulseInsight, error)      { return nil, nil }
func (m *memInsightRepo) ListActive(string) ([]*entity.PulseInsight, error) { return m.stored, nil }
func (m *memInsightRepo) MarkRead(string) error                             { return nil }
func (m *memInsightRepo) Dismiss(string) error                              { return nil }

// oneInsight arma la respuesta JSON de un analizador con un solo candidato.
func oneInsight(title, priority string) string {
	return fmt.Sprintf(`{"insights":[{"title":%q,"message":"detalle","action_label":"Ver","priority":%q}]}`, title, priority)
}

var testNow = time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

// ──────────────────────────────────────────────────────────────────────────────
// Corrida feliz
// ──────────────────────────────────────────────────────────────────────────────

func TestPipeline_GeneraBatchEnOrdenDeEtapas(t *testing.T) {
	llm := &stubLLM{responses: []string{
		oneInsight("ventas", "high"),
		oneInsight("clientes", "medium"),
		oneInsight("inventario", "critical"),
		oneInsight("finanzas", "low"),
	}}
	repo := &memInsightRepo{}
	p := insights.NewPipeline(llm, repo)

	stored, err := p.Generate(context.Background(), insights.Input{CompanyID: "co-1"}, testNow, nil)
	require.NoError(t, err)
	require.Len(t, stored, 4, "una etapa por categoría, un insight por etapa")

	// Categoría y tipo los estampa el pipeline según la etapa, nunca el modelo.
	assert.Equal(t, entity.InsightCategorySales, stored[0].Category)
	assert.Equal(t, entity.InsightTypeOpportunity, stored[0].Type)
	assert.Equal(t, entity.InsightCategoryCustomers, stored[1].Category)
	assert.Equal(t, entity.InsightTypeTip, stored[1].Type)
	assert.Equal(t, entity.InsightCategoryInventory, stored[2].Category)
	assert.Equal(t, entity.InsightTypeAlert, stored[2].Type)
	assert.Equal(t, entity.InsightCategoryFinance, stored[3].Category)
	assert.Equal(t, entity.InsightTypeOpportunity, stored[3].Type)

	for _, ins := range stored {
		assert.Equal(t, "co-1", ins.CompanyID)
		assert.False(t, ins.IsRead, "los insights nacen sin leer")
		assert.False(t, ins.IsDismissed)
		assert.NotEmpty(t, ins.ID, "el store asigna el ID")
	}
}

func TestPipeline_TodosCompartenLaFechaDeLaCorrida(t *testing.T) {
	llm := &stubLLM{responses: []string{oneInsight("x", "high")}}
	repo := &memInsightRepo{}
	p := insights.NewPipeline(llm, repo)

	stored, err := p.Generate(context.Background(), insights.Input{CompanyID: "co-1"}, testNow, nil)
	require.NoError(t, err)

	wantDay := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	for _, ins := range stored {
		assert.True(t, ins.InsightDate.Equal(wantDay),
			"la fecha se trunca al día y es la misma para todo el batch, fue %s", ins.InsightDate)
	}
}

func TestPipeline_ReportaProgresoPorEtapa(t *testing.T) {
	llm := &stubLLM{responses: []string{oneInsight("x", "high")}}
	p := insights.NewPipeline(llm, &memInsightRepo{})

	var labels []string
	_, err := p.Generate(context.Background(), insights.Input{CompanyID: "co-1"}, testNow, func(label string) {
		labels = append(labels, label)
	})
	require.NoError(t, err)

	require.Len(t, labels, 5, "4 etapas de análisis + guardado")
	assert.Contains(t, labels[0], "sales trends")
	assert.Equal(t, "Saving insights...", labels[4])
}

// ──────────────────────────────────────────────────────────────────────────────
// Coerción de prioridad
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizePriority_SoloHighYCriticalSobreviven(t *testing.T) {
	cases := map[string]string{
		"high":     "high",
		"critical": "critical",
		"low":      "medium", // low también colapsa a medium
		"medium":   "medium",
		"urgent":   "medium", // valores inventados por el modelo
		"":         "medium",
	}
	for in, want := range cases {
		assert.Equal(t, want, insights.NormalizePriority(in), "prioridad de entrada %q", in)
	}
}

func TestPipeline_PrioridadSeCoercionaAlPersistir(t *testing.T) {
	llm := &stubLLM{responses: []string{
		oneInsight("a", "low"),
		oneInsight("b", "urgentísimo"),
		oneInsight("c", "critical"),
		oneInsight("d", "high"),
	}}
	repo := &memInsightRepo{}
	p := insights.NewPipeline(llm, repo)

	stored, err := p.Generate(context.Background(), insights.Input{CompanyID: "co-1"}, testNow, nil)
	require.NoError(t, err)
	require.Len(t, stored, 4)

	assert.Equal(t, "medium", stored[0].Priority)
	assert.Equal(t, "medium", stored[1].Priority)
	assert.Equal(t, "critical", stored[2].Priority)
	assert.Equal(t, "high", stored[3].Priority)
}

// ──────────────────────────────────────────────────────────────────────────────
// Política de fallos
// ──────────────────────────────────────────────────────────────────────────────

func TestPipeline_FalloDeAnalisisNoPersisteNada(t *testing.T) {
	// La tercera etapa (inventario) falla: nada debe llegar al store, ni siquiera
	// los candidatos de las dos etapas que ya habían respondido bien.
	llm := &stubLLM{responses: []string{
		oneInsight("ventas", "high"),
		oneInsight("clientes", "high"),
		"ERR",
	}}
	repo := &memInsightRepo{}
	p := insights.NewPipeline(llm, repo)

	_, err := p.Generate(context.Background(), insights.Input{CompanyID: "co-1"}, testNow, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inventory", "el error identifica la categoría que falló")
	assert.Zero(t, repo.creates, "ninguna creación antes de completar todos los análisis")
}

func TestPipeline_RespuestaMalformadaAbortaLaCorrida(t *testing.T) {
	llm := &stubLLM{responses: []string{`esto no es JSON {`}}
	repo := &memInsightRepo{}
	p := insights.NewPipeline(llm, repo)

	_, err := p.Generate(context.Background(), insights.Input{CompanyID: "co-1"}, testNow, nil)
	require.Error(t, err)
	assert.Zero(t, repo.creates)
}

func TestPipeline_RespuestaSinCampoInsightsEsFatal(t *testing.T) {
	llm := &stubLLM{responses: []string{`{"otra_cosa": []}`}}
	p := insights.NewPipeline(llm, &memInsightRepo{})

	_, err := p.Generate(context.Background(), insights.Input{CompanyID: "co-1"}, testNow, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sin campo insights")
}

func TestPipeline_EtapaSinInsightsEsValida(t *testing.T) {
	// Un arreglo vacío es distinto de un campo ausente: etapa sin hallazgos.
	llm := &stubLLM{responses: []string{`{"insights":[]}`}}
	repo := &memInsightRepo{}
	p := insights.NewPipeline(llm, repo)

	stored, err := p.Generate(context.Background(), insights.Input{CompanyID: "co-1"}, testNow, nil)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestPipeline_FalloDelStoreAMitadDeBatchNoRevierte(t *testing.T) {
	llm := &stubLLM{responses: []string{oneInsight("x", "high")}}
	repo := &memInsightRepo{failAt: 3} // la tercera creación falla
	p := insights.NewPipeline(llm, repo)

	_, err := p.Generate(context.Background(), insights.Input{CompanyID: "co-1"}, testNow, nil)
	require.Error(t, err)
	// Sin rollback compensatorio: los dos primeros registros quedan.
	assert.Len(t, repo.stored, 2, "los insights creados antes del fallo permanecen")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventana
// ──────────────────────────────────────────────────────────────────────────────

func TestWindowStart_TreintaDiasAntesDelInicioDelDia(t *testing.T) {
	now := time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC)
	want := time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC)
	assert.True(t, insights.WindowStart(now).Equal(want),
		"la ventana arranca 30 días antes de la medianoche de hoy, fue %s", insights.WindowStart(now))
}

func TestPipeline_PromptsIncluyenCifrasDelSnapshot(t *testing.T) {
	llm := &stubLLM{responses: []string{`{"insights":[]}`}}
	p := insights.NewPipeline(llm, &memInsightRepo{})

	in := insights.Input{
		CompanyID: "co-1",
		Products: []*entity.Product{{
			ID: "p1", CompanyID: "co-1", Name: "Taza esmaltada",
			StockQuantity: 2, Status: entity.ProductStatusActive,
		}},
	}
	_, err := p.Generate(context.Background(), in, testNow, nil)
	require.NoError(t, err)
	require.Equal(t, 4, llm.calls, "una llamada por etapa")

	// El prompt de inventario (tercera etapa) debe mencionar el producto bajo de stock.
	assert.True(t, strings.Contains(llm.prompts[2], "Taza esmaltada"),
		"el prompt de inventario lista los productos con stock bajo")
}
