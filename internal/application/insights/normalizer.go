package insights

import (
	"time"

	"github.com/jhoicas/sanka-api/internal/domain/entity"
)

// NormalizePriority colapsa la prioridad del modelo al conjunto cerrado de la
// aplicación: solo "high" y "critical" sobreviven tal cual; todo lo demás
// (incluido "low", vacío o valores inventados como "urgent") queda en "medium".
// Comportamiento observado del producto; ver DESIGN.md.
func NormalizePriority(p string) string {
	switch p {
	case entity.InsightPriorityHigh:
		return entity.InsightPriorityHigh
	case entity.InsightPriorityCritical:
		return entity.InsightPriorityCritical
	default:
		return entity.InsightPriorityMedium
	}
}

// normalize convierte un candidato en el registro persistible: etiqueta
// categoría/tipo de la etapa, coerciona la prioridad y estampa la fecha de la
// corrida. is_read e is_dismissed nacen siempre en false.
func normalize(c candidate, st stage, companyID string, day time.Time) *entity.PulseInsight {
	return &entity.PulseInsight{
		CompanyID:   companyID,
		Title:       c.Title,
		Message:     c.Message,
		Type:        st.insightType,
		Category:    st.category,
		Priority:    NormalizePriority(c.Priority),
		ActionLabel: c.ActionLabel,
		InsightDate: day,
		IsRead:      false,
		IsDismissed: false,
	}
}

// dateOnly trunca un instante a su fecha (00:00 en la zona del instante).
// Todos los insights de una misma corrida comparten esta fecha.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
