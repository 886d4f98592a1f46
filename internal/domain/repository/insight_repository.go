package repository

import "github.com/jhoicas/sanka-api/internal/domain/entity"

// InsightRepository define el puerto de persistencia para PulseInsight.
// Create asigna el ID y devuelve el registro almacenado: es el único contrato que
// el pipeline necesita del store. List/MarkRead/Dismiss los usa el feed de la UI.
type InsightRepository interface {
	Create(insight *entity.PulseInsight) (*entity.PulseInsight, error)
	GetByID(id string) (*entity.PulseInsight, error)
	// ListActive devuelve los insights no descartados, más recientes primero.
	ListActive(companyID string) ([]*entity.PulseInsight, error)
	MarkRead(id string) error
	Dismiss(id string) error
}
