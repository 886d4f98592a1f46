package repository

import (
	"time"

	"github.com/jhoicas/sanka-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale. Las ventas son
// inmutables: no hay Update ni Delete.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Sale, error)
	// ListByCompanySince devuelve las ventas con sale_date >= since, más recientes primero.
	ListByCompanySince(companyID string, since time.Time) ([]*entity.Sale, error)
}
