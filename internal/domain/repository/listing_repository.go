package repository

import "github.com/jhoicas/sanka-api/internal/domain/entity"

// ListingRepository define el puerto de persistencia para MarketplaceListing.
type ListingRepository interface {
	Create(listing *entity.MarketplaceListing) error
	GetByID(id string) (*entity.MarketplaceListing, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.MarketplaceListing, error)
	ListByProduct(productID string) ([]*entity.MarketplaceListing, error)
	UpdateStatus(id, status string) error
}
