package repository

import "github.com/jhoicas/sanka-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// DecrementStock descuenta qty unidades; devuelve domain.ErrInsufficientStock
	// si el stock resultante quedaría negativo.
	DecrementStock(productID string, qty int) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	// ListAllByCompany devuelve el catálogo completo (lo consume el pipeline de insights).
	ListAllByCompany(companyID string) ([]*entity.Product, error)
	Delete(id string) error
}
