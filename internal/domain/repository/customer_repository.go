package repository

import "github.com/jhoicas/sanka-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByCompanyAndEmail(companyID, email string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error)
	// ListAllByCompany devuelve todos los clientes (pipeline de insights y segmentación).
	ListAllByCompany(companyID string) ([]*entity.Customer, error)
}
