package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sanka-api/internal/application/dto"
	"github.com/jhoicas/sanka-api/internal/domain"
	"github.com/jhoicas/sanka-api/internal/domain/entity"
	"github.com/jhoicas/sanka-api/internal/domain/repository"
)

// SaleTxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Registrar una venta toca tres tablas (venta,
// stock, acumulados del cliente) y debe ser atómico.
type SaleTxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}

// SaleUseCase registra ventas y lista el histórico.
type SaleUseCase struct {
	saleRepo repository.SaleRepository
	txRunner SaleTxRunner
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(saleRepo repository.SaleRepository, txRunner SaleTxRunner) *SaleUseCase {
	return &SaleUseCase{saleRepo: saleRepo, txRunner: txRunner}
}

// Create registra una venta. Los precios salen del catálogo al momento de la
// venta, nunca del cliente HTTP. En la misma transacción: crea la venta,
// descuenta stock por línea y actualiza los acumulados del cliente.
func (uc *SaleUseCase) Create(ctx context.Context, companyID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la venta necesita al menos un ítem", domain.ErrInvalidInput)
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: cantidad inválida para producto %s", domain.ErrInvalidInput, item.ProductID)
		}
	}

	saleDate := time.Now()
	if in.SaleDate != "" {
		parsed, err := time.Parse("2006-01-02", in.SaleDate)
		if err != nil {
			return nil, fmt.Errorf("%w: sale_date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		saleDate = parsed
	}

	sale := &entity.Sale{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		CustomerID:    in.CustomerID,
		SaleDate:      saleDate,
		TotalAmount:   decimal.Zero,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
	) error {
		for _, item := range in.Items {
			product, err := productRepo.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil || product.CompanyID != companyID {
				return fmt.Errorf("%w: producto %s", domain.ErrNotFound, item.ProductID)
			}
			if err := productRepo.DecrementStock(product.ID, item.Quantity); err != nil {
				return err
			}
			lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			sale.Items = append(sale.Items, entity.SaleItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   product.Price,
				Total:       lineTotal,
			})
			sale.TotalAmount = sale.TotalAmount.Add(lineTotal)
		}

		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		// Acumulados del cliente solo para ventas con cliente asociado.
		if sale.CustomerID != "" {
			customer, err := customerRepo.GetByID(sale.CustomerID)
			if err != nil {
				return err
			}
			if customer == nil || customer.CompanyID != companyID {
				return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, sale.CustomerID)
			}
			customer.TotalSpent = customer.TotalSpent.Add(sale.TotalAmount)
			customer.TotalOrders++
			orderDate := sale.SaleDate
			customer.LastOrderDate = &orderDate
			customer.UpdatedAt = time.Now()
			if err := customerRepo.Update(customer); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetByID obtiene una venta por ID.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// List lista ventas por empresa con paginación, más recientes primero.
func (uc *SaleUseCase) List(companyID string, limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.saleRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{Sales: items, Count: len(items)}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		SaleDate:      s.SaleDate,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: s.PaymentMethod,
		Items:         items,
		CreatedAt:     s.CreatedAt,
	}
}
