package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sanka-api/internal/application/dto"
	"github.com/jhoicas/sanka-api/internal/application/usecase"
	"github.com/jhoicas/sanka-api/internal/domain"
	"github.com/jhoicas/sanka-api/internal/domain/entity"
	"github.com/jhoicas/sanka-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test: repos en memoria + tx runner que simula rollback
// ──────────────────────────────────────────────────────────────────────────────

type memSaleRepo struct {
	sales []*entity.Sale
}

func (m *memSaleRepo) Create(s *entity.Sale) error {
	cp := *s
	m.sales = append(m.sales, &cp)
	return nil
}

func (m *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	for _, s := range m.sales {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memSaleRepo) ListByCompany(companyID string, _, _ int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range m.sales {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSaleRepo) ListByCompanySince(companyID string, since time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range m.sales {
		if s.CompanyID == companyID && !s.SaleDate.Before(since) {
			out = append(out, s)
		}
	}
	return out, nil
}

type memProductRepo struct {
	byID map[string]*entity.Product
}

func (m *memProductRepo) Create(p *entity.Product) error { m.byID[p.ID] = p; return nil }

func (m *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProductRepo) GetByCompanyAndSKU(string, string) (*entity.Product, error) {
	return nil, nil
}

func (m *memProductRepo) Update(p *entity.Product) error { m.byID[p.ID] = p; return nil }

func (m *memProductRepo) DecrementStock(productID string, qty int) error {
	p, ok := m.byID[productID]
	if !ok || p.StockQuantity < qty {
		return domain.ErrInsufficientStock
	}
	p.StockQuantity -= qty
	return nil
}

func (m *memProductRepo) ListByCompany(string, int, int) ([]*entity.Product, error) { return nil, nil }
func (m *memProductRepo) ListAllByCompany(string) ([]*entity.Product, error)        { return nil, nil }
func (m *memProductRepo) Delete(string) error                                       { return nil }

type memCustomerRepo struct {
	byID map[string]*entity.Customer
}

func (m *memCustomerRepo) Create(c *entity.Customer) error { m.byID[c.ID] = c; return nil }

func (m *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCustomerRepo) GetByCompanyAndEmail(string, string) (*entity.Customer, error) {
	return nil, nil
}

func (m *memCustomerRepo) Update(c *entity.Customer) error { m.byID[c.ID] = c; return nil }

func (m *memCustomerRepo) ListByCompany(string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}

func (m *memCustomerRepo) ListAllByCompany(string) ([]*entity.Customer, error) { return nil, nil }

// fakeTxRunner trabaja sobre copias profundas de los repos y solo aplica los
// cambios al estado real si fn termina sin error: el rollback de verdad lo da
// Postgres, acá se simula con copy-on-commit.
type fakeTxRunner struct {
	saleRepo     *memSaleRepo
	productRepo  *memProductRepo
	customerRepo *memCustomerRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	txSales := &memSaleRepo{sales: append([]*entity.Sale(nil), f.saleRepo.sales...)}
	txProducts := &memProductRepo{byID: make(map[string]*entity.Product, len(f.productRepo.byID))}
	for id, p := range f.productRepo.byID {
		cp := *p
		txProducts.byID[id] = &cp
	}
	txCustomers := &memCustomerRepo{byID: make(map[string]*entity.Customer, len(f.customerRepo.byID))}
	for id, c := range f.customerRepo.byID {
		cp := *c
		txCustomers.byID[id] = &cp
	}

	if err := fn(txSales, txProducts, txCustomers); err != nil {
		return err // rollback: el estado real no se toca
	}
	f.saleRepo.sales = txSales.sales
	f.productRepo.byID = txProducts.byID
	f.customerRepo.byID = txCustomers.byID
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func newSaleFixture() (*usecase.SaleUseCase, *memSaleRepo, *memProductRepo, *memCustomerRepo) {
	saleRepo := &memSaleRepo{}
	productRepo := &memProductRepo{byID: map[string]*entity.Product{
		"p1": {ID: "p1", CompanyID: "co-1", Name: "Vela de soja", Price: mustDec("12.50"), StockQuantity: 10, Status: entity.ProductStatusActive},
		"p2": {ID: "p2", CompanyID: "co-1", Name: "Difusor", Price: mustDec("30.00"), StockQuantity: 2, Status: entity.ProductStatusActive},
		"px": {ID: "px", CompanyID: "co-otra", Name: "Ajeno", Price: mustDec("5.00"), StockQuantity: 100, Status: entity.ProductStatusActive},
	}}
	customerRepo := &memCustomerRepo{byID: map[string]*entity.Customer{
		"c1": {ID: "c1", CompanyID: "co-1", Name: "Ana", TotalSpent: mustDec("100.00"), TotalOrders: 3},
	}}
	runner := &fakeTxRunner{saleRepo: saleRepo, productRepo: productRepo, customerRepo: customerRepo}
	return usecase.NewSaleUseCase(saleRepo, runner), saleRepo, productRepo, customerRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleCreate_PreciosSalenDelCatalogo(t *testing.T) {
	uc, _, productRepo, _ := newSaleFixture()

	out, err := uc.Create(context.Background(), "co-1", dto.CreateSaleRequest{
		PaymentMethod: "card",
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 2}, // 2 × 12.50 = 25.00
			{ProductID: "p2", Quantity: 1}, // 30.00
		},
	})
	require.NoError(t, err)

	assert.True(t, out.TotalAmount.Equal(mustDec("55.00")), "total = Σ precio catálogo × qty, fue %s", out.TotalAmount)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Vela de soja", out.Items[0].ProductName, "el nombre se denormaliza en la línea")
	assert.True(t, out.Items[0].UnitPrice.Equal(mustDec("12.50")))

	assert.Equal(t, 8, productRepo.byID["p1"].StockQuantity, "el stock se descuenta por línea")
	assert.Equal(t, 1, productRepo.byID["p2"].StockQuantity)
}

func TestSaleCreate_ActualizaAcumuladosDelCliente(t *testing.T) {
	uc, _, _, customerRepo := newSaleFixture()

	_, err := uc.Create(context.Background(), "co-1", dto.CreateSaleRequest{
		CustomerID: "c1",
		SaleDate:   "2024-06-10",
		Items:      []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	c := customerRepo.byID["c1"]
	assert.True(t, c.TotalSpent.Equal(mustDec("112.50")), "total_spent acumula el total de la venta")
	assert.Equal(t, 4, c.TotalOrders)
	require.NotNil(t, c.LastOrderDate)
	assert.Equal(t, "2024-06-10", c.LastOrderDate.Format("2006-01-02"))
}

func TestSaleCreate_VentaAnonimaNoTocaClientes(t *testing.T) {
	uc, saleRepo, _, customerRepo := newSaleFixture()

	_, err := uc.Create(context.Background(), "co-1", dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Len(t, saleRepo.sales, 1)
	assert.True(t, customerRepo.byID["c1"].TotalSpent.Equal(mustDec("100.00")), "venta sin cliente no acumula en nadie")
}

func TestSaleCreate_StockInsuficienteRevierteTodo(t *testing.T) {
	uc, saleRepo, productRepo, _ := newSaleFixture()

	// La primera línea alcanza, la segunda pide 3 con stock 2.
	_, err := uc.Create(context.Background(), "co-1", dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 3},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Empty(t, saleRepo.sales, "la venta no se registra")
	assert.Equal(t, 10, productRepo.byID["p1"].StockQuantity, "el descuento de la primera línea se revierte con la tx")
}

func TestSaleCreate_ProductoDeOtraEmpresaEsNotFound(t *testing.T) {
	uc, _, _, _ := newSaleFixture()

	_, err := uc.Create(context.Background(), "co-1", dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "px", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "no se vende catálogo ajeno")
}

func TestSaleCreate_Validaciones(t *testing.T) {
	uc, _, _, _ := newSaleFixture()

	_, err := uc.Create(context.Background(), "co-1", dto.CreateSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin ítems")

	_, err = uc.Create(context.Background(), "co-1", dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = uc.Create(context.Background(), "co-1", dto.CreateSaleRequest{
		SaleDate: "10/06/2024",
		Items:    []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha con formato incorrecto")
}
