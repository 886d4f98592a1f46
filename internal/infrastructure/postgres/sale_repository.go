package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sanka-api/internal/domain/entity"
	"github.com/jhoicas/sanka-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// Las líneas de la venta se guardan como JSONB en la misma fila: una venta se
// lee y escribe siempre completa.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta con sus líneas.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	items, err := json.Marshal(sale.Items)
	if err != nil {
		return fmt.Errorf("marshal sale items: %w", err)
	}
	query := `
		INSERT INTO sales (id, company_id, customer_id, sale_date, total_amount, payment_method, items, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		sale.ID, sale.CompanyID, sale.CustomerID, sale.SaleDate, sale.TotalAmount,
		sale.PaymentMethod, items, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, company_id, COALESCE(customer_id, ''), sale_date, total_amount, payment_method, items, created_at
		FROM sales WHERE id = $1`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// ListByCompany lista ventas por empresa con paginación, más recientes primero.
func (r *SaleRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, company_id, COALESCE(customer_id, ''), sale_date, total_amount, payment_method, items, created_at
		FROM sales WHERE company_id = $1 ORDER BY sale_date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

// ListByCompanySince devuelve las ventas con sale_date >= since, más recientes primero.
func (r *SaleRepo) ListByCompanySince(companyID string, since time.Time) ([]*entity.Sale, error) {
	query := `
		SELECT id, company_id, COALESCE(customer_id, ''), sale_date, total_amount, payment_method, items, created_at
		FROM sales WHERE company_id = $1 AND sale_date >= $2 ORDER BY sale_date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("list sales since: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var items []byte
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.CustomerID, &s.SaleDate, &s.TotalAmount,
		&s.PaymentMethod, &items, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &s.Items); err != nil {
			return nil, fmt.Errorf("unmarshal sale items: %w", err)
		}
	}
	return &s, nil
}

func collectSales(rows pgx.Rows) ([]*entity.Sale, error) {
	var result []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
