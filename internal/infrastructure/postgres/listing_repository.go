package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sanka-api/internal/domain"
	"github.com/jhoicas/sanka-api/internal/domain/entity"
	"github.com/jhoicas/sanka-api/internal/domain/repository"
)

var _ repository.ListingRepository = (*ListingRepo)(nil)

const listingColumns = `id, company_id, product_id, product_name, marketplace, listing_title, listing_description, price, quantity, status, sync_enabled, last_synced, created_at, updated_at`

// ListingRepo implementación del puerto ListingRepository sobre PostgreSQL.
type ListingRepo struct {
	q Querier
}

// NewListingRepository construye el adaptador de persistencia para publicaciones.
func NewListingRepository(q Querier) *ListingRepo {
	return &ListingRepo{q: q}
}

// Create persiste una publicación.
func (r *ListingRepo) Create(listing *entity.MarketplaceListing) error {
	query := `
		INSERT INTO marketplace_listings (` + listingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		listing.ID, listing.CompanyID, listing.ProductID, listing.ProductName,
		listing.Marketplace, listing.ListingTitle, listing.ListingDescription,
		listing.Price, listing.Quantity, listing.Status, listing.SyncEnabled,
		listing.LastSynced, listing.CreatedAt, listing.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}
	return nil
}

// GetByID obtiene una publicación por ID.
func (r *ListingRepo) GetByID(id string) (*entity.MarketplaceListing, error) {
	query := `SELECT ` + listingColumns + ` FROM marketplace_listings WHERE id = $1`
	l, err := scanListing(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return l, nil
}

// ListByCompany lista publicaciones por empresa con paginación.
func (r *ListingRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.MarketplaceListing, error) {
	query := `SELECT ` + listingColumns + ` FROM marketplace_listings
		WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()
	return collectListings(rows)
}

// ListByProduct devuelve las publicaciones de un producto.
func (r *ListingRepo) ListByProduct(productID string) ([]*entity.MarketplaceListing, error) {
	query := `SELECT ` + listingColumns + ` FROM marketplace_listings
		WHERE product_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list listings by product: %w", err)
	}
	defer rows.Close()
	return collectListings(rows)
}

// UpdateStatus cambia el estado de una publicación.
func (r *ListingRepo) UpdateStatus(id, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE marketplace_listings SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update listing status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanListing(row pgx.Row) (*entity.MarketplaceListing, error) {
	var l entity.MarketplaceListing
	err := row.Scan(
		&l.ID, &l.CompanyID, &l.ProductID, &l.ProductName, &l.Marketplace,
		&l.ListingTitle, &l.ListingDescription, &l.Price, &l.Quantity, &l.Status,
		&l.SyncEnabled, &l.LastSynced, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func collectListings(rows pgx.Rows) ([]*entity.MarketplaceListing, error) {
	var result []*entity.MarketplaceListing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		result = append(result, l)
	}
	return result, rows.Err()
}
