package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GenerateListingRequest payload de POST /api/listings/generate: pide al modelo
// título y descripción optimizados para el producto.
type GenerateListingRequest struct {
	ProductID string `json:"product_id"`
}

// GeneratedListingCopy título y descripción producidos por el modelo.
type GeneratedListingCopy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CreateListingsRequest payload de POST /api/listings: publica un producto en
// uno o más marketplaces con el mismo copy.
type CreateListingsRequest struct {
	ProductID    string          `json:"product_id"`
	Marketplaces []string        `json:"marketplaces"` // ebay, amazon, etsy, facebook
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`    // cero = precio del catálogo
	Quantity     int             `json:"quantity"` // cero = stock actual
}

// ListingResponse representación API de una publicación.
type ListingResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Marketplace string          `json:"marketplace"`
	Title       string          `json:"listing_title"`
	Description string          `json:"listing_description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Status      string          `json:"status"`
	SyncEnabled bool            `json:"sync_enabled"`
	LastSynced  *time.Time      `json:"last_synced,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ListingListResponse listado de publicaciones.
type ListingListResponse struct {
	Listings []ListingResponse `json:"listings"`
	Count    int               `json:"count"`
}
