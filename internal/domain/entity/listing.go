package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de MarketplaceListing.
const (
	ListingStatusDraft  = "draft"
	ListingStatusActive = "active"
	ListingStatusPaused = "paused"
	ListingStatusError  = "error"
)

// MarketplaceListing es la publicación de un producto en un marketplace externo
// (ebay, amazon, etsy, facebook...). La sincronización real con el marketplace es
// responsabilidad de un integrador externo; aquí solo se persiste el registro.
type MarketplaceListing struct {
	ID                 string
	CompanyID          string
	ProductID          string
	ProductName        string
	Marketplace        string // ebay, amazon, etsy, facebook
	ListingTitle       string
	ListingDescription string
	Price              decimal.Decimal
	Quantity           int
	Status             string // draft, active, paused, error
	SyncEnabled        bool
	LastSynced         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
