package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/sanka-api/internal/application/dto"
	"github.com/jhoicas/sanka-api/internal/application/ports"
	"github.com/jhoicas/sanka-api/internal/domain"
	"github.com/jhoicas/sanka-api/internal/domain/entity"
	"github.com/jhoicas/sanka-api/internal/domain/repository"
)

// listingCopySchema el modelo debe devolver título y descripción.
var listingCopySchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "title": {"type": "string"},
    "description": {"type": "string"}
  },
  "required": ["title", "description"]
}`)

// Marketplaces soportados.
var supportedMarketplaces = map[string]bool{
	"ebay":     true,
	"amazon":   true,
	"etsy":     true,
	"facebook": true,
}

// ListingUseCase casos de uso para publicaciones en marketplaces: generación de
// copy con IA y registro de publicaciones.
type ListingUseCase struct {
	repo        repository.ListingRepository
	productRepo repository.ProductRepository
	llm         ports.LLMService
}

// NewListingUseCase construye el caso de uso.
func NewListingUseCase(repo repository.ListingRepository, productRepo repository.ProductRepository, llm ports.LLMService) *ListingUseCase {
	return &ListingUseCase{repo: repo, productRepo: productRepo, llm: llm}
}

// GenerateCopy pide al modelo título y descripción optimizados para vender el
// producto en marketplaces. No persiste nada: es un borrador para la UI.
func (uc *ListingUseCase) GenerateCopy(ctx context.Context, companyID string, in dto.GenerateListingRequest) (*dto.GeneratedListingCopy, error) {
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	prompt := fmt.Sprintf(`Write an optimized marketplace listing for this product. The title should be keyword-rich and under 80 characters. The description should highlight benefits, be scannable, and run 2-3 short paragraphs.

Product: %s
Category: %s
Price: $%s
Description: %s`,
		product.Name, product.Category, product.Price.StringFixed(2), product.Description)

	raw, err := uc.llm.Invoke(ctx, prompt, listingCopySchema)
	if err != nil {
		return nil, err
	}
	var copyDraft dto.GeneratedListingCopy
	if err := json.Unmarshal(raw, &copyDraft); err != nil {
		return nil, fmt.Errorf("copy de publicación malformado: %w", err)
	}
	return &copyDraft, nil
}

// Create publica un producto en uno o más marketplaces con el mismo copy.
// Precio y cantidad en cero heredan los valores del catálogo.
func (uc *ListingUseCase) Create(companyID string, in dto.CreateListingsRequest) (*dto.ListingListResponse, error) {
	if len(in.Marketplaces) == 0 {
		return nil, fmt.Errorf("%w: se requiere al menos un marketplace", domain.ErrInvalidInput)
	}
	for _, m := range in.Marketplaces {
		if !supportedMarketplaces[m] {
			return nil, fmt.Errorf("%w: marketplace no soportado: %s", domain.ErrInvalidInput, m)
		}
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	price := in.Price
	if price.IsZero() {
		price = product.Price
	}
	quantity := in.Quantity
	if quantity == 0 {
		quantity = product.StockQuantity
	}
	title := in.Title
	if title == "" {
		title = product.Name
	}

	now := time.Now()
	created := make([]dto.ListingResponse, 0, len(in.Marketplaces))
	for _, marketplace := range in.Marketplaces {
		listing := &entity.MarketplaceListing{
			ID:                 uuid.New().String(),
			CompanyID:          companyID,
			ProductID:          product.ID,
			ProductName:        product.Name,
			Marketplace:        marketplace,
			ListingTitle:       title,
			ListingDescription: in.Description,
			Price:              price,
			Quantity:           quantity,
			Status:             entity.ListingStatusActive,
			SyncEnabled:        true,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := uc.repo.Create(listing); err != nil {
			return nil, err
		}
		created = append(created, *toListingResponse(listing))
	}
	return &dto.ListingListResponse{Listings: created, Count: len(created)}, nil
}

// List lista publicaciones por empresa.
func (uc *ListingUseCase) List(companyID string, limit, offset int) (*dto.ListingListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ListingResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toListingResponse(l))
	}
	return &dto.ListingListResponse{Listings: items, Count: len(items)}, nil
}

// UpdateStatus cambia el estado de una publicación (pausar, reactivar).
func (uc *ListingUseCase) UpdateStatus(id, status string) error {
	switch status {
	case entity.ListingStatusDraft, entity.ListingStatusActive,
		entity.ListingStatusPaused, entity.ListingStatusError:
	default:
		return fmt.Errorf("%w: estado inválido: %s", domain.ErrInvalidInput, status)
	}
	return uc.repo.UpdateStatus(id, status)
}

func toListingResponse(l *entity.MarketplaceListing) *dto.ListingResponse {
	if l == nil {
		return nil
	}
	return &dto.ListingResponse{
		ID:          l.ID,
		ProductID:   l.ProductID,
		ProductName: l.ProductName,
		Marketplace: l.Marketplace,
		Title:       l.ListingTitle,
		Description: l.ListingDescription,
		Price:       l.Price,
		Quantity:    l.Quantity,
		Status:      l.Status,
		SyncEnabled: l.SyncEnabled,
		LastSynced:  l.LastSynced,
		CreatedAt:   l.CreatedAt,
	}
}
