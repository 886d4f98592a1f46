package insights

import (
	"context"
	"time"

	"github.com/jhoicas/sanka-api/internal/application/dto"
	"github.com/jhoicas/sanka-api/internal/application/ports"
	"github.com/jhoicas/sanka-api/internal/domain/entity"
	"github.com/jhoicas/sanka-api/internal/domain/repository"
	"github.com/jhoicas/sanka-api/pkg/logger"
)

// UseCase expone las operaciones de insights a la capa HTTP: disparar una
// corrida del pipeline y administrar el feed (listar, marcar leído, descartar).
type UseCase struct {
	pipeline     *Pipeline
	saleRepo     repository.SaleRepository
	expenseRepo  repository.ExpenseRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	insightRepo  repository.InsightRepository
	timeout      time.Duration
	log          *logger.Logger
}

// NewUseCase construye el caso de uso. timeoutSeconds acota la corrida completa
// del pipeline (las 4 llamadas al modelo más la persistencia).
func NewUseCase(
	llm ports.LLMService,
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	insightRepo repository.InsightRepository,
	timeoutSeconds int,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		pipeline:     NewPipeline(llm, insightRepo),
		saleRepo:     saleRepo,
		expenseRepo:  expenseRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		insightRepo:  insightRepo,
		timeout:      time.Duration(timeoutSeconds) * time.Second,
		log:          log,
	}
}

// Generate carga las colecciones de la ventana de análisis, corre el pipeline y
// devuelve el batch persistido. El reloj se lee una sola vez acá: toda la
// corrida comparte el mismo now.
func (uc *UseCase) Generate(ctx context.Context, companyID string) (*dto.GenerateInsightsResponse, error) {
	now := time.Now()
	since := WindowStart(now)

	sales, err := uc.saleRepo.ListByCompanySince(companyID, since)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.ListByCompanySince(companyID, since)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListAllByCompany(companyID)
	if err != nil {
		return nil, err
	}
	customers, err := uc.customerRepo.ListAllByCompany(companyID)
	if err != nil {
		return nil, err
	}

	// Timeout propio: las llamadas a LLMs pueden demorar varios segundos y no
	// queremos heredar un deadline arbitrario del request HTTP.
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	in := Input{
		CompanyID: companyID,
		Sales:     sales,
		Expenses:  expenses,
		Products:  products,
		Customers: customers,
	}
	batch, err := uc.pipeline.Generate(ctx, in, now, func(stageLabel string) {
		uc.log.Info().Str("company_id", companyID).Str("stage", stageLabel).Msg("pipeline de insights")
	})
	if err != nil {
		uc.log.Error().Err(err).Str("company_id", companyID).Msg("corrida de insights abortada")
		return nil, err
	}

	uc.log.Info().Str("company_id", companyID).Int("count", len(batch)).Msg("insights generados")
	resp := &dto.GenerateInsightsResponse{
		Insights: toInsightResponses(batch),
		Count:    len(batch),
	}
	return resp, nil
}

// List devuelve el feed activo (no descartado), más recientes primero.
func (uc *UseCase) List(companyID string) (*dto.InsightListResponse, error) {
	items, err := uc.insightRepo.ListActive(companyID)
	if err != nil {
		return nil, err
	}
	return &dto.InsightListResponse{Insights: toInsightResponses(items), Count: len(items)}, nil
}

// MarkRead marca un insight como leído. Idempotente.
func (uc *UseCase) MarkRead(id string) error {
	return uc.insightRepo.MarkRead(id)
}

// Dismiss descarta un insight del feed. Idempotente.
func (uc *UseCase) Dismiss(id string) error {
	return uc.insightRepo.Dismiss(id)
}

func toInsightResponses(items []*entity.PulseInsight) []dto.InsightResponse {
	out := make([]dto.InsightResponse, 0, len(items))
	for _, ins := range items {
		out = append(out, dto.InsightResponse{
			ID:          ins.ID,
			Title:       ins.Title,
			Message:     ins.Message,
			Type:        ins.Type,
			Category:    ins.Category,
			Priority:    ins.Priority,
			ActionLabel: ins.ActionLabel,
			InsightDate: ins.InsightDate.Format("2006-01-02"),
			IsRead:      ins.IsRead,
			IsDismissed: ins.IsDismissed,
		})
	}
	return out
}
