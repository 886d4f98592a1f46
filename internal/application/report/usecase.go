// Package report arma el reporte Pulse en PDF: KPIs del dashboard más el feed
// de insights vigente, para descargar o enviar por correo.
package report

import (
	"context"

	"github.com/jhoicas/sanka-api/internal/application/analytics"
	"github.com/jhoicas/sanka-api/internal/application/dto"
	"github.com/jhoicas/sanka-api/internal/domain"
	"github.com/jhoicas/sanka-api/internal/domain/entity"
	"github.com/jhoicas/sanka-api/internal/domain/repository"
)

// PulseReportGenerator genera el documento PDF. La implementación concreta usa
// Maroto; los tests usan un fake.
type PulseReportGenerator interface {
	GeneratePulseReport(
		ctx context.Context,
		company *entity.Company,
		summary *dto.DashboardSummaryDTO,
		insights []*entity.PulseInsight,
	) ([]byte, error)
}

// UseCase arma los datos del reporte y delega el render.
type UseCase struct {
	companyRepo repository.CompanyRepository
	insightRepo repository.InsightRepository
	dashboard   *analytics.DashboardUseCase
	generator   PulseReportGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	companyRepo repository.CompanyRepository,
	insightRepo repository.InsightRepository,
	dashboard *analytics.DashboardUseCase,
	generator PulseReportGenerator,
) *UseCase {
	return &UseCase{
		companyRepo: companyRepo,
		insightRepo: insightRepo,
		dashboard:   dashboard,
		generator:   generator,
	}
}

// Generate produce el PDF del reporte Pulse de la empresa.
func (uc *UseCase) Generate(ctx context.Context, companyID string) ([]byte, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	summary, err := uc.dashboard.GetSummary(ctx, companyID)
	if err != nil {
		return nil, err
	}
	insights, err := uc.insightRepo.ListActive(companyID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GeneratePulseReport(ctx, company, summary, insights)
}
