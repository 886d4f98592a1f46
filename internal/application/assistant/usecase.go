// Package assistant implementa el chat de negocio: responde preguntas libres
// del dueño usando como contexto un resumen de los datos recientes de la empresa.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/sanka-api/internal/application/dto"
	"github.com/jhoicas/sanka-api/internal/application/insights"
	"github.com/jhoicas/sanka-api/internal/application/ports"
	"github.com/jhoicas/sanka-api/internal/domain"
	"github.com/jhoicas/sanka-api/internal/domain/pulse"
	"github.com/jhoicas/sanka-api/internal/domain/repository"
	"github.com/jhoicas/sanka-api/pkg/logger"
)

// answerSchema obliga al modelo a devolver un único campo answer.
var answerSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "answer": {"type": "string"}
  },
  "required": ["answer"]
}`)

// UseCase arma el contexto de negocio y delega la respuesta al modelo.
type UseCase struct {
	llm          ports.LLMService
	saleRepo     repository.SaleRepository
	expenseRepo  repository.ExpenseRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	timeout      time.Duration
	log          *logger.Logger
}

// NewUseCase constructor.
func NewUseCase(
	llm ports.LLMService,
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	timeoutSeconds int,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		llm:          llm,
		saleRepo:     saleRepo,
		expenseRepo:  expenseRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		timeout:      time.Duration(timeoutSeconds) * time.Second,
		log:          log,
	}
}

// Ask responde una pregunta libre. Reusa el agregador del pipeline de insights
// para que el modelo vea las mismas cifras que ven los analizadores.
func (uc *UseCase) Ask(ctx context.Context, companyID string, req dto.AssistantRequest) (*dto.AssistantResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, fmt.Errorf("%w: la pregunta no puede estar vacía", domain.ErrInvalidInput)
	}

	now := time.Now()
	since := insights.WindowStart(now)

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

	snap := pulse.BuildSnapshot(sales, expenses, products, customers, since)
	prompt := buildPrompt(snap, question)

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	raw, err := uc.llm.Invoke(ctx, prompt, answerSchema)
	if err != nil {
		uc.log.Error().Err(err).Str("company_id", companyID).Msg("asistente: fallo del modelo")
		return nil, err
	}

	var parsed struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("asistente: respuesta malformada: %w", err)
	}
	return &dto.AssistantResponse{Answer: parsed.Answer}, nil
}

func buildPrompt(snap *pulse.Snapshot, question string) string {
	var b strings.Builder
	b.WriteString("You are a helpful business advisor for a small business owner. ")
	b.WriteString("Answer the owner's question using the business data below. ")
	b.WriteString("Be concise, practical and specific to their numbers.\n\n")
	b.WriteString("Business data (last 30 days):\n")
	fmt.Fprintf(&b, "- Revenue: $%s across %d sales\n", snap.Revenue.StringFixed(2), snap.OrderCount)
	fmt.Fprintf(&b, "- Expenses: $%s\n", snap.TotalExpenses.StringFixed(2))
	fmt.Fprintf(&b, "- Profit: $%s (margin %s%%)\n", snap.Profit.StringFixed(2), snap.ProfitMargin.StringFixed(1))
	fmt.Fprintf(&b, "- Products in catalog: %d (%d low on stock)\n", snap.TotalProducts, len(snap.LowStock))
	fmt.Fprintf(&b, "- Customers: %d (%d VIP, %d at risk)\n", snap.TotalCustomers, snap.VIPCustomers, snap.AtRiskCustomers)
	for i, p := range snap.TopProducts {
		if i == 0 {
			b.WriteString("- Top products by revenue:\n")
		}
		fmt.Fprintf(&b, "  %d. %s: %d units, $%s\n", i+1, p.Name, p.Quantity, p.Revenue.StringFixed(2))
	}
	b.WriteString("\nQuestion: ")
	b.WriteString(question)
	return b.String()
}
