package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sanka-api/internal/application/analytics"
	"github.com/jhoicas/sanka-api/internal/application/assistant"
	"github.com/jhoicas/sanka-api/internal/application/auth"
	"github.com/jhoicas/sanka-api/internal/application/insights"
	"github.com/jhoicas/sanka-api/internal/application/report"
	"github.com/jhoicas/sanka-api/internal/application/usecase"
	"github.com/jhoicas/sanka-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC   *usecase.CompanyUseCase
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	SaleUC      *usecase.SaleUseCase
	ExpenseUC   *usecase.ExpenseUseCase
	PaymentUC   *usecase.PaymentUseCase
	ListingUC   *usecase.ListingUseCase
	InsightUC   *insights.UseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *report.UseCase
	AssistantUC *assistant.UseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies: el alta es pública (onboarding); el resto requiere token
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	api.Post("/companies", companyHandler.Create)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	companies := protected.Group("/companies")
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleOwner, entity.RoleManager), productHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Post("/:id/reengage", customerHandler.Reengage)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)

	// Expenses (protegido)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Delete("/:id", RequireRole(entity.RoleOwner, entity.RoleManager), expenseHandler.Delete)

	// Payments (protegido)
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)
	payments.Post("/:id/complete", paymentHandler.MarkCompleted)
	payments.Post("/:id/cancel", paymentHandler.Cancel)

	// Listings (protegido)
	listings := protected.Group("/listings")
	listingHandler := NewListingHandler(deps.ListingUC)
	listings.Post("/generate", listingHandler.GenerateCopy)
	listings.Post("/", listingHandler.Create)
	listings.Get("/", listingHandler.List)
	listings.Post("/:id/status", listingHandler.UpdateStatus)

	// Insights (protegido)
	insightsGroup := protected.Group("/insights")
	insightHandler := NewInsightHandler(deps.InsightUC)
	insightsGroup.Post("/generate", insightHandler.Generate)
	insightsGroup.Get("/", insightHandler.List)
	insightsGroup.Post("/:id/read", insightHandler.MarkRead)
	insightsGroup.Post("/:id/dismiss", insightHandler.Dismiss)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/report", dashboardHandler.Report)

	// Assistant (protegido)
	assistantHandler := NewAssistantHandler(deps.AssistantUC)
	protected.Post("/assistant", assistantHandler.Ask)
}
