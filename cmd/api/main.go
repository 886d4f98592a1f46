package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/sanka-api/internal/application/analytics"
	"github.com/jhoicas/sanka-api/internal/application/assistant"
	"github.com/jhoicas/sanka-api/internal/application/auth"
	"github.com/jhoicas/sanka-api/internal/application/insights"
	"github.com/jhoicas/sanka-api/internal/application/ports"
	"github.com/jhoicas/sanka-api/internal/application/report"
	"github.com/jhoicas/sanka-api/internal/application/usecase"
	infraai "github.com/jhoicas/sanka-api/internal/infrastructure/ai"
	infraemail "github.com/jhoicas/sanka-api/internal/infrastructure/email"
	infrapdf "github.com/jhoicas/sanka-api/internal/infrastructure/pdf"
	"github.com/jhoicas/sanka-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/sanka-api/internal/interfaces/http"
	"github.com/jhoicas/sanka-api/pkg/config"
	"github.com/jhoicas/sanka-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	listingRepo := postgres.NewListingRepository(pool)
	insightRepo := postgres.NewInsightRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Proveedor de IA: Anthropic por defecto, Gemini si se configura explícito.
	var llm ports.LLMService
	switch cfg.AI.Provider {
	case "gemini":
		llm = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	default:
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	}

	mailer := infraemail.NewSMTPMailer(infraemail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		FromName: cfg.SMTP.FromName,
	})

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, llm, mailer)
	saleUC := usecase.NewSaleUseCase(saleRepo, txRunner)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, mailer)
	listingUC := usecase.NewListingUseCase(listingRepo, productRepo, llm)

	insightUC := insights.NewUseCase(
		llm, saleRepo, expenseRepo, productRepo, customerRepo, insightRepo,
		cfg.AI.TimeoutSeconds, log,
	)
	assistantUC := assistant.NewUseCase(
		llm, saleRepo, expenseRepo, productRepo, customerRepo,
		cfg.AI.TimeoutSeconds, log,
	)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := report.NewUseCase(companyRepo, insightRepo, dashboardUC, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sanka API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:   companyUC,
		ProductUC:   productUC,
		CustomerUC:  customerUC,
		SaleUC:      saleUC,
		ExpenseUC:   expenseUC,
		PaymentUC:   paymentUC,
		ListingUC:   listingUC,
		InsightUC:   insightUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		AssistantUC: assistantUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
