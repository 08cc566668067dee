package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/viaconsulting/dashboard-huiles/docs"

	appanalytics "github.com/viaconsulting/dashboard-huiles/internal/application/analytics"
	"github.com/viaconsulting/dashboard-huiles/internal/application/billing"
	"github.com/viaconsulting/dashboard-huiles/internal/application/delivery"
	"github.com/viaconsulting/dashboard-huiles/internal/application/reception"
	"github.com/viaconsulting/dashboard-huiles/internal/application/store"
	"github.com/viaconsulting/dashboard-huiles/internal/application/views"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/repository"
	"github.com/viaconsulting/dashboard-huiles/internal/infrastructure/memapi"
	infrapdf "github.com/viaconsulting/dashboard-huiles/internal/infrastructure/pdf"
	"github.com/viaconsulting/dashboard-huiles/internal/infrastructure/viaapi"
	httpRouter "github.com/viaconsulting/dashboard-huiles/internal/interfaces/http"
	"github.com/viaconsulting/dashboard-huiles/pkg/config"
	"github.com/viaconsulting/dashboard-huiles/pkg/logger"
)

// memoryScheme préfixe d'API_URL (memory://) qui active le backend de démonstration en mémoire.
const memoryScheme = "memory:"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api_url", cfg.API.BaseURL).
		Msg("démarrage de l'application")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET requis")
	}

	var api repository.Gateway
	if strings.HasPrefix(cfg.API.BaseURL, memoryScheme) {
		log.Warn().Msg("mode démonstration: backend en mémoire, aucune donnée persistée")
		api = memapi.Demo()
	} else {
		api = viaapi.NewClient(viaapi.Options{
			BaseURL: cfg.API.BaseURL,
			Token:   cfg.API.Token,
			Timeout: cfg.API.Timeout,
			Logger:  log.Component("viaapi"),
			Debug:   !cfg.App.IsProduction(),
		})
	}

	receptionStore := store.New(api, log.Component("store"))

	// Premier chargement en arrière-plan: les vues répondent 503 LOADING d'ici là.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
		defer cancel()
		if err := receptionStore.Fetch(ctx); err != nil {
			log.Error().Err(err).Msg("chargement initial")
		}
	}()

	billingLog := log.Component("billing")
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.API.Timeout + 10*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Title = cfg.App.Name + " API"
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		st := receptionStore.Snapshot()
		return c.JSON(fiber.Map{
			"status":     "ok",
			"service":    cfg.App.Name,
			"loading":    st.Loading,
			"fetched_at": st.FetchedAt,
			"error":      st.Error,
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:         receptionStore,
		ReceptionUC:   reception.NewUseCase(receptionStore),
		FacturationUC: billing.NewFacturationUseCase(receptionStore, billingLog),
		ImpayeUC:      billing.NewImpayeUseCase(receptionStore, billingLog),
		PDFUC:         billing.NewPDFUseCase(receptionStore, pdfGenerator),
		DeliveryUC:    delivery.NewUseCase(receptionStore, log.Component("delivery")),
		ViewsUC:       views.NewUseCase(receptionStore),
		DashboardUC:   appanalytics.NewDashboardUseCase(receptionStore),
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP arrêté")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
