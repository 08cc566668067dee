package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/viaconsulting/dashboard-huiles/internal/application/analytics"
	"github.com/viaconsulting/dashboard-huiles/internal/application/billing"
	"github.com/viaconsulting/dashboard-huiles/internal/application/delivery"
	"github.com/viaconsulting/dashboard-huiles/internal/application/reception"
	"github.com/viaconsulting/dashboard-huiles/internal/application/store"
	"github.com/viaconsulting/dashboard-huiles/internal/application/views"
	"github.com/viaconsulting/dashboard-huiles/pkg/jwt"
)

// RouterDeps dépendances du routeur.
type RouterDeps struct {
	Store         *store.ReceptionStore
	ReceptionUC   *reception.UseCase
	FacturationUC *billing.FacturationUseCase
	ImpayeUC      *billing.ImpayeUseCase
	PDFUC         *billing.PDFUseCase
	DeliveryUC    *delivery.UseCase
	ViewsUC       *views.UseCase
	DashboardUC   *appanalytics.DashboardUseCase
	JWTSecret     string
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	anyRole := RequireRole(jwt.RoleAdmin, jwt.RoleComptable, jwt.RoleMagasinier)
	finance := RequireRole(jwt.RoleAdmin, jwt.RoleComptable)
	magasin := RequireRole(jwt.RoleAdmin, jwt.RoleMagasinier)
	loaded := RequireLoaded(deps.Store)

	// Tableau de bord
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", anyRole, loaded, dashboardHandler.GetSummary)

	// Réceptions
	receptions := api.Group("/receptions")
	receptionHandler := NewReceptionHandler(deps.ReceptionUC, deps.ViewsUC, deps.DeliveryUC, deps.Store)
	receptions.Get("/", anyRole, loaded, receptionHandler.List)
	receptions.Post("/refresh", anyRole, receptionHandler.Refresh)
	receptions.Post("/", magasin, receptionHandler.Create)
	receptions.Get("/:id", anyRole, loaded, receptionHandler.GetByID)
	receptions.Put("/:id", magasin, receptionHandler.Update)
	receptions.Delete("/:id", magasin, receptionHandler.Delete)
	receptions.Get("/:id/transitions", anyRole, receptionHandler.Transitions)
	receptions.Post("/:id/livrer", magasin, receptionHandler.Livrer)

	// Vues liste (lecture seule)
	viewsHandler := NewViewsHandler(deps.ViewsUC)
	api.Get("/agreage/provisoire", anyRole, loaded, viewsHandler.AgreageProvisoire)
	api.Get("/agreage/definitif", anyRole, loaded, viewsHandler.AgreageDefinitif)
	api.Get("/exports", anyRole, loaded, viewsHandler.Exports)
	api.Get("/transport", anyRole, loaded, viewsHandler.Transport)
	api.Get("/stock", anyRole, loaded, viewsHandler.Stock)

	documentHandler := NewDocumentHandler(deps.PDFUC)

	// Facturations
	facturations := api.Group("/facturations")
	facturationHandler := NewFacturationHandler(deps.FacturationUC)
	facturations.Post("/preview", anyRole, facturationHandler.Preview)
	facturations.Get("/reception/:receptionId", anyRole, facturationHandler.Prefill)
	facturations.Get("/statut/:statut", anyRole, facturationHandler.ByStatus)
	facturations.Post("/", finance, loaded, facturationHandler.Submit)
	facturations.Put("/:id", finance, loaded, facturationHandler.Update)
	facturations.Delete("/:id", finance, facturationHandler.Delete)
	facturations.Get("/:id/pdf", anyRole, loaded, documentHandler.FacturationPDF)

	// Impayés
	impayes := api.Group("/impayes")
	impayeHandler := NewImpayeHandler(deps.ImpayeUC)
	impayes.Get("/", anyRole, loaded, viewsHandler.Impayes)
	impayes.Post("/preview", anyRole, impayeHandler.Preview)
	impayes.Get("/reception/:receptionId", anyRole, impayeHandler.Prefill)
	impayes.Post("/", finance, impayeHandler.Submit)
	impayes.Put("/:id", finance, impayeHandler.Update)
	impayes.Delete("/:id", finance, impayeHandler.Delete)

	// Fiches de livraison
	fiches := api.Group("/fiche-livraisons")
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	fiches.Post("/", magasin, deliveryHandler.Create)
	fiches.Get("/:id/pdf", anyRole, loaded, documentHandler.FicheLivraisonPDF)
}
