package handlers

import (
	"VeriUser/internal/config"
	"VeriUser/internal/middleware"
	"VeriUser/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	recordService *service.RecordService,
	registryService *service.RegistryService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	api := NewAPIHandler(recordService, registryService, logger, config)
	pages := NewPageHandler(recordService, registryService, logger, config)

	// HTML pages
	r.Get("/", pages.Index)
	r.Post("/records", pages.CreateRecord)
	r.Get("/records/{id}/edit", pages.EditRecord)
	r.Post("/records/{id}", pages.UpdateRecord)
	r.Post("/records/{id}/delete", pages.DeleteRecord)
	r.Get("/records/{id}/print", pages.PrintCertificate)
	r.Get("/certificate/{id}", pages.Certificate)
	r.Post("/statuses", pages.AddStatus)
	r.Post("/statuses/{id}/delete", pages.DeleteStatus)
	r.Post("/categories", pages.AddCategory)
	r.Post("/categories/{id}/delete", pages.DeleteCategory)
	r.Post("/reasons", pages.AddReason)
	r.Post("/reasons/delete", pages.DeleteReason)
	r.Get("/export", api.Export)
	r.Post("/import", pages.Import)

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Get("/records", api.ListRecords)
		r.Post("/records", api.CreateRecord)
		r.Get("/records/{id}", api.GetRecord)
		r.Put("/records/{id}", api.UpdateRecord)
		r.Delete("/records/{id}", api.DeleteRecord)
		r.Get("/records/{id}/certificate", api.Certificate)
		r.Get("/stats", api.Stats)
		r.Get("/export", api.Export)
		r.Post("/import", api.Import)

		r.Get("/statuses", api.ListStatuses)
		r.Post("/statuses", api.AddStatus)
		r.Delete("/statuses/{id}", api.DeleteStatus)
		r.Get("/categories", api.ListCategories)
		r.Post("/categories", api.AddCategory)
		r.Delete("/categories/{id}", api.DeleteCategory)
		r.Get("/reasons", api.ListReasons)
		r.Post("/reasons", api.AddReason)
		r.Delete("/reasons", api.DeleteReason)
	})

	return &Handler{Router: r}
}
