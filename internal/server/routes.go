package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"symptomcheck/internal/advisory"
	"symptomcheck/internal/catalog"
	"symptomcheck/internal/handlers"
	"symptomcheck/internal/handlers/api"
	"symptomcheck/internal/inference"
)

// Deps holds the immutable state built at startup.
type Deps struct {
	Catalog *catalog.Catalog
	Service *inference.Service
	Advice  *advisory.Table
	// Backend is checked by /readyz; nil when the classifier runs in-process.
	Backend handlers.HealthChecker
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Deps) {
	predictHandler := handlers.NewPredictHandler(deps.Catalog, deps.Service, s.Cfg)
	probeHandler := handlers.NewProbeHandler(deps.Backend)

	apiPredictHandler := api.NewPredictHandler(deps.Service)
	apiCatalogHandler := api.NewCatalogHandler(deps.Catalog)
	apiAdviceHandler := api.NewAdviceHandler(deps.Advice)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Page
	s.App.Get("/", predictHandler.Index)
	s.App.Post("/predict", predictHandler.Predict)

	// JSON API
	v1 := s.App.Group("/api/v1")
	v1.Get("/catalog", apiCatalogHandler.List)
	v1.Post("/predict", apiPredictHandler.Predict)
	v1.Get("/advice/:symptom", apiAdviceHandler.Get)
}
