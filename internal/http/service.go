package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/mebella/catalog-api/internal/config"
	"github.com/mebella/catalog-api/internal/http/apierr"
	"github.com/mebella/catalog-api/internal/http/metric"
	"github.com/mebella/catalog-api/internal/http/middleware"
	"github.com/mebella/catalog-api/internal/http/swagger"
	"github.com/mebella/catalog-api/internal/service"
	"github.com/mebella/catalog-api/pkg/validator"
)

var tracer = otel.Tracer("internal/http")

// StoreInfo exposes the store diagnostics the /test endpoint reports.
type StoreInfo interface {
	Available() bool
	URLConfigured() bool
	Name() string
	Collections(ctx context.Context) ([]string, error)
}

// Seeder triggers the sample-data bootstrap on demand.
type Seeder interface {
	SeedIfEmpty(ctx context.Context) service.SeedResult
}

// Service represents the HTTP service.
type Service struct {
	cfg     config.HTTP
	logger  *slog.Logger
	metrics *metric.Metrics

	validator  validator.Validator
	productSvc service.ProductService
	seeder     Seeder
	store      StoreInfo
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	log *slog.Logger,
	v validator.Validator,
	productSvc service.ProductService,
	seeder Seeder,
	store StoreInfo,
) *Service {
	return &Service{
		cfg:        cfg,
		logger:     log.With(slog.String("service", "http")),
		metrics:    metric.New(),
		validator:  v,
		productSvc: productSvc,
		seeder:     seeder,
		store:      store,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	if s.cfg.Swagger {
		swagger.Register(r)
	}

	s.RegisterHandlers(r)

	return s.RunWithServer(ctx, r)
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	h := s.newHandler()

	r.Get("/", h.root)
	r.Get("/test", h.diagnostics)

	r.Route("/api", func(r chi.Router) {
		r.Post("/products", h.createProduct)
		r.Get("/products", h.listProducts)
		r.Get("/products/{productID}", h.getProduct)
		r.Get("/categories", h.listCategories)
		r.Post("/seed", h.seed)
	})

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
}

type handler struct {
	*productHandler
	*systemHandler
}

func (s *Service) newHandler() *handler {
	return &handler{
		productHandler: newProductHandler(s.logger, s.validator, s.productSvc),
		systemHandler:  newSystemHandler(s.logger, s.seeder, s.store),
	}
}

// respondJSON serializes v with the given status code.
func respondJSON(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.ErrorContext(ctx, "error encoding response", slog.Any("error", err))
	}
}

// respondError maps err to an error response and writes it.
func respondError(r *http.Request, logger *slog.Logger, w http.ResponseWriter, err error) {
	res := apierr.New(err)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	respondJSON(r.Context(), logger, w, res.StatusCode, res)
}
