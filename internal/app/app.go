package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"kredata/internal/complexinfo"
	"kredata/internal/config"
	apierrors "kredata/internal/errors"
	"kredata/internal/infrastructure"
	customMiddleware "kredata/internal/middleware"
	"kredata/internal/molit"
	"kredata/internal/services"
	"kredata/internal/tools"
	transporthttp "kredata/internal/transport/http"
)

const AppName = "kredata"

// Version is stamped at build time via -ldflags.
var (
	Version   = "dev"
	BuildTime = ""
)

// Application is the composition root: configuration, observability, the
// gateway client, services, and both serving surfaces.
type Application struct {
	Config        *config.Config
	Logger        *slog.Logger
	OTelProviders *infrastructure.OTelProviders
	Metrics       *infrastructure.AppMetrics

	Client        *molit.Client
	DataService   *services.DataService
	HealthService *services.HealthService
	Complexes     *complexinfo.Service
	Tools         *tools.Registry

	Router chi.Router
	Server *http.Server
}

// NewApplication loads configuration and wires every component.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a := &Application{
		Config: cfg,
		Logger: logger,
	}

	if err := a.initializeObservability(); err != nil {
		return nil, err
	}
	a.initializeServices()
	a.setupRouter()
	a.createServer()

	return a, nil
}

func (a *Application) initializeObservability() error {
	providers, err := infrastructure.InitializeOTel(infrastructure.DefaultOTelConfig(), a.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	a.OTelProviders = providers

	if providers.Meter != nil {
		metrics, err := infrastructure.CreateAppMetrics(providers.Meter)
		if err != nil {
			return fmt.Errorf("failed to create metrics: %w", err)
		}
		a.Metrics = metrics
	}
	return nil
}

func (a *Application) initializeServices() {
	cfg := a.Config

	a.Client = molit.NewClient(cfg.Upstream.Timeout, a.Logger)
	if a.Metrics != nil {
		metrics := a.Metrics
		a.Client.SetObserver(func(label string, success bool, duration time.Duration) {
			metrics.RecordUpstreamCall(context.Background(), label, success, duration)
		})
	}

	a.DataService = services.NewDataService(
		a.Client, cfg.Upstream.APIKey, cfg.OnbidKey(), a.Logger, services.DefaultEndpoints())
	a.Complexes = complexinfo.NewService(a.Client, cfg.Upstream.APIKey, a.Logger, "", "")
	a.HealthService = services.NewHealthService(Version, BuildTime, cfg.Upstream.APIKey != "")
	a.Tools = tools.NewToolset(a.DataService, cfg.Tools.Timeout, a.Logger)
}

func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.Metrics(a.Metrics))
	r.Use(customMiddleware.StructuredLogger(a.Logger))
	r.Use(customMiddleware.Recoverer(a.Logger))
	r.Use(customMiddleware.SecurityHeaders)
	if a.Config.Security.EnableCORS {
		r.Use(customMiddleware.CORS(customMiddleware.CORSConfig{
			AllowedOrigins: a.Config.Security.AllowedOrigins,
			Logger:         a.Logger,
		}))
	}

	errorHandler := apierrors.NewErrorHandler(a.Logger)
	dataHandler := transporthttp.NewDataHandler(a.DataService, a.Complexes, a.Logger, errorHandler)
	healthHandler := transporthttp.NewHealthHandler(a.HealthService, a.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/", dataHandler.Routes())
		r.Get("/health", healthHandler.HealthCheck)
		r.Get("/version", healthHandler.Version)
	})

	if a.OTelProviders != nil && a.OTelProviders.PrometheusHTTP != nil {
		r.Handle("/metrics", a.OTelProviders.PrometheusHTTP)
	}

	a.Router = r
}

func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:           fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:        a.Router,
		ReadTimeout:    a.Config.Server.ReadTimeout,
		WriteTimeout:   a.Config.Server.WriteTimeout,
		IdleTimeout:    a.Config.Server.IdleTimeout,
		MaxHeaderBytes: a.Config.Server.MaxHeaderBytes,
	}
}

// Start begins serving HTTP. Server errors cancel the given context.
func (a *Application) Start(ctx context.Context, cancel context.CancelFunc) error {
	a.Logger.InfoContext(ctx, "starting application",
		slog.String("name", AppName),
		slog.String("version", Version),
		slog.Int("port", a.Config.Server.Port),
		slog.Bool("upstream_key_set", a.Config.Upstream.APIKey != ""))

	go func() {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.ErrorContext(ctx, "server error", slog.String("error", err.Error()))
			cancel()
		}
	}()

	a.Logger.InfoContext(ctx, "application started",
		slog.String("address", fmt.Sprintf("http://localhost:%d", a.Config.Server.Port)))
	return nil
}

// Stop gracefully stops the application
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "shutting down application")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	if a.OTelProviders != nil {
		if err := a.OTelProviders.Shutdown(shutdownCtx); err != nil {
			a.Logger.ErrorContext(ctx, "error shutting down observability",
				slog.String("error", err.Error()))
		}
	}

	if err := infrastructure.CloseLogFile(); err != nil {
		return fmt.Errorf("log file close error: %w", err)
	}

	a.Logger.InfoContext(ctx, "application shutdown complete")
	return nil
}

// Run serves the configured transport until interrupted: the HTTP server
// or the line-delimited JSON tool loop on stdin/stdout.
func (a *Application) Run() error {
	if a.Config.Server.Transport == "stdio" {
		return a.runStdio()
	}
	return a.runHTTP()
}

func (a *Application) runHTTP() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	if err := a.Start(ctx, cancel); err != nil {
		return err
	}

	select {
	case <-sigChan:
		a.Logger.InfoContext(ctx, "received interrupt signal")
	case <-ctx.Done():
	}

	return a.Stop(context.Background())
}

func (a *Application) runStdio() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		cancel()
	}()

	a.Logger.InfoContext(ctx, "serving tool calls on stdio",
		slog.String("name", AppName),
		slog.String("version", Version))

	srv := tools.NewStdioServer(a.Tools, os.Stdin, os.Stdout, a.Logger)
	return srv.Run(ctx)
}
