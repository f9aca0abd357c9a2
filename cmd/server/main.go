package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/zap"

	"packrat/internal/catalog"
	"packrat/internal/classify"
	"packrat/internal/config"
	"packrat/internal/handlers"
	"packrat/internal/logger"
	"packrat/internal/middleware"
	"packrat/internal/services/categorize"
	"packrat/internal/store"
	"packrat/internal/telemetry"
)

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	debugMode := cfg.ServerDebugMode || *debugFlag

	zapLogger, err := logger.NewProductionLogger(debugMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = logger.Sync(zapLogger)
	}()

	zapLogger.Info("starting_server",
		zap.Bool("debug_mode", debugMode),
		zap.String("server_port", cfg.ServerPort),
		zap.String("store_backend", cfg.StoreBackend),
		zap.String("categorize_provider", cfg.CategorizeProvider),
		zap.Bool("otel_enabled", cfg.OTELEnabled),
	)

	if cfg.OTELEnabled && cfg.OTELEndpoint != "" {
		tp, err := telemetry.InitTracer(context.Background(), "packrat-server", cfg.OTELEndpoint)
		if err != nil {
			zapLogger.Warn("failed_to_initialize_otel_tracer", zap.Error(err))
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := telemetry.Shutdown(shutdownCtx, tp); err != nil {
					zapLogger.Error("failed_to_shutdown_otel_tracer", zap.Error(err))
				}
			}()
			zapLogger.Info("otel_tracer_initialized", zap.String("endpoint", cfg.OTELEndpoint))
		}
	}

	classifierCfg := classify.DefaultConfig()
	if cfg.ClassifierConfigPath != "" {
		classifierCfg, err = classify.LoadConfig(cfg.ClassifierConfigPath)
		if err != nil {
			zapLogger.Fatal("failed_to_load_classifier_config", zap.Error(err))
		}
	}
	classifier := classify.New(classifierCfg)

	st, err := openStore(cfg)
	if err != nil {
		zapLogger.Fatal("failed_to_open_store", zap.Error(err))
	}
	defer func() {
		if err := st.Close(); err != nil {
			zapLogger.Warn("failed_to_close_store", zap.Error(err))
		}
	}()
	zapLogger.Info("store_opened", zap.String("backend", cfg.StoreBackend))

	engine := catalog.New(st, classifier, zapLogger)
	if err := engine.SeedIfNeeded(context.Background()); err != nil {
		zapLogger.Fatal("failed_to_seed_collection", zap.Error(err))
	}

	local := categorize.NewLocal(classifier)
	provider := buildProvider(cfg, classifier, local, zapLogger)

	router := mux.NewRouter()
	if cfg.OTELEnabled {
		router.Use(otelmux.Middleware("packrat-server"))
	}
	router.Use(middleware.Recover(zapLogger))
	router.Use(middleware.Logging(zapLogger))
	router.Use(middleware.MaxRequestSize(middleware.DefaultMaxRequestSize))
	router.Use(middleware.Timeout(middleware.DefaultRequestTimeout))
	router.Use(middleware.ContentType)

	rateLimit, err := middleware.RateLimit(cfg.RatelimitRate)
	if err != nil {
		zapLogger.Fatal("failed_to_build_rate_limiter", zap.Error(err))
	}
	router.Use(rateLimit)

	healthHandler := handlers.NewHealthHandler()
	router.HandleFunc("/", healthHandler.Health).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	handlers.NewItemHandler(engine).RegisterRoutes(api.PathPrefix("/items").Subrouter())
	api.HandleFunc("/categories", handlers.NewCategoryHandler(engine, classifierCfg.SubjectPriority).ListCategories).Methods("GET")
	api.HandleFunc("/categorize", handlers.NewCategorizeHandler(provider).Categorize).Methods("POST")
	api.HandleFunc("/export/dublin-core", handlers.NewExportHandler(engine).DublinCore).Methods("GET")

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      middleware.CORS(cfg.AllowedOrigins)(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zapLogger.Info("listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("server_failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zapLogger.Info("shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("shutdown_failed", zap.Error(err))
	}
}

// openStore selects the persistence backend from configuration.
func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return store.NewMemory(), nil
	case config.BackendFile:
		return store.NewFile(cfg.DataDir)
	case config.BackendSQLite:
		return store.NewSQLite(cfg.SQLitePath)
	case config.BackendPostgres:
		return store.NewPostgres(cfg.DatabaseURL)
	case config.BackendRedis:
		return store.NewRedis(cfg.RedisURL)
	default:
		return store.NewMemory(), nil
	}
}

// buildProvider assembles the categorization provider chain. Every
// non-local provider is wrapped in the local fallback so suggestion never
// fails.
func buildProvider(cfg *config.Config, classifier *classify.Classifier, local *categorize.Local, zapLogger *zap.Logger) categorize.Provider {
	switch cfg.CategorizeProvider {
	case config.ProviderRemote:
		return categorize.NewFallback(categorize.NewRemote(cfg.CategorizeURL), local, zapLogger)
	case config.ProviderOpenAI:
		openAI := categorize.NewOpenAI(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, classifier, zapLogger)
		return categorize.NewFallback(openAI, local, zapLogger)
	default:
		return local
	}
}
