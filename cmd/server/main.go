package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"

	"github.com/gramtop961/gilded-gaze-backend/internal/catalog"
	"github.com/gramtop961/gilded-gaze-backend/internal/checkout"
	"github.com/gramtop961/gilded-gaze-backend/internal/configflag"
	"github.com/gramtop961/gilded-gaze-backend/internal/inventory"
	"github.com/gramtop961/gilded-gaze-backend/internal/messaging"
	"github.com/gramtop961/gilded-gaze-backend/internal/reviews"
	"github.com/gramtop961/gilded-gaze-backend/internal/seed"
	"github.com/gramtop961/gilded-gaze-backend/internal/store"
	"github.com/gramtop961/gilded-gaze-backend/internal/system"
	"github.com/gramtop961/gilded-gaze-backend/internal/telemetry"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		logger.Error("DATABASE_URL environment variable is required")
		os.Exit(1)
	}

	databaseName := os.Getenv("DATABASE_NAME")
	if databaseName == "" {
		logger.Error("DATABASE_NAME environment variable is required")
		os.Exit(1)
	}

	shutdownTracer, err := telemetry.InitTracerProvider(ctx, "storefront", "0.1.0")
	if err != nil {
		logger.Error("failed to initialize tracer", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownTracer(ctx) }()

	metricsHandler, shutdownMeter, err := telemetry.InitMeterProvider("storefront", "0.1.0")
	if err != nil {
		logger.Error("failed to initialize meter", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownMeter(ctx) }()

	if err := otelruntime.Start(); err != nil {
		logger.Error("failed to start runtime instrumentation", "error", err)
		os.Exit(1)
	}

	connectCtx, cancelConnect := context.WithTimeout(ctx, 15*time.Second)
	db, err := store.Connect(connectCtx, databaseURL, databaseName)
	cancelConnect()
	if err != nil {
		logger.Error("failed to connect to document store", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Client().Disconnect(ctx) }()

	var producer *messaging.Producer
	kafkaBrokers := os.Getenv("KAFKA_BROKERS")
	if kafkaBrokers != "" {
		brokers := strings.Split(kafkaBrokers, ",")
		producer = messaging.NewProducer(brokers, "order.placed")
		defer func() { _ = producer.Close() }()
	}

	stock := inventory.NewStockRepository(db)
	orders := checkout.NewOrderRepository(db)
	engine := checkout.NewEngine(stock, orders, logger)

	systemHandler := system.NewHandler(db, logger)
	seedHandler := seed.NewHandler(seed.NewSeeder(db, logger), logger)
	configHandler := configflag.NewHandler(configflag.NewRepository(db), logger)
	catalogHandler := catalog.NewHandler(catalog.NewRepository(db), logger)
	checkoutHandler := checkout.NewHandler(engine, producer, logger)
	reviewsHandler := reviews.NewHandler(reviews.NewRepository(db), logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", telemetry.WithHTTPRoute(systemHandler.HandleRoot))
	mux.HandleFunc("GET /test", telemetry.WithHTTPRoute(systemHandler.HandleDiagnostics))
	mux.HandleFunc("GET /schema", telemetry.WithHTTPRoute(systemHandler.HandleSchema))
	mux.HandleFunc("POST /seed", telemetry.WithHTTPRoute(seedHandler.HandleSeed))
	mux.HandleFunc("GET /config", telemetry.WithHTTPRoute(configHandler.HandleGet))
	mux.HandleFunc("POST /config/toggle", telemetry.WithHTTPRoute(configHandler.HandleToggle))
	mux.HandleFunc("GET /collections/{handle}/products", telemetry.WithHTTPRoute(catalogHandler.HandleListByCollection))
	mux.HandleFunc("GET /products/{id}", telemetry.WithHTTPRoute(catalogHandler.HandleGetProduct))
	mux.HandleFunc("POST /checkout", telemetry.WithHTTPRoute(checkoutHandler.HandleCheckout))
	mux.HandleFunc("GET /products/{id}/reviews", telemetry.WithHTTPRoute(reviewsHandler.HandleList))
	mux.HandleFunc("POST /products/{id}/reviews", telemetry.WithHTTPRoute(reviewsHandler.HandleAdd))
	mux.Handle("GET /metrics", metricsHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	handler := otelhttp.NewHandler(mux, "storefront",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			if r.Pattern != "" {
				return r.Pattern
			}
			return r.Method + " " + r.URL.Path
		}),
	)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      cors.AllowAll().Handler(handler),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting storefront service", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
