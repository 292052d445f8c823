package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/events"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/handler"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/money"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/repository"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/service"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/view"
	"github.com/cloud-wave-best-zizon/storefront-service/pkg/config"
	pkgtls "github.com/cloud-wave-best-zizon/storefront-service/pkg/tls"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Config 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Logger 초기화
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}

	converter, err := money.ParseRate(cfg.ExchangeRate)
	if err != nil {
		logger.Fatal("Invalid exchange rate", zap.String("rate", cfg.ExchangeRate), zap.Error(err))
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.KafkaEnabled {
		publisher = events.NewKafkaProducer(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		logger.Info("Order events enabled",
			zap.String("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.KafkaTopic))
	}
	defer publisher.Close()

	templates, err := view.Templates()
	if err != nil {
		logger.Fatal("Failed to parse templates", zap.Error(err))
	}

	// Service, Handler 초기화
	storefront := service.NewStorefrontService(
		catalog,
		converter,
		cfg.AdminPasscode,
		domain.ParseLanguage(cfg.DefaultLanguage),
		logger,
		service.WithPublisher(publisher),
	)
	renderer := view.NewRenderer(catalog, converter)

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handler.NewRouter(handler.RouterConfig{
		Storefront:   storefront,
		Renderer:     renderer,
		Templates:    templates,
		Logger:       logger,
		AllowOrigins: cfg.CORSAllowOrigins,
	})

	tlsSource, tlsConfig, err := pkgtls.Load(ctx, cfg.TLSEnabled, cfg.SpireSocketPath, logger)
	if err != nil {
		logger.Fatal("Failed to load TLS config", zap.Error(err))
	}
	defer tlsSource.Close()

	// Server 시작
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		TLSConfig:         tlsConfig,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting server",
			zap.String("port", cfg.Port),
			zap.Int("products", catalog.Len()),
			zap.Bool("tls", tlsConfig != nil))

		var err error
		if tlsConfig != nil {
			go tlsSource.Watch(ctx, 30*time.Second)
			// 인증서는 SPIRE X509Source에서 제공
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

func loadCatalog(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*repository.Catalog, error) {
	if cfg.CatalogSource != config.CatalogDynamoDB {
		return repository.NewCatalog(repository.DefaultProducts())
	}

	dynamoClient, err := repository.NewDynamoDBClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	products, err := repository.LoadDynamoDBProducts(ctx, dynamoClient, cfg.CatalogTableName)
	if err != nil {
		return nil, err
	}
	logger.Info("Catalog loaded from DynamoDB",
		zap.String("table", cfg.CatalogTableName),
		zap.Int("products", len(products)))
	return repository.NewCatalog(products)
}
