package main

import (
	"context"
	_ "detailing_crm/docs"
	"detailing_crm/internal/adapter/http/handlers"
	"detailing_crm/internal/adapter/http/routes"
	"detailing_crm/internal/adapter/persistence/repository"
	"detailing_crm/internal/config"
	"detailing_crm/internal/infrastructure/database"
	"detailing_crm/internal/infrastructure/logging"
	"detailing_crm/internal/infrastructure/metrics"
	"detailing_crm/internal/infrastructure/payments"
	"detailing_crm/internal/infrastructure/signature"
	"detailing_crm/internal/usecase"
	"detailing_crm/internal/usecase/interfaces"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// @title           Detailing CRM API
// @version         1.0
// @description     Visits, pricing, payments and tablet signatures of a car detailing studio.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Stage, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("failed to run the application", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Stage == config.StageProd {
		gin.SetMode(gin.ReleaseMode)
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}

	visitRepo := repository.NewVisitDynamoRepository(ddb, cfg.Tables.Visits)
	paymentRepo := repository.NewVisitPaymentDynamoRepository(ddb, cfg.Tables.Payments)
	sessionRepo := repository.NewSignatureSessionDynamoRepository(ddb, cfg.Tables.SignatureSessions)

	var paymentGateway interfaces.IPaymentGateway
	if cfg.Payments.Mock {
		logger.Info("payment gateway in mock mode")
	} else if mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments, logger); err != nil {
		logger.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	signatureClient, err := signature.NewClient(cfg.Signature, logger)
	if err != nil {
		return fmt.Errorf("signature client: %w", err)
	}

	visitUseCase := usecase.NewVisitUseCase(visitRepo)
	paymentUseCase := usecase.NewVisitPaymentUseCase(paymentRepo, visitRepo, paymentGateway, cfg.Payments, logger)
	signatureUseCase := usecase.NewSignatureUseCase(signatureClient, sessionRepo, usecase.SignatureCoordinatorConfig{
		PollInterval:    cfg.Signature.PollInterval,
		CompletionDelay: cfg.Signature.CompletionDelay,
	}, logger, metrics.NewSignature(prometheus.DefaultRegisterer))

	router := routes.NewRouter(routes.Handlers{
		Visit:     handlers.NewVisitHandler(visitUseCase),
		Payment:   handlers.NewVisitPaymentHandler(paymentUseCase, logger, cfg.Payments.Mock),
		Pricing:   handlers.NewPricingHandler(),
		Signature: handlers.NewSignatureHandler(signatureUseCase, logger),
	}, logger, metrics.NewHTTP(prometheus.DefaultRegisterer))

	srv := routes.NewServer(cfg.Port, router)
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr), zap.String("stage", cfg.Stage))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", zap.Error(err))
	}
	if err := signatureUseCase.Shutdown(shutdownCtx); err != nil {
		logger.Error("signature shutdown", zap.Error(err))
	}
	return nil
}
