package routes

import (
	"context"
	"fmt"

	"vaquinha/internal/adapter/http/dto/response"
	"vaquinha/internal/adapter/http/handlers"
	"vaquinha/internal/adapter/persistence/memory"
	"vaquinha/internal/adapter/persistence/repository"
	"vaquinha/internal/infrastructure/config"
	"vaquinha/internal/infrastructure/database"
	"vaquinha/internal/infrastructure/payments"
	"vaquinha/internal/infrastructure/realtime"
	"vaquinha/internal/infrastructure/signature"
	"vaquinha/internal/usecase"
	"vaquinha/internal/usecase/interfaces"
	"vaquinha/pkg/logger"

	"go.uber.org/zap"
)

// BuildHandlers wires storage, payment provider and use cases from cfg.
func BuildHandlers(ctx context.Context, cfg *config.Config, log *zap.Logger) (Handlers, error) {
	log = logger.OrNop(log)
	paymentRepo, poolRepo, err := buildRepositories(ctx, cfg)
	if err != nil {
		return Handlers{}, err
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(payments.Options{
		AccessToken:   cfg.MercadoPagoAccessToken,
		LookupTimeout: cfg.MercadoPagoLookupTimeout,
		Mock:          cfg.PaymentGatewayMock,
		Logger:        log,
	})
	if err != nil {
		log.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	hub := realtime.NewPoolHub(response.PoolSnapshot, log)
	verifier := signature.NewVerifier(cfg.MercadoPagoWebhookSecret)

	// Reconciliation needs the lookup even without a preference/PIX client;
	// a nil gateway answers every lookup with "not configured".
	reconciliation := usecase.NewReconciliationUseCase(verifier, mpGateway, paymentRepo, poolRepo, hub, log)
	checkout := usecase.NewCheckoutUseCase(paymentRepo, gateway, cfg.AppURL, log)
	pools := usecase.NewPoolUseCase(poolRepo, gateway, cfg.AppURL, cfg.FreePoolLimit, log)

	return Handlers{
		Webhook:  handlers.NewWebhookHandler(reconciliation),
		Checkout: handlers.NewCheckoutHandler(checkout),
		Pools:    handlers.NewPoolHandler(pools, hub),
	}, nil
}

func buildRepositories(ctx context.Context, cfg *config.Config) (interfaces.IPaymentRepository, interfaces.IPoolRepository, error) {
	switch cfg.StorageBackend {
	case config.StorageMemory:
		return memory.NewPaymentRepository(), memory.NewPoolRepository(), nil
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create dynamodb client: %w", err)
		}
		return repository.NewPaymentDynamoRepository(ddb, cfg.PaymentsTable),
			repository.NewPoolDynamoRepository(ddb, cfg.PoolsTable, cfg.UsersTable),
			nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
