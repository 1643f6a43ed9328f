package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"vaquinha/internal/domain/entities"
	"vaquinha/internal/usecase/interfaces"
	"vaquinha/pkg/logger"

	"go.uber.org/zap"
)

//go:generate mockgen -source=checkout_usecase.go -destination=../adapter/http/handlers/mocks/mock_checkout_usecase.go -package=mocks

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrInvalidCheckoutPrice = errors.New("invalid checkout price")
	ErrAppURLNotConfigured  = errors.New("APP_URL is not configured")
)

const (
	defaultCheckoutDescription = "Produto de Teste"
	defaultCheckoutPriceCents  = 199
)

// CheckoutInput describes a single-item checkout. Zero values fall back to
// the default test product.
type CheckoutInput struct {
	Description string
	PriceCents  int64
}

type CheckoutResult struct {
	Payment      entities.Payment
	PreferenceID string
	InitPoint    string
}

// ICheckoutUseCase is the single-item checkout flow: a pending payment record
// plus a Mercado Pago preference whose external_reference is the record id.
type ICheckoutUseCase interface {
	CreateCheckout(ctx context.Context, in CheckoutInput) (CheckoutResult, error)
	GetPayment(ctx context.Context, id string) (entities.Payment, error)
}

type CheckoutUseCase struct {
	repo    interfaces.IPaymentRepository
	gateway interfaces.IPaymentGateway
	appURL  string
	log     *zap.Logger
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(repo interfaces.IPaymentRepository, gateway interfaces.IPaymentGateway, appURL string, log *zap.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{
		repo:    repo,
		gateway: gateway,
		appURL:  strings.TrimRight(strings.TrimSpace(appURL), "/"),
		log:     logger.OrNop(log).Named("checkout.usecase"),
	}
}

func (u *CheckoutUseCase) CreateCheckout(ctx context.Context, in CheckoutInput) (CheckoutResult, error) {
	if u.appURL == "" {
		return CheckoutResult{}, ErrAppURLNotConfigured
	}
	if u.gateway == nil {
		return CheckoutResult{}, ErrPaymentGatewayNotConfigured
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		description = defaultCheckoutDescription
	}
	price := in.PriceCents
	if price == 0 {
		price = defaultCheckoutPriceCents
	}
	if price < 0 {
		return CheckoutResult{}, ErrInvalidCheckoutPrice
	}

	now := time.Now().UTC()
	p := entities.Payment{
		ID:          newRecordID(),
		Status:      entities.PaymentStatusPending,
		Description: description,
		PriceCents:  price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.Error("payment record create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return CheckoutResult{}, err
	}
	u.log.Info("payment record created", zap.String("payment_id", created.ID), zap.Int64("price_cents", created.PriceCents))

	pref, err := u.gateway.CreatePreference(ctx, interfaces.PreferenceRequest{
		ItemID:            created.ID,
		Title:             created.Description,
		UnitPriceCents:    created.PriceCents,
		ExternalReference: entities.NewStandaloneReference(created.ID).String(),
		NotificationURL:   u.appURL + "/api/webhook",
		BackURLs: interfaces.BackURLs{
			Success: u.appURL + "/feedback?status=success",
			Failure: u.appURL + "/feedback?status=failure",
			Pending: u.appURL + "/feedback?status=pending",
		},
	})
	if err != nil {
		u.log.Error("preference create failed", zap.String("payment_id", created.ID), zap.Error(err))
		return CheckoutResult{}, mapGatewayError(err)
	}
	u.log.Info("preference created", zap.String("payment_id", created.ID), zap.String("preference_id", pref.ID))

	return CheckoutResult{Payment: created, PreferenceID: pref.ID, InitPoint: pref.InitPoint}, nil
}

func (u *CheckoutUseCase) GetPayment(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}
