package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"vaquinha/internal/domain/entities"
	"vaquinha/internal/usecase/interfaces"
	"vaquinha/pkg/logger"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidProviderPaymentID = errors.New("invalid provider payment id")

const (
	DefaultLookupTimeout = 10 * time.Second

	currencyBRL          = "BRL"
	pixPaymentMethodID   = "pix"
	excludedPaymentType  = "ticket"
	autoReturnApproved   = "approved"
	singleInstallment    = 1
	mockQRCodeTextPrefix = "00020126mock"
)

type Options struct {
	AccessToken   string
	LookupTimeout time.Duration
	Mock          bool
	Logger        *zap.Logger
}

// MercadoPagoGateway talks to the payments and preferences APIs. In mock mode
// no request leaves the process: created PIX payments are remembered and
// GetPayment reports them as approved.
type MercadoPagoGateway struct {
	payments      payment.Client
	preferences   preference.Client
	lookupTimeout time.Duration
	log           *zap.Logger

	mockMode bool
	mu       sync.Mutex
	mockRefs map[string]string
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(opts Options) (*MercadoPagoGateway, error) {
	log := logger.OrNop(opts.Logger).Named("payment.gateway")
	timeout := opts.LookupTimeout
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}

	if opts.Mock {
		log.Info("mock mode enabled")
		return &MercadoPagoGateway{
			lookupTimeout: timeout,
			log:           log,
			mockMode:      true,
			mockRefs:      make(map[string]string),
		}, nil
	}

	if opts.AccessToken == "" {
		log.Error("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(opts.AccessToken)
	if err != nil {
		log.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("Mercado Pago client initialized", zap.Duration("lookup_timeout", timeout))

	return &MercadoPagoGateway{
		payments:      payment.NewClient(cfg),
		preferences:   preference.NewClient(cfg),
		lookupTimeout: timeout,
		log:           log,
	}, nil
}

// GetPayment fetches the authoritative payment record. Notifications carry the
// id as a decimal string; the SDK takes an int.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (interfaces.PaymentDetails, error) {
	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil || id <= 0 {
		return interfaces.PaymentDetails{}, fmt.Errorf("%w: %q", ErrInvalidProviderPaymentID, paymentID)
	}

	if g != nil && g.mockMode {
		return g.mockGetPayment(paymentID), nil
	}
	if g == nil || g.payments == nil {
		return interfaces.PaymentDetails{}, ErrMercadoPagoGatewayNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, g.lookupTimeout)
	defer cancel()

	start := time.Now()
	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		g.log.Error("sdk get failed", zap.String("payment_id", paymentID), zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		return interfaces.PaymentDetails{}, err
	}
	g.log.Info("sdk get success",
		zap.String("payment_id", paymentID),
		zap.String("status", resp.Status),
		zap.Duration("elapsed", time.Since(start)),
	)

	return interfaces.PaymentDetails{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
		PayerEmail:        resp.Payer.Email,
	}, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, req interfaces.PreferenceRequest) (interfaces.PreferenceResult, error) {
	if g != nil && g.mockMode {
		id := mockID()
		g.log.Info("mock preference created", zap.String("preference_id", id), zap.String("external_reference", req.ExternalReference))
		return interfaces.PreferenceResult{
			ID:        id,
			InitPoint: "https://www.mercadopago.com.br/checkout/v1/redirect?pref_id=" + id,
		}, nil
	}
	if g == nil || g.preferences == nil {
		return interfaces.PreferenceResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.preferences.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{{
			ID:         req.ItemID,
			Title:      req.Title,
			Quantity:   1,
			UnitPrice:  entities.AmountFromCents(req.UnitPriceCents).InexactFloat64(),
			CurrencyID: currencyBRL,
		}},
		ExternalReference: req.ExternalReference,
		NotificationURL:   req.NotificationURL,
		BackURLs: &preference.BackURLsRequest{
			Success: req.BackURLs.Success,
			Failure: req.BackURLs.Failure,
			Pending: req.BackURLs.Pending,
		},
		AutoReturn: autoReturnApproved,
		PaymentMethods: &preference.PaymentMethodsRequest{
			ExcludedPaymentTypes: []preference.ExcludedPaymentTypeRequest{{ID: excludedPaymentType}},
			Installments:         singleInstallment,
		},
	})
	if err != nil {
		g.log.Error("sdk preference create failed", zap.String("external_reference", req.ExternalReference), zap.Error(err))
		return interfaces.PreferenceResult{}, err
	}
	g.log.Info("preference created", zap.String("preference_id", resp.ID), zap.String("external_reference", req.ExternalReference))

	return interfaces.PreferenceResult{ID: resp.ID, InitPoint: resp.InitPoint}, nil
}

func (g *MercadoPagoGateway) CreatePixPayment(ctx context.Context, req interfaces.PixPaymentRequest) (interfaces.PixPaymentResult, error) {
	if g != nil && g.mockMode {
		return g.mockCreatePix(req), nil
	}
	if g == nil || g.payments == nil {
		return interfaces.PixPaymentResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.payments.Create(ctx, payment.Request{
		TransactionAmount: entities.AmountFromCents(req.AmountCents).InexactFloat64(),
		Description:       req.Description,
		PaymentMethodID:   pixPaymentMethodID,
		ExternalReference: req.ExternalReference,
		NotificationURL:   req.NotificationURL,
		Payer: &payment.PayerRequest{
			Email:     req.PayerEmail,
			FirstName: req.PayerFirstName,
			LastName:  req.PayerLastName,
		},
	})
	if err != nil {
		g.log.Error("sdk pix create failed", zap.String("external_reference", req.ExternalReference), zap.Error(err))
		return interfaces.PixPaymentResult{}, err
	}
	g.log.Info("pix payment created",
		zap.Int("provider_payment_id", resp.ID),
		zap.String("provider_status", resp.Status),
		zap.String("external_reference", req.ExternalReference),
	)

	return interfaces.PixPaymentResult{
		ID:           strconv.Itoa(resp.ID),
		Status:       resp.Status,
		QRCode:       resp.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64: resp.PointOfInteraction.TransactionData.QRCodeBase64,
	}, nil
}

func (g *MercadoPagoGateway) mockCreatePix(req interfaces.PixPaymentRequest) interfaces.PixPaymentResult {
	id := mockID()
	g.mu.Lock()
	g.mockRefs[id] = req.ExternalReference
	g.mu.Unlock()

	g.log.Info("mock pix payment created", zap.String("provider_payment_id", id), zap.String("external_reference", req.ExternalReference))
	text := mockQRCodeTextPrefix + id
	return interfaces.PixPaymentResult{
		ID:           id,
		Status:       string(entities.PaymentStatusPending),
		QRCode:       text,
		QRCodeBase64: "bW9jay1xcg==",
	}
}

// Payments created in mock mode resolve to approved. Unknown ids resolve to an
// approved payment without reference, which reconciliation acknowledges.
func (g *MercadoPagoGateway) mockGetPayment(paymentID string) interfaces.PaymentDetails {
	g.mu.Lock()
	ref := g.mockRefs[paymentID]
	g.mu.Unlock()

	g.log.Info("mock get", zap.String("payment_id", paymentID), zap.String("external_reference", ref))
	return interfaces.PaymentDetails{
		ID:                paymentID,
		Status:            string(entities.PaymentStatusApproved),
		ExternalReference: ref,
	}
}

func mockID() string {
	return strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
}
