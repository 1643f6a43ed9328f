package interfaces

import "context"

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway_interface.go -package=mock_interfaces

// PaymentDetails is the authoritative view of a provider payment.
type PaymentDetails struct {
	ID                string
	Status            string
	ExternalReference string
	PayerEmail        string
}

type BackURLs struct {
	Success string
	Failure string
	Pending string
}

// PreferenceRequest creates a checkout preference with a single item.
type PreferenceRequest struct {
	ItemID            string
	Title             string
	UnitPriceCents    int64
	ExternalReference string
	NotificationURL   string
	BackURLs          BackURLs
}

type PreferenceResult struct {
	ID        string
	InitPoint string
}

// PixPaymentRequest creates a PIX payment through the payments API.
type PixPaymentRequest struct {
	AmountCents       int64
	Description       string
	ExternalReference string
	NotificationURL   string
	PayerEmail        string
	PayerFirstName    string
	PayerLastName     string
}

type PixPaymentResult struct {
	ID           string
	Status       string
	QRCode       string
	QRCodeBase64 string
}

// IPaymentLookup fetches payment details from the provider.
type IPaymentLookup interface {
	GetPayment(ctx context.Context, paymentID string) (PaymentDetails, error)
}

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
type IPaymentGateway interface {
	IPaymentLookup
	CreatePreference(ctx context.Context, req PreferenceRequest) (PreferenceResult, error)
	CreatePixPayment(ctx context.Context, req PixPaymentRequest) (PixPaymentResult, error)
}
