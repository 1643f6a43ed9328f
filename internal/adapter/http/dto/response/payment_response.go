package response

import (
	"time"

	"vaquinha/internal/domain/entities"
)

type PaymentResponse struct {
	ID                   string    `json:"id"`
	Status               string    `json:"status"`
	Description          string    `json:"description,omitempty"`
	Price                float64   `json:"price"`
	MercadoPagoPaymentID string    `json:"mercado_pago_payment_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                   p.ID,
		Status:               string(p.Status),
		Description:          p.Description,
		Price:                entities.AmountFromCents(p.PriceCents).InexactFloat64(),
		MercadoPagoPaymentID: p.MercadoPagoPaymentID,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

// CheckoutResponse keeps the provider field names used by the checkout page.
type CheckoutResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
	PaymentID string `json:"payment_id"`
}

type ParticipantPixResponse struct {
	QRCodeBase64 string `json:"qr_code_base64"`
	QRCodeText   string `json:"qr_code_text"`
	PaymentID    string `json:"payment_id"`
}

// WebhookResponse is the acknowledgement body expected by Mercado Pago.
type WebhookResponse struct {
	Status string `json:"status"`
}

type WebhookErrorResponse struct {
	Error string `json:"error"`
}
