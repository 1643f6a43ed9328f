package entities

import "time"

// PaymentStatus mirrors the Mercado Pago payment status. Standalone payments
// store whatever the provider reports; the constants cover the common values.
type PaymentStatus string

const (
	PaymentStatusPending       PaymentStatus = "pending"
	PaymentStatusApproved      PaymentStatus = "approved"
	PaymentStatusInProcess     PaymentStatus = "in_process"
	PaymentStatusPendingReview PaymentStatus = "pending_review"
	PaymentStatusRejected      PaymentStatus = "rejected"
	PaymentStatusCancelled     PaymentStatus = "cancelled"
	PaymentStatusRefunded      PaymentStatus = "refunded"
	PaymentStatusFailure       PaymentStatus = "failure"
)

// Payment is a standalone checkout payment.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Created as pending by the checkout flow, status overwritten by the webhook.
type Payment struct {
	ID                   string        `json:"id"`
	Status               PaymentStatus `json:"status"`
	Description          string        `json:"description"`
	PriceCents           int64         `json:"price_cents"`
	MercadoPagoPaymentID string        `json:"mercado_pago_payment_id,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}
