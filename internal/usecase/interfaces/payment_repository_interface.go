package interfaces

import (
	"context"
	"vaquinha/internal/domain/entities"
)

//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/mock_payment_repository_interface.go -package=mock_interfaces

// IPaymentRepository abstracts persistence for standalone payments.
//
// GetByID returns a zero Payment (empty ID) when the record does not exist.
// UpdateStatus is an unconditional overwrite; it is always issued, even when
// the record is missing.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus, mercadoPagoPaymentID string) error
}
