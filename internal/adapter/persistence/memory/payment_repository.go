// Package memory holds process-local repositories used for local runs
// (STORAGE_BACKEND=memory) and tests.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"vaquinha/internal/domain/entities"
	"vaquinha/internal/usecase/interfaces"
)

var ErrAlreadyExists = errors.New("record already exists")

type PaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]entities.Payment
}

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{payments: make(map[string]entities.Payment)}
}

func (r *PaymentRepository) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[p.ID]; ok {
		return entities.Payment{}, ErrAlreadyExists
	}
	r.payments[p.ID] = p
	return p, nil
}

func (r *PaymentRepository) GetByID(_ context.Context, id string) (entities.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.payments[id], nil
}

// UpdateStatus creates the record when it does not exist yet.
func (r *PaymentRepository) UpdateStatus(_ context.Context, id string, status entities.PaymentStatus, mercadoPagoPaymentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.payments[id]
	p.ID = id
	p.Status = status
	if mercadoPagoPaymentID != "" {
		p.MercadoPagoPaymentID = mercadoPagoPaymentID
	}
	p.UpdatedAt = time.Now().UTC()
	r.payments[id] = p
	return nil
}
