package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"vaquinha/internal/domain/entities"
	"vaquinha/internal/usecase/interfaces"
	"vaquinha/pkg/logger"

	"go.uber.org/zap"
)

//go:generate mockgen -source=reconciliation_usecase.go -destination=../adapter/http/handlers/mocks/mock_reconciliation_usecase.go -package=mocks

var (
	ErrMalformedNotification = errors.New("malformed notification")
	ErrNotificationRejected  = errors.New("notification rejected")
	ErrLookupFailed          = errors.New("payment lookup failed")
	ErrStorageReadFailed     = errors.New("storage read failed")
	ErrStorageWriteFailed    = errors.New("storage write failed")
)

const paymentNotificationType = "payment"

// ReconciliationOutcome is the terminal state of one notification.
type ReconciliationOutcome string

const (
	OutcomeAcknowledged ReconciliationOutcome = "acknowledged"
	OutcomeRejected     ReconciliationOutcome = "rejected"
	OutcomeErrored      ReconciliationOutcome = "errored"
)

// Reasons for acknowledging a notification without a storage write.
const (
	SkipNonPaymentNotification = "non_payment_notification"
	SkipMissingReference       = "missing_external_reference"
	SkipPoolNotFound           = "pool_not_found"
	SkipParticipantOutOfRange  = "participant_index_out_of_range"
)

// SignatureHeaders carries the x-signature and x-request-id headers.
type SignatureHeaders struct {
	Signature string
	RequestID string
}

// ReconciliationResult describes what one notification did.
type ReconciliationResult struct {
	Outcome          ReconciliationOutcome
	NotificationType string
	PaymentID        string
	Target           *entities.ExternalReference
	Status           string
	Applied          bool
	SkipReason       string
}

// IReconciliationUseCase applies Mercado Pago payment notifications to
// standalone payments and pool participants.
//
// Errors wrap one of ErrMalformedNotification, ErrNotificationRejected,
// ErrLookupFailed, ErrStorageReadFailed or ErrStorageWriteFailed.
type IReconciliationUseCase interface {
	Handle(ctx context.Context, body []byte, headers SignatureHeaders) (ReconciliationResult, error)
}

type ReconciliationUseCase struct {
	verifier interfaces.ISignatureVerifier
	lookup   interfaces.IPaymentLookup
	payments interfaces.IPaymentRepository
	pools    interfaces.IPoolRepository
	notifier interfaces.IPoolNotifier
	log      *zap.Logger
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(
	verifier interfaces.ISignatureVerifier,
	lookup interfaces.IPaymentLookup,
	payments interfaces.IPaymentRepository,
	pools interfaces.IPoolRepository,
	notifier interfaces.IPoolNotifier,
	log *zap.Logger,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		verifier: verifier,
		lookup:   lookup,
		payments: payments,
		pools:    pools,
		notifier: notifier,
		log:      logger.OrNop(log).Named("webhook"),
	}
}

type notificationEnvelope struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID json.RawMessage `json:"id"`
	} `json:"data"`
}

// paymentID accepts data.id as a JSON string or a JSON number.
func (n notificationEnvelope) paymentID() (string, bool) {
	raw := bytes.TrimSpace(n.Data.ID)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		s = strings.TrimSpace(s)
		return s, s != ""
	}
	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		return "", false
	}
	return num.String(), true
}

func (u *ReconciliationUseCase) Handle(ctx context.Context, body []byte, headers SignatureHeaders) (ReconciliationResult, error) {
	log := u.log.With(zap.String("request_id", headers.RequestID))
	log.Info("webhook.received", zap.Int("body_len", len(body)))

	var envelope notificationEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return u.errored(log, ReconciliationResult{}, fmt.Errorf("%w: %w", ErrMalformedNotification, err))
	}
	result := ReconciliationResult{NotificationType: envelope.Type}

	if envelope.Type != paymentNotificationType {
		log.Info("webhook.ignored", zap.String("type", envelope.Type), zap.String("action", envelope.Action))
		return u.acknowledged(result, SkipNonPaymentNotification), nil
	}

	paymentID, ok := envelope.paymentID()
	if !ok {
		return u.errored(log, result, fmt.Errorf("%w: missing data.id", ErrMalformedNotification))
	}
	result.PaymentID = paymentID
	log = log.With(zap.String("payment_id", paymentID))

	if err := u.verifier.Verify(paymentID, headers.RequestID, headers.Signature); err != nil {
		result.Outcome = OutcomeRejected
		log.Warn("webhook.rejected", zap.String("error_kind", "signature"), zap.Error(err))
		return result, fmt.Errorf("%w: %w", ErrNotificationRejected, err)
	}
	log.Info("webhook.verified")

	details, err := u.lookup.GetPayment(ctx, paymentID)
	if err != nil {
		return u.errored(log, result, fmt.Errorf("%w: %w", ErrLookupFailed, err))
	}
	result.Status = details.Status

	if strings.TrimSpace(details.ExternalReference) == "" {
		log.Warn("webhook.mutation_skipped", zap.String("reason", SkipMissingReference), zap.String("status", details.Status))
		return u.acknowledged(result, SkipMissingReference), nil
	}

	ref := entities.DecodeExternalReference(details.ExternalReference)
	result.Target = &ref
	log = log.With(zap.Stringer("target_kind", ref.Kind))
	log.Info("webhook.resolved", zap.String("external_reference", details.ExternalReference))

	switch ref.Kind {
	case entities.ReferencePoolParticipant:
		return u.applyToParticipant(ctx, log, result, ref, details)
	default:
		return u.applyToPayment(ctx, log, result, ref, details)
	}
}

func (u *ReconciliationUseCase) applyToPayment(ctx context.Context, log *zap.Logger, result ReconciliationResult, ref entities.ExternalReference, details interfaces.PaymentDetails) (ReconciliationResult, error) {
	status := entities.PaymentStatus(details.Status)
	if err := u.payments.UpdateStatus(ctx, ref.PaymentID, status, details.ID); err != nil {
		return u.errored(log, result, fmt.Errorf("%w: payment %s: %w", ErrStorageWriteFailed, ref.PaymentID, err))
	}

	result.Applied = true
	result.Outcome = OutcomeAcknowledged
	log.Info("webhook.mutation_applied", zap.String("payment_record_id", ref.PaymentID), zap.String("status", string(status)))
	return result, nil
}

func (u *ReconciliationUseCase) applyToParticipant(ctx context.Context, log *zap.Logger, result ReconciliationResult, ref entities.ExternalReference, details interfaces.PaymentDetails) (ReconciliationResult, error) {
	status := entities.ParticipantStatusFromProvider(details.Status)
	result.Status = string(status)
	log = log.With(zap.String("pool_id", ref.PoolID), zap.Int("participant_index", ref.ParticipantIndex))

	pool, err := updateParticipant(ctx, u.pools, ref.PoolID, ref.ParticipantIndex, func(p entities.Participant) entities.Participant {
		p.Status = status
		return p
	})
	switch {
	case errors.Is(err, ErrPoolNotFound):
		log.Warn("webhook.mutation_skipped", zap.String("reason", SkipPoolNotFound))
		return u.acknowledged(result, SkipPoolNotFound), nil
	case errors.Is(err, ErrParticipantNotFound):
		log.Warn("webhook.mutation_skipped", zap.String("reason", SkipParticipantOutOfRange))
		return u.acknowledged(result, SkipParticipantOutOfRange), nil
	case errors.Is(err, ErrStorageReadFailed):
		return u.errored(log, result, err)
	case err != nil:
		return u.errored(log, result, fmt.Errorf("%w: pool %s: %w", ErrStorageWriteFailed, ref.PoolID, err))
	}

	result.Applied = true
	result.Outcome = OutcomeAcknowledged
	log.Info("webhook.mutation_applied", zap.String("status", string(status)), zap.Int64("pool_version", pool.Version))

	if u.notifier != nil {
		u.notifier.PublishPool(pool)
	}
	return result, nil
}

func (u *ReconciliationUseCase) acknowledged(result ReconciliationResult, reason string) ReconciliationResult {
	result.Outcome = OutcomeAcknowledged
	result.SkipReason = reason
	return result
}

func (u *ReconciliationUseCase) errored(log *zap.Logger, result ReconciliationResult, err error) (ReconciliationResult, error) {
	result.Outcome = OutcomeErrored
	log.Error("webhook.errored", zap.String("error_kind", errorKind(err)), zap.Error(err))
	return result, err
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrMalformedNotification):
		return "malformed_notification"
	case errors.Is(err, ErrLookupFailed):
		return "lookup_failed"
	case errors.Is(err, ErrStorageReadFailed):
		return "storage_read_failed"
	case errors.Is(err, ErrStorageWriteFailed):
		return "storage_write_failed"
	default:
		return "unknown"
	}
}
