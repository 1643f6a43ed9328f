package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vaquinha/internal/domain/entities"
	"vaquinha/internal/usecase/interfaces"
	"vaquinha/pkg/logger"

	"go.uber.org/zap"
)

//go:generate mockgen -source=pool_usecase.go -destination=../adapter/http/handlers/mocks/mock_pool_usecase.go -package=mocks

var (
	ErrInvalidPoolID      = errors.New("invalid pool id")
	ErrInvalidOwnerID     = errors.New("invalid owner id")
	ErrInvalidPoolInput   = errors.New("invalid pool input")
	ErrPoolQuotaExceeded  = errors.New("free pool quota exceeded")
	ErrPixDataUnavailable = errors.New("pix qr code data unavailable")
)

const (
	DefaultFreePoolLimit = 3

	pixPayerFirstName = "Participante"
	pixPayerLastName  = "da Vaquinha"
	pixPayerEmailMask = "pagador%d@vaquinha.com"
)

// CreatePoolInput is the pool creation command. Amounts are derived from
// TotalAmountCents by SplitAmount, one share per name.
type CreatePoolInput struct {
	OwnerID          string
	Title            string
	Description      string
	TotalAmountCents int64
	ReceiverPixKey   string
	ParticipantNames []string
}

type ParticipantPixInput struct {
	PoolID           string
	ParticipantIndex int
	Title            string
}

type ParticipantPixResult struct {
	PaymentID    string
	QRCode       string
	QRCodeBase64 string
}

// IPoolUseCase exposes pool ("vaquinha") operations.
//
//   - CreatePool: split + owner quota check in one storage transaction
//   - GetByID / ListByOwner: reads for the pool pages
//   - GenerateParticipantPix: PIX payment for one participant; the webhook
//     later routes it back through the "<poolId>-<index>" reference
type IPoolUseCase interface {
	CreatePool(ctx context.Context, in CreatePoolInput) (entities.Pool, error)
	GetByID(ctx context.Context, id string) (entities.Pool, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Pool, error)
	GenerateParticipantPix(ctx context.Context, in ParticipantPixInput) (ParticipantPixResult, error)
}

type PoolUseCase struct {
	repo          interfaces.IPoolRepository
	gateway       interfaces.IPaymentGateway
	appURL        string
	freePoolLimit int
	log           *zap.Logger
}

var _ IPoolUseCase = (*PoolUseCase)(nil)

func NewPoolUseCase(repo interfaces.IPoolRepository, gateway interfaces.IPaymentGateway, appURL string, freePoolLimit int, log *zap.Logger) *PoolUseCase {
	if freePoolLimit <= 0 {
		freePoolLimit = DefaultFreePoolLimit
	}
	return &PoolUseCase{
		repo:          repo,
		gateway:       gateway,
		appURL:        strings.TrimRight(strings.TrimSpace(appURL), "/"),
		freePoolLimit: freePoolLimit,
		log:           logger.OrNop(log).Named("pool.usecase"),
	}
}

func (u *PoolUseCase) CreatePool(ctx context.Context, in CreatePoolInput) (entities.Pool, error) {
	ownerID := strings.TrimSpace(in.OwnerID)
	if ownerID == "" {
		return entities.Pool{}, ErrInvalidOwnerID
	}

	title := strings.TrimSpace(in.Title)
	pixKey := strings.TrimSpace(in.ReceiverPixKey)
	if title == "" || pixKey == "" || in.TotalAmountCents <= 0 || len(in.ParticipantNames) == 0 {
		return entities.Pool{}, ErrInvalidPoolInput
	}
	names := make([]string, len(in.ParticipantNames))
	for i, name := range in.ParticipantNames {
		names[i] = strings.TrimSpace(name)
		if names[i] == "" {
			return entities.Pool{}, fmt.Errorf("%w: participant %d has no name", ErrInvalidPoolInput, i)
		}
	}

	shares, err := entities.SplitAmount(in.TotalAmountCents, len(names))
	if err != nil {
		return entities.Pool{}, fmt.Errorf("%w: %w", ErrInvalidPoolInput, err)
	}

	participants := make([]entities.Participant, len(names))
	for i, name := range names {
		participants[i] = entities.Participant{
			Name:        name,
			AmountCents: shares[i],
			Status:      entities.ParticipantStatusPending,
		}
	}

	now := time.Now().UTC()
	pool := entities.Pool{
		ID:               newRecordID(),
		Title:            title,
		Description:      strings.TrimSpace(in.Description),
		TotalAmountCents: in.TotalAmountCents,
		ReceiverPixKey:   pixKey,
		CreatedBy:        ownerID,
		CreatedAt:        now,
		Participants:     participants,
		Version:          1,
	}

	created, err := u.repo.CreateWithQuota(ctx, pool, interfaces.PoolQuota{OwnerID: ownerID, FreeLimit: u.freePoolLimit, Now: now})
	if err != nil {
		if errors.Is(err, interfaces.ErrPoolQuotaExceeded) {
			u.log.Info("pool quota exceeded", zap.String("owner_id", ownerID), zap.Int("limit", u.freePoolLimit))
			return entities.Pool{}, ErrPoolQuotaExceeded
		}
		u.log.Error("pool create failed", zap.String("owner_id", ownerID), zap.Error(err))
		return entities.Pool{}, err
	}
	u.log.Info("pool created", zap.String("pool_id", created.ID), zap.String("owner_id", ownerID), zap.Int("participants", len(participants)))
	return created, nil
}

func (u *PoolUseCase) GetByID(ctx context.Context, id string) (entities.Pool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Pool{}, ErrInvalidPoolID
	}

	pool, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Pool{}, err
	}
	if pool.ID == "" {
		return entities.Pool{}, ErrPoolNotFound
	}
	return pool, nil
}

func (u *PoolUseCase) ListByOwner(ctx context.Context, ownerID string) ([]entities.Pool, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	return u.repo.ListByOwner(ctx, ownerID)
}

func (u *PoolUseCase) GenerateParticipantPix(ctx context.Context, in ParticipantPixInput) (ParticipantPixResult, error) {
	if u.appURL == "" {
		return ParticipantPixResult{}, ErrAppURLNotConfigured
	}
	if u.gateway == nil {
		return ParticipantPixResult{}, ErrPaymentGatewayNotConfigured
	}

	// The stored participant amount is the source of truth, not the client.
	pool, err := u.GetByID(ctx, in.PoolID)
	if err != nil {
		return ParticipantPixResult{}, err
	}
	if !pool.HasParticipant(in.ParticipantIndex) {
		return ParticipantPixResult{}, ErrParticipantNotFound
	}
	participant := pool.Participants[in.ParticipantIndex]

	description := strings.TrimSpace(in.Title)
	if description == "" {
		description = pool.Title
	}

	ref := entities.NewPoolParticipantReference(pool.ID, in.ParticipantIndex)
	log := u.log.With(zap.String("pool_id", pool.ID), zap.Int("participant_index", in.ParticipantIndex))

	pix, err := u.gateway.CreatePixPayment(ctx, interfaces.PixPaymentRequest{
		AmountCents:       participant.AmountCents,
		Description:       description,
		ExternalReference: ref.String(),
		NotificationURL:   u.appURL + "/api/webhook",
		PayerEmail:        fmt.Sprintf(pixPayerEmailMask, time.Now().UnixMilli()),
		PayerFirstName:    pixPayerFirstName,
		PayerLastName:     pixPayerLastName,
	})
	if err != nil {
		log.Error("pix payment create failed", zap.Error(err))
		return ParticipantPixResult{}, mapGatewayError(err)
	}
	if pix.QRCode == "" || pix.QRCodeBase64 == "" {
		log.Error("pix payment without qr code data", zap.String("provider_payment_id", pix.ID))
		return ParticipantPixResult{}, ErrPixDataUnavailable
	}
	log.Info("pix payment created", zap.String("provider_payment_id", pix.ID))

	// The payment id on the participant is informational; a failed write
	// does not invalidate the QR code already issued.
	paymentID := pix.ID
	if _, err := updateParticipant(ctx, u.repo, pool.ID, in.ParticipantIndex, func(p entities.Participant) entities.Participant {
		p.FirebasePaymentID = &paymentID
		return p
	}); err != nil {
		log.Warn("attach payment id to participant failed", zap.String("provider_payment_id", pix.ID), zap.Error(err))
	}

	return ParticipantPixResult{PaymentID: pix.ID, QRCode: pix.QRCode, QRCodeBase64: pix.QRCodeBase64}, nil
}
