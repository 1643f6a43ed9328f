package interfaces

import (
	"context"
	"errors"
	"time"

	"vaquinha/internal/domain/entities"
)

//go:generate mockgen -source=pool_repository_interface.go -destination=mocks/mock_pool_repository_interface.go -package=mock_interfaces

var (
	// ErrPoolVersionConflict means the pool changed between the read and the
	// conditional write of a read-modify-write cycle.
	ErrPoolVersionConflict = errors.New("pool version conflict")
	ErrPoolQuotaExceeded   = errors.New("free pool quota exceeded")
)

// PoolQuota describes the owner quota checked in the pool creation transaction.
type PoolQuota struct {
	OwnerID   string
	FreeLimit int
	Now       time.Time
}

// IPoolRepository abstracts persistence for pools.
//
// The participants sequence is only written through ReplaceParticipants, which
// must fail with ErrPoolVersionConflict when the stored version differs from
// expectedVersion. GetByID returns a zero Pool (empty ID) when not found.
type IPoolRepository interface {
	CreateWithQuota(ctx context.Context, pool entities.Pool, quota PoolQuota) (entities.Pool, error)
	GetByID(ctx context.Context, id string) (entities.Pool, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Pool, error)
	ReplaceParticipants(ctx context.Context, poolID string, expectedVersion int64, participants []entities.Participant) (entities.Pool, error)
}
