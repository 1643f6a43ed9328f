package memory

import (
	"context"
	"sort"
	"sync"

	"vaquinha/internal/domain/entities"
	"vaquinha/internal/usecase/interfaces"
)

// PoolRepository keeps pools and owner quotas behind one mutex, which gives
// CreateWithQuota and ReplaceParticipants the same atomicity as the
// DynamoDB transactions.
type PoolRepository struct {
	mu    sync.RWMutex
	pools map[string]entities.Pool
	users map[string]entities.User
}

var _ interfaces.IPoolRepository = (*PoolRepository)(nil)

func NewPoolRepository() *PoolRepository {
	return &PoolRepository{
		pools: make(map[string]entities.Pool),
		users: make(map[string]entities.User),
	}
}

// PutUser seeds an owner's plan and quota counter.
func (r *PoolRepository) PutUser(u entities.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
}

func (r *PoolRepository) User(id string) entities.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.users[id]
}

// PutPool stores a pool as-is, bypassing the quota.
func (r *PoolRepository) PutPool(p entities.Pool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pools[p.ID] = clonePool(p)
}

func (r *PoolRepository) CreateWithQuota(_ context.Context, pool entities.Pool, quota interfaces.PoolQuota) (entities.Pool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pools[pool.ID]; ok {
		return entities.Pool{}, ErrAlreadyExists
	}

	user, ok := r.users[quota.OwnerID]
	if !ok {
		user = entities.User{ID: quota.OwnerID}
	}
	if !user.IsPro(quota.Now) {
		if user.FreePoolsCreated >= quota.FreeLimit {
			return entities.Pool{}, interfaces.ErrPoolQuotaExceeded
		}
		user.FreePoolsCreated++
		r.users[user.ID] = user
	}

	r.pools[pool.ID] = clonePool(pool)
	return clonePool(pool), nil
}

func (r *PoolRepository) GetByID(_ context.Context, id string) (entities.Pool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.pools[id]
	if !ok {
		return entities.Pool{}, nil
	}
	return clonePool(p), nil
}

func (r *PoolRepository) ListByOwner(_ context.Context, ownerID string) ([]entities.Pool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Pool, 0)
	for _, p := range r.pools {
		if p.CreatedBy == ownerID {
			out = append(out, clonePool(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *PoolRepository) ReplaceParticipants(_ context.Context, poolID string, expectedVersion int64, participants []entities.Participant) (entities.Pool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pools[poolID]
	if !ok || p.Version != expectedVersion {
		return entities.Pool{}, interfaces.ErrPoolVersionConflict
	}
	p.Participants = cloneParticipants(participants)
	p.Version++
	r.pools[poolID] = p
	return clonePool(p), nil
}

func clonePool(p entities.Pool) entities.Pool {
	p.Participants = cloneParticipants(p.Participants)
	return p
}

func cloneParticipants(in []entities.Participant) []entities.Participant {
	if in == nil {
		return nil
	}
	out := make([]entities.Participant, len(in))
	for i, part := range in {
		if part.FirebasePaymentID != nil {
			id := *part.FirebasePaymentID
			part.FirebasePaymentID = &id
		}
		out[i] = part
	}
	return out
}
