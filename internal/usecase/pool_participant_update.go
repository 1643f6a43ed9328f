package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vaquinha/internal/domain/entities"
	"vaquinha/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// maxParticipantUpdateAttempts bounds the optimistic read-modify-write loop on
// a pool. Conflicts only happen when two writers touch the same pool at once.
const maxParticipantUpdateAttempts = 8

var (
	ErrPoolNotFound        = errors.New("pool not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrPoolUpdateContended = errors.New("pool update contended")
)

// updateParticipant re-reads the pool, applies fn to the participant at index
// and writes the participants sequence back conditioned on the version read.
// On a version conflict the cycle restarts from a fresh read, so concurrent
// updates of different participants never overwrite each other.
func updateParticipant(
	ctx context.Context,
	repo interfaces.IPoolRepository,
	poolID string,
	index int,
	fn func(entities.Participant) entities.Participant,
) (entities.Pool, error) {
	if strings.TrimSpace(poolID) == "" {
		return entities.Pool{}, ErrPoolNotFound
	}
	for attempt := 1; attempt <= maxParticipantUpdateAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return entities.Pool{}, err
		}

		pool, err := repo.GetByID(ctx, poolID)
		if err != nil {
			return entities.Pool{}, fmt.Errorf("%w: pool %s: %w", ErrStorageReadFailed, poolID, err)
		}
		if pool.ID == "" {
			return entities.Pool{}, ErrPoolNotFound
		}

		participants, err := pool.WithParticipant(index, fn)
		if err != nil {
			return pool, ErrParticipantNotFound
		}

		updated, err := repo.ReplaceParticipants(ctx, pool.ID, pool.Version, participants)
		if errors.Is(err, interfaces.ErrPoolVersionConflict) {
			continue
		}
		if err != nil {
			return entities.Pool{}, err
		}
		return updated, nil
	}
	return entities.Pool{}, fmt.Errorf("%w: %d attempts: %w", ErrPoolUpdateContended, maxParticipantUpdateAttempts, interfaces.ErrPoolVersionConflict)
}

// newRecordID returns a storage id without "-", a requirement of the
// external reference format.
func newRecordID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
