package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"vaquinha/internal/domain/entities"
	"vaquinha/internal/usecase/interfaces"
)

func TestPoolRepository_CreateWithQuota(t *testing.T) {
	repo := NewPoolRepository()
	ctx := context.Background()
	now := time.Now()
	quota := interfaces.PoolQuota{OwnerID: "u1", FreeLimit: 1, Now: now}

	if _, err := repo.CreateWithQuota(ctx, entities.Pool{ID: "a", CreatedBy: "u1"}, quota); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := repo.CreateWithQuota(ctx, entities.Pool{ID: "b", CreatedBy: "u1"}, quota); !errors.Is(err, interfaces.ErrPoolQuotaExceeded) {
		t.Fatalf("expected quota exceeded, got %v", err)
	}
	if p, _ := repo.GetByID(ctx, "b"); p.ID != "" {
		t.Fatalf("pool stored despite quota failure")
	}
	if _, err := repo.CreateWithQuota(ctx, entities.Pool{ID: "a"}, interfaces.PoolQuota{OwnerID: "u2", FreeLimit: 3, Now: now}); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
	if got := repo.User("u2").FreePoolsCreated; got != 0 {
		t.Fatalf("counter incremented on failed create: %d", got)
	}

	expired := now.Add(-time.Hour)
	repo.PutUser(entities.User{ID: "u3", Plan: entities.PlanPro, ProExpirationDate: &expired, FreePoolsCreated: 1})
	if _, err := repo.CreateWithQuota(ctx, entities.Pool{ID: "c"}, interfaces.PoolQuota{OwnerID: "u3", FreeLimit: 1, Now: now}); !errors.Is(err, interfaces.ErrPoolQuotaExceeded) {
		t.Fatalf("expired pro plan must count as free, got %v", err)
	}
}

func TestPoolRepository_ReplaceParticipants(t *testing.T) {
	repo := NewPoolRepository()
	ctx := context.Background()
	repo.PutPool(entities.Pool{ID: "p", Version: 1, Participants: []entities.Participant{{Name: "a", Status: "pending"}}})

	updated, err := repo.ReplaceParticipants(ctx, "p", 1, []entities.Participant{{Name: "a", Status: "paid"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Version != 2 || updated.Participants[0].Status != "paid" {
		t.Fatalf("unexpected pool %+v", updated)
	}

	if _, err := repo.ReplaceParticipants(ctx, "p", 1, nil); !errors.Is(err, interfaces.ErrPoolVersionConflict) {
		t.Fatalf("expected version conflict, got %v", err)
	}
	if _, err := repo.ReplaceParticipants(ctx, "missing", 1, nil); !errors.Is(err, interfaces.ErrPoolVersionConflict) {
		t.Fatalf("expected version conflict for missing pool, got %v", err)
	}
}

func TestPoolRepository_ReturnsCopies(t *testing.T) {
	repo := NewPoolRepository()
	ctx := context.Background()
	id := "mp-1"
	repo.PutPool(entities.Pool{ID: "p", Version: 1, Participants: []entities.Participant{{Name: "a", FirebasePaymentID: &id}}})

	p, _ := repo.GetByID(ctx, "p")
	p.Participants[0].Name = "changed"
	*p.Participants[0].FirebasePaymentID = "changed"

	again, _ := repo.GetByID(ctx, "p")
	if again.Participants[0].Name != "a" || *again.Participants[0].FirebasePaymentID != "mp-1" {
		t.Fatalf("stored pool mutated through a read: %+v", again.Participants[0])
	}
}

func TestPoolRepository_ListByOwnerNewestFirst(t *testing.T) {
	repo := NewPoolRepository()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.PutPool(entities.Pool{ID: "old", CreatedBy: "u", CreatedAt: base})
	repo.PutPool(entities.Pool{ID: "new", CreatedBy: "u", CreatedAt: base.Add(time.Hour)})
	repo.PutPool(entities.Pool{ID: "other", CreatedBy: "x", CreatedAt: base})

	pools, err := repo.ListByOwner(context.Background(), "u")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(pools) != 2 || pools[0].ID != "new" || pools[1].ID != "old" {
		t.Fatalf("unexpected order %+v", pools)
	}

	empty, _ := repo.ListByOwner(context.Background(), "nobody")
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
}

func TestPaymentRepository(t *testing.T) {
	repo := NewPaymentRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, entities.Payment{ID: "a", Status: entities.PaymentStatusPending, PriceCents: 199}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := repo.Create(ctx, entities.Payment{ID: "a"}); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}

	if err := repo.UpdateStatus(ctx, "a", entities.PaymentStatusApproved, "555"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	p, _ := repo.GetByID(ctx, "a")
	if p.Status != entities.PaymentStatusApproved || p.MercadoPagoPaymentID != "555" || p.PriceCents != 199 {
		t.Fatalf("unexpected payment %+v", p)
	}

	// The overwrite is unconditional and creates the record when missing.
	if err := repo.UpdateStatus(ctx, "ghost", entities.PaymentStatusRejected, ""); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ghost, _ := repo.GetByID(ctx, "ghost"); ghost.ID != "ghost" || ghost.Status != entities.PaymentStatusRejected {
		t.Fatalf("unexpected upserted payment %+v", ghost)
	}

	if missing, _ := repo.GetByID(ctx, "nope"); missing.ID != "" {
		t.Fatalf("expected zero payment, got %+v", missing)
	}
}
