package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"vaquinha/internal/adapter/persistence/memory"
	"vaquinha/internal/domain/entities"
	"vaquinha/internal/infrastructure/signature"
	"vaquinha/internal/usecase/interfaces"
	mock_interfaces "vaquinha/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const (
	testSecret    = "webhook-secret"
	testRequestID = "req-1"
	testTS        = "1704067200"
)

func signedHeaders(paymentID string) SignatureHeaders {
	v1 := signature.NewVerifier(testSecret).Sign(paymentID, testRequestID, testTS)
	return SignatureHeaders{Signature: "ts=" + testTS + ",v1=" + v1, RequestID: testRequestID}
}

func paymentBody(id string) []byte {
	return []byte(`{"type":"payment","action":"payment.updated","data":{"id":"` + id + `"}}`)
}

func seededPools() *memory.PoolRepository {
	repo := memory.NewPoolRepository()
	repo.PutPool(entities.Pool{
		ID:               "pool1",
		Title:            "Churrasco",
		TotalAmountCents: 10000,
		Participants: []entities.Participant{
			{Name: "Ana", AmountCents: 3334, Status: entities.ParticipantStatusPending},
			{Name: "Bia", AmountCents: 3333, Status: entities.ParticipantStatusPending},
			{Name: "Caio", AmountCents: 3333, Status: entities.ParticipantStatusPending},
		},
		Version: 1,
	})
	return repo
}

func TestReconciliation_PoolParticipantPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lookup := mock_interfaces.NewMockIPaymentLookup(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	notifier := mock_interfaces.NewMockIPoolNotifier(ctrl)
	pools := seededPools()

	lookup.EXPECT().GetPayment(gomock.Any(), "555").Return(interfaces.PaymentDetails{ID: "555", Status: "approved", ExternalReference: "pool1-0"}, nil).Times(2)
	notifier.EXPECT().PublishPool(gomock.Any()).Times(2)

	uc := NewReconciliationUseCase(signature.NewVerifier(testSecret), lookup, payments, pools, notifier, nil)

	for delivery := 0; delivery < 2; delivery++ {
		res, err := uc.Handle(context.Background(), paymentBody("555"), signedHeaders("555"))
		if err != nil {
			t.Fatalf("delivery %d: unexpected err: %v", delivery, err)
		}
		if res.Outcome != OutcomeAcknowledged || !res.Applied || res.Status != "paid" {
			t.Fatalf("delivery %d: unexpected result %+v", delivery, res)
		}
		if res.Target == nil || res.Target.Kind != entities.ReferencePoolParticipant || res.Target.PoolID != "pool1" || res.Target.ParticipantIndex != 0 {
			t.Fatalf("unexpected target %+v", res.Target)
		}
	}

	pool, _ := pools.GetByID(context.Background(), "pool1")
	if pool.Participants[0].Status != entities.ParticipantStatusPaid {
		t.Fatalf("participant 0 status=%s", pool.Participants[0].Status)
	}
	for i := 1; i < 3; i++ {
		if pool.Participants[i].Status != entities.ParticipantStatusPending {
			t.Fatalf("participant %d changed: %+v", i, pool.Participants[i])
		}
	}
	if pool.Participants[0].Name != "Ana" || pool.Participants[0].AmountCents != 3334 {
		t.Fatalf("participant fields changed: %+v", pool.Participants[0])
	}
}

func TestReconciliation_NonApprovedStatusPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lookup := mock_interfaces.NewMockIPaymentLookup(ctrl)
	pools := seededPools()

	lookup.EXPECT().GetPayment(gomock.Any(), "556").Return(interfaces.PaymentDetails{ID: "556", Status: "rejected", ExternalReference: "pool1-2"}, nil)

	uc := NewReconciliationUseCase(signature.NewVerifier(testSecret), lookup, nil, pools, nil, nil)
	res, err := uc.Handle(context.Background(), paymentBody("556"), signedHeaders("556"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Status != "rejected" {
		t.Fatalf("status=%s", res.Status)
	}
	pool, _ := pools.GetByID(context.Background(), "pool1")
	if pool.Participants[2].Status != "rejected" {
		t.Fatalf("participant 2 status=%s", pool.Participants[2].Status)
	}
}

func TestReconciliation_StandalonePayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lookup := mock_interfaces.NewMockIPaymentLookup(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	pools := mock_interfaces.NewMockIPoolRepository(ctrl)

	ref := "abc123XYZ"
	lookup.EXPECT().GetPayment(gomock.Any(), "777").Return(interfaces.PaymentDetails{ID: "777", Status: "approved", ExternalReference: ref}, nil)
	payments.EXPECT().UpdateStatus(gomock.Any(), ref, entities.PaymentStatusApproved, "777").Return(nil)

	uc := NewReconciliationUseCase(signature.NewVerifier(testSecret), lookup, payments, pools, nil, nil)
	res, err := uc.Handle(context.Background(), paymentBody("777"), signedHeaders("777"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Target.Kind != entities.ReferenceStandalonePayment || res.Target.PaymentID != ref || res.Status != "approved" {
		t.Fatalf("unexpected result %+v target %+v", res, res.Target)
	}
}

func TestReconciliation_NumericDataID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lookup := mock_interfaces.NewMockIPaymentLookup(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)

	lookup.EXPECT().GetPayment(gomock.Any(), "123456789").Return(interfaces.PaymentDetails{Status: "pending", ExternalReference: "abc"}, nil)
	payments.EXPECT().UpdateStatus(gomock.Any(), "abc", entities.PaymentStatusPending, "").Return(nil)

	uc := NewReconciliationUseCase(signature.NewVerifier(testSecret), lookup, payments, nil, nil, nil)
	_, err := uc.Handle(context.Background(), []byte(`{"type":"payment","data":{"id":123456789}}`), signedHeaders("123456789"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestReconciliation_RejectsBadSignatureBeforeAnyIO(t *testing.T) {
	tests := []struct {
		name    string
		headers SignatureHeaders
		wantErr error
	}{
		{name: "tampered digest", headers: SignatureHeaders{Signature: "ts=" + testTS + ",v1=deadbeef", RequestID: testRequestID}, wantErr: signature.ErrSignatureMismatch},
		{name: "missing signature", headers: SignatureHeaders{RequestID: testRequestID}, wantErr: signature.ErrMissingSignatureHeaders},
		{name: "missing request id", headers: SignatureHeaders{Signature: signedHeaders("555").Signature}, wantErr: signature.ErrMissingSignatureHeaders},
		{name: "signed for another payment", headers: signedHeaders("999"), wantErr: signature.ErrSignatureMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			lookup := mock_interfaces.NewMockIPaymentLookup(ctrl)
			payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
			pools := mock_interfaces.NewMockIPoolRepository(ctrl)

			uc := NewReconciliationUseCase(signature.NewVerifier(testSecret), lookup, payments, pools, nil, nil)
			res, err := uc.Handle(context.Background(), paymentBody("555"), tt.headers)
			if !errors.Is(err, ErrNotificationRejected) || !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected rejection wrapping %v, got %v", tt.wantErr, err)
			}
			if res.Outcome != OutcomeRejected {
				t.Fatalf("outcome=%s", res.Outcome)
			}
		})
	}
}

func TestReconciliation_NonPaymentIsAcknowledgedWithoutVerification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	verifier := mock_interfaces.NewMockISignatureVerifier(ctrl)
	lookup := mock_interfaces.NewMockIPaymentLookup(ctrl)

	uc := NewReconciliationUseCase(verifier, lookup, nil, nil, nil, nil)
	res, err := uc.Handle(context.Background(), []byte(`{"type":"merchant_order","data":{"id":"1"}}`), SignatureHeaders{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Outcome != OutcomeAcknowledged || res.SkipReason != SkipNonPaymentNotification || res.Applied {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestReconciliation_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	verifier := mock_interfaces.NewMockISignatureVerifier(ctrl)

	uc := NewReconciliationUseCase(verifier, nil, nil, nil, nil, nil)
	for _, body := range []string{"{", `{"type":"payment"}`, `{"type":"payment","data":{"id":null}}`, `{"type":"payment","data":{"id":""}}`} {
		res, err := uc.Handle(context.Background(), []byte(body), SignatureHeaders{})
		if !errors.Is(err, ErrMalformedNotification) {
			t.Fatalf("body %s: expected malformed, got %v", body, err)
		}
		if res.Outcome != OutcomeErrored {
			t.Fatalf("body %s: outcome=%s", body, res.Outcome)
		}
	}
}

func TestReconciliation_LookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lookup := mock_interfaces.NewMockIPaymentLookup(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	pools := mock_interfaces.NewMockIPoolRepository(ctrl)

	cause := errors.New("context deadline exceeded")
	lookup.EXPECT().GetPayment(gomock.Any(), "555").Return(interfaces.PaymentDetails{}, cause)

	uc := NewReconciliationUseCase(signature.NewVerifier(testSecret), lookup, payments, pools, nil, nil)
	res, err := uc.Handle(context.Background(), paymentBody("555"), signedHeaders("555"))
	if !errors.Is(err, ErrLookupFailed) || !errors.Is(err, cause) {
		t.Fatalf("expected lookup failure, got %v", err)
	}
	if res.Outcome != OutcomeErrored {
		t.Fatalf("outcome=%s", res.Outcome)
	}
}

func TestReconciliation_LookupTimeoutIsErrored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lookup := mock_interfaces.NewMockIPaymentLookup(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	pools := mock_interfaces.NewMockIPoolRepository(ctrl)

	lookup.EXPECT().GetPayment(gomock.Any(), "555").DoAndReturn(func(ctx context.Context, _ string) (interfaces.PaymentDetails, error) {
		ctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		<-ctx.Done()
		return interfaces.PaymentDetails{}, ctx.Err()
	})

	uc := NewReconciliationUseCase(signature.NewVerifier(testSecret), lookup, payments, pools, nil, nil)
	res, err := uc.Handle(context.Background(), paymentBody("555"), signedHeaders("555"))
	if !errors.Is(err, ErrLookupFailed) || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected lookup failure wrapping the deadline, got %v", err)
	}
	if res.Outcome != OutcomeErrored || res.Applied {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestReconciliation_MissingExternalReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lookup := mock_interfaces.NewMockIPaymentLookup(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	pools := mock_interfaces.NewMockIPoolRepository(ctrl)

	lookup.EXPECT().GetPayment(gomock.Any(), "555").Return(interfaces.PaymentDetails{ID: "555", Status: "approved"}, nil)

	uc := NewReconciliationUseCase(signature.NewVerifier(testSecret), lookup, payments, pools, nil, nil)
	res, err := uc.Handle(context.Background(), paymentBody("555"), signedHeaders("555"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.SkipReason != SkipMissingReference || res.Applied {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestReconciliation_UnresolvablePoolReference(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{name: "missing pool", ref: "nope-0", want: SkipPoolNotFound},
		{name: "index out of range", ref: "pool1-7", want: SkipParticipantOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			lookup := mock_interfaces.NewMockIPaymentLookup(ctrl)
			notifier := mock_interfaces.NewMockIPoolNotifier(ctrl)
			pools := seededPools()

			lookup.EXPECT().GetPayment(gomock.Any(), "555").Return(interfaces.PaymentDetails{ID: "555", Status: "approved", ExternalReference: tt.ref}, nil)

			uc := NewReconciliationUseCase(signature.NewVerifier(testSecret), lookup, nil, pools, notifier, nil)
			res, err := uc.Handle(context.Background(), paymentBody("555"), signedHeaders("555"))
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if res.Outcome != OutcomeAcknowledged || res.SkipReason != tt.want || res.Applied {
				t.Fatalf("unexpected result %+v", res)
			}
			pool, _ := pools.GetByID(context.Background(), "pool1")
			if pool.Version != 1 {
				t.Fatalf("pool was written: version=%d", pool.Version)
			}
		})
	}
}

func TestReconciliation_EmptyPoolIDIsAcknowledgedWithoutRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lookup := mock_interfaces.NewMockIPaymentLookup(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	pools := mock_interfaces.NewMockIPoolRepository(ctrl)

	lookup.EXPECT().GetPayment(gomock.Any(), "555").Return(interfaces.PaymentDetails{ID: "555", Status: "approved", ExternalReference: "-5"}, nil)

	uc := NewReconciliationUseCase(signature.NewVerifier(testSecret), lookup, payments, pools, nil, nil)
	res, err := uc.Handle(context.Background(), paymentBody("555"), signedHeaders("555"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Outcome != OutcomeAcknowledged || res.SkipReason != SkipPoolNotFound || res.Applied {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Target == nil || res.Target.Kind != entities.ReferencePoolParticipant || res.Target.ParticipantIndex != 5 {
		t.Fatalf("unexpected target %+v", res.Target)
	}
}

func TestReconciliation_StorageWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lookup := mock_interfaces.NewMockIPaymentLookup(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)

	cause := errors.New("throttled")
	lookup.EXPECT().GetPayment(gomock.Any(), "555").Return(interfaces.PaymentDetails{ID: "555", Status: "approved", ExternalReference: "abc"}, nil)
	payments.EXPECT().UpdateStatus(gomock.Any(), "abc", entities.PaymentStatusApproved, "555").Return(cause)

	uc := NewReconciliationUseCase(signature.NewVerifier(testSecret), lookup, payments, nil, nil, nil)
	res, err := uc.Handle(context.Background(), paymentBody("555"), signedHeaders("555"))
	if !errors.Is(err, ErrStorageWriteFailed) || !errors.Is(err, cause) {
		t.Fatalf("expected storage write failure, got %v", err)
	}
	if res.Outcome != OutcomeErrored || res.Applied {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestReconciliation_PoolReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lookup := mock_interfaces.NewMockIPaymentLookup(ctrl)
	pools := mock_interfaces.NewMockIPoolRepository(ctrl)

	lookup.EXPECT().GetPayment(gomock.Any(), "555").Return(interfaces.PaymentDetails{ID: "555", Status: "approved", ExternalReference: "pool1-0"}, nil)
	pools.EXPECT().GetByID(gomock.Any(), "pool1").Return(entities.Pool{}, errors.New("unavailable"))

	uc := NewReconciliationUseCase(signature.NewVerifier(testSecret), lookup, nil, pools, nil, nil)
	_, err := uc.Handle(context.Background(), paymentBody("555"), signedHeaders("555"))
	if !errors.Is(err, ErrStorageReadFailed) {
		t.Fatalf("expected storage read failure, got %v", err)
	}
}

func TestReconciliation_RetriesOnVersionConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lookup := mock_interfaces.NewMockIPaymentLookup(ctrl)
	pools := mock_interfaces.NewMockIPoolRepository(ctrl)

	stale := entities.Pool{ID: "pool1", Version: 1, Participants: []entities.Participant{{Name: "Ana", Status: "pending"}, {Name: "Bia", Status: "pending"}}}
	fresh := entities.Pool{ID: "pool1", Version: 2, Participants: []entities.Participant{{Name: "Ana", Status: "pending"}, {Name: "Bia", Status: "paid"}}}

	lookup.EXPECT().GetPayment(gomock.Any(), "555").Return(interfaces.PaymentDetails{ID: "555", Status: "approved", ExternalReference: "pool1-0"}, nil)
	gomock.InOrder(
		pools.EXPECT().GetByID(gomock.Any(), "pool1").Return(stale, nil),
		pools.EXPECT().ReplaceParticipants(gomock.Any(), "pool1", int64(1), gomock.Any()).Return(entities.Pool{}, interfaces.ErrPoolVersionConflict),
		pools.EXPECT().GetByID(gomock.Any(), "pool1").Return(fresh, nil),
		pools.EXPECT().ReplaceParticipants(gomock.Any(), "pool1", int64(2), []entities.Participant{{Name: "Ana", Status: "paid"}, {Name: "Bia", Status: "paid"}}).
			Return(entities.Pool{ID: "pool1", Version: 3}, nil),
	)

	uc := NewReconciliationUseCase(signature.NewVerifier(testSecret), lookup, nil, pools, nil, nil)
	res, err := uc.Handle(context.Background(), paymentBody("555"), signedHeaders("555"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.Applied {
		t.Fatalf("expected applied")
	}
}

func TestReconciliation_ConflictRetriesAreBounded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lookup := mock_interfaces.NewMockIPaymentLookup(ctrl)
	pools := mock_interfaces.NewMockIPoolRepository(ctrl)

	pool := entities.Pool{ID: "pool1", Version: 1, Participants: []entities.Participant{{Name: "Ana"}}}
	lookup.EXPECT().GetPayment(gomock.Any(), "555").Return(interfaces.PaymentDetails{ID: "555", Status: "approved", ExternalReference: "pool1-0"}, nil)
	pools.EXPECT().GetByID(gomock.Any(), "pool1").Return(pool, nil).Times(maxParticipantUpdateAttempts)
	pools.EXPECT().ReplaceParticipants(gomock.Any(), "pool1", int64(1), gomock.Any()).Return(entities.Pool{}, interfaces.ErrPoolVersionConflict).Times(maxParticipantUpdateAttempts)

	uc := NewReconciliationUseCase(signature.NewVerifier(testSecret), lookup, nil, pools, nil, nil)
	_, err := uc.Handle(context.Background(), paymentBody("555"), signedHeaders("555"))
	if !errors.Is(err, ErrStorageWriteFailed) || !errors.Is(err, ErrPoolUpdateContended) {
		t.Fatalf("expected contended write failure, got %v", err)
	}
}

func TestReconciliation_ConcurrentDistinctParticipants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lookup := mock_interfaces.NewMockIPaymentLookup(ctrl)
	pools := seededPools()

	lookup.EXPECT().GetPayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) (interfaces.PaymentDetails, error) {
		ref := map[string]string{"1": "pool1-0", "2": "pool1-1", "3": "pool1-2"}[id]
		return interfaces.PaymentDetails{ID: id, Status: "approved", ExternalReference: ref}, nil
	}).Times(3)

	uc := NewReconciliationUseCase(signature.NewVerifier(testSecret), lookup, nil, pools, nil, nil)

	var wg sync.WaitGroup
	errs := make(chan error, 3)
	for _, id := range []string{"1", "2", "3"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := uc.Handle(context.Background(), paymentBody(id), signedHeaders(id)); err != nil {
				errs <- err
			}
		}(id)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("unexpected err: %v", err)
	}

	pool, _ := pools.GetByID(context.Background(), "pool1")
	if pool.PaidCount() != 3 {
		t.Fatalf("expected all participants paid, got %+v", pool.Participants)
	}
	if pool.Version != 4 {
		t.Fatalf("version=%d", pool.Version)
	}
}
