package request

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCheckoutRequest_ResolvePriceCents(t *testing.T) {
	price := func(v string) *decimal.Decimal {
		d := decimal.RequireFromString(v)
		return &d
	}

	tests := []struct {
		name    string
		req     CheckoutRequest
		want    int64
		wantErr error
	}{
		{name: "missing price", req: CheckoutRequest{}, want: 0},
		{name: "decimal price", req: CheckoutRequest{Price: price("1.99")}, want: 199},
		{name: "whole price", req: CheckoutRequest{Price: price("25")}, want: 2500},
		{name: "zero price", req: CheckoutRequest{Price: price("0")}, wantErr: ErrInvalidPrice},
		{name: "negative price", req: CheckoutRequest{Price: price("-1")}, wantErr: ErrInvalidPrice},
		{name: "sub-cent price", req: CheckoutRequest{Price: price("0.001")}, wantErr: ErrInvalidPrice},
		{name: "three fraction digits", req: CheckoutRequest{Price: price("1.999")}, wantErr: ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.ResolvePriceCents()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %d want %d", got, tt.want)
			}
		})
	}
}

func TestCreatePoolRequest_ResolveTotalAmountCents(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int64
		wantErr bool
	}{
		{name: "json number", body: `{"total_amount":100}`, want: 10000},
		{name: "two fraction digits", body: `{"total_amount":10.01}`, want: 1001},
		{name: "json string", body: `{"total_amount":"33.30"}`, want: 3330},
		{name: "three fraction digits", body: `{"total_amount":10.009}`, wantErr: true},
		{name: "sub-cent", body: `{"total_amount":0.001}`, wantErr: true},
		{name: "zero", body: `{"total_amount":0}`, wantErr: true},
		{name: "missing", body: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreatePoolRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			got, err := req.ResolveTotalAmountCents()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTotalAmount) {
					t.Fatalf("expected invalid amount, got %d err %v", got, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("got %d err %v, want %d", got, err, tt.want)
			}
		})
	}
}

func TestParticipantPixRequest_Resolve(t *testing.T) {
	idx := 2
	r := ParticipantPixRequest{VaquinhaID: " pool1 ", ParticipantIndex: &idx}
	if r.ResolvePoolID() != "pool1" || r.ResolveParticipantIndex() != 2 {
		t.Fatalf("unexpected resolve: %q %d", r.ResolvePoolID(), r.ResolveParticipantIndex())
	}
	if (ParticipantPixRequest{}).ResolveParticipantIndex() != -1 {
		t.Fatalf("expected -1 for a missing index")
	}
}
