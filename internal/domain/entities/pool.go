package entities

import (
	"errors"
	"time"
)

var ErrParticipantIndexOutOfRange = errors.New("participant index out of range")

// ParticipantStatus is "pending" until the participant's payment is approved.
// Provider statuses other than approved are stored as-is.
type ParticipantStatus string

const (
	ParticipantStatusPending ParticipantStatus = "pending"
	ParticipantStatusPaid    ParticipantStatus = "paid"
)

// ParticipantStatusFromProvider is the single normalisation table for pool
// participants: approved becomes paid, everything else passes through.
func ParticipantStatusFromProvider(providerStatus string) ParticipantStatus {
	if PaymentStatus(providerStatus) == PaymentStatusApproved {
		return ParticipantStatusPaid
	}
	return ParticipantStatus(providerStatus)
}

// Participant is embedded in a Pool and addressed by its index.
type Participant struct {
	Name        string            `json:"name"`
	AmountCents int64             `json:"amount_cents"`
	Status      ParticipantStatus `json:"status"`
	// FirebasePaymentID is the last provider payment created for the
	// participant. Informational only, the webhook routes by external reference.
	FirebasePaymentID *string `json:"firebase_payment_id"`
}

// Pool ("vaquinha") is a shared bill with a target total and named participants.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (created_by-index): created_by
//
// Participants are never reordered or removed: the external reference carries
// the raw index. Version increases by one on every participants write.
type Pool struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	TotalAmountCents int64         `json:"total_amount_cents"`
	ReceiverPixKey   string        `json:"receiver_pix_key"`
	CreatedBy        string        `json:"created_by"`
	CreatedAt        time.Time     `json:"created_at"`
	Participants     []Participant `json:"participants"`
	Version          int64         `json:"version"`
}

// HasParticipant reports whether index addresses an existing participant.
func (p Pool) HasParticipant(index int) bool {
	return index >= 0 && index < len(p.Participants)
}

// WithParticipant returns a copy of the participants sequence where only the
// participant at index went through fn.
func (p Pool) WithParticipant(index int, fn func(Participant) Participant) ([]Participant, error) {
	if !p.HasParticipant(index) {
		return nil, ErrParticipantIndexOutOfRange
	}
	out := make([]Participant, len(p.Participants))
	copy(out, p.Participants)
	out[index] = fn(out[index])
	return out, nil
}

func (p Pool) PaidCount() int {
	n := 0
	for _, part := range p.Participants {
		if part.Status == ParticipantStatusPaid {
			n++
		}
	}
	return n
}

func (p Pool) TotalPaidCents() int64 {
	var total int64
	for _, part := range p.Participants {
		if part.Status == ParticipantStatusPaid {
			total += part.AmountCents
		}
	}
	return total
}
