package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidTotalAmount = errors.New("invalid total amount")

type CreatePoolRequest struct {
	Title          string           `json:"title" binding:"required"`
	Description    string           `json:"description"`
	TotalAmount    *decimal.Decimal `json:"total_amount" binding:"required"`
	ReceiverPixKey string           `json:"receiver_pix_key" binding:"required"`
	Participants   []string         `json:"participants" binding:"required,min=1"`
}

func (r CreatePoolRequest) ResolveTotalAmountCents() (int64, error) {
	if r.TotalAmount == nil {
		return 0, ErrInvalidTotalAmount
	}
	return positiveCents(*r.TotalAmount, ErrInvalidTotalAmount)
}

// ParticipantPixRequest is the body of POST /api/create-vaquinha-payment.
// Amount is accepted for compatibility and ignored: the stored participant
// amount is charged.
type ParticipantPixRequest struct {
	VaquinhaID       string           `json:"vaquinhaId" binding:"required"`
	ParticipantIndex *int             `json:"participantIndex" binding:"required"`
	Title            string           `json:"title"`
	Amount           *decimal.Decimal `json:"amount,omitempty"`
}

func (r ParticipantPixRequest) ResolvePoolID() string {
	return strings.TrimSpace(r.VaquinhaID)
}

func (r ParticipantPixRequest) ResolveParticipantIndex() int {
	if r.ParticipantIndex == nil {
		return -1
	}
	return *r.ParticipantIndex
}
