package response

import (
	"time"

	"vaquinha/internal/domain/entities"
)

type ParticipantResponse struct {
	Index             int     `json:"index"`
	Name              string  `json:"name"`
	Amount            float64 `json:"amount"`
	Status            string  `json:"status"`
	FirebasePaymentID *string `json:"firebase_payment_id"`
}

type PoolResponse struct {
	ID             string                `json:"id"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	TotalAmount    float64               `json:"total_amount"`
	ReceiverPixKey string                `json:"receiver_pix_key"`
	CreatedBy      string                `json:"created_by"`
	CreatedAt      time.Time             `json:"created_at"`
	Participants   []ParticipantResponse `json:"participants"`
	TotalPaid      float64               `json:"total_paid"`
	PaidCount      int                   `json:"paid_count"`
}

func FromPool(p entities.Pool) PoolResponse {
	participants := make([]ParticipantResponse, len(p.Participants))
	for i, part := range p.Participants {
		participants[i] = ParticipantResponse{
			Index:             i,
			Name:              part.Name,
			Amount:            entities.AmountFromCents(part.AmountCents).InexactFloat64(),
			Status:            string(part.Status),
			FirebasePaymentID: part.FirebasePaymentID,
		}
	}
	return PoolResponse{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		TotalAmount:    entities.AmountFromCents(p.TotalAmountCents).InexactFloat64(),
		ReceiverPixKey: p.ReceiverPixKey,
		CreatedBy:      p.CreatedBy,
		CreatedAt:      p.CreatedAt,
		Participants:   participants,
		TotalPaid:      entities.AmountFromCents(p.TotalPaidCents()).InexactFloat64(),
		PaidCount:      p.PaidCount(),
	}
}

func FromPools(pools []entities.Pool) []PoolResponse {
	out := make([]PoolResponse, len(pools))
	for i, p := range pools {
		out[i] = FromPool(p)
	}
	return out
}

// PoolSnapshot is the WebSocket encoder for pool frames.
func PoolSnapshot(p entities.Pool) interface{} {
	return FromPool(p)
}
