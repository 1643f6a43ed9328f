package entities

import (
	"strconv"
	"strings"
)

// ReferenceKind tells which record an external reference routes to.
type ReferenceKind int

const (
	ReferenceStandalonePayment ReferenceKind = iota + 1
	ReferencePoolParticipant
)

func (k ReferenceKind) String() string {
	switch k {
	case ReferenceStandalonePayment:
		return "standalone_payment"
	case ReferencePoolParticipant:
		return "pool_participant"
	default:
		return "unknown"
	}
}

const referenceSeparator = "-"

// ExternalReference is the decoded form of the Mercado Pago external_reference.
//
// Wire format:
//   - "<paymentId>"                  standalone payment
//   - "<poolId>-<participantIndex>"  one participant of a pool
//
// The first "-" selects the pool form, so pool ids must never contain "-".
type ExternalReference struct {
	Kind             ReferenceKind
	PaymentID        string
	PoolID           string
	ParticipantIndex int
}

func NewStandaloneReference(paymentID string) ExternalReference {
	return ExternalReference{Kind: ReferenceStandalonePayment, PaymentID: paymentID}
}

func NewPoolParticipantReference(poolID string, index int) ExternalReference {
	return ExternalReference{Kind: ReferencePoolParticipant, PoolID: poolID, ParticipantIndex: index}
}

// DecodeExternalReference never fails: anything that is not "<id>-<digits>"
// is a standalone payment id.
func DecodeExternalReference(raw string) ExternalReference {
	poolID, indexPart, found := strings.Cut(raw, referenceSeparator)
	if !found || !isDigits(indexPart) {
		return NewStandaloneReference(raw)
	}
	index, err := strconv.Atoi(indexPart)
	if err != nil {
		return NewStandaloneReference(raw)
	}
	return NewPoolParticipantReference(poolID, index)
}

// String returns the wire form sent to the provider.
func (r ExternalReference) String() string {
	if r.Kind == ReferencePoolParticipant {
		return r.PoolID + referenceSeparator + strconv.Itoa(r.ParticipantIndex)
	}
	return r.PaymentID
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
