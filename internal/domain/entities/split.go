package entities

import "errors"

var ErrInvalidParticipantCount = errors.New("participant count must be at least 1")

// SplitAmount divides totalCents between count participants. Every participant
// gets the floor share; the first one also absorbs the remainder, so the parts
// always add up to totalCents.
func SplitAmount(totalCents int64, count int) ([]int64, error) {
	if count < 1 {
		return nil, ErrInvalidParticipantCount
	}
	if totalCents < 0 {
		return nil, ErrInvalidAmount
	}
	n := int64(count)
	base := totalCents / n
	shares := make([]int64, count)
	for i := range shares {
		shares[i] = base
	}
	shares[0] += totalCents - base*n
	return shares, nil
}
