package request

import (
	"errors"
	"strings"

	"vaquinha/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidPrice = errors.New("invalid price")

// CheckoutRequest is the optional body of POST /api/create-payment. An empty
// body creates the default test product.
type CheckoutRequest struct {
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

func (r CheckoutRequest) ResolveDescription() string {
	return strings.TrimSpace(r.Description)
}

// ResolvePriceCents returns 0 when no price was sent. A price must be
// positive and a whole number of cents.
func (r CheckoutRequest) ResolvePriceCents() (int64, error) {
	if r.Price == nil {
		return 0, nil
	}
	return positiveCents(*r.Price, ErrInvalidPrice)
}

func positiveCents(d decimal.Decimal, invalid error) (int64, error) {
	if !d.IsPositive() {
		return 0, invalid
	}
	cents, err := entities.CentsFromAmount(d)
	if err != nil {
		return 0, invalid
	}
	return cents, nil
}
