package usecase

import (
	"errors"
	"strings"
)

var (
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayFailed        = errors.New("payment gateway failed")
)

// mapGatewayError classifies Mercado Pago SDK errors. The SDK only exposes the
// provider response through the error text.
func mapGatewayError(err error) error {
	switch {
	case err == nil:
		return nil
	case isGatewayUnauthorized(err):
		return errors.Join(ErrPaymentGatewayUnauthorized, err)
	case isGatewayBadRequest(err):
		return errors.Join(ErrPaymentGatewayBadRequest, err)
	default:
		return errors.Join(ErrPaymentGatewayFailed, err)
	}
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
