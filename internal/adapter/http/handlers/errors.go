package handlers

import (
	"errors"
	"net/http"

	"vaquinha/internal/usecase"
	"vaquinha/pkg"
)

// mapGatewayError returns nil when err is not a payment provider error.
func mapGatewayError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAppURLNotConfigured):
		return pkg.NewDomainError("APP_URL_NOT_CONFIGURED", "APP_URL is not configured", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("PAYMENT_PROVIDER_BAD_REQUEST", "Payment provider rejected the request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider error", err, http.StatusBadGateway)
	default:
		return nil
	}
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
