package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	request "vaquinha/internal/adapter/http/dto/request"
	response "vaquinha/internal/adapter/http/dto/response"
	"vaquinha/internal/usecase"
	"vaquinha/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// CheckoutHandler handles standalone checkout payments.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreatePayment accepts an empty body, which checks out the default product.
func (h *CheckoutHandler) CreatePayment(c *gin.Context) {
	var payload request.CheckoutRequest
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	if len(strings.TrimSpace(string(raw))) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
			return
		}
	}

	price, err := payload.ResolvePriceCents()
	if err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.CreateCheckout(c.Request.Context(), usecase.CheckoutInput{
		Description: payload.ResolveDescription(),
		PriceCents:  price,
	})
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.CheckoutResponse{
		ID:        res.PreferenceID,
		InitPoint: res.InitPoint,
		PaymentID: res.Payment.ID,
	})
}

func (h *CheckoutHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

func mapCheckoutError(err error) *pkg.AppError {
	if appErr := mapGatewayError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidCheckoutPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
