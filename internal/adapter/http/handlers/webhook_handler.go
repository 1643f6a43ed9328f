package handlers

import (
	"errors"
	"net/http"

	response "vaquinha/internal/adapter/http/dto/response"
	"vaquinha/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	headerSignature = "x-signature"
	headerRequestID = "x-request-id"

	webhookStatusReceived = "received"
)

// WebhookHandler receives Mercado Pago notifications. The body shapes
// ({"status":"received"} and {"error":...}) are the ones the provider expects.
type WebhookHandler struct {
	usecase usecase.IReconciliationUseCase
}

func NewWebhookHandler(uc usecase.IReconciliationUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// Receive acknowledges with 200 once the notification reached a terminal
// state, 400 on a failed signature and 500 on anything the provider should retry.
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.WebhookErrorResponse{Error: err.Error()})
		return
	}

	headers := usecase.SignatureHeaders{
		Signature: c.GetHeader(headerSignature),
		RequestID: c.GetHeader(headerRequestID),
	}
	if _, err := h.usecase.Handle(c.Request.Context(), body, headers); err != nil {
		status, msg := mapWebhookError(err)
		c.JSON(status, response.WebhookErrorResponse{Error: msg})
		return
	}

	c.JSON(http.StatusOK, response.WebhookResponse{Status: webhookStatusReceived})
}

func mapWebhookError(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrNotificationRejected):
		return http.StatusBadRequest, "invalid signature"
	case errors.Is(err, usecase.ErrMalformedNotification):
		return http.StatusInternalServerError, "malformed notification"
	case errors.Is(err, usecase.ErrLookupFailed):
		return http.StatusInternalServerError, "payment lookup failed"
	case errors.Is(err, usecase.ErrStorageReadFailed), errors.Is(err, usecase.ErrStorageWriteFailed):
		return http.StatusInternalServerError, "storage failure"
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
