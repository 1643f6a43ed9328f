package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "vaquinha/internal/adapter/http/dto/request"
	response "vaquinha/internal/adapter/http/dto/response"
	"vaquinha/internal/domain/entities"
	"vaquinha/internal/infrastructure/realtime"
	"vaquinha/internal/usecase"
	"vaquinha/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderUserID carries the uid verified by the identity provider in front of
// the service.
const HeaderUserID = "X-User-ID"

var (
	errInvalidPoolPayload = pkg.NewDomainErrorSimple("INVALID_POOL_INPUT", "Invalid pool payload", http.StatusBadRequest)
	errInvalidPixPayload  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Incomplete pool or participant data", http.StatusBadRequest)
	errMissingUser        = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing user identity", http.StatusUnauthorized)
)

// PoolHandler handles pool ("vaquinha") requests.
type PoolHandler struct {
	usecase usecase.IPoolUseCase
	hub     *realtime.PoolHub
}

func NewPoolHandler(uc usecase.IPoolUseCase, hub *realtime.PoolHub) *PoolHandler {
	return &PoolHandler{usecase: uc, hub: hub}
}

func (h *PoolHandler) CreatePool(c *gin.Context) {
	ownerID := strings.TrimSpace(c.GetHeader(HeaderUserID))
	if ownerID == "" {
		c.JSON(errMissingUser.HTTPStatus, errMissingUser.ToHTTPError())
		return
	}

	var payload request.CreatePoolRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPoolPayload.HTTPStatus, errInvalidPoolPayload.ToHTTPError())
		return
	}
	total, err := payload.ResolveTotalAmountCents()
	if err != nil {
		c.JSON(errInvalidPoolPayload.HTTPStatus, errInvalidPoolPayload.ToHTTPError())
		return
	}

	pool, err := h.usecase.CreatePool(c.Request.Context(), usecase.CreatePoolInput{
		OwnerID:          ownerID,
		Title:            payload.Title,
		Description:      payload.Description,
		TotalAmountCents: total,
		ReceiverPixKey:   payload.ReceiverPixKey,
		ParticipantNames: payload.Participants,
	})
	if err != nil {
		appErr := mapPoolError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPool(pool))
}

func (h *PoolHandler) GetPool(c *gin.Context) {
	pool, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPoolError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPool(pool))
}

func (h *PoolHandler) ListPools(c *gin.Context) {
	ownerID := strings.TrimSpace(c.GetHeader(HeaderUserID))
	if ownerID == "" {
		c.JSON(errMissingUser.HTTPStatus, errMissingUser.ToHTTPError())
		return
	}

	pools, err := h.usecase.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		appErr := mapPoolError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPools(pools))
}

// PoolFeed upgrades to a WebSocket that receives the pool snapshot on connect
// and after every reconciliation write.
func (h *PoolHandler) PoolFeed(c *gin.Context) {
	pool, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPoolError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	conn, err := realtime.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	h.hub.Serve(conn, pool.ID, func() (entities.Pool, error) {
		return h.usecase.GetByID(ctx, pool.ID)
	})
}

// CreateParticipantPix generates the PIX QR code for one participant.
func (h *PoolHandler) CreateParticipantPix(c *gin.Context) {
	var payload request.ParticipantPixRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.ResolvePoolID() == "" {
		c.JSON(errInvalidPixPayload.HTTPStatus, errInvalidPixPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.GenerateParticipantPix(c.Request.Context(), usecase.ParticipantPixInput{
		PoolID:           payload.ResolvePoolID(),
		ParticipantIndex: payload.ResolveParticipantIndex(),
		Title:            payload.Title,
	})
	if err != nil {
		appErr := mapPoolError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ParticipantPixResponse{
		QRCodeBase64: res.QRCodeBase64,
		QRCodeText:   res.QRCode,
		PaymentID:    res.PaymentID,
	})
}

func mapPoolError(err error) *pkg.AppError {
	if appErr := mapGatewayError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidPoolInput), errors.Is(err, usecase.ErrInvalidPoolID):
		return pkg.NewDomainError("INVALID_POOL_INPUT", "Invalid pool payload", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOwnerID):
		return errMissingUser
	case errors.Is(err, usecase.ErrPoolQuotaExceeded):
		return pkg.NewDomainErrorSimple("POOL_QUOTA_EXCEEDED", "Free pool limit reached", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPoolNotFound):
		return pkg.NewDomainErrorSimple("POOL_NOT_FOUND", "Pool not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrParticipantNotFound):
		return pkg.NewDomainErrorSimple("PARTICIPANT_NOT_FOUND", "Participant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPixDataUnavailable):
		return pkg.NewDomainError("PIX_DATA_UNAVAILABLE", "Could not obtain PIX data from the payment provider", err, http.StatusInternalServerError)
	default:
		return internalError(err)
	}
}
