package handlers

import (
	"errors"
	"net/http"

	request "nova_freight/internal/adapter/http/dto/request"
	response "nova_freight/internal/adapter/http/dto/response"
	"nova_freight/internal/adapter/http/middleware"
	"nova_freight/internal/usecase"
	"nova_freight/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLifecyclePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid lifecycle payload", http.StatusBadRequest)
	errUnauthenticated         = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
)

// LifecycleHandler handles HTTP requests for the bid lifecycle.

type LifecycleHandler struct {
	usecase usecase.IBidLifecycleUseCase
}

func NewLifecycleHandler(uc usecase.IBidLifecycleUseCase) *LifecycleHandler {
	return &LifecycleHandler{usecase: uc}
}

// GetLifecycle returns the ordered event history, current status and bid
// details for one bid.
func (h *LifecycleHandler) GetLifecycle(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return
	}

	bidNumber := c.Param("bidNumber")
	if err := request.ValidateBidNumber(bidNumber); err != nil {
		c.JSON(errInvalidLifecyclePayload.HTTPStatus, errInvalidLifecyclePayload.ToHTTPError())
		return
	}

	view, err := h.usecase.GetLifecycle(c.Request.Context(), bidNumber, actor.ID, actor.IsAdmin())
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLifecycleView(view))
}

// RecordTransition appends one lifecycle event and advances the current
// snapshot.
func (h *LifecycleHandler) RecordTransition(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return
	}

	bidNumber := c.Param("bidNumber")
	if err := request.ValidateBidNumber(bidNumber); err != nil {
		c.JSON(errInvalidLifecyclePayload.HTTPStatus, errInvalidLifecyclePayload.ToHTTPError())
		return
	}

	var payload request.LifecycleTransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLifecyclePayload.HTTPStatus, errInvalidLifecyclePayload.ToHTTPError())
		return
	}

	status, err := payload.ResolveStatus()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_STATUS", "Unrecognized status value", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	driver, err := payload.ResolveDriver()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid driver fields", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	times, err := payload.ResolvePhaseTimes(status)
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Timestamp does not match the requested status", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.RecordTransition(c.Request.Context(), usecase.TransitionInput{
		BidNumber: bidNumber,
		ActorID:   actor.ID,
		Status:    status,
		Notes:     payload.Notes,
		Location:  payload.Location,
		Documents: payload.Documents,
		Photos:    payload.Photos,
		Driver:    driver,
		Times:     times,
	})
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTransitionResult(result))
}

func mapLifecycleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBidNumber), errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBidNotFound):
		return pkg.NewDomainErrorSimple("BID_NOT_FOUND", "Bid not found or not authorized", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPrematureDriverUpdate):
		return pkg.NewDomainErrorSimple("PREMATURE_DRIVER_UPDATE", "Cannot update driver info before load is assigned", http.StatusConflict)
	case errors.Is(err, usecase.ErrBidAlreadyAccepted):
		return pkg.NewDomainErrorSimple("BID_ALREADY_ACCEPTED", "Bid has already been accepted", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidAwardState):
		return pkg.NewDomainErrorSimple("INVALID_AWARD_STATE", "Award is not in an acceptable state", http.StatusConflict)
	case errors.Is(err, usecase.ErrRegressiveTransition):
		return pkg.NewDomainErrorSimple("REGRESSIVE_TRANSITION", "Status must progress forward", http.StatusConflict)
	case errors.Is(err, usecase.ErrStateConflict):
		return pkg.NewDomainErrorSimple("STATE_CONFLICT", "Bid was updated concurrently; refresh and retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
