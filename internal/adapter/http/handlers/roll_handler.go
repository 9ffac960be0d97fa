package handlers

import (
	"errors"
	"log"
	"net/http"

	request "plasticos_xpto/internal/adapter/http/dto/request"
	response "plasticos_xpto/internal/adapter/http/dto/response"
	"plasticos_xpto/internal/domain/entities"
	"plasticos_xpto/internal/usecase"
	"plasticos_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRollPayload = pkg.NewDomainErrorSimple("INVALID_ROLL_INPUT", "Invalid roll payload", http.StatusBadRequest)
)

// RollHandler handles HTTP requests for Rolls: recording extrusion output,
// advancing stages and the stage-filtered display listing.

type RollHandler struct {
	usecase usecase.IRollUseCase
}

func NewRollHandler(uc usecase.IRollUseCase) *RollHandler {
	return &RollHandler{usecase: uc}
}

// RecordExtrusion handles POST /job-orders/:id/rolls.
//
// A created Roll is durable even when the follow-up status transition fails
// to persist: in that case the response is still 201 (the ledger re-check
// repairs the status on the next write or read), never an error claiming
// the output was lost.
func (h *RollHandler) RecordExtrusion(c *gin.Context) {
	jobOrderID := c.Param("id")

	var payload request.CreateRollRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRollPayload.HTTPStatus, errInvalidRollPayload.ToHTTPError())
		return
	}
	if _, err := payload.ResolveStage(); err != nil {
		c.JSON(errInvalidRollPayload.HTTPStatus, errInvalidRollPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.RecordExtrusion(c.Request.Context(), jobOrderID, payload.ExtrudingQty, payload.IdempotencyKey)
	if err != nil {
		if created.ID != "" {
			// Roll persisted, only the status write failed.
			log.Printf("[roll][handler] roll persisted but status transition pending job_order_id=%s roll_id=%s err=%v", jobOrderID, created.ID, err)
			c.JSON(http.StatusCreated, response.FromRoll(created))
			return
		}
		appErr := mapRollError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRoll(created))
}

// AdvanceStage handles POST /rolls/:id/advance.
func (h *RollHandler) AdvanceStage(c *gin.Context) {
	rollID := c.Param("id")

	var payload request.AdvanceRollRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRollPayload.HTTPStatus, errInvalidRollPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.AdvanceStage(c.Request.Context(), rollID, payload.StageQty)
	if err != nil {
		appErr := mapRollError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRoll(updated))
}

// ListByStage handles GET /rolls?stage=extrusion|printing|cutting|completed.
// Display only; completion accounting never goes through here.
func (h *RollHandler) ListByStage(c *gin.Context) {
	stage := entities.RollStage(c.Query("stage"))

	rolls, err := h.usecase.ListByStage(c.Request.Context(), stage)
	if err != nil {
		appErr := mapRollError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRolls(rolls))
}

func mapRollError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobOrderID),
		errors.Is(err, usecase.ErrInvalidRollID),
		errors.Is(err, usecase.ErrInvalidExtrudingQty),
		errors.Is(err, usecase.ErrInvalidStageQty),
		errors.Is(err, usecase.ErrInvalidStage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobOrderNotFound):
		return pkg.NewDomainErrorSimple("JOB_ORDER_NOT_FOUND", "Job order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRollNotFound):
		return pkg.NewDomainErrorSimple("ROLL_NOT_FOUND", "Roll not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobOrderTerminal):
		return pkg.NewDomainErrorSimple("JOB_ORDER_TERMINAL", "Job order no longer accepts production output", http.StatusConflict)
	case errors.Is(err, usecase.ErrRollCompleted):
		return pkg.NewDomainErrorSimple("ROLL_COMPLETED", "Roll already completed all stages", http.StatusConflict)
	case errors.Is(err, usecase.ErrIdempotencyConflict):
		return pkg.NewDomainErrorSimple("IDEMPOTENCY_KEY_CONFLICT", "Idempotency key already used by another job order", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
