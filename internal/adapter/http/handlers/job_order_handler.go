package handlers

import (
	"errors"
	"net/http"

	request "plasticos_xpto/internal/adapter/http/dto/request"
	response "plasticos_xpto/internal/adapter/http/dto/response"
	"plasticos_xpto/internal/domain/entities"
	"plasticos_xpto/internal/usecase"
	"plasticos_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidJobOrderPayload = pkg.NewDomainErrorSimple("INVALID_JOB_ORDER_INPUT", "Invalid job order payload", http.StatusBadRequest)
)

// JobOrderHandler handles HTTP requests for JobOrders: ingestion, the
// progress view and the supervisory status override.

type JobOrderHandler struct {
	usecase usecase.IJobOrderUseCase
}

func NewJobOrderHandler(uc usecase.IJobOrderUseCase) *JobOrderHandler {
	return &JobOrderHandler{usecase: uc}
}

// Create handles POST /orders/:id/job-orders.
func (h *JobOrderHandler) Create(c *gin.Context) {
	orderID := c.Param("id")

	var payload request.CreateJobOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
		return
	}

	jo, err := h.usecase.Create(c.Request.Context(), orderID, payload.ProductRef, payload.RequiredQty)
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJobOrder(jo))
}

// ListByOrder handles GET /orders/:id/job-orders.
func (h *JobOrderHandler) ListByOrder(c *gin.Context) {
	jos, err := h.usecase.ListByOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobOrders(jos))
}

// Get handles GET /job-orders/:id.
func (h *JobOrderHandler) Get(c *gin.Context) {
	jo, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobOrder(jo))
}

// Progress handles GET /job-orders/:id/progress. The report is recomputed
// from the Roll Ledger on every call.
func (h *JobOrderHandler) Progress(c *gin.Context) {
	report, err := h.usecase.Progress(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProgressReport(report))
}

// EvaluateExtrusion handles POST /job-orders/:id/evaluate. It re-runs the
// completion check against the Roll Ledger, repairing a status left behind by
// a failed transition write. Idempotent.
func (h *JobOrderHandler) EvaluateExtrusion(c *gin.Context) {
	jo, err := h.usecase.EvaluateExtrusion(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobOrder(jo))
}

// OverrideStatus handles PUT /job-orders/:id. The override goes through the
// same transition table as the status machine, so a backward move is
// rejected, not applied.
func (h *JobOrderHandler) OverrideStatus(c *gin.Context) {
	var payload request.JobOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
		return
	}

	jo, err := h.usecase.OverrideStatus(c.Request.Context(), c.Param("id"), entities.JobOrderStatus(payload.Status))
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobOrder(jo))
}

func mapJobOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobOrderID),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidRequiredQty),
		errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobOrderNotFound):
		return pkg.NewDomainErrorSimple("JOB_ORDER_NOT_FOUND", "Job order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
