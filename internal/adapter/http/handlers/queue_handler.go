package handlers

import (
	"net/http"

	response "plasticos_xpto/internal/adapter/http/dto/response"
	"plasticos_xpto/internal/usecase"
	"plasticos_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// QueueHandler serves the extrusion-stage work queue projection.

type QueueHandler struct {
	usecase usecase.IQueueUseCase
}

func NewQueueHandler(uc usecase.IQueueUseCase) *QueueHandler {
	return &QueueHandler{usecase: uc}
}

// ExtrusionQueue handles GET /extrusion-queue.
func (h *QueueHandler) ExtrusionQueue(c *gin.Context) {
	groups, err := h.usecase.ExtrusionQueue(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQueueGroups(groups))
}
