package routes

import (
	"plasticos_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders    = "/orders"
	PathJobOrders = "/job-orders"
	PathRolls     = "/rolls"
	PathQueue     = "/extrusion-queue"
)

func addProductionRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	jobOrderHandler *handlers.JobOrderHandler,
	rollHandler *handlers.RollHandler,
	queueHandler *handlers.QueueHandler,
) {
	orders := rg.Group(PathOrders)
	{
		// Ingestion endpoints pushed by the order-management service.
		orders.POST("", orderHandler.Ingest)
		orders.PATCH("/:id/status", orderHandler.UpdateStatus)
		orders.POST("/:id/job-orders", jobOrderHandler.Create)
		orders.GET("/:id/job-orders", jobOrderHandler.ListByOrder)
	}

	jobOrders := rg.Group(PathJobOrders)
	{
		jobOrders.GET("/:id", jobOrderHandler.Get)
		jobOrders.PUT("/:id", jobOrderHandler.OverrideStatus)
		jobOrders.GET("/:id/progress", jobOrderHandler.Progress)
		jobOrders.POST("/:id/evaluate", jobOrderHandler.EvaluateExtrusion)
		jobOrders.POST("/:id/rolls", rollHandler.RecordExtrusion)
	}

	rolls := rg.Group(PathRolls)
	{
		rolls.GET("", rollHandler.ListByStage)
		rolls.POST("/:id/advance", rollHandler.AdvanceStage)
	}

	rg.GET(PathQueue, queueHandler.ExtrusionQueue)
}
