package routes

import (
	"construtora_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
)

func addEstimatingRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, exportHandler *handlers.ExportHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimateByID)
		estimates.GET("/:id/totals", estimateHandler.GetEstimateTotals)
		estimates.GET("/:id/export/pdf", exportHandler.ExportEstimatePDF)
		estimates.GET("/:id/export/xlsx", exportHandler.ExportEstimateSpreadsheet)
	}
}
