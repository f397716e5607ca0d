package routes

import (
	"construtora_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorks     = "/works"
	PathMaterials = "/materials"
)

func addCatalogRoutes(rg *gin.RouterGroup, workHandler *handlers.WorkHandler, materialHandler *handlers.MaterialHandler) {
	works := rg.Group(PathWorks)
	{
		works.POST("", workHandler.CreateWork)
		works.GET("", workHandler.ListWorks)
		works.GET("/:id", workHandler.GetWorkByID)
		works.PUT("/:id", workHandler.UpdateWork)
		works.DELETE("/:id", workHandler.DeleteWork)
	}

	materials := rg.Group(PathMaterials)
	{
		materials.POST("", materialHandler.CreateMaterial)
		materials.GET("", materialHandler.ListMaterials)
		materials.GET("/:id", materialHandler.GetMaterialByID)
		materials.PUT("/:id", materialHandler.UpdateMaterial)
		materials.DELETE("/:id", materialHandler.DeleteMaterial)
	}
}
