package routes

import (
	"construtora_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects = "/projects"
)

func addProjectRoutes(rg *gin.RouterGroup, projectHandler *handlers.ProjectHandler, estimateHandler *handlers.EstimateHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:id", projectHandler.GetProjectByID)
		projects.PUT("/:id", projectHandler.UpdateProject)
		projects.DELETE("/:id", projectHandler.DeleteProject)

		// Estimates of a project, newest first.
		projects.GET("/:id/estimates", estimateHandler.ListEstimatesByProject)
	}
}
