package routes

import (
	"log"
	"strconv"

	_ "construtora_xpto/docs" // This will be auto-generated
	"construtora_xpto/internal/adapter/http/handlers"
	repository2 "construtora_xpto/internal/adapter/persistence/repository"
	"construtora_xpto/internal/infrastructure/database"
	"construtora_xpto/internal/infrastructure/export"
	"construtora_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	workRepo := repository2.NewWorkDynamoRepository(ddb)
	materialRepo := repository2.NewMaterialDynamoRepository(ddb)

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, projectRepo, workRepo, materialRepo)
	projectUseCase := usecase.NewProjectUseCase(projectRepo)
	workUseCase := usecase.NewWorkUseCase(workRepo)
	materialUseCase := usecase.NewMaterialUseCase(materialRepo)
	exportUseCase := usecase.NewExportUseCase(estimateRepo, export.NewEstimateRenderer())

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	workHandler := handlers.NewWorkHandler(workUseCase)
	materialHandler := handlers.NewMaterialHandler(materialUseCase)
	exportHandler := handlers.NewExportHandler(exportUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimatingRoutes(v1, estimateHandler, exportHandler)
	addCatalogRoutes(v1, workHandler, materialHandler)
	addProjectRoutes(v1, projectHandler, estimateHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
