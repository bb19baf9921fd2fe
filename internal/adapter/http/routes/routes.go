package routes

import (
	"log"
	"strconv"

	_ "nova_freight/docs" // This will be auto-generated
	"nova_freight/internal/adapter/http/handlers"
	repository2 "nova_freight/internal/adapter/persistence/repository"
	"nova_freight/internal/infrastructure/database"
	"nova_freight/internal/infrastructure/logging"
	"nova_freight/internal/infrastructure/notifications"
	"nova_freight/internal/usecase"

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
	logger := logging.NewLogger()
	ddb := database.ConnectDynamoDB()

	awardRepo := repository2.NewAwardDynamoRepository(ddb)
	lifecycleRepo := repository2.NewLifecycleDynamoRepository(ddb)
	notifier := notifications.NewAdminNotifier(ddb, logger)

	lifecycleUseCase := usecase.NewBidLifecycleUseCase(awardRepo, lifecycleRepo, notifier, logger)
	lifecycleHandler := handlers.NewLifecycleHandler(lifecycleUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLifecycleRoutes(v1, lifecycleHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
