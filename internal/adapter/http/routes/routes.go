package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"

	_ "plasticos_xpto/docs" // swag-generated swagger spec
	"plasticos_xpto/internal/adapter/http/handlers"
	"plasticos_xpto/internal/adapter/persistence/repository"
	"plasticos_xpto/internal/infrastructure/config"
	"plasticos_xpto/internal/infrastructure/database"
	"plasticos_xpto/internal/infrastructure/notification"
	"plasticos_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB(cfg.DynamoDB)

	orderRepo := repository.NewOrderDynamoRepository(ddb)
	jobOrderRepo := repository.NewJobOrderDynamoRepository(ddb)
	rollRepo := repository.NewRollDynamoRepository(ddb)

	notifier := notification.NewWebhookNotifier(cfg.Webhook)

	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	jobOrderUseCase := usecase.NewJobOrderUseCase(jobOrderRepo, rollRepo, orderRepo, notifier)
	rollUseCase := usecase.NewRollUseCase(rollRepo, jobOrderRepo, notifier)
	queueUseCase := usecase.NewQueueUseCase(jobOrderRepo, rollRepo, orderRepo)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	jobOrderHandler := handlers.NewJobOrderHandler(jobOrderUseCase)
	rollHandler := handlers.NewRollHandler(rollUseCase)
	queueHandler := handlers.NewQueueHandler(queueUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProductionRoutes(v1, orderHandler, jobOrderHandler, rollHandler, queueHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
