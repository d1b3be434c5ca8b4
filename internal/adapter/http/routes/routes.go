package routes

import (
	"log"
	"strconv"

	_ "delivery_auction/docs" // This will be auto-generated
	"delivery_auction/internal/adapter/http/handlers"
	repository2 "delivery_auction/internal/adapter/persistence/repository"
	"delivery_auction/internal/infrastructure/database"
	"delivery_auction/internal/infrastructure/notifications"
	"delivery_auction/internal/infrastructure/reputation"
	"delivery_auction/internal/usecase"
	"delivery_auction/internal/usecase/interfaces"
	"os"

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

	auctionRepo := repository2.NewAuctionDynamoRepository(ddb)
	taskRepo := repository2.NewTaskDynamoRepository(ddb)

	var reputationService interfaces.IReputationService
	ratingClient, err := reputation.NewRatingServiceClient(os.Getenv("RATING_SERVICE_URL"))
	if err != nil {
		log.Printf("Rating service client not configured: %v", err)
	} else {
		reputationService = ratingClient
	}

	var notifier interfaces.INotificationService
	webhookNotifier, err := notifications.NewWebhookNotifier(os.Getenv("NOTIFICATION_WEBHOOK_URL"))
	if err != nil {
		log.Printf("Notification webhook not configured: %v", err)
	} else {
		notifier = webhookNotifier
	}

	auctionUseCase := usecase.NewAuctionUseCase(auctionRepo, taskRepo, notifier)
	bidUseCase := usecase.NewBidUseCase(auctionRepo, taskRepo, reputationService, notifier)

	auctionHandler := handlers.NewAuctionHandler(auctionUseCase)
	bidHandler := handlers.NewBidHandler(bidUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuctionRoutes(v1, auctionHandler, bidHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
