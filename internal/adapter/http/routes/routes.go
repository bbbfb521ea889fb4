package routes

import (
	"log"
	_ "loja_virtual/docs" // This will be auto-generated
	"loja_virtual/internal/adapter/http/handlers"
	"loja_virtual/internal/adapter/http/middleware"
	"loja_virtual/internal/adapter/persistence/cache"
	repository2 "loja_virtual/internal/adapter/persistence/repository"
	"loja_virtual/internal/infrastructure/database"
	"loja_virtual/internal/infrastructure/events"
	"loja_virtual/internal/infrastructure/payments"
	"loja_virtual/internal/infrastructure/postal"
	"loja_virtual/internal/usecase"
	"loja_virtual/internal/usecase/interfaces"
	"os"
	"strconv"

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
	db := database.ConnectPostgres()

	var cartRepo interfaces.ICartRepository = repository2.NewCartDynamoRepository(ddb)
	if redisClient := database.ConnectRedis(); redisClient != nil {
		cartRepo = cache.NewCachedCartRepository(cartRepo, cache.NewRedisCartCache(redisClient))
	}

	orderRepo := repository2.NewOrderPostgresRepository(db)
	profileRepo := repository2.NewProfilePostgresRepository(db)
	productRepo := repository2.NewProductPostgresRepository(db)
	reviewRepo := repository2.NewReviewPostgresRepository(db)

	var checkoutGateway interfaces.ICheckoutGateway
	mpGateway, err := payments.NewMercadoPagoCheckoutGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		checkoutGateway = mpGateway
	}

	var eventPublisher interfaces.IOrderEventPublisher
	if conn, err := events.ConnectAMQP(); err != nil {
		log.Printf("AMQP not configured, order events disabled: %v", err)
	} else if publisher, err := events.NewAMQPOrderEventPublisher(conn); err != nil {
		log.Printf("AMQP publisher setup failed, order events disabled: %v", err)
	} else {
		eventPublisher = publisher
	}

	cartUseCase := usecase.NewCartUseCase(cartRepo)
	freightUseCase := usecase.NewFreightUseCase(postal.NewViaCEPClient())
	checkoutUseCase := usecase.NewCheckoutUseCase(cartRepo, orderRepo, profileRepo, checkoutGateway, freightUseCase)
	reconcileUseCase := usecase.NewReconcileUseCase(orderRepo, cartRepo, checkoutGateway, eventPublisher)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	catalogUseCase := usecase.NewCatalogUseCase(productRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, productRepo)
	profileUseCase := usecase.NewProfileUseCase(profileRepo)

	cartHandler := handlers.NewCartHandler(cartUseCase)
	freightHandler := handlers.NewFreightHandler(freightUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase, reconcileUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	reviewHandler := handlers.NewReviewHandler(reviewUseCase)
	profileHandler := handlers.NewProfileHandler(profileUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, cartHandler, freightHandler, checkoutHandler, orderHandler, catalogHandler, reviewHandler, profileHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.Identity())
}
