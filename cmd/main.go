package main

import (
	"context"
	"net/http"

	checkoutapp "github.com/campuscloset/marketplace/application/checkout"
	orderapp "github.com/campuscloset/marketplace/application/order"
	userapp "github.com/campuscloset/marketplace/application/user"
	"github.com/campuscloset/marketplace/cmd/config"
	redisclient "github.com/campuscloset/marketplace/cmd/redis"
	_ "github.com/campuscloset/marketplace/docs"
	inventoryRepo "github.com/campuscloset/marketplace/repository/inventory"
	orderRepo "github.com/campuscloset/marketplace/repository/order"
	productRepo "github.com/campuscloset/marketplace/repository/product"
	ratelimitRepo "github.com/campuscloset/marketplace/repository/ratelimit"
	redisRepo "github.com/campuscloset/marketplace/repository/redis"
	riderRepo "github.com/campuscloset/marketplace/repository/rider"
	txRepo "github.com/campuscloset/marketplace/repository/tx"
	userRepo "github.com/campuscloset/marketplace/repository/user"
	"github.com/campuscloset/marketplace/thirdparty/rabbitmq"
	"github.com/campuscloset/marketplace/transport"
	"github.com/campuscloset/marketplace/utils/logger"
	"github.com/campuscloset/marketplace/utils/ratelimit"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title CAMPUS CLOSET API
// @version 1.0
// @description Campus Closet marketplace order & inventory API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// RabbitMQ publisher for confirmation and expiration events
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	// Expiration consumer reclaims stock of orders that sit unpaid past
	// expiry, through the internal expire endpoint.
	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		cfg.Internal.APIURL, cfg.Internal.APIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start expiration consumer", zap.Error(err))
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	RiderRepo := riderRepo.NewRiderRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Rate limiter over the durable Redis store
	limiter := ratelimit.NewLimiter(ratelimitRepo.NewStore())

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	CheckoutApp := checkoutapp.NewCheckoutApp(cfg, TxRepo, ProductRepo, InventoryRepo, OrderRepo, publisher)
	OrderApp := orderapp.NewOrderApp(TxRepo, OrderRepo, InventoryRepo, RiderRepo)

	httpTransport := transport.NewTransport(cfg, UserApp, CheckoutApp, OrderApp, limiter)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
