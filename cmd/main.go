package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	assignmentapp "github.com/muhammadheryan/item-location/application/assignment"
	catalogapp "github.com/muhammadheryan/item-location/application/catalog"
	locationapp "github.com/muhammadheryan/item-location/application/location"
	operatorapp "github.com/muhammadheryan/item-location/application/operator"
	"github.com/muhammadheryan/item-location/cmd/config"
	redisclient "github.com/muhammadheryan/item-location/cmd/redis"
	_ "github.com/muhammadheryan/item-location/docs"
	assignmentRepo "github.com/muhammadheryan/item-location/repository/assignment"
	catalogRepo "github.com/muhammadheryan/item-location/repository/catalog"
	leaseRepo "github.com/muhammadheryan/item-location/repository/lease"
	locationRepo "github.com/muhammadheryan/item-location/repository/location"
	operatorRepo "github.com/muhammadheryan/item-location/repository/operator"
	redisRepo "github.com/muhammadheryan/item-location/repository/redis"
	txRepo "github.com/muhammadheryan/item-location/repository/tx"
	"github.com/muhammadheryan/item-location/thirdparty/rabbitmq"
	"github.com/muhammadheryan/item-location/transport"
	"github.com/muhammadheryan/item-location/utils/authz"
	"github.com/muhammadheryan/item-location/utils/logger"
	validatorx "github.com/muhammadheryan/item-location/utils/validator"
	"go.uber.org/zap"
)

// @title ITEM-LOCATION API
// @version 1.0
// @description Item-location assignment and conflict resolution API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))
	validatorx.Init()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Initialize RabbitMQ publisher
	var publisher rabbitmq.EventPublisher = rabbitmq.NoopPublisher{}
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	} else {
		logger.Warn("RabbitMQ disabled, events and lease expirations are not published")
	}

	authorizer, err := authz.NewFromFile(cfg.Authz.PolicyPath)
	if err != nil {
		logger.Fatal("err load authz policy", zap.Error(err))
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	LocationRepo := locationRepo.NewLocationRepository(db)
	AssignmentRepo := assignmentRepo.NewAssignmentRepository(db)
	LeaseRepo := leaseRepo.NewLeaseRepository(db)
	CatalogRepo := catalogRepo.NewCatalogRepository(db)
	OperatorRepo := operatorRepo.NewOperatorRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	OperatorApp := operatorapp.NewOperatorApp(cfg, OperatorRepo, RedisRepo)
	LocationApp := locationapp.NewLocationApp(cfg, TxRepo, LocationRepo, LeaseRepo, AssignmentRepo, RedisRepo, publisher)
	AssignmentApp := assignmentapp.NewAssignmentApp(TxRepo, AssignmentRepo, LocationRepo, LeaseRepo, CatalogRepo, LocationApp, publisher)
	CatalogApp := catalogapp.NewCatalogApp(CatalogRepo)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		OperatorApp:   OperatorApp,
		LocationApp:   LocationApp,
		AssignmentApp: AssignmentApp,
		CatalogApp:    CatalogApp,
		Authz:         authorizer,
	}, transport.Options{
		InternalAPIKey: cfg.Internal.APIKey,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsPath:    cfg.Metrics.Path,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
}
