package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/item-location/cmd/config"
	"github.com/muhammadheryan/item-location/thirdparty/rabbitmq"
	"github.com/muhammadheryan/item-location/utils/logger"
	"go.uber.org/zap"
)

// Lease expiration worker: consumes delayed lease messages and expires the
// lease through the server's internal endpoint.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.Internal.APIKey == "" {
		logger.Fatal("INTERNAL_API_KEY is required for the lease consumer")
	}

	expirer := rabbitmq.NewInternalAPIExpirer(cfg.Internal.APIURL, cfg.Internal.APIKey)
	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, expirer)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("Lease consumer running", zap.String("queue", rabbitmq.LeaseQueue))

	<-ctx.Done()
	logger.Info("Lease consumer stopped")
}
