package main

import (
	"context"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	assignmentapp "github.com/muhammadheryan/item-location/application/assignment"
	locationapp "github.com/muhammadheryan/item-location/application/location"
	"github.com/muhammadheryan/item-location/cmd/config"
	redisclient "github.com/muhammadheryan/item-location/cmd/redis"
	assignmentRepo "github.com/muhammadheryan/item-location/repository/assignment"
	catalogRepo "github.com/muhammadheryan/item-location/repository/catalog"
	leaseRepo "github.com/muhammadheryan/item-location/repository/lease"
	locationRepo "github.com/muhammadheryan/item-location/repository/location"
	redisRepo "github.com/muhammadheryan/item-location/repository/redis"
	txRepo "github.com/muhammadheryan/item-location/repository/tx"
	"github.com/muhammadheryan/item-location/thirdparty/rabbitmq"
	"github.com/muhammadheryan/item-location/utils/logger"
)

type services struct {
	locations   locationapp.LocationApp
	assignments assignmentapp.AssignmentApp
	close       func()
}

type servicesFactory func(ctx context.Context) (*services, error)

// connectServices wires the same application layer the HTTP server uses,
// talking to MySQL, Redis and RabbitMQ directly.
func connectServices(ctx context.Context) (*services, error) {
	cfg, err := config.Parse(".env", ".env.local")
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		return nil, err
	}

	db, err := sqlx.ConnectContext(ctx, "mysql", cfg.GetDSN())
	if err != nil {
		return nil, err
	}
	if err := redisclient.New(cfg); err != nil {
		db.Close()
		return nil, err
	}

	closers := []func(){
		func() { _ = logger.Close() },
		func() { _ = redisclient.Close() },
		func() { _ = db.Close() },
	}

	var publisher rabbitmq.EventPublisher = rabbitmq.NoopPublisher{}
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			for _, c := range closers {
				c()
			}
			return nil, err
		}
		closers = append([]func(){func() { _ = p.Close() }}, closers...)
		publisher = p
	}

	tx := txRepo.NewTxRepository(db)
	locRepo := locationRepo.NewLocationRepository(db)
	asgRepo := assignmentRepo.NewAssignmentRepository(db)
	lsRepo := leaseRepo.NewLeaseRepository(db)

	locations := locationapp.NewLocationApp(cfg, tx, locRepo, lsRepo, asgRepo, redisRepo.NewRepository(), publisher)
	assignments := assignmentapp.NewAssignmentApp(tx, asgRepo, locRepo, lsRepo, catalogRepo.NewCatalogRepository(db), locations, publisher)

	return &services{
		locations:   locations,
		assignments: assignments,
		close: func() {
			for _, c := range closers {
				c()
			}
		},
	}, nil
}
