package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/opencompanybot/registration-service/internal/app"
	"github.com/opencompanybot/registration-service/internal/ccpayment"
	"github.com/opencompanybot/registration-service/internal/companieshouse"
	"github.com/opencompanybot/registration-service/internal/config"
	"github.com/opencompanybot/registration-service/internal/handler"
	"github.com/opencompanybot/registration-service/internal/postgres"
	"github.com/opencompanybot/registration-service/internal/repo"
	"github.com/opencompanybot/registration-service/internal/service"
	"github.com/opencompanybot/registration-service/pkg/cache"
	"github.com/opencompanybot/registration-service/pkg/trm"
	"github.com/opencompanybot/registration-service/pkg/utils"

	_ "github.com/opencompanybot/registration-service/docs"
)

// @title           Company Registration Service API
// @version         1.0
// @description     Crypto payment to company registration workflow API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	txManager := trm.NewManager(db)
	orderRepo := repo.NewPostgresRepo(db, txManager)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	processor := ccpayment.NewClient(conf.CCPayment)
	registry := companieshouse.NewClient(conf.CompaniesHouse)

	registrar := service.NewRegistrar(logger, orderRepo, registry, utils.RetryConfig{
		MaxAttempts:  conf.Orders.RegistrationMaxAttempts,
		InitialDelay: conf.Orders.RegistrationInitialDelay,
		MaxDelay:     conf.Orders.RegistrationMaxDelay,
		Multiplier:   2,
	})
	orchestrator := service.NewOrchestrator(logger, orderRepo, processor, registrar, orderCache, service.OrchestratorOpts{
		ExpiryWindow:   conf.Orders.ExpiryWindow,
		ReconcileGrace: conf.Orders.ReconcileGrace,
		SweepBatchSize: conf.Orders.SweepBatchSize,
	})
	sweeper := service.NewSweeper(logger, orchestrator, conf.Orders.SweepInterval)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orchestrator)
	httpHandler := handler.NewHTTPHandler(logger, orchestrator, processor, registry)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache, sweeper)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
