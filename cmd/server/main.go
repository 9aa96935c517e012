package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/pawcare/pet-care-booking/internal/config"
	"github.com/pawcare/pet-care-booking/internal/database"
	"github.com/pawcare/pet-care-booking/internal/handler"
	"github.com/pawcare/pet-care-booking/internal/queue"
	"github.com/pawcare/pet-care-booking/internal/repository"
	"github.com/pawcare/pet-care-booking/internal/router"
	"github.com/pawcare/pet-care-booking/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments use the environment

	cfg := config.Load()
	log := config.NewLogger(cfg.Env)
	defer func() { _ = log.Sync() }()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("database connect", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatal("database migrate", zap.Error(err))
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn("redis unavailable, cache and rate limiting disabled")
	}

	amqpURL := os.Getenv("RABBITMQ_URL")
	if amqpURL == "" {
		amqpURL = os.Getenv("AMQP_URL")
	}
	go queue.StartConsumer(amqpURL, log.Named("consumer"))

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	pets := repository.NewPetRepo(db)
	services := repository.NewServiceRepo(db)
	timeslots := repository.NewTimeslotRepo(db)
	bookings := repository.NewBookingRepo(db)
	notifications := repository.NewNotificationRepo(db)
	vaccinations := repository.NewVaccinationHistoryRepo(db)

	publisher := queue.NewPublisher(amqpURL, log.Named("publisher"))
	lifecycle := service.NewBookingService(
		bookings, timeslots, pets, services, notifications, vaccinations,
		publisher, log.Named("booking"))

	e := router.New(router.Deps{
		Cfg:           cfg,
		CacheCfg:      config.LoadCacheConfig(),
		RateCfg:       config.LoadRateLimitConfig(),
		Redis:         rdb,
		Health:        handler.Health(db),
		Auth:          handler.NewAuthHandler(cfg, users, tokens),
		Bookings:      handler.NewBookingHandler(lifecycle, bookings),
		Pets:          handler.NewPetHandler(pets),
		Services:      handler.NewServiceHandler(services),
		Timeslots:     handler.NewTimeslotHandler(timeslots),
		Notifications: handler.NewNotificationHandler(notifications),
		Stats:         handler.NewStatsHandler(bookings),
		Vaccinations:  handler.NewVaccinationHandler(vaccinations, pets),
	})

	addr := ":" + cfg.Port
	log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
