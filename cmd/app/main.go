package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avialane/flightbooking/api"
	"github.com/avialane/flightbooking/config"
	"github.com/avialane/flightbooking/internal/bootstrap"
	"github.com/avialane/flightbooking/internal/cache"
	"github.com/avialane/flightbooking/internal/kafka"
	"github.com/avialane/flightbooking/internal/repository"
	"github.com/avialane/flightbooking/internal/service/booking"
	"github.com/avialane/flightbooking/internal/service/customer"
	"github.com/avialane/flightbooking/internal/service/flight"
	"github.com/avialane/flightbooking/internal/service/notification"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.FlightsTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	customerService := customer.NewCustomerService(repository.NewCustomerRepository(pool))
	airportService := flight.NewAirportService(repository.NewAirportRepository(pool))
	aircraftService := flight.NewAircraftService(repository.NewAircraftRepository(pool))
	airlineService := flight.NewAirlineService(repository.NewAirlineRepository(pool))
	flightService := flight.NewFlightService(repository.NewFlightRepository(pool), redisCache)
	bookingService := booking.NewBookingService(repository.NewBookingRepository(pool))
	notificationService := notification.NewService(producer, cfg.Kafka.EmailTopic, cfg.Kafka.MessageTopic)

	router := api.NewRouter(api.Handlers{
		Customers:     api.NewCustomerHandler(customerService),
		Airports:      api.NewAirportHandler(airportService),
		Aircraft:      api.NewAircraftHandler(aircraftService),
		Airlines:      api.NewAirlineHandler(airlineService),
		Flights:       api.NewFlightHandler(flightService),
		Bookings:      api.NewBookingHandler(bookingService),
		Notifications: api.NewNotificationHandler(notificationService),
	})

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
