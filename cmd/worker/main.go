package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/avialane/flightbooking/config"
	"github.com/avialane/flightbooking/internal/email"
	"github.com/avialane/flightbooking/internal/kafka"
	"github.com/avialane/flightbooking/internal/service/mailer"
	kafkaGo "github.com/segmentio/kafka-go"
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

	mailService := mailer.NewService(
		email.NewRenderer(),
		email.NewSMTPSender(cfg.Mail),
		cfg.Mail.FallbackRecipient,
		cfg.Mail.FallbackSubject,
	)

	emailConsumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.EmailTopic)
	defer emailConsumer.Close()

	messageConsumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.MessageTopic)
	defer messageConsumer.Close()

	go func() {
		if err := emailConsumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			return mailService.HandleEmailMessage(ctx, msg.Value)
		}); err != nil {
			log.Printf("email consumer stopped: %v", err)
		}
	}()

	go func() {
		if err := messageConsumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			return mailService.HandlePlainMessage(ctx, msg.Value)
		}); err != nil {
			log.Printf("message consumer stopped: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")
}
