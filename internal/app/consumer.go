package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"faculty-ops/internal/events"
	"faculty-ops/internal/mailer"
	"faculty-ops/internal/messaging/kafka/consumer"
)

// RunConsumer reads meeting.scheduled events and emails invites.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	sendgridKey := os.Getenv("SENDGRID_API_KEY")
	if sendgridKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is required")
	}

	mail := mailer.NewSendgridMailer(
		sendgridKey,
		os.Getenv("APP_NAME"),
		os.Getenv("MAIL_FROM"),
		logger,
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.MeetingScheduledTopic,
		GroupID:        "faculty-ops-meeting-invites",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMeetingScheduled(ctx, reader, mail, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
