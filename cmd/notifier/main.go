package main

import (
	"context"
	"net/http"
	"time"

	"tastybites/config"
	"tastybites/internal/notifier"
	"tastybites/internal/storage"
)

func main() {
	cfg := config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	reader := config.NewKafkaReader(cfg.OrderEventTopic, "order-notifier")
	defer reader.Close()

	repo := storage.NewPostgresRepository(db)
	mailer := notifier.NewSendGridMailer(repo, &http.Client{Timeout: 10 * time.Second}, cfg.SendGridFrom)

	consumer := notifier.NewConsumer(reader, mailer)
	consumer.Start(context.Background())
}
