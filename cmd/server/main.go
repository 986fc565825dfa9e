package main

import (
	"log"
	"net/http"
	"time"

	"tastybites/config"
	httpapi "tastybites/internal/api/http"
	"tastybites/internal/notifier"
	"tastybites/internal/service"
	"tastybites/internal/storage"
)

func main() {
	cfg := config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(cfg.OrderEventTopic)
	defer writer.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	redisStore := storage.NewRedisStore(rdb, cfg.SessionTTL, cfg.CartTTL)
	publisher := storage.NewKafkaPublisher(writer)

	orderSvc := service.NewOrderService(repo, publisher, service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL})
	mailer := notifier.NewSendGridMailer(repo, &http.Client{Timeout: 10 * time.Second}, cfg.SendGridFrom)

	handler := &httpapi.Handler{
		Menu:      service.NewMenuService(repo),
		Offers:    service.NewOfferService(repo),
		Branches:  service.NewBranchService(repo),
		Settings:  service.NewSettingsService(repo),
		Orders:    orderSvc,
		Cart:      service.NewCartService(redisStore, repo, orderSvc),
		Feedback:  service.NewFeedbackService(repo, repo, redisStore),
		Analytics: service.NewAnalyticsService(repo),
		Auth:      service.NewAuthService(repo, redisStore),
		Mailer:    mailer,
	}

	httpapi.StartServer(":"+cfg.ServerPort, httpapi.NewRouter(handler))
}
