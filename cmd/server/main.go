package main // Entry point package

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/banjos/restaurant-api/internal/config"
	"github.com/banjos/restaurant-api/internal/handler"
	"github.com/banjos/restaurant-api/internal/middleware"
	"github.com/banjos/restaurant-api/internal/queue"
	"github.com/banjos/restaurant-api/internal/repository"
	"github.com/banjos/restaurant-api/internal/router"
	"github.com/banjos/restaurant-api/internal/store"
)

func main() {
	cfg := config.Load()

	client, err := store.NewClient(context.Background(), cfg.AWSRegion, cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey)
	if err != nil {
		log.Fatalf("dynamodb client: %v", err)
	}
	st := store.New(client, cfg.DynamoTable)

	users := repository.NewUserRepo(st, cfg.BcryptCost)
	branches := repository.NewBranchRepo(st)
	menu := repository.NewMenuRepo(st)
	franchise := repository.NewFranchiseRepo(st)
	positions := repository.NewJobPositionRepo(st)
	applications := repository.NewJobApplicationRepo(st)
	gallery := repository.NewGalleryRepo(st)
	orderLinks := repository.NewOrderLinkRepo(st)
	testimonials := repository.NewTestimonialRepo(st)

	e := echo.New()
	e.HideBanner = true

	// Redis-backed rate limiting and GET response caching; both are no-ops
	// when the client cannot connect.
	if rdb := config.NewRedisClient(); rdb != nil {
		e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
		e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	} else {
		log.Printf("redis unavailable; rate limiting and response cache disabled")
	}

	h := router.Handlers{
		Users:        handler.NewUserHandler(cfg, users),
		Branches:     handler.NewBranchHandler(branches),
		Menu:         handler.NewMenuHandler(menu),
		Franchise:    handler.NewFranchiseHandler(franchise),
		Career:       handler.NewCareerHandler(positions, applications),
		Gallery:      handler.NewGalleryHandler(gallery),
		OrderLinks:   handler.NewOrderLinkHandler(orderLinks),
		Testimonials: handler.NewTestimonialHandler(testimonials),
	}
	router.Register(e, cfg, h, users)

	// Background email delivery off the notify.email queue.
	go queue.StartEmailConsumer(queue.SMTPMailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Sender:   cfg.EmailSender,
		Password: cfg.EmailPassword,
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
