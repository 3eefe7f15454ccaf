package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"furniture-storefront/internal/client"
	"furniture-storefront/internal/config"
	"furniture-storefront/internal/logger"
	"furniture-storefront/internal/repository"
	"furniture-storefront/internal/server"
	"furniture-storefront/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log)

	db := client.InitSqliteClient(cfg.DatabaseURL)
	if err := repository.SeedCatalog(db); err != nil {
		log.WithError(err).Fatal("seed catalog")
	}

	stripeClient := client.NewStripeClient(&cfg.Stripe)

	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	webhookEventRepo := repository.NewWebhookEventRepository(db)

	catalogService := service.NewCatalogService(productRepo, categoryRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	stockService := service.NewStockService(cartRepo, productRepo)
	customerService := service.NewCustomerService(customerRepo, stripeClient)
	checkoutService := service.NewCheckoutService(stripeClient, productRepo, customerService, cfg.BaseURL)
	webhookService := service.NewWebhookService(stripeClient, orderRepo, webhookEventRepo, log)
	orderService := service.NewOrderService(orderRepo)

	srv := server.NewServer(
		catalogService,
		cartService,
		stockService,
		checkoutService,
		webhookService,
		orderService,
		cfg.Auth.JWTSecret,
		log,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.WithField("addr", serverAddr).Info("starting HTTP server")
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.WithError(err).Fatal("HTTP server shutdown error")
	}
}
