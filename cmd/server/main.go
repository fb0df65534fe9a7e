package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/Deshmaneparas/food-delivery-sys/config"
	httpapi "github.com/Deshmaneparas/food-delivery-sys/internal/api/http"
	"github.com/Deshmaneparas/food-delivery-sys/internal/service"
	"github.com/Deshmaneparas/food-delivery-sys/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	if err := storage.EnsureSchema(db); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter("order-events")
	defer kafkaWriter.Close()

	orderRepo := storage.NewOrderRepo(db)
	menuRepo := storage.NewMenuRepo(db)
	restaurantRepo := storage.NewRestaurantRepo(db)
	subscriptionRepo := storage.NewSubscriptionRepo(db)

	sessions := storage.NewSessionStore(rdb, 24*time.Hour)
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	resolver := service.NewSnapshotResolver(menuRepo)
	qr := service.DefaultQRGenerator{BaseURL: config.Getenv("QR_BASE_URL", "http://localhost")}

	orders := service.NewOrderService(orderRepo, resolver, qr, publisher)
	subscriptions := service.NewSubscriptionService(subscriptionRepo, menuRepo)
	catalog := service.NewCatalogService(restaurantRepo, menuRepo)

	handler := httpapi.NewHandler(orders, subscriptions, catalog)
	router := httpapi.NewRouter(handler, sessions)

	srv := &http.Server{
		Addr:         ":" + config.Getenv("PORT", "8080"),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		<-c

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("Food delivery server starting on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %s\n", err)
	}

	<-idleConnsClosed
	log.Println("server stopped")
}
