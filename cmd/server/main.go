package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/leonnmarcoo/Apple-store/internal/catalog"
	"github.com/leonnmarcoo/Apple-store/internal/config"
	"github.com/leonnmarcoo/Apple-store/internal/httpapi"
	"github.com/leonnmarcoo/Apple-store/internal/orders"
	"github.com/leonnmarcoo/Apple-store/internal/session"
)

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()

	// MongoDB holds the product catalog
	mongoDB, err := catalog.ConnectMongoDB(ctx, cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", cfg.Mongo.URI)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	// Postgres holds orders
	cred := &orders.Credentials{
		Host:              cfg.DB.Host,
		Port:              cfg.DB.Port,
		User:              cfg.DB.User,
		Password:          cfg.DB.Password,
		DBName:            cfg.DB.DBName,
		MigrationsDirPath: cfg.DB.MigrationsPath,
	}
	orderRepo, err := orders.NewRepository(cred)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	defer orderRepo.Close()
	if err := orderRepo.RunMigrations(cred); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var publisher orders.EventPublisher
	if cfg.Kafka.Brokers != "" {
		kp := orders.NewKafkaPublisher(cfg.Kafka.Topic, strings.Split(cfg.Kafka.Brokers, ",")...)
		defer kp.Close()
		publisher = kp
		log.Printf("Publishing order events to %s", cfg.Kafka.Brokers)
	}

	catalogService := catalog.NewService(
		catalog.NewMongoRepository(mongoDB),
		catalog.NewRedisCache(redisClient),
	)
	orderService := orders.NewService(orderRepo, publisher)
	sessions := session.NewRedisStore(redisClient)

	productHandler := httpapi.NewProductHandler(catalogService, cfg.RequestTimeout)
	orderHandler := httpapi.NewOrderHandler(orderService, cfg.RequestTimeout)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(httpapi.SessionMiddleware(sessions))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/auth-check", httpapi.AuthCheck)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.ListProducts)
			r.Get("/{id}", productHandler.GetProduct)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orderHandler.CreateOrder)

			// Order management requires a session
			r.Group(func(r chi.Router) {
				r.Use(httpapi.RequireAuth)
				r.Get("/", orderHandler.ListOrders)
				r.Get("/{id}", orderHandler.GetOrder)
				r.Put("/{id}", orderHandler.UpdateStatus)
				r.Delete("/{id}", orderHandler.DeleteOrder)
			})
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(r, "apple-store"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	mongoDB.Client().Disconnect(ctx)
	log.Println("server stopped")
}
