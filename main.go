package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"carplogAPI/handlers"
	"carplogAPI/internal/config"
	"carplogAPI/internal/db"
	"carplogAPI/middleware"
	"carplogAPI/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := db.Connect(ctx, cfg.MongoURL)
	cancel()
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	log.Println("Successfully connected to MongoDB")

	database := client.Database(cfg.DBName)

	auth := middleware.NewJWTAuth(cfg.JWTSecret, cfg.TokenTTL)

	userService := services.NewUserService(database)
	catchService := services.NewCatchService(database, userService)
	statsService := services.NewStatsService(database, userService)
	analyticsService := services.NewAnalyticsService(database)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userService.EnsureIndexes(indexCtx); err != nil {
		log.Fatal("Failed to ensure indexes:", err)
	}
	indexCancel()

	authHandler := handlers.NewAuthHandler(userService, auth)
	catchHandler := handlers.NewCatchHandler(catchService)
	statsHandler := handlers.NewStatsHandler(statsService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, userService)

	middleware.InitPrometheus()

	r := mux.NewRouter()

	go middleware.CleanupClients()

	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MonitorMiddleware)

	r.Handle("/metrics", middleware.BasicAuthMiddleware(promhttp.Handler()))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unhealthy", "error": "database connection failed"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "carplog-api"}`))
	}).Methods("GET")

	// -------------------------------------------------------------------------
	// API SUBROUTER
	// -------------------------------------------------------------------------
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/analytics/track", analyticsHandler.TrackEvent).Methods("POST")

	// -------------------------------------------------------------------------
	// PROTECTED ROUTES (REQUIRE BEARER TOKEN)
	// -------------------------------------------------------------------------
	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.RequireAuth)

	protected.HandleFunc("/auth/me", authHandler.Me).Methods("GET")
	protected.HandleFunc("/auth/profile", authHandler.UpdateProfile).Methods("PUT")

	protected.HandleFunc("/stats/monthly", statsHandler.GetMonthlyStats).Methods("GET")
	protected.HandleFunc("/stats/yearly", statsHandler.GetYearlyStats).Methods("GET")

	protected.HandleFunc("/analytics/stats", analyticsHandler.GetStats).Methods("GET")

	// The catch routes historically existed in an authenticated and an
	// unauthenticated variant. One implementation, switched by config;
	// catch operations stay owner-scoped either way.
	catches := api.PathPrefix("/catches").Subrouter()
	if cfg.CatchAuthOptional {
		catches.Use(auth.OptionalAuth)
	} else {
		catches.Use(auth.RequireAuth)
	}

	catches.HandleFunc("", catchHandler.CreateCatch).Methods("POST")
	catches.HandleFunc("", catchHandler.GetCatches).Methods("GET")
	catches.HandleFunc("/{id}", catchHandler.DeleteCatch).Methods("DELETE")

	// CORS configuration
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.CORSOrigins),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		gorillaHandlers.ExposedHeaders([]string{"Content-Length"}),
		gorillaHandlers.AllowCredentials(),
	)

	server := http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	log.Println("Got signal:", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Closing MongoDB connection...")
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Printf("MongoDB disconnect error: %v", err)
	}

	log.Println("Server shutdown complete")
}
