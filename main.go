package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	intconfig "travelmap/internal/config"
	"travelmap/internal/geocode"
	router "travelmap/internal/http"
	"travelmap/internal/http/handlers"
	"travelmap/internal/repositories"
	"travelmap/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, continuing with environment variables")
	}

	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	intconfig.ConnectDB(env.MySQLDSN)
	defer intconfig.CloseDB()

	intconfig.ConnectRedis(env.RedisAddr)
	defer intconfig.CloseRedis()

	// Catalog: schema, seed-when-empty, load into memory.
	catalog := &services.CatalogService{Repo: repositories.DestinationRepository{}}
	if err := catalog.Load(); err != nil {
		log.Fatalf("failed to load destination catalog: %v", err)
	}

	geocoder := geocode.NewClient(env.GeocoderBaseURL, env.GeocoderUserAgent, env.GeocoderLimit)
	resolver := &services.ResolverService{Catalog: catalog, Geocoder: geocoder}

	widget := &handlers.WidgetQueue{}
	view := services.NewViewStateService(widget)

	ledger := &services.BookingService{Store: repositories.BookingStore{}}
	ledger.Load(context.Background())

	a := &handlers.API{
		Catalog:  catalog,
		Resolver: resolver,
		View:     view,
		Ledger:   ledger,
		Widget:   widget,
	}

	r := router.NewRouter(a)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly")
}
