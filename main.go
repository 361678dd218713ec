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
	"github.com/stripe/stripe-go/v82"

	intconfig "skyroute/internal/config"
	router "skyroute/internal/http"
	"skyroute/internal/http/handlers"
	"skyroute/internal/seatmap"
	"skyroute/internal/storage"
	"skyroute/internal/store"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}
	stripe.Key = env.StripeSecretKey

	snap, cleanup, err := openSnapshotStore(env)
	if err != nil {
		log.Fatalf("Failed to open state backend: %v", err)
	}
	defer cleanup()

	authStore := store.NewAuthStore(snap)
	bookingStore := store.NewBookingStore(snap)

	var seats *seatmap.Generator
	if env.SeatSeed != 0 {
		seats = seatmap.NewSeeded(env.SeatSeed)
	} else {
		seats = seatmap.New()
	}

	h := handlers.New(env, authStore, bookingStore, seats)
	r := router.NewRouter(env, h)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}

func openSnapshotStore(env intconfig.Env) (storage.SnapshotStore, func(), error) {
	switch env.StateBackend {
	case "mysql":
		db, err := intconfig.ConnectDB(env.DBDSN)
		if err != nil {
			return nil, nil, err
		}
		s, err := storage.NewMySQLStore(db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return s, func() { db.Close() }, nil
	case "memory":
		return storage.NewMemStore(), func() {}, nil
	default:
		s, err := storage.NewFileStore(env.StateDir)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	}
}
