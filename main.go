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

	intconfig "github.com/Prathamraj05/railbooker-zenith/internal/config"
	router "github.com/Prathamraj05/railbooker-zenith/internal/http"
	"github.com/Prathamraj05/railbooker-zenith/internal/http/handlers"
	"github.com/Prathamraj05/railbooker-zenith/internal/repositories"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	catalog := repositories.NewSeededCatalog()
	bookings := repositories.NewBookingRepo()
	users := repositories.NewUserRepo(repositories.SeedUsers())

	api := handlers.New(catalog, bookings, users, env.JWTSecret)
	r := router.NewRouter(env, api)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("railbooker listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}
