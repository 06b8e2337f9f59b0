package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"discounts/internal/config"
	httpx "discounts/internal/http"
	"discounts/internal/search"
	"discounts/internal/store/postgres"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool := postgres.MustOpen(ctx, cfg.DB.DSN)
	defer pool.Close()
	offers := postgres.NewOfferRepository(pool)

	svc := search.NewService(offers, search.Config{
		Limits: search.Limits{
			Default: cfg.Search.DefaultLimit,
			Max:     cfg.Search.MaxLimit,
		},
		ItemLimit:   cfg.Search.ListItemLimit,
		Concurrency: cfg.Search.ListConcurrency,
	})

	r := httpx.NewRouter(cfg, svc)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("offer search API listening on :%s", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	cancel()
	shutCtx, shutCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutCancel()
	_ = srv.Shutdown(shutCtx)
	log.Info().Msg("server stopped")
}
