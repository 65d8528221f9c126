package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"media-relay/internal/adapters/oembed"
	"media-relay/internal/adapters/rapidapi"
	"media-relay/internal/config"
	"media-relay/internal/repository"
	httptransport "media-relay/internal/transport/http"
	"media-relay/internal/usecase"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	deps := usecase.Dependencies{
		Metadata: oembed.NewClient(),
	}
	if cfg.RapidAPIKey != "" {
		deps.Video = rapidapi.NewVideoClient(cfg.RapidAPIKey)
		deps.Audio = rapidapi.NewAudioClient(cfg.RapidAPIKey)
		deps.Instagram = rapidapi.NewInstagramClient(cfg.RapidAPIKey)
	} else {
		log.Println("RAPIDAPI_KEY not set, link fetching disabled")
	}

	if cfg.DatabaseURL != "" {
		initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		store, err := repository.NewPostgresFetchLog(initCtx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			// The store is optional; run without it.
			log.Printf("fetch log disabled: %v", err)
		} else {
			deps.Store = store
			defer store.Close()
		}
	}

	service := usecase.NewService(deps)
	handler := httptransport.NewHandler(service, httptransport.EnvFlags{
		DatabaseURLSet:  cfg.DatabaseURL != "",
		DatabaseNameSet: cfg.DatabaseName != "",
	})

	var finalHandler http.Handler = handler
	finalHandler = httptransport.CORS(finalHandler)
	finalHandler = httptransport.Recovery(finalHandler)
	finalHandler = httptransport.Logging(finalHandler)
	finalHandler = httptransport.RequestID(finalHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: finalHandler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("API server started on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server exited")
}
