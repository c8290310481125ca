// Command apistub runs the local in-memory implementation of the platform
// REST API, for developing the client without the production backend.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/creatorhub/platform-client/internal/apistub"
	"github.com/creatorhub/platform-client/internal/config"
	"github.com/creatorhub/platform-client/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	e := apistub.New(cfg.Stub, log, apistub.Options{Metrics: true})

	go func() {
		addr := ":" + cfg.Stub.Port
		log.Info().Str("addr", addr).Msg("api stub listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("api stub stopped")
}
