// Command invoke serves a single request envelope read from stdin and writes
// the response envelope to stdout. Function hosts that speak JSON envelopes
// run it once per request.
package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/joho/godotenv"

	"github.com/Error160/blog-api/internal/app"
	"github.com/Error160/blog-api/internal/infrastructure/config"
	"github.com/Error160/blog-api/internal/infrastructure/serverless"
	"github.com/Error160/blog-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	// stdout carries the response, so logs go to stderr.
	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{Service: "blog-api", Output: os.Stderr})
		l.Fatal().Err(err).Msg("load configuration")
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Service: "blog-api", Output: os.Stderr})

	var in serverless.Request
	if err := json.NewDecoder(os.Stdin).Decode(&in); err != nil {
		log.Fatal().Err(err).Msg("decode request envelope")
	}

	application, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("start application")
	}
	defer func() { _ = application.Close(ctx) }()

	out := serverless.NewAdapter(application.Echo, log).Handle(ctx, in)
	if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
		log.Error().Err(err).Msg("encode response envelope")
	}
}
