package main

import (
	"bookspace/config"
	"bookspace/di"
	"bookspace/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)
	logger.SetLogLevel(cfg)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.Server.Env).
		Str("api", cfg.API.BaseURL).
		Msg("Starting room booking admin")

	di.InitializeService().Serve()
}
