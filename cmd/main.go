// Package main starts the bookkeeping API server.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/go-finbook/finbook/cmd/httpserver"
	"github.com/go-finbook/finbook/internal/middleware"
	"github.com/go-finbook/finbook/pkg/configpkg"
	"github.com/go-finbook/finbook/pkg/dbpkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	server, err := httpserver.New(db, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Msg("finbook api server has started")

	if err := server.Engine.Run(config.ServerAddress); err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
