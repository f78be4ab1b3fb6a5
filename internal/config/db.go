package config

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	connectTimeout    = 10 * time.Second
	disconnectTimeout = 5 * time.Second
)

// ConnectDB establishes a connection to the document store and returns the
// database handle plus a teardown func for process shutdown.
//
// A missing DATABASE_URL or an unreachable server is not fatal: the caller
// gets a nil database, data endpoints serve empty or "unavailable" responses,
// and the diagnostics endpoint reports the degraded state.
func ConnectDB(cfg *Config, log zerolog.Logger) (*mongo.Database, func()) {
	noop := func() {}

	if cfg.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL not set, running without a database")
		return nil, noop
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		log.Warn().Err(err).Msg("failed to create database client, running without a database")
		return nil, noop
	}

	disconnect := func() {
		ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("error disconnecting from database")
		}
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Keep the client: the driver reconnects if the server comes back.
		log.Warn().Err(err).Msg("database unreachable at startup, data endpoints will degrade")
	} else {
		log.Info().Str("database", cfg.DatabaseName).Msg("connected to document store")
	}

	return client.Database(cfg.DatabaseName), disconnect
}
