// Command server runs the myFlix HTTP API.
//
// @title                      myFlix API
// @version                    1.0
// @description                Movie catalogue with user accounts and favourites.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/myflix/movie-api/internal/api"
	"github.com/myflix/movie-api/internal/core/ports"
	"github.com/myflix/movie-api/internal/core/service"
	"github.com/myflix/movie-api/internal/infrastructure/crypto"
	"github.com/myflix/movie-api/internal/infrastructure/db/mongo"
	"github.com/myflix/movie-api/internal/infrastructure/db/redis"
	"github.com/myflix/movie-api/internal/infrastructure/http/handlers"
	"github.com/myflix/movie-api/internal/pkg/config"
	"github.com/myflix/movie-api/pkg/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "myflix-api",
		Version: version,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	movieRepo := mongo.NewMovieRepository(db)
	userRepo := mongo.NewUserRepository(db)
	if err := mongo.EnsureIndexes(ctx, movieRepo, userRepo); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	checks := map[string]handlers.Check{"mongodb": handlers.MongoCheck(db)}

	var cache ports.MovieCache
	redisCfg := redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB}
	if redisCfg.Enabled() {
		rdb, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, running without movie cache")
		} else {
			defer rdb.Close()
			cache = redis.NewMovieCache(rdb, cfg.Redis.CacheTTL)
			checks["redis"] = handlers.RedisCheck(rdb)
		}
	}

	hasher := crypto.NewBcryptHasher(cfg.Auth.BcryptCost)

	e := api.NewRouter(api.Deps{
		Movies:     service.NewMovieService(movieRepo, cache, log),
		Users:      service.NewUserService(userRepo, hasher, log),
		Auth:       service.NewAuthService(userRepo, hasher, cfg.Auth.JWTSecret, cfg.Auth.JWTTTL),
		JWTSecret:  cfg.Auth.JWTSecret,
		Logger:     log,
		Readiness:  checks,
		LoginRate:  cfg.Auth.LoginRate,
		LoginBurst: cfg.Auth.LoginBurst,
	})
	e.Server.ReadTimeout = cfg.HTTP.ReadTimeout
	e.Server.WriteTimeout = cfg.HTTP.WriteTimeout

	go func() {
		log.Info().Str("port", cfg.Port).Bool("cache", cache != nil).Msg("starting myflix api")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
