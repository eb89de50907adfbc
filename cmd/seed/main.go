// Command seed loads a JSON array of movies into the movies collection.
package main

import (
	"context"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"

	"github.com/myflix/movie-api/internal/infrastructure/db/mongo"
	"github.com/myflix/movie-api/internal/infrastructure/db/redis"
	"github.com/myflix/movie-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	var (
		app = kingpin.New("myflix-seed", "Load movies from a JSON file into MongoDB.")

		file     = app.Flag("file", "JSON file holding an array of movies; _id fields are ignored").Short('f').Required().Envar("SEED_FILE").ExistingFile()
		drop     = app.Flag("drop", "delete every movie before inserting").Bool()
		uri      = app.Flag("uri", "MongoDB connection string").Default("mongodb://localhost:27017").Envar("CONNECTION_URI").String()
		database = app.Flag("db", "MongoDB database").Default("myFlixDB").Envar("MONGO_DB").String()
		redisAdr = app.Flag("redis-addr", "Redis address whose movie cache is flushed after loading").Envar("REDIS_ADDR").String()
		timeout  = app.Flag("timeout", "overall timeout").Default("1m").Duration()
		level    = app.Flag("log-level", "log level").Default("info").Envar("LOG_LEVEL").String()
	)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log := logger.Init(logger.Options{Level: *level, Pretty: true, Service: "myflix-seed"})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("open seed file")
	}
	movies, err := decodeMovies(f)
	_ = f.Close()
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("invalid seed file")
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: *uri, Database: *database, Timeout: 10 * time.Second})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())

	repo := mongo.NewMovieRepository(db)
	res, err := seed(ctx, repo, movies, *drop)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Int64("deleted", res.Deleted).Int("inserted", res.Inserted).Msg("movies loaded")

	if err := mongo.EnsureIndexes(ctx, repo); err != nil {
		log.Warn().Err(err).Msg("failed to create movie indexes")
	}

	if *redisAdr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{Addr: *redisAdr})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, movie cache not flushed")
			return
		}
		defer rdb.Close()
		if err := redis.NewMovieCache(rdb, 0).Flush(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to flush movie cache")
			return
		}
		log.Info().Msg("movie cache flushed")
	}
}
