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
	"github.com/rs/zerolog"

	"inkwell/internal/config"
	"inkwell/internal/db"
	applog "inkwell/internal/logger"
	"inkwell/internal/repository"
	"inkwell/internal/routes"
	"inkwell/internal/service"
	"inkwell/internal/util/compression"
)

var (
	logger zerolog.Logger

	database    db.Db
	postService *service.PostService
)

func main() {
	// The .env file is optional.
	_ = godotenv.Load()

	configPath := os.Getenv(config.EnvConfigPath)
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msgf(config.ErrLoadConfigFmt, err)
	}

	logger = applog.New(cfg.Logging.Level)

	config.SetLogger(logger)
	db.SetLogger(logger)
	repository.SetLogger(logger)
	service.SetLogger(logger)

	repo, cleanup, err := buildRepository(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msgf(config.ErrInitializeDatabaseFmt, err)
	}
	defer cleanup()

	postService = service.NewPostService(repo)

	mux := http.NewServeMux()
	mux.HandleFunc(routes.APIPosts, handlePosts)
	mux.HandleFunc(routes.APIPostSlug, handlePostBySlug)
	mux.HandleFunc(routes.Health, serveHealth)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: logRequests(secureHeaders(mux.ServeHTTP)),
	}

	go func() {
		logger.Info().Str("addr", addr).Str("site", cfg.Site.Name).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info().Msg("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Error during shutdown")
	}
}

// buildRepository constructs the post store selected by the config. The
// returned cleanup releases the storage handle and is safe to call once.
func buildRepository(cfg *config.Config) (repository.PostRepository, func(), error) {
	switch cfg.Storage.Driver {
	case "memory":
		return repository.NewMemoryPostRepository(), func() {}, nil
	default:
		sqlite := db.NewSQLite(cfg.Storage.Path)
		if err := sqlite.InitDb(); err != nil {
			return nil, nil, err
		}
		database = sqlite
		cleanup := func() {
			if err := sqlite.Close(); err != nil {
				logger.Error().Err(err).Msg("Error closing database")
			}
		}
		return repository.NewDbPostRepository(sqlite, compression.ForName(cfg.Storage.Compression)), cleanup, nil
	}
}

func secureHeaders(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "deny")
		w.Header().Set("X-Content-Type-Options", "nosniff")

		h(w, r)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func logRequests(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		h(rec, r)

		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("Request")
	}
}
