package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/api"
	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/service"
	mongodb "github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/infrastructure/db/redis"
	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/infrastructure/queue"
	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/pkg/config"
	"github.com/refugiartstudio-blip/refugiart-bazar-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Refugiart Bazar API
// @version      1.0.0
// @description  A social marketplace platform for independent artists
// @BasePath     /
func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Stores ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	artworkRepo := mongodb.NewArtworkRepository(db)
	likeRepo := mongodb.NewLikeRepository(db)
	followRepo := mongodb.NewFollowRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	purchaseRepo := mongodb.NewPurchaseRepository(db)

	for name, idx := range map[string]interface {
		EnsureIndexes(ctx context.Context) error
	}{
		"users":     userRepo,
		"artworks":  artworkRepo,
		"likes":     likeRepo,
		"follows":   followRepo,
		"comments":  commentRepo,
		"purchases": purchaseRepo,
	} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	// --- Infrastructure ---
	txRunner := mongodb.NewTxRunner(client)
	locks := redisdb.NewKeyMutex(rdb, 0)

	viewCounter := queue.NewViewCounter(cfg.ViewWorkers, artworkRepo, log)
	viewCounter.Start(ctx)

	// --- Services ---
	svcs := api.Services{
		Users:     service.NewUserService(userRepo, log),
		Artworks:  service.NewArtworkService(artworkRepo, userRepo, viewCounter, log),
		Social:    service.NewSocialService(likeRepo, followRepo, userRepo, artworkRepo, locks, log),
		Comments:  service.NewCommentService(commentRepo, userRepo, log),
		Purchases: service.NewPurchaseService(purchaseRepo, artworkRepo, userRepo, txRunner, locks, log),
	}

	e := api.NewRouter(db, svcs, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
