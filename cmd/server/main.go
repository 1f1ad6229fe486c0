package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"thrgacha/config"
	"thrgacha/internal/app"
	"thrgacha/internal/cache"
	"thrgacha/internal/gacha"
	"thrgacha/internal/repository"
	"thrgacha/internal/service"
	"thrgacha/internal/transport/rest"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg := config.Load()
	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("mongodb connect", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		logger.Fatal("mongodb ping", zap.Error(err))
	}
	logger.Info("connected to MongoDB", zap.String("db", cfg.MongoDB))

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Fatal("redis ping", zap.Error(err))
	}
	logger.Info("connected to Redis", zap.String("addr", cfg.RedisAddr))

	// Repositories
	roomRepo := repository.NewRoomRepo(db)
	questionRepo := repository.NewQuestionRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	spinRepo := repository.NewSpinRepo(db)
	entryRepo := repository.NewEntryRepo(db)
	participantRepo := repository.NewParticipantRepo(db)

	// Caches
	earningsCache := cache.NewEarningsCache(rdb)
	statsCache := cache.NewStatsCache(rdb, cfg.StatsTTL)

	// Services
	selector := gacha.New(&gacha.Config{Seed: cfg.SelectorSeed})
	tokenSvc := service.NewTokenService(tokenRepo)
	roomSvc := service.NewRoomService(roomRepo)
	questionSvc := service.NewQuestionService(questionRepo, roomRepo, tokenSvc)
	entrySvc := service.NewEntryService(entryRepo, participantRepo, roomRepo, cfg.AppBaseURL)
	spinSvc := service.NewSpinService(roomRepo, spinRepo, tokenSvc, selector, earningsCache, statsCache, logger)
	statsSvc := service.NewStatsService(roomRepo, questionRepo, entryRepo, tokenRepo, spinRepo, statsCache, earningsCache, logger)

	router := rest.NewRouter(&app.App{
		RoomService:     roomSvc,
		QuestionService: questionSvc,
		TokenService:    tokenSvc,
		EntryService:    entrySvc,
		SpinService:     spinSvc,
		StatsService:    statsSvc,
	}, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen and serve", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
