package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/waste3d/mindwell-api/config"
	"github.com/waste3d/mindwell-api/internal/application/usecase"
	"github.com/waste3d/mindwell-api/internal/gamification"
	"github.com/waste3d/mindwell-api/internal/infrastructure/cache"
	"github.com/waste3d/mindwell-api/internal/infrastructure/metrics"
	"github.com/waste3d/mindwell-api/internal/infrastructure/repository"
	"github.com/waste3d/mindwell-api/internal/infrastructure/security"
	"github.com/waste3d/mindwell-api/internal/logger"
	"github.com/waste3d/mindwell-api/internal/middleware"
	grpc_server "github.com/waste3d/mindwell-api/internal/transport/grpc"
	handlers "github.com/waste3d/mindwell-api/internal/transport/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.New("info", "json").Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if !log.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := repository.Open(cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Infof("Connected to Redis at %s", cfg.RedisAddr)

	// Репозитории
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	moodLogRepo := repository.NewMoodLogRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	postRepo := repository.NewPostRepository(db)

	tokenCache := cache.NewTokenCache(rdb)
	statsCache := cache.NewStatsCache(rdb, cfg.StatsCacheTTL)
	hasher := security.NewPasswordHasher()
	tokenManager := security.NewTokenManager(cfg.AccessSecret, cfg.RefreshSecret)
	m := metrics.New()

	// Юзкейсы
	authUC := usecase.NewAuthUseCase(userRepo, profileRepo, tokenCache, hasher, tokenManager, log)
	profileUC := usecase.NewProfileUseCase(userRepo, profileRepo)
	engine := gamification.NewUnlockEngine(achievementRepo, gamification.DefaultCatalog)
	gamificationUC := usecase.NewGamificationUseCase(profileRepo, achievementRepo, engine, m, log, usecase.GamificationConfig{
		DefaultXP: cfg.DefaultActionXP,
		MaxXP:     cfg.MaxActionXP,
	})
	trackingUC := usecase.NewTrackingUseCase(moodLogRepo, reminderRepo, statsCache, log)
	communityUC := usecase.NewCommunityUseCase(postRepo, userRepo)

	router := handlers.NewRouter(handlers.RouterConfig{
		AllowedOrigins: splitOrigins(cfg.AllowedOrigins),
		SlowThreshold:  cfg.SlowRequestThreshold,
		Log:            log,
		Metrics:        m,
		Tokens:         tokenManager,
		Limiter:        middleware.NewRateLimiter(rdb),
		ActionLimiter:  middleware.NewActionLimiter(cfg.ActionRatePerSec, cfg.ActionBurst),
	}, handlers.Handlers{
		Auth:         handlers.NewAuthHandler(authUC),
		Profile:      handlers.NewProfileHandler(profileUC),
		Gamification: handlers.NewGamificationHandler(gamificationUC),
		Tracking:     handlers.NewTrackingHandler(trackingUC),
		Community:    handlers.NewCommunityHandler(communityUC),
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	grpcServer, healthServer := grpc_server.NewServer(log, grpc_server.NewProgressServer(gamificationUC, trackingUC))
	lis, err := net.Listen("tcp", cfg.GRPCPort)
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	go func() {
		log.Infof("HTTP API running on port %s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to run HTTP server: %v", err)
		}
	}()

	go func() {
		log.Infof("Progress gRPC service running on port %s", cfg.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Info("Shutting down servers...")
	healthServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.WithError(err).Error("HTTP shutdown failed")
	}
	grpcServer.GracefulStop()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = rdb.Close()
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
