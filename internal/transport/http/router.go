package handlers

import (
	"net/http"
	"time"

	"github.com/waste3d/mindwell-api/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type MetricsProvider interface {
	middleware.HTTPRecorder
	Handler() http.Handler
}

type RouterConfig struct {
	AllowedOrigins []string
	SlowThreshold  time.Duration

	Log     *logrus.Logger
	Metrics MetricsProvider
	Tokens  middleware.AccessTokenValidator
	// Limiter may be nil, then auth endpoints are not throttled.
	Limiter       *middleware.RateLimiter
	ActionLimiter *middleware.ActionLimiter
}

type Handlers struct {
	Auth         *AuthHandler
	Profile      *ProfileHandler
	Gamification *GamificationHandler
	Tracking     *TrackingHandler
	Community    *CommunityHandler
}

func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(cfg.Log, cfg.SlowThreshold))
	r.Use(middleware.Metrics(cfg.Metrics))

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
		corsCfg.AllowCredentials = true
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))

	limit := func(scope string, n int, window time.Duration, keys ...middleware.KeyFunc) gin.HandlerFunc {
		if cfg.Limiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return cfg.Limiter.Limit(scope, n, window, keys...)
	}

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", limit("register", 10, time.Hour, middleware.ByClientIP), h.Auth.Register)
			// Перебор пароля одного аккаунта с разных адресов упирается в лимит по имени
			auth.POST("/login", limit("login", 5, time.Minute, middleware.ByClientIP, middleware.ByJSONField("username")), h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
			auth.POST("/logout", h.Auth.Logout)
		}

		private := api.Group("")
		private.Use(middleware.AuthMiddleware(cfg.Tokens))
		{
			private.GET("/profile", h.Profile.GetProfile)
			private.PATCH("/profile", h.Profile.UpdateProfile)
			private.PATCH("/account", h.Profile.UpdateAccount)

			actions := []gin.HandlerFunc{h.Gamification.RecordAction}
			if cfg.ActionLimiter != nil {
				actions = append([]gin.HandlerFunc{cfg.ActionLimiter.Handler()}, actions...)
			}
			private.POST("/gamification/actions", actions...)
			private.GET("/gamification/achievements", h.Gamification.ListAchievements)

			tracking := private.Group("/tracking")
			{
				tracking.GET("/stats", h.Tracking.Stats)
				tracking.GET("/mood-logs", h.Tracking.ListMoodLogs)
				tracking.POST("/mood-logs", h.Tracking.CreateMoodLog)
				tracking.GET("/mood-logs/:id", h.Tracking.GetMoodLog)
				tracking.DELETE("/mood-logs/:id", h.Tracking.DeleteMoodLog)
				tracking.GET("/reminders", h.Tracking.ListReminders)
				tracking.POST("/reminders", h.Tracking.CreateReminder)
				tracking.GET("/reminders/:id", h.Tracking.GetReminder)
				tracking.PATCH("/reminders/:id", h.Tracking.UpdateReminder)
				tracking.DELETE("/reminders/:id", h.Tracking.DeleteReminder)
			}

			private.GET("/community/feed", h.Community.Feed)
			private.POST("/community/feed", h.Community.Publish)
		}
	}

	return r
}
