package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/goalfield/field-scheduler/internal/config"
	dbpkg "github.com/goalfield/field-scheduler/internal/db"
	"github.com/goalfield/field-scheduler/internal/logging"
	"github.com/goalfield/field-scheduler/internal/metrics"
	"github.com/goalfield/field-scheduler/internal/middleware"
	"github.com/goalfield/field-scheduler/internal/realtime"
	"github.com/goalfield/field-scheduler/internal/routes"
	"github.com/goalfield/field-scheduler/internal/storage"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	metrics.Register()

	db := dbpkg.NewDB(cfg)

	hub := realtime.NewHub(log)

	var events realtime.Broadcaster = hub
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid REDIS_URL")
		}
		events = realtime.NewRedisBridge(redis.NewClient(opt), realtime.DefaultChannel, hub, log)
		log.Info().Msg("booking events fan out through redis")
	}

	var media storage.MediaStore = storage.Discard{}
	if cfg.S3Bucket != "" {
		media = storage.NewS3Store(cfg, log)
	} else {
		log.Warn().Msg("no S3 bucket configured, service images disabled")
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log, events, hub, media)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
