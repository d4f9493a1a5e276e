package container

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/heenakousar16/beauty/internal/config"
	"github.com/heenakousar16/beauty/internal/services"
	"github.com/heenakousar16/beauty/internal/utils"
)

// Container wires every service the handlers need.
type Container struct {
	Config         *config.Config
	Redis          *redis.Client
	Generator      services.TextGenerator
	CatalogService *services.CatalogService
	Recommender    *services.RecommenderService
	Describer      *services.DescriberService
	Consultant     *services.ConsultantService
	SessionService *services.SessionService
	Transcriber    services.SpeechTranscriber
	Speech         services.SpeechSynthesizer
}

func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	var redisClient *redis.Client
	var store services.SessionStore

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		redisClient = redis.NewClient(opts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		store = services.NewRedisSessionStore(redisClient, cfg.SessionTTL)
	} else {
		utils.LogWarn(ctx, "REDIS_URL not set, sessions held in process memory")
		store = services.NewMemorySessionStore()
	}

	// A nil generator routes describe/respond through the deterministic
	// fallbacks instead of the Gemini API.
	var generator services.TextGenerator
	gemini, err := services.NewGeminiGenerator(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if gemini != nil {
		generator = gemini
	} else {
		utils.LogWarn(ctx, "GEMINI_API_KEY not set, using deterministic fallbacks")
	}

	return &Container{
		Config:         cfg,
		Redis:          redisClient,
		Generator:      generator,
		CatalogService: services.NewCatalogService(cfg),
		Recommender:    services.NewRecommenderService(),
		Describer:      services.NewDescriberService(cfg, generator),
		Consultant:     services.NewConsultantService(cfg, generator),
		SessionService: services.NewSessionService(store),
		Transcriber:    services.BrowserTranscriber{},
		Speech:         services.BrowserSynthesizer{},
	}, nil
}

// HealthCheck reports the state of each collaborator for the health endpoint.
func (c *Container) HealthCheck() map[string]string {
	health := map[string]string{
		"catalog":  "ok",
		"sessions": "memory",
	}

	if c.Redis != nil {
		health["sessions"] = "redis"
		if err := c.Redis.Ping(context.Background()).Err(); err != nil {
			health["sessions"] = "unavailable"
		}
	}

	if c.Generator != nil {
		health["generative"] = "configured"
	} else {
		health["generative"] = "fallback"
	}

	return health
}

func (c *Container) Close() {
	if c.Redis != nil {
		c.Redis.Close()
	}
}
