package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"spidergraph/internal/config"
	"spidergraph/internal/ethos"
	apihttp "spidergraph/internal/http"
	"spidergraph/internal/llm"
	"spidergraph/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	ethosClient := ethos.NewClient(cfg.EthosV1BaseURL, cfg.EthosV2BaseURL, logger)
	llmClient := llm.NewHTTPClient(cfg.OpenRouterBaseURL, cfg.OpenRouterAPIKey, cfg.SiteURL, cfg.SiteName, logger)

	analysisCfg := service.DefaultAnalysisConfig()
	analysisSvc := service.NewAnalysisService(llmClient, analysisCfg, logger)

	// Cache en memoria por defecto; redis si esta configurado y responde.
	cache := service.NewMemoryAnalysisCache()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			cache = service.NewRedisAnalysisCache(redisClient)
		}
		cancel()
	}

	if cfg.OpenRouterAPIKey == "" {
		logger.Warn("openrouter api key not configured; analyze requests will fail")
	}

	profileHandler := apihttp.NewProfileHandler(logger, ethosClient, analysisSvc, cache)
	previewHandler := apihttp.NewPreviewHandler(logger, ethosClient, cache, analysisCfg.CategoryNames())
	router := apihttp.NewRouter(logger, profileHandler, previewHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
