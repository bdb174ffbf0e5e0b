package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/wikivec/wikivec/internal/conf"
	"github.com/wikivec/wikivec/internal/pkg/database"
	"github.com/wikivec/wikivec/internal/pkg/logger"
	"github.com/wikivec/wikivec/internal/pkg/milvus"
	"github.com/wikivec/wikivec/internal/pkg/redis"
	"github.com/wikivec/wikivec/internal/server"
	"github.com/wikivec/wikivec/internal/wiki/embedding"
	"github.com/wikivec/wikivec/internal/wiki/repository"
	"github.com/wikivec/wikivec/internal/wiki/service"
	"github.com/wikivec/wikivec/internal/wiki/storage"
)

var (
	configFile = flag.String("config", "config.yaml", "config file path")
)

func main() {
	flag.Parse()

	config, err := conf.LoadConfig(*configFile)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(&config.Log)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	if err := logger.InitGlobal(&config.Log); err != nil {
		log.Fatal("failed to initialize global logger", zap.Error(err))
	}

	log.Info("config loaded successfully")

	ctx := context.Background()

	db, err := database.New(&config.Database, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := redis.New(&config.Redis, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	milvusClient, err := milvus.New(ctx, &config.Milvus, log)
	if err != nil {
		log.Fatal("failed to connect to milvus", zap.Error(err))
	}
	defer milvusClient.Close(ctx)

	embedder, err := embedding.NewEmbedder(&config.Embedding, redisClient, log)
	if err != nil {
		log.Fatal("failed to create embedder", zap.Error(err))
	}

	vectorStore := storage.NewMilvusStore(milvusClient, log)
	chunkRepo := repository.NewChunkRepository(db)

	searchService, err := service.NewSearchService(embedder, vectorStore, chunkRepo,
		&service.SearchConfig{
			Collection: config.Ingest.Collection,
			TopK:       config.Search.TopK,
			MinScore:   float32(config.Search.MinScore),
		}, log)
	if err != nil {
		log.Fatal("failed to create search service", zap.Error(err))
	}

	httpServer := server.NewHTTPServer(config, log, searchService)

	go func() {
		if err := httpServer.Start(); err != nil {
			log.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	log.Info("server started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		log.Error("HTTP server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
