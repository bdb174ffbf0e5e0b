package main

import (
	"context"
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/wikivec/wikivec/internal/conf"
	"github.com/wikivec/wikivec/internal/pkg/database"
	"github.com/wikivec/wikivec/internal/pkg/logger"
	"github.com/wikivec/wikivec/internal/pkg/milvus"
	"github.com/wikivec/wikivec/internal/pkg/redis"
	"github.com/wikivec/wikivec/internal/pkg/workerpool"
	"github.com/wikivec/wikivec/internal/wiki/chunker"
	"github.com/wikivec/wikivec/internal/wiki/embedding"
	"github.com/wikivec/wikivec/internal/wiki/loader"
	"github.com/wikivec/wikivec/internal/wiki/models"
	"github.com/wikivec/wikivec/internal/wiki/pipeline"
	"github.com/wikivec/wikivec/internal/wiki/repository"
	"github.com/wikivec/wikivec/internal/wiki/storage"
	"github.com/wikivec/wikivec/internal/wiki/types"
)

var (
	configFile = flag.String("config", "config.yaml", "config file path")
	corpusFile = flag.String("corpus", "", "JSONL corpus file path")
)

func main() {
	flag.Parse()

	if *corpusFile == "" {
		panic("corpus file is required, use -corpus")
	}

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

	ctx := context.Background()

	db, err := database.New(&config.Database, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := models.MigrateWithLog(ctx, db, log.Logger); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

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

	// 集合不存在时按配置的向量维度创建
	exists, err := vectorStore.CollectionExists(ctx, config.Ingest.Collection)
	if err != nil {
		log.Fatal("failed to check collection", zap.Error(err))
	}
	if !exists {
		if err := vectorStore.CreateCollection(ctx, config.Ingest.Collection, embedder.Dimension()); err != nil {
			log.Fatal("failed to create collection", zap.Error(err))
		}
		log.Info("collection created",
			zap.String("collection", config.Ingest.Collection),
			zap.Int("dimension", embedder.Dimension()))
	}

	chk, err := chunker.NewFactory().CreateChunker(&chunker.CreateChunkerConfig{
		Strategy:     types.ChunkStrategy(config.Chunking.Strategy),
		TargetTokens: config.Chunking.TargetTokens,
	})
	if err != nil {
		log.Fatal("failed to create chunker", zap.Error(err))
	}

	counter, err := chunker.NewTokenCounter("")
	if err != nil {
		log.Fatal("failed to create token counter", zap.Error(err))
	}

	processor, err := pipeline.NewProcessor(
		repository.NewArticleRepository(db),
		repository.NewChunkRepository(db),
		chk,
		counter,
		embedder,
		vectorStore,
		&pipeline.ProcessorConfig{
			Collection: config.Ingest.Collection,
			BatchSize:  config.Embedding.BatchSize,
		},
		log,
	)
	if err != nil {
		log.Fatal("failed to create processor", zap.Error(err))
	}

	pool, err := workerpool.New(&config.Ingest.Pool, log.Logger)
	if err != nil {
		log.Fatal("failed to create worker pool", zap.Error(err))
	}
	defer pool.Shutdown()

	f, err := os.Open(*corpusFile)
	if err != nil {
		log.Fatal("failed to open corpus file", zap.Error(err))
	}
	defer f.Close()

	ingestor := pipeline.NewIngestor(loader.NewJSONLLoader(), processor, pool, log)

	stats, err := ingestor.Run(ctx, f)
	if err != nil {
		log.Fatal("ingest failed",
			zap.Int64("total", stats.Total),
			zap.Int64("succeeded", stats.Succeeded),
			zap.Int64("failed", stats.Failed),
			zap.Error(err))
	}

	if stats.Failed > 0 {
		log.Warn("ingest finished with failures",
			zap.Int64("failed", stats.Failed))
		os.Exit(1)
	}
}
