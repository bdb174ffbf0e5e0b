package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wikivec/wikivec/internal/conf"
	"github.com/wikivec/wikivec/internal/pkg/database"
	"github.com/wikivec/wikivec/internal/pkg/logger"
	"github.com/wikivec/wikivec/internal/pkg/milvus"
	"github.com/wikivec/wikivec/internal/wiki/models"
	"github.com/wikivec/wikivec/internal/wiki/storage"
)

var (
	configFile = flag.String("config", "config.yaml", "config file path")
	force      = flag.Bool("force", false, "skip confirmation prompt")
)

// 清空索引：删除 Milvus 集合和 Postgres 的条目、分块表，再重建空表。
func main() {
	flag.Parse()

	config, err := conf.LoadConfig(*configFile)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	if !*force {
		fmt.Printf("This will DROP collection %q and all article/chunk tables in %q.\n",
			config.Ingest.Collection, config.Database.DBName)
		fmt.Print("Type 'yes' to continue: ")
		var answer string
		fmt.Scanln(&answer)
		if answer != "yes" {
			fmt.Println("aborted")
			os.Exit(1)
		}
	}

	log, err := logger.New(&config.Log)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	ctx := context.Background()

	db, err := database.New(&config.Database, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	milvusClient, err := milvus.New(ctx, &config.Milvus, log)
	if err != nil {
		log.Fatal("failed to connect to milvus", zap.Error(err))
	}
	defer milvusClient.Close(ctx)

	vectorStore := storage.NewMilvusStore(milvusClient, log)

	exists, err := vectorStore.CollectionExists(ctx, config.Ingest.Collection)
	if err != nil {
		log.Fatal("failed to check collection", zap.Error(err))
	}
	if exists {
		if err := vectorStore.DropCollection(ctx, config.Ingest.Collection); err != nil {
			log.Fatal("failed to drop collection", zap.Error(err))
		}
		log.Info("collection dropped", zap.String("collection", config.Ingest.Collection))
	}

	if err := models.DropTables(ctx, db); err != nil {
		log.Fatal("failed to drop tables", zap.Error(err))
	}
	log.Info("tables dropped")

	if err := models.MigrateWithLog(ctx, db, log.Logger); err != nil {
		log.Fatal("failed to recreate tables", zap.Error(err))
	}

	if err := vectorStore.CreateCollection(ctx, config.Ingest.Collection, config.Embedding.Dimensions); err != nil {
		log.Fatal("failed to recreate collection", zap.Error(err))
	}

	log.Info("index reset complete",
		zap.String("collection", config.Ingest.Collection),
		zap.Int("dimension", config.Embedding.Dimensions))
}
