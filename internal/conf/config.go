package conf

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/wikivec/wikivec/internal/pkg/database"
	"github.com/wikivec/wikivec/internal/pkg/logger"
	"github.com/wikivec/wikivec/internal/pkg/milvus"
	"github.com/wikivec/wikivec/internal/pkg/redis"
	"github.com/wikivec/wikivec/internal/pkg/workerpool"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  database.Config `mapstructure:"database"`
	Redis     redis.Config    `mapstructure:"redis"`
	Milvus    milvus.Config   `mapstructure:"milvus"`
	Embedding EmbeddingConfig `mapstructure:"embedding"`
	Chunking  ChunkingConfig  `mapstructure:"chunking"`
	Ingest    IngestConfig    `mapstructure:"ingest"`
	Search    SearchConfig    `mapstructure:"search"`
	Log       logger.Config   `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type EmbeddingConfig struct {
	Provider   string `mapstructure:"provider"`
	APIKey     string `mapstructure:"api_key"`
	BaseURL    string `mapstructure:"base_url"`
	Model      string `mapstructure:"model"`
	Dimensions int    `mapstructure:"dimensions"`
	BatchSize  int    `mapstructure:"batch_size"`
	CacheTTL   int    `mapstructure:"cache_ttl"` // 秒，0 表示禁用缓存
}

type ChunkingConfig struct {
	Strategy     string `mapstructure:"strategy"`
	TargetTokens int    `mapstructure:"target_tokens"`
}

type IngestConfig struct {
	Collection string            `mapstructure:"collection"`
	Pool       workerpool.Config `mapstructure:"pool"`
	BatchSize  int               `mapstructure:"batch_size"`
}

type SearchConfig struct {
	TopK     int     `mapstructure:"top_k"`
	MinScore float64 `mapstructure:"min_score"`
}

func LoadConfig(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.dbname", "wikivec")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.timezone", "UTC")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.log_level", "warn")

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.pool_size", 10)

	viper.SetDefault("milvus.address", "localhost:19530")

	viper.SetDefault("embedding.provider", "openai")
	viper.SetDefault("embedding.model", "text-embedding-3-small")
	viper.SetDefault("embedding.dimensions", 1536)
	viper.SetDefault("embedding.batch_size", 64)
	viper.SetDefault("embedding.cache_ttl", 86400)

	viper.SetDefault("chunking.strategy", "paragraph")
	viper.SetDefault("chunking.target_tokens", 380)

	viper.SetDefault("ingest.collection", "wiki_chunks")
	viper.SetDefault("ingest.pool.workers", 8)
	viper.SetDefault("ingest.batch_size", 100)

	viper.SetDefault("search.top_k", 10)
	viper.SetDefault("search.min_score", 0.0)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
	viper.SetDefault("log.output", "console")
}

// Validate 校验配置中必须显式提供的字段
func (c *Config) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("database config: %w", err)
	}
	if err := c.Redis.Validate(); err != nil {
		return fmt.Errorf("redis config: %w", err)
	}
	if err := c.Milvus.Validate(); err != nil {
		return fmt.Errorf("milvus config: %w", err)
	}
	if c.Chunking.TargetTokens <= 0 {
		return fmt.Errorf("chunking config: target_tokens must be positive, got %d", c.Chunking.TargetTokens)
	}
	if c.Ingest.Collection == "" {
		return fmt.Errorf("ingest config: collection is required")
	}
	return nil
}
