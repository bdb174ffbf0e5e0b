package redis

import (
	"fmt"
	"time"
)

// Config Redis 配置
type Config struct {
	Addr         string        `mapstructure:"addr" json:"addr"`
	Password     string        `mapstructure:"password" json:"password"`
	DB           int           `mapstructure:"db" json:"db"`
	PoolSize     int           `mapstructure:"pool_size" json:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns" json:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout" json:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" json:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" json:"write_timeout"`
	MaxRetries   int           `mapstructure:"max_retries" json:"max_retries"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Addr:         "localhost:6379",
		Password:     "",
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		MaxRetries:   3,
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("redis addr is required")
	}
	if c.DB < 0 || c.DB > 15 {
		return fmt.Errorf("redis db must be in [0, 15], got %d", c.DB)
	}
	if c.PoolSize < 0 {
		return fmt.Errorf("pool_size must be non-negative")
	}
	return nil
}
