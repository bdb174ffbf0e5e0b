package milvus

import (
	"errors"
	"fmt"
	"time"
)

// Config Milvus 客户端配置
type Config struct {
	Address  string `mapstructure:"address" json:"address"`
	Username string `mapstructure:"username" json:"username"`
	Password string `mapstructure:"password" json:"password"`
	Database string `mapstructure:"database" json:"database"`

	DialTimeout    time.Duration `mapstructure:"dial_timeout" json:"dial_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" json:"request_timeout"`

	MaxRetries int           `mapstructure:"max_retries" json:"max_retries"`
	RetryDelay time.Duration `mapstructure:"retry_delay" json:"retry_delay"`
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Address == "" {
		return errors.New("milvus: address is required")
	}
	if c.DialTimeout < 0 {
		return errors.New("milvus: dial timeout must be non-negative")
	}
	if c.RequestTimeout < 0 {
		return errors.New("milvus: request timeout must be non-negative")
	}
	if c.MaxRetries < 0 {
		return errors.New("milvus: max retries must be non-negative")
	}
	if c.RetryDelay < 0 {
		return errors.New("milvus: retry delay must be non-negative")
	}
	return nil
}

// SetDefaults 填充未指定字段的默认值
func (c *Config) SetDefaults() {
	if c.Database == "" {
		c.Database = "default"
	}
	if c.DialTimeout == 0 {
		c.DialTimeout = 10 * time.Second
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 30 * time.Second
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = DefaultRetries
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = DefaultRetryDelay
	}
}

// String 返回配置的字符串表示（隐藏敏感信息）
func (c *Config) String() string {
	password := ""
	if c.Password != "" {
		password = "***"
	}
	return fmt.Sprintf("Config{Address: %s, Username: %s, Password: %s, Database: %s}",
		c.Address, c.Username, password, c.Database)
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Address:        "localhost:19530",
		Database:       "default",
		DialTimeout:    10 * time.Second,
		RequestTimeout: 30 * time.Second,
		MaxRetries:     DefaultRetries,
		RetryDelay:     DefaultRetryDelay,
	}
}

// Clone 创建配置的副本
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
