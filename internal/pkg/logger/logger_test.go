package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultConfig(t *testing.T) {
	log, err := New(nil)
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.Equal(t, "info", log.Config().Level)
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "verbose"

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNew_InvalidFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "xml"

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default is valid", func(c *Config) {}, false},
		{"console format", func(c *Config) { c.Format = "console" }, false},
		{"bad output", func(c *Config) { c.Output = "syslog" }, true},
		{"file output without filename", func(c *Config) {
			c.Output = "file"
			c.File.Filename = ""
		}, true},
		{"file output with zero maxsize", func(c *Config) {
			c.Output = "file"
			c.File.MaxSize = 0
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLogger_Named(t *testing.T) {
	log, err := New(nil)
	require.NoError(t, err)

	named := log.Named("ingest")
	assert.NotNil(t, named)
	assert.Equal(t, log.Config(), named.Config())
}

func TestGlobalLogger(t *testing.T) {
	err := InitGlobal(DefaultConfig())
	require.NoError(t, err)
	assert.NotNil(t, L())
}

func TestContextFields(t *testing.T) {
	ctx := WithRequestID(t.Context(), "req-123")
	assert.Equal(t, "req-123", GetRequestID(ctx))

	ctx = WithArticleID(ctx, "article-7")
	assert.Equal(t, "article-7", GetArticleID(ctx))

	log := FromContext(ctx)
	assert.NotNil(t, log)
}
