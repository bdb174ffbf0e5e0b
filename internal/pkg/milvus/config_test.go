package milvus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{
			name:    "valid minimal",
			cfg:     &Config{Address: "localhost:19530"},
			wantErr: false,
		},
		{
			name:    "missing address",
			cfg:     &Config{},
			wantErr: true,
		},
		{
			name:    "negative dial timeout",
			cfg:     &Config{Address: "localhost:19530", DialTimeout: -time.Second},
			wantErr: true,
		},
		{
			name:    "negative max retries",
			cfg:     &Config{Address: "localhost:19530", MaxRetries: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_SetDefaults(t *testing.T) {
	cfg := &Config{Address: "localhost:19530"}
	cfg.SetDefaults()

	assert.Equal(t, "default", cfg.Database)
	assert.Equal(t, 10*time.Second, cfg.DialTimeout)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, DefaultRetries, cfg.MaxRetries)
	assert.Equal(t, DefaultRetryDelay, cfg.RetryDelay)
}

func TestConfig_String_HidesPassword(t *testing.T) {
	cfg := &Config{Address: "localhost:19530", Username: "root", Password: "secret"}
	s := cfg.String()
	assert.NotContains(t, s, "secret")
	assert.Contains(t, s, "***")
}

func TestConfig_Clone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Address = "other:19530"
	assert.Equal(t, "localhost:19530", cfg.Address)

	var nilCfg *Config
	assert.Nil(t, nilCfg.Clone())
}
