package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikivec/wikivec/internal/conf"
	"github.com/wikivec/wikivec/internal/wiki/types"
)

// fakeEmbedder 返回固定向量并记录调用次数
type fakeEmbedder struct {
	calls int
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	f.calls++
	return []float32{0.1, 0.2}, nil
}

func (f *fakeEmbedder) BatchEmbed(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls++
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{0.1, 0.2}
	}
	return out, nil
}

func (f *fakeEmbedder) Dimension() int                      { return 2 }
func (f *fakeEmbedder) Provider() types.EmbeddingProvider   { return types.EmbeddingProviderOpenAI }
func (f *fakeEmbedder) Model() string                       { return "fake-model" }

func TestCacheEmbedder_NilCachePassesThrough(t *testing.T) {
	fake := &fakeEmbedder{}
	e := NewCacheEmbedder(fake, nil, nil, nil)

	vec, err := e.Embed(t.Context(), "hello")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2}, vec)
	assert.Equal(t, 1, fake.calls)

	vecs, err := e.BatchEmbed(t.Context(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Len(t, vecs, 2)
}

func TestCacheEmbedder_DelegatesMetadata(t *testing.T) {
	e := NewCacheEmbedder(&fakeEmbedder{}, nil, nil, nil)
	assert.Equal(t, 2, e.Dimension())
	assert.Equal(t, "fake-model", e.Model())
	assert.Equal(t, types.EmbeddingProviderOpenAI, e.Provider())
}

func TestCacheEmbedder_BatchEmbed_Empty(t *testing.T) {
	e := NewCacheEmbedder(&fakeEmbedder{}, nil, nil, nil)
	vecs, err := e.BatchEmbed(t.Context(), nil)
	require.NoError(t, err)
	assert.Empty(t, vecs)
}

func TestCacheEmbedder_CacheKeyStable(t *testing.T) {
	e := NewCacheEmbedder(&fakeEmbedder{}, nil, nil, nil)
	assert.Equal(t, e.cacheKey("text"), e.cacheKey("text"))
	assert.NotEqual(t, e.cacheKey("text"), e.cacheKey("other"))
}

func TestNewEmbedder_InvalidProvider(t *testing.T) {
	_, err := NewEmbedder(&conf.EmbeddingConfig{Provider: "huggingface"}, nil, nil)
	assert.Error(t, err)
}

func TestNewOpenAIEmbedder_RequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIEmbedder(&OpenAIEmbedderConfig{}, nil)
	assert.Error(t, err)
}
