package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikivec/wikivec/internal/wiki/types"
)

func TestFactory_CreateChunker(t *testing.T) {
	f := NewFactory()

	chk, err := f.CreateChunker(&CreateChunkerConfig{
		Strategy:     types.ChunkStrategyParagraph,
		TargetTokens: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, 100, chk.ChunkSize())
	assert.Equal(t, 0, chk.ChunkOverlap())
}

func TestFactory_CreateChunker_DefaultStrategy(t *testing.T) {
	chk, err := NewFactory().CreateChunker(&CreateChunkerConfig{TargetTokens: 50})
	require.NoError(t, err)
	assert.IsType(t, &ParagraphChunker{}, chk)
}

func TestFactory_CreateChunker_Invalid(t *testing.T) {
	f := NewFactory()

	_, err := f.CreateChunker(nil)
	assert.Error(t, err)

	_, err = f.CreateChunker(&CreateChunkerConfig{Strategy: "sentence", TargetTokens: 50})
	assert.Error(t, err)

	_, err = f.CreateChunker(&CreateChunkerConfig{Strategy: types.ChunkStrategyParagraph, TargetTokens: 0})
	assert.Error(t, err)
}
