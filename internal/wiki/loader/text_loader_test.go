package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextLoader_Load(t *testing.T) {
	l, err := NewTextLoader("Go (programming language)", "https://example.org/Go")
	require.NoError(t, err)

	var got []*RawArticle
	err = l.Load(t.Context(), strings.NewReader("Go is a language.\n\nIt has goroutines."), func(a *RawArticle) error {
		got = append(got, a)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "Go (programming language)", got[0].Title)
	assert.Equal(t, "https://example.org/Go", got[0].URL)
	assert.Contains(t, got[0].Text, "goroutines")
}

func TestNewTextLoader_RequiresTitle(t *testing.T) {
	_, err := NewTextLoader("", "")
	assert.Error(t, err)
}
