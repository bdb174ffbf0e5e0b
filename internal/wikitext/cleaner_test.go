package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_Links(t *testing.T) {
	assert.Equal(t, "See bar and Baz.", Clean("See [[Foo|bar]] and [[Baz]]."))
}

func TestClean_Templates(t *testing.T) {
	assert.Equal(t, "A B", Clean("A {{cite|x=1}} B"))
}

func TestClean_Refs(t *testing.T) {
	input := "Fact.<ref name=\"src\">Some source\nspanning lines</ref> More."
	assert.Equal(t, "Fact. More.", Clean(input))
}

func TestClean_Comments(t *testing.T) {
	assert.Equal(t, "before after", Clean("before <!-- hidden\nnote --> after"))
}

func TestClean_FileLinks(t *testing.T) {
	input := "Intro.\n\n[[File:Example.jpg|thumb|A\ncaption]]\n\nBody."
	out := Clean(input)
	assert.NotContains(t, out, "File:")
	assert.Contains(t, out, "Intro.")
	assert.Contains(t, out, "Body.")
}

func TestClean_BlankLineCollapse(t *testing.T) {
	assert.Equal(t, "a\n\nb", Clean("a\n\n\n\n\nb"))
}

func TestClean_SpaceCollapse(t *testing.T) {
	assert.Equal(t, "a b c", Clean("a    b  c"))
}

func TestClean_Trim(t *testing.T) {
	assert.Equal(t, "text", Clean("  \n text \n\n "))
}

func TestClean_Empty(t *testing.T) {
	assert.Equal(t, "", Clean(""))
}

func TestClean_MalformedInput(t *testing.T) {
	// 未闭合的标记不会报错，尽力清洗
	assert.NotPanics(t, func() {
		Clean("broken {{template and [[link without end")
	})
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"See [[Foo|bar]] and [[Baz]].",
		"A {{cite|x=1}} B",
		"para one\n\n\npara two   with  spaces",
		"Fact.<ref>src</ref> More.",
		"",
		"already clean text\n\nsecond paragraph",
	}

	for _, input := range inputs {
		once := Clean(input)
		assert.Equal(t, once, Clean(once), "input: %q", input)
	}
}
