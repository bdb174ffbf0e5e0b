package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikivec/wikivec/internal/wiki/chunker"
	"github.com/wikivec/wikivec/internal/wiki/loader"
	"github.com/wikivec/wikivec/internal/wiki/models"
	"github.com/wikivec/wikivec/internal/wiki/storage"
	"github.com/wikivec/wikivec/internal/wiki/types"
)

type fakeArticleRepo struct {
	byTitle  map[string]*models.Article
	statuses []types.ArticleStatus
	stats    [2]int
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{byTitle: make(map[string]*models.Article)}
}

func (r *fakeArticleRepo) Create(_ context.Context, a *models.Article) error {
	if _, ok := r.byTitle[a.Title]; ok {
		return errors.New("duplicate key value violates unique constraint")
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.byTitle[a.Title] = a
	return nil
}

func (r *fakeArticleRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Article, error) {
	for _, a := range r.byTitle {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeArticleRepo) GetByTitle(_ context.Context, title string) (*models.Article, error) {
	a, ok := r.byTitle[title]
	if !ok {
		return nil, errors.New("record not found")
	}
	return a, nil
}

func (r *fakeArticleRepo) List(_ context.Context, _, _ int) ([]*models.Article, int64, error) {
	return nil, 0, nil
}

func (r *fakeArticleRepo) UpdateStatus(_ context.Context, id uuid.UUID, status types.ArticleStatus, errMsg string) error {
	r.statuses = append(r.statuses, status)
	for _, a := range r.byTitle {
		if a.ID == id {
			a.Status = status.String()
			a.ErrorMessage = errMsg
		}
	}
	return nil
}

func (r *fakeArticleRepo) UpdateStats(_ context.Context, _ uuid.UUID, chunkCount, tokenCount int) error {
	r.stats = [2]int{chunkCount, tokenCount}
	return nil
}

func (r *fakeArticleRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeChunkRepo struct {
	created []*models.Chunk
}

func (r *fakeChunkRepo) Create(_ context.Context, c *models.Chunk) error {
	r.created = append(r.created, c)
	return nil
}

func (r *fakeChunkRepo) BatchCreate(_ context.Context, chunks []*models.Chunk) error {
	r.created = append(r.created, chunks...)
	return nil
}

func (r *fakeChunkRepo) GetByID(_ context.Context, _ uuid.UUID) (*models.Chunk, error) {
	return nil, errors.New("record not found")
}

func (r *fakeChunkRepo) GetByArticleID(_ context.Context, articleID uuid.UUID, _, _ int) ([]*models.Chunk, int64, error) {
	var out []*models.Chunk
	for _, c := range r.created {
		if c.ArticleID == articleID {
			out = append(out, c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeChunkRepo) DeleteByArticleID(_ context.Context, articleID uuid.UUID) error {
	var kept []*models.Chunk
	for _, c := range r.created {
		if c.ArticleID != articleID {
			kept = append(kept, c)
		}
	}
	r.created = kept
	return nil
}

func (r *fakeChunkRepo) BatchGetByMilvusIDs(_ context.Context, milvusIDs []string) ([]*models.Chunk, error) {
	var out []*models.Chunk
	for _, id := range milvusIDs {
		for _, c := range r.created {
			if c.MilvusID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

type fakeEmbedder struct {
	calls int
	fail  bool
}

func (e *fakeEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return []float32{0.1, 0.2}, nil
}

func (e *fakeEmbedder) BatchEmbed(_ context.Context, texts []string) ([][]float32, error) {
	e.calls++
	if e.fail {
		return nil, errors.New("embedding service unavailable")
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{0.1, 0.2}
	}
	return out, nil
}

func (e *fakeEmbedder) Dimension() int                    { return 2 }
func (e *fakeEmbedder) Provider() types.EmbeddingProvider { return types.EmbeddingProviderOpenAI }
func (e *fakeEmbedder) Model() string                     { return "test-model" }

type fakeVectorStore struct {
	inserted []*storage.VectorData
	deleted  []string
}

func (s *fakeVectorStore) CreateCollection(_ context.Context, _ string, _ int) error { return nil }
func (s *fakeVectorStore) DropCollection(_ context.Context, _ string) error          { return nil }
func (s *fakeVectorStore) CollectionExists(_ context.Context, _ string) (bool, error) {
	return true, nil
}

func (s *fakeVectorStore) BatchInsert(_ context.Context, req *storage.BatchInsertVectorRequest) error {
	s.inserted = append(s.inserted, req.Vectors...)
	return nil
}

func (s *fakeVectorStore) Delete(_ context.Context, _ string, ids []string) error {
	s.deleted = append(s.deleted, ids...)
	return nil
}

func (s *fakeVectorStore) Search(_ context.Context, _ *storage.SearchVectorRequest) ([]*storage.SearchResult, error) {
	return nil, nil
}

type wordCounter struct{}

func (wordCounter) Count(text string) int { return len(strings.Fields(text)) }

func newTestProcessor(t *testing.T, articles *fakeArticleRepo, chunks *fakeChunkRepo, emb *fakeEmbedder, store *fakeVectorStore) *Processor {
	t.Helper()

	chk, err := chunker.NewParagraphChunker(10)
	require.NoError(t, err)

	p, err := NewProcessor(articles, chunks, chk, wordCounter{}, emb, store,
		&ProcessorConfig{Collection: "wiki_chunks", BatchSize: 2}, nil)
	require.NoError(t, err)
	return p
}

func TestProcessor_Process(t *testing.T) {
	articles := newFakeArticleRepo()
	chunks := &fakeChunkRepo{}
	emb := &fakeEmbedder{}
	store := &fakeVectorStore{}
	p := newTestProcessor(t, articles, chunks, emb, store)

	raw := &loader.RawArticle{
		Title: "Go (programming language)",
		Text:  "Go is a language.\n\nIt was made at {{citation needed}} [[Google]].\n\nIt compiles fast and has goroutines and channels built in for concurrency work.",
	}

	err := p.Process(t.Context(), raw)
	require.NoError(t, err)

	article, err := articles.GetByTitle(t.Context(), raw.Title)
	require.NoError(t, err)
	assert.True(t, article.IsCompleted())

	require.NotEmpty(t, chunks.created)
	assert.Len(t, store.inserted, len(chunks.created))

	// Milvus 主键与分块记录一一对应
	for i, c := range chunks.created {
		assert.Equal(t, c.ID.String(), c.MilvusID)
		assert.Equal(t, c.MilvusID, store.inserted[i].ID)
		assert.Equal(t, i, c.ChunkIndex)
		assert.NotContains(t, c.Content, "{{")
		assert.NotContains(t, c.Content, "[[")
	}

	// 统计写回：块数和总 token 数
	totalTokens := 0
	for _, c := range chunks.created {
		totalTokens += c.TokenCount
	}
	assert.Equal(t, [2]int{len(chunks.created), totalTokens}, articles.stats)
}

func TestProcessor_Process_EmptyArticle(t *testing.T) {
	articles := newFakeArticleRepo()
	chunks := &fakeChunkRepo{}
	emb := &fakeEmbedder{}
	store := &fakeVectorStore{}
	p := newTestProcessor(t, articles, chunks, emb, store)

	err := p.Process(t.Context(), &loader.RawArticle{Title: "Empty", Text: "{{stub}}"})
	require.NoError(t, err)

	article, err := articles.GetByTitle(t.Context(), "Empty")
	require.NoError(t, err)
	assert.True(t, article.IsCompleted())
	assert.Empty(t, chunks.created)
	assert.Empty(t, store.inserted)
	assert.Zero(t, emb.calls)
}

func TestProcessor_Process_EmbedFailureMarksFailed(t *testing.T) {
	articles := newFakeArticleRepo()
	chunks := &fakeChunkRepo{}
	emb := &fakeEmbedder{fail: true}
	store := &fakeVectorStore{}
	p := newTestProcessor(t, articles, chunks, emb, store)

	err := p.Process(t.Context(), &loader.RawArticle{Title: "Boom", Text: "Some words to embed here."})
	require.Error(t, err)

	article, getErr := articles.GetByTitle(t.Context(), "Boom")
	require.NoError(t, getErr)
	assert.Equal(t, string(types.ArticleStatusFailed), article.Status)
	assert.NotEmpty(t, article.ErrorMessage)
	assert.Empty(t, chunks.created)
}

func TestProcessor_Process_SkipsCompleted(t *testing.T) {
	articles := newFakeArticleRepo()
	chunks := &fakeChunkRepo{}
	emb := &fakeEmbedder{}
	store := &fakeVectorStore{}
	p := newTestProcessor(t, articles, chunks, emb, store)

	existing := &models.Article{Title: "Done", Status: string(types.ArticleStatusCompleted)}
	require.NoError(t, articles.Create(t.Context(), existing))

	err := p.Process(t.Context(), &loader.RawArticle{Title: "Done", Text: "New text that should be ignored."})
	require.NoError(t, err)
	assert.Zero(t, emb.calls)
	assert.Empty(t, chunks.created)
}

func TestProcessor_Process_RetryCleansStaleChunks(t *testing.T) {
	articles := newFakeArticleRepo()
	chunks := &fakeChunkRepo{}
	emb := &fakeEmbedder{}
	store := &fakeVectorStore{}
	p := newTestProcessor(t, articles, chunks, emb, store)

	existing := &models.Article{Title: "Retry", Status: string(types.ArticleStatusFailed)}
	require.NoError(t, articles.Create(t.Context(), existing))

	staleID := uuid.New()
	chunks.created = append(chunks.created, &models.Chunk{
		ID:        staleID,
		ArticleID: existing.ID,
		Content:   "stale",
		MilvusID:  staleID.String(),
	})

	err := p.Process(t.Context(), &loader.RawArticle{Title: "Retry", Text: "Fresh content for a second attempt."})
	require.NoError(t, err)

	assert.Contains(t, store.deleted, staleID.String())
	for _, c := range chunks.created {
		assert.NotEqual(t, staleID, c.ID)
	}
	assert.True(t, existing.IsCompleted())
}
