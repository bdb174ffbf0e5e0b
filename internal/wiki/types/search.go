package types

// SearchRequest 搜索请求
type SearchRequest struct {
	Query    string  `json:"query" binding:"required,min=1,max=1000"`
	TopK     int     `json:"top_k" binding:"omitempty,min=1,max=100"`
	MinScore float32 `json:"min_score" binding:"omitempty,min=0,max=1"`
}

// SearchResponse 搜索响应
type SearchResponse struct {
	Query   string            `json:"query"`
	Results []*ChunkWithScore `json:"results"`
	Total   int               `json:"total"`
	Took    int64             `json:"took"` // 耗时（毫秒）
}
