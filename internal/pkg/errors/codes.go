package errors

import (
	"fmt"
	"net/http"
)

// Code represents an error code with HTTP status and message
type Code struct {
	Code    int    // Business error code
	Status  int    // HTTP status code
	Message string // Error message
}

// Error codes for different modules
const (
	// Success
	Success = 0

	// Common errors (1000-1999)
	ErrInternalServer  = 1000
	ErrInvalidParams   = 1001
	ErrNotFound        = 1002
	ErrConflict        = 1003
	ErrTooManyRequests = 1004
	ErrBadRequest      = 1005
	ErrServiceUnavail  = 1006

	// Corpus errors (2000-2999)
	ErrCorpusNotFound      = 2000
	ErrCorpusInvalidFormat = 2001
	ErrArticleNotFound     = 2002
	ErrArticleExists       = 2003

	// Chunking errors (3000-3999)
	ErrChunkInvalidTarget = 3000
	ErrChunkNotFound      = 3001

	// Embedding errors (4000-4999)
	ErrEmbeddingFailed       = 4000
	ErrEmbeddingInvalidModel = 4001
	ErrEmbeddingRateLimited  = 4002

	// Storage errors (5000-5999)
	ErrStorageFailed     = 5000
	ErrVectorStoreFailed = 5001
	ErrCollectionMissing = 5002
)

// codeMap maps error codes to their definitions
var codeMap = map[int]Code{
	Success: {Success, http.StatusOK, "Success"},

	// Common errors
	ErrInternalServer:  {ErrInternalServer, http.StatusInternalServerError, "Internal server error"},
	ErrInvalidParams:   {ErrInvalidParams, http.StatusBadRequest, "Invalid parameters"},
	ErrNotFound:        {ErrNotFound, http.StatusNotFound, "Resource not found"},
	ErrConflict:        {ErrConflict, http.StatusConflict, "Resource conflict"},
	ErrTooManyRequests: {ErrTooManyRequests, http.StatusTooManyRequests, "Too many requests"},
	ErrBadRequest:      {ErrBadRequest, http.StatusBadRequest, "Bad request"},
	ErrServiceUnavail:  {ErrServiceUnavail, http.StatusServiceUnavailable, "Service unavailable"},

	// Corpus errors
	ErrCorpusNotFound:      {ErrCorpusNotFound, http.StatusNotFound, "Corpus file not found"},
	ErrCorpusInvalidFormat: {ErrCorpusInvalidFormat, http.StatusBadRequest, "Invalid corpus format"},
	ErrArticleNotFound:     {ErrArticleNotFound, http.StatusNotFound, "Article not found"},
	ErrArticleExists:       {ErrArticleExists, http.StatusConflict, "Article already exists"},

	// Chunking errors
	ErrChunkInvalidTarget: {ErrChunkInvalidTarget, http.StatusBadRequest, "Invalid chunk target size"},
	ErrChunkNotFound:      {ErrChunkNotFound, http.StatusNotFound, "Chunk not found"},

	// Embedding errors
	ErrEmbeddingFailed:       {ErrEmbeddingFailed, http.StatusInternalServerError, "Embedding generation failed"},
	ErrEmbeddingInvalidModel: {ErrEmbeddingInvalidModel, http.StatusBadRequest, "Invalid embedding model"},
	ErrEmbeddingRateLimited:  {ErrEmbeddingRateLimited, http.StatusTooManyRequests, "Embedding provider rate limited"},

	// Storage errors
	ErrStorageFailed:     {ErrStorageFailed, http.StatusInternalServerError, "Storage operation failed"},
	ErrVectorStoreFailed: {ErrVectorStoreFailed, http.StatusInternalServerError, "Vector store operation failed"},
	ErrCollectionMissing: {ErrCollectionMissing, http.StatusInternalServerError, "Vector collection does not exist"},
}

// GetCode returns the Code for a given error code
func GetCode(code int) Code {
	if c, ok := codeMap[code]; ok {
		return c
	}
	return codeMap[ErrInternalServer]
}

// GetHTTPStatus returns HTTP status for a given error code
func GetHTTPStatus(code int) int {
	return GetCode(code).Status
}

// GetMessage returns the message for a given error code
func GetMessage(code int) string {
	return GetCode(code).Message
}

// IsSuccess checks if the code represents success
func IsSuccess(code int) bool {
	return code == Success
}

// IsClientError checks if the code represents a client error (4xx)
func IsClientError(code int) bool {
	status := GetHTTPStatus(code)
	return status >= 400 && status < 500
}

// IsServerError checks if the code represents a server error (5xx)
func IsServerError(code int) bool {
	return GetHTTPStatus(code) >= 500
}

// FormatError formats an error message with code
func FormatError(code int, details ...string) string {
	msg := GetMessage(code)
	if len(details) > 0 && details[0] != "" {
		return fmt.Sprintf("%s: %s", msg, details[0])
	}
	return msg
}
