package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wikivec/wikivec/internal/conf"
	apperrors "github.com/wikivec/wikivec/internal/pkg/errors"
	"github.com/wikivec/wikivec/internal/pkg/logger"
	"github.com/wikivec/wikivec/internal/pkg/response"
	"github.com/wikivec/wikivec/internal/wiki/service"
	"github.com/wikivec/wikivec/internal/wiki/types"
)

// HTTPServer 搜索 API 服务
type HTTPServer struct {
	server        *http.Server
	logger        *logger.Logger
	searchService *service.SearchService
}

// NewHTTPServer 创建 HTTP 服务
func NewHTTPServer(
	config *conf.Config,
	log *logger.Logger,
	searchService *service.SearchService,
) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)

	s := &HTTPServer{
		logger:        log,
		searchService: searchService,
	}

	router := gin.New()
	router.Use(logger.GinRecovery(log))
	router.Use(logger.GinLogger(log))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	api := router.Group("/api/v1")
	api.POST("/search", s.handleSearch)

	addr := fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: router,
	}

	return s
}

// Start 启动服务，阻塞直到关闭
func (s *HTTPServer) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

// Stop 优雅关闭
func (s *HTTPServer) Stop(ctx context.Context) error {
	s.logger.Info("stopping HTTP server")
	return s.server.Shutdown(ctx)
}

// handleSearch 语义搜索接口
func (s *HTTPServer) handleSearch(c *gin.Context) {
	var req types.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := s.searchService.Search(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, apperrors.Wrap(err, apperrors.ErrInternalServer))
		return
	}

	response.Success(c, resp)
}
