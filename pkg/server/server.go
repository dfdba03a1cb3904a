// Package server 以 JSON 形式提供四个页面的视图数据
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"keyword-monitor/config"
	"keyword-monitor/pkg/page"
)

const shutdownTimeout = 5 * time.Second

// API 视图服务需要的后端接口
type API interface {
	page.NewsAPI
	page.GroupAPI
	page.InfluencerAPI
}

type Server struct {
	api    API
	cfg    *config.ServerConfig
	engine *gin.Engine
}

func New(api API, cfg *config.ServerConfig) *Server {
	if cfg == nil {
		cfg = config.NewDefaultServerConfig()
	}
	gin.SetMode(cfg.Mode)

	s := &Server{api: api, cfg: cfg, engine: gin.New()}
	s.engine.Use(gin.Recovery(), accessLog())
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/healthz", s.health)

	v := s.engine.Group("/views")
	v.GET("/news", s.news)
	v.GET("/groups/:group", s.group)
	v.PUT("/articles/:id/classification", s.classify)
	v.GET("/articles/:id/reason", s.reason)
	v.GET("/influencer", s.influencer)
	v.GET("/trends", s.trends)
}

// Handler 供测试和自定义 http.Server 使用
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run 监听直到 ctx 取消，然后优雅关闭
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Addr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		zap.S().Infof("视图服务启动, 地址: %s", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "视图服务启动失败")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "视图服务关闭失败")
	}
	zap.S().Info("视图服务已关闭")
	return nil
}

// accessLog 用 zap 记录每个请求
func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		zap.S().Infow("请求",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
