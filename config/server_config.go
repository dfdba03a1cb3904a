package config

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
	Mode string `json:"mode" yaml:"mode"` // gin 运行模式: debug / release / test
}

func (s *ServerConfig) Validate() []error {
	var errs = make([]error, 0)
	if s.Addr == "" {
		errs = append(errs, errors.Errorf("监听地址不能为空"))
	}
	switch s.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		errs = append(errs, errors.Errorf("gin 运行模式错误: %s", s.Mode))
	}
	return errs
}

func NewDefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr: ":8080",
		Mode: gin.ReleaseMode,
	}
}
