package config

import (
	"net/url"
	"time"

	"github.com/pkg/errors"
)

// APIConfig 监控后端的访问配置
type APIConfig struct {
	BaseURL string        `json:"baseURL" yaml:"baseURL"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"` // 仅作为 transport 超时，不做重试
}

func (a *APIConfig) Validate() []error {
	var errs = make([]error, 0)
	if a.BaseURL == "" {
		errs = append(errs, errors.Errorf("后端地址不能为空"))
		return errs
	}
	u, err := url.Parse(a.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, errors.Errorf("后端地址格式错误: %s", a.BaseURL))
	}
	if a.Timeout < 0 {
		errs = append(errs, errors.Errorf("请求超时不能为负数"))
	}
	return errs
}

func NewDefaultAPIConfig() *APIConfig {
	return &APIConfig{
		BaseURL: "http://localhost:5000",
		Timeout: 30 * time.Second,
	}
}
