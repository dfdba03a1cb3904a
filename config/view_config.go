package config

import (
	"time"

	"github.com/pkg/errors"
)

// NotifyConfig 提示消息配置
type NotifyConfig struct {
	DismissAfter time.Duration `json:"dismissAfter" yaml:"dismissAfter"`
}

func (n *NotifyConfig) Validate() []error {
	var errs = make([]error, 0)
	if n.DismissAfter <= 0 {
		errs = append(errs, errors.Errorf("提示消息自动关闭时间必须大于 0"))
	}
	return errs
}

func NewDefaultNotifyConfig() *NotifyConfig {
	return &NotifyConfig{DismissAfter: 3 * time.Second}
}

// DashboardConfig 终端看板配置
type DashboardConfig struct {
	LiveInterval time.Duration `json:"liveInterval" yaml:"liveInterval"` // 网红页面点赞数模拟刷新间隔
}

func (d *DashboardConfig) Validate() []error {
	var errs = make([]error, 0)
	if d.LiveInterval <= 0 {
		errs = append(errs, errors.Errorf("实时刷新间隔必须大于 0"))
	}
	return errs
}

func NewDefaultDashboardConfig() *DashboardConfig {
	return &DashboardConfig{LiveInterval: 5 * time.Second}
}
