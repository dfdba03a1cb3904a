package config

import (
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

// ReportConfig 每日报告配置，默认每天 9 点生成前一天的监控结果
type ReportConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Schedule  string `json:"schedule" yaml:"schedule"`
	OutputDir string `json:"outputDir" yaml:"outputDir"`
}

func (r *ReportConfig) Validate() []error {
	var errs = make([]error, 0)
	if _, err := cron.ParseStandard(r.Schedule); err != nil {
		errs = append(errs, errors.Errorf("报告定时表达式错误: %s", r.Schedule))
	}
	if r.OutputDir == "" {
		errs = append(errs, errors.Errorf("报告输出目录不能为空"))
	}
	return errs
}

func NewDefaultReportConfig() *ReportConfig {
	return &ReportConfig{
		Enabled:   true,
		Schedule:  "0 9 * * *",
		OutputDir: "./reports",
	}
}
