package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"keyword-monitor/config"
	"keyword-monitor/pkg/client"
	"keyword-monitor/pkg/logging"
	"keyword-monitor/pkg/model"
	"keyword-monitor/pkg/render"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

// runtimeEnv 子命令共用的配置、客户端和输出
type runtimeEnv struct {
	cfg      *config.GlobalConfig
	client   *client.Client
	out      io.Writer
	notifier *render.ConsoleNotifier
	flush    func()
}

// setup 读取配置并初始化日志和后端客户端
func setup(cmd *cobra.Command) (*runtimeEnv, error) {
	configFilePath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadOrDefault(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("读取本地配置文件错误:%w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("本地配置文件验证错误:%w", errors.Join(errs...))
	}
	flush, err := logging.Setup(cfg.LogConfig)
	if err != nil {
		return nil, fmt.Errorf("初始化日志失败:%w", err)
	}
	c, err := client.New(cfg.APIConfig)
	if err != nil {
		flush()
		return nil, err
	}
	out := cmd.OutOrStdout()
	return &runtimeEnv{
		cfg:      cfg,
		client:   c,
		out:      out,
		notifier: &render.ConsoleNotifier{Out: out},
		flush:    flush,
	}, nil
}

func (e *runtimeEnv) Close() {
	e.flush()
}

func (e *runtimeEnv) println(s string) {
	_, _ = fmt.Fprintln(e.out, s)
}

func parseID(s string) (int64, error) {
	id, err := cast.ToInt64E(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("ID 格式错误: %s", s)
	}
	return id, nil
}

// parseKeywordType 接受韩文标签或 own/competitor
func parseKeywordType(s string) (model.KeywordType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "own", string(model.TypeOwn):
		return model.TypeOwn, nil
	case "competitor", string(model.TypeCompetitor):
		return model.TypeCompetitor, nil
	}
	return "", fmt.Errorf("未知的关键词类型: %s", s)
}

// parseClassification 接受韩文标签或 press/organic/none
func parseClassification(s string) (model.Classification, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "press", "press_release", string(model.ClassPressRelease):
		return model.ClassPressRelease, nil
	case "organic", string(model.ClassOrganic):
		return model.ClassOrganic, nil
	case "none", "n/a", string(model.ClassNotApplicable):
		return model.ClassNotApplicable, nil
	}
	return "", fmt.Errorf("未知的分类: %s", s)
}
