package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type IConfig interface {
	Validate() []error
}

type GlobalConfig struct {
	APIConfig       *APIConfig       `json:"api" yaml:"api"`
	LogConfig       *LogConfig       `json:"log" yaml:"log"`
	NotifyConfig    *NotifyConfig    `json:"notify" yaml:"notify"`
	DashboardConfig *DashboardConfig `json:"dashboard" yaml:"dashboard"`
	ServerConfig    *ServerConfig    `json:"server" yaml:"server"`
	ReportConfig    *ReportConfig    `json:"report" yaml:"report"`
	DuckDBConfig    *DuckDBConfig    `json:"duckdb" yaml:"duckdb"`
	MySQLConfig     *MySQLConfig     `json:"mysql" yaml:"mysql"`
}

func (g *GlobalConfig) Validate() []error {
	var errs = make([]error, 0)
	for _, c := range g.children() {
		if es := c.Validate(); len(es) > 0 {
			errs = append(errs, es...)
		}
	}
	return errs
}

// children 返回所有已设置的子配置，MySQL 是可选的导出目标
func (g *GlobalConfig) children() []IConfig {
	var cs []IConfig
	if g.APIConfig != nil {
		cs = append(cs, g.APIConfig)
	}
	if g.LogConfig != nil {
		cs = append(cs, g.LogConfig)
	}
	if g.NotifyConfig != nil {
		cs = append(cs, g.NotifyConfig)
	}
	if g.DashboardConfig != nil {
		cs = append(cs, g.DashboardConfig)
	}
	if g.ServerConfig != nil {
		cs = append(cs, g.ServerConfig)
	}
	if g.ReportConfig != nil {
		cs = append(cs, g.ReportConfig)
	}
	if g.DuckDBConfig != nil {
		cs = append(cs, g.DuckDBConfig)
	}
	if g.MySQLConfig != nil {
		cs = append(cs, g.MySQLConfig)
	}
	return cs
}

func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		APIConfig:       NewDefaultAPIConfig(),
		LogConfig:       NewDefaultLogConfig(),
		NotifyConfig:    NewDefaultNotifyConfig(),
		DashboardConfig: NewDefaultDashboardConfig(),
		ServerConfig:    NewDefaultServerConfig(),
		ReportConfig:    NewDefaultReportConfig(),
		DuckDBConfig:    NewDefaultDuckDBConfig(),
	}
}

func TryLoadFromDisk(configFilePath string) (*GlobalConfig, error) {
	_, err := os.Stat(configFilePath)
	if err != nil {
		return nil, err
	}
	// .env 中的变量优先于配置文件，已存在的环境变量不会被覆盖
	_ = godotenv.Load()

	v := viper.New()
	dir, file := filepath.Split(configFilePath)
	fileType := filepath.Ext(file)
	v.AddConfigPath(dir)
	v.SetConfigName(strings.TrimSuffix(file, fileType))
	v.SetConfigType(strings.TrimPrefix(fileType, "."))
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
		return nil, errors.Errorf("解析配置文件错误:%s", err.Error())
	}
	cfg := NewDefaultGlobalConfig()
	if err := v.Unmarshal(cfg, func(config *mapstructure.DecoderConfig) {
		config.TagName = strings.TrimPrefix(fileType, ".")
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault 读取配置文件，文件不存在时使用默认配置
func LoadOrDefault(configFilePath string) (*GlobalConfig, error) {
	cfg, err := TryLoadFromDisk(configFilePath)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		_ = godotenv.Load()
		cfg = NewDefaultGlobalConfig()
		if base := os.Getenv("API_BASEURL"); base != "" {
			cfg.APIConfig.BaseURL = base
		}
		return cfg, nil
	}
	return nil, err
}
