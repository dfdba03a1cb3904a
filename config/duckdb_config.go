package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type DuckDBConfig struct {
	DBPath    string `json:"dbPath" yaml:"dbPath"`       // 快照导出的 DuckDB 文件路径
	BatchSize int    `json:"batchSize" yaml:"batchSize"` // 批量写入大小
}

func (d *DuckDBConfig) Validate() []error {
	var errs = make([]error, 0)
	if d.DBPath == "" {
		errs = append(errs, errors.Errorf("DuckDB 数据库路径不能为空"))
		return errs
	}
	if d.BatchSize <= 0 {
		errs = append(errs, errors.Errorf("DuckDB 批量大小必须大于 0"))
	}
	return errs
}

// EnsureDir 确保数据库所在目录存在，只在导出前调用
func (d *DuckDBConfig) EnsureDir() error {
	dir := filepath.Dir(d.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Errorf("创建 DuckDB 目录失败: %v", err)
	}
	return nil
}

func NewDefaultDuckDBConfig() *DuckDBConfig {
	return &DuckDBConfig{
		DBPath:    "./data/snapshot.duckdb",
		BatchSize: 100,
	}
}

func (d *DuckDBConfig) DSN() string {
	return d.DBPath
}
