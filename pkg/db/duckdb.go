// Package db 快照导出用到的数据库连接
package db

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"keyword-monitor/config"
)

var duckDB *sql.DB
var duckDBOnce sync.Once

// InitDuckDB 初始化 duckdb 连接，数据库文件所在目录不存在时会先创建
func InitDuckDB(cfg *config.DuckDBConfig) error {
	var err error
	duckDBOnce.Do(func() {
		if err = cfg.EnsureDir(); err != nil {
			return
		}
		duckDB, err = OpenDuckDB(context.Background(), cfg.DSN())
		if err != nil {
			zap.S().Errorf("连接 duckdb 失败: %v", err)
			return
		}
		zap.S().Debug("duckdb 初始化完成...")
	})
	return err
}

// OpenDuckDB 打开并测试一个 duckdb 连接，dsn 为空时使用内存数据库
func OpenDuckDB(ctx context.Context, dsn string) (*sql.DB, error) {
	conn, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "打开 duckdb 失败")
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "duckdb 连接测试失败")
	}
	return conn, nil
}

// GetDuckDB 获取 DuckDB 连接，未初始化时为 nil
func GetDuckDB() *sql.DB {
	return duckDB
}

// CloseDuckDB 关闭 DuckDB 连接，duckdb 在关闭时才会把数据完整落盘
func CloseDuckDB() error {
	if duckDB == nil {
		return nil
	}
	return duckDB.Close()
}
