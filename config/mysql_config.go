package config

import (
	"fmt"

	"github.com/pkg/errors"
)

// MySQLConfig 可选的快照导出目标，Replicas 为只读副本
type MySQLConfig struct {
	Host     string   `json:"host" yaml:"host"`
	Port     int      `json:"port" yaml:"port"`
	User     string   `json:"user" yaml:"user"`
	Password string   `json:"password" yaml:"password"`
	Database string   `json:"database" yaml:"database"`
	Replicas []string `json:"replicas" yaml:"replicas"` // 副本 host:port 列表
}

func (m *MySQLConfig) Validate() []error {
	var errs = make([]error, 0)
	if m.Host == "" {
		errs = append(errs, errors.Errorf("MySQL 地址不能为空"))
	}
	if m.Port <= 0 {
		errs = append(errs, errors.Errorf("MySQL 端口错误: %d", m.Port))
	}
	if m.Database == "" {
		errs = append(errs, errors.Errorf("MySQL 数据库名不能为空"))
	}
	return errs
}

func (m *MySQLConfig) DSN() string {
	return m.dsn(fmt.Sprintf("%s:%d", m.Host, m.Port))
}

func (m *MySQLConfig) ReplicaDSNs() []string {
	dsns := make([]string, 0, len(m.Replicas))
	for _, addr := range m.Replicas {
		dsns = append(dsns, m.dsn(addr))
	}
	return dsns
}

func (m *MySQLConfig) dsn(addr string) string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		m.User, m.Password, addr, m.Database)
}
