package db

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"keyword-monitor/config"
)

var mysqlDB *gorm.DB
var mysqlOnce sync.Once

// InitMySQL 初始化 MySQL 连接，配置了副本时读请求走副本
func InitMySQL(cfg *config.MySQLConfig) error {
	var err error
	mysqlOnce.Do(func() {
		mysqlDB, err = gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err != nil {
			err = errors.Wrap(err, "连接 MySQL 失败")
			return
		}

		if dsns := cfg.ReplicaDSNs(); len(dsns) > 0 {
			replicas := make([]gorm.Dialector, 0, len(dsns))
			for _, dsn := range dsns {
				replicas = append(replicas, mysql.Open(dsn))
			}
			err = mysqlDB.Use(dbresolver.Register(dbresolver.Config{
				Replicas: replicas,
				Policy:   dbresolver.RandomPolicy{},
			}))
			if err != nil {
				err = errors.Wrap(err, "注册 MySQL 副本失败")
				return
			}
		}

		sqlDB, e := mysqlDB.DB()
		if e != nil {
			err = errors.Wrap(e, "获取 MySQL 连接池失败")
			return
		}
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(time.Hour)
		zap.S().Debugf("MySQL 初始化完成, 副本数: %d", len(cfg.Replicas))
	})
	return err
}

// GetMySQL 获取 MySQL 连接，未配置时为 nil
func GetMySQL() *gorm.DB {
	return mysqlDB
}
