package report

import (
	"context"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// cronLogger 把 cron 的日志转到 zap
type cronLogger struct {
	log *zap.SugaredLogger
}

var _ cron.Logger = cronLogger{}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}

// Schedule 按配置的表达式定时生成报告，ctx 取消后等待正在执行的任务结束再返回
func (r *Reporter) Schedule(ctx context.Context) error {
	logger := cronLogger{log: zap.S().Named("report")}
	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	if _, err := c.AddFunc(r.cfg.Schedule, func() {
		if _, err := r.Generate(ctx); err != nil {
			zap.S().Errorf("每日报告生成失败: %v", err)
		}
	}); err != nil {
		return errors.Wrapf(err, "报告定时表达式错误: %s", r.cfg.Schedule)
	}

	zap.S().Infof("每日报告定时任务启动, 表达式: %s, 目录: %s", r.cfg.Schedule, r.cfg.OutputDir)
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	zap.S().Info("每日报告定时任务已停止")
	return nil
}
