package cmd

import (
	"keyword-monitor/pkg/report"
	"keyword-monitor/pkg/server"
	"keyword-monitor/pkg/signals"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewServeCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "JSON 视图服务",
		Long:  "在后端数据之上提供分组筛选、排序、汇总后的只读视图接口",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			if addr != "" {
				env.cfg.ServerConfig.Addr = addr
			}
			ctx := signals.SetupSignalHandler()
			return server.New(env.client, env.cfg.ServerConfig).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "监听地址，覆盖配置文件")
	return cmd
}

func NewReportCommand() *cobra.Command {
	var once bool
	cmd := &cobra.Command{
		Use:   "report",
		Short: "뉴스 모니터링 일일 리포트",
		Long:  "按配置的 cron 表达式定时生成前一天的 Markdown 报告，--once 立即生成一次",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			ctx := signals.SetupSignalHandler()
			reporter := report.NewReporter(env.client, env.cfg.ReportConfig)
			if once {
				path, err := reporter.Generate(ctx)
				if err != nil {
					return err
				}
				env.notifier.Success("리포트가 생성되었습니다: " + path)
				return nil
			}
			if !env.cfg.ReportConfig.Enabled {
				zap.S().Info("每日报告未启用")
				return nil
			}
			return reporter.Schedule(ctx)
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "즉시 한 번 생성")
	return cmd
}
