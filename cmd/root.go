package cmd

import (
	"keyword-monitor/pkg/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "keyword-monitor",
		Short: "뉴스 키워드 / 인플루언서 모니터링 대시보드",
		Long:  "监控后端的终端客户端：新闻关键词监控、分组看板、网红活动监控和中国 SNS 趋势",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableNoDescFlag:   true,
			DisableDescriptions: true,
			HiddenDefaultCmd:    true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringP("config", "c", "./etc/config.yaml", "配置文件路径")

	rootCmd.AddCommand(
		NewNewsCommand(),
		NewKeywordCommand(),
		NewGroupCommand(),
		NewClassifyCommand(),
		NewReasonCommand(),
		NewInfluencerCommand(),
		NewTrendsCommand(),
		NewTUICommand(),
		NewServeCommand(),
		NewReportCommand(),
		NewExportCommand(),
	)

	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		zap.S().Info("使用 'tui' 子命令打开交互看板")
		_ = cmd.Help()
	}
	rootCmd.Version = util.GetVersion().Version
	return rootCmd
}
