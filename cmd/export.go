package cmd

import (
	"maps"
	"slices"

	"keyword-monitor/pkg/db"
	"keyword-monitor/pkg/service"
	"keyword-monitor/pkg/signals"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewExportCommand() *cobra.Command {
	var (
		batchSize      int
		skipInfluencer bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "将监控数据快照导出到 DuckDB / MySQL",
		Long:  "拉取关键词、分组统计、分组文章和各品牌活动，作为一次快照写入 DuckDB，配置了 MySQL 时同时写入 MySQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			ctx := signals.SetupSignalHandler()

			if err := db.InitDuckDB(env.cfg.DuckDBConfig); err != nil {
				return err
			}
			defer func() {
				if err := db.CloseDuckDB(); err != nil {
					zap.S().Warnf("关闭 DuckDB 失败:%s", err.Error())
				}
			}()

			opts := []service.Option{
				service.WithDuckDB(db.GetDuckDB()),
				service.WithBatchSize(env.cfg.DuckDBConfig.BatchSize),
			}
			if batchSize > 0 {
				opts = append(opts, service.WithBatchSize(batchSize))
			}
			if !skipInfluencer {
				opts = append(opts, service.WithInfluencer(env.client))
			}
			if env.cfg.MySQLConfig != nil {
				if err := db.InitMySQL(env.cfg.MySQLConfig); err != nil {
					return err
				}
				opts = append(opts, service.WithMySQL(db.GetMySQL()))
			}

			exportService := service.NewExportService(env.client, opts...)
			snap, err := exportService.Export(ctx)
			if err != nil {
				return err
			}
			zap.S().Infof("快照导出完成, run: %s, 关键词: %d, 文章: %d, 活动: %d",
				snap.RunID, len(snap.Keywords), len(snap.Articles), len(snap.Campaigns))

			// 显示统计信息
			counts, err := exportService.SnapshotCount(ctx)
			if err != nil {
				zap.S().Warnf("获取统计信息失败:%s", err.Error())
				return nil
			}
			for _, table := range slices.Sorted(maps.Keys(counts)) {
				zap.S().Infof("%s: %d", table, counts[table])
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&batchSize, "batch-size", "b", 0, "批量写入大小，默认使用配置文件")
	cmd.Flags().BoolVar(&skipInfluencer, "skip-influencer", false, "不导出网红活动")
	return cmd
}
