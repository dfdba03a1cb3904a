package cmd

import (
	"fmt"

	"keyword-monitor/pkg/page"
	"keyword-monitor/pkg/render"
	"keyword-monitor/pkg/signals"
	"keyword-monitor/pkg/tui"
	"keyword-monitor/pkg/view"

	"github.com/spf13/cobra"
)

func NewInfluencerCommand() *cobra.Command {
	var (
		brand     string
		month     string
		campaigns []string
		hours     int
		limit     int
	)
	cmd := &cobra.Command{
		Use:   "influencer",
		Short: "인플루언서 캠페인 모니터링 출력",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != "" && !view.ValidMonthKey(month) {
				return fmt.Errorf("月份格式错误: %s，应为 YYYY-MM", month)
			}
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			ctx := signals.SetupSignalHandler()
			p := page.NewInfluencerMonitoring(env.client, env.notifier)
			if brand != "" {
				p.SelectBrand(brand)
			}
			if month != "" {
				p.SelectMonth(month)
			}
			for _, id := range campaigns {
				p.ToggleCampaign(id)
			}
			if err := p.Load(ctx); err != nil {
				return err
			}
			env.println(render.InfluencerPage(p))

			if hours <= 0 {
				return nil
			}
			items, err := env.client.LatestContents(ctx, p.Selection().BrandID, hours, limit)
			if err != nil {
				env.notifier.Error("최신 콘텐츠를 불러오지 못했습니다")
				return err
			}
			env.println(render.Section(fmt.Sprintf("최근 %d시간 업로드 (%d)", hours, len(items))))
			for _, c := range items {
				env.println(fmt.Sprintf("%s  ❤️ %d  💬 %d  👁 %d  %s", c.Username, c.Likes, c.Comments, c.Views, render.Muted(c.PostDate)))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&brand, "brand", "", "브랜드 ID, 비워두면 Discovery")
	cmd.Flags().StringVar(&month, "month", "", "캠페인 월 (YYYY-MM)")
	cmd.Flags().StringArrayVar(&campaigns, "campaign", nil, "캠페인 ID, 여러 번 지정 가능")
	cmd.Flags().IntVar(&hours, "hours", 0, "최근 N시간 내 업로드된 콘텐츠를 추가로 조회")
	cmd.Flags().IntVar(&limit, "limit", 10, "최신 콘텐츠 조회 개수")
	return cmd
}

func NewTrendsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trends",
		Short: "중국 SNS 트렌드 출력",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// 趋势页是静态数据，不需要后端
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.TrendsPage(page.NewChinaSNSTrends()))
			return nil
		},
	}
}

func NewTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "대화형 대시보드",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			ctx := signals.SetupSignalHandler()
			return tui.Run(ctx, env.client, env.cfg)
		},
	}
}
