package cmd

import (
	"keyword-monitor/pkg/page"
	"keyword-monitor/pkg/render"
	"keyword-monitor/pkg/signals"
	"keyword-monitor/pkg/view"

	"github.com/spf13/cobra"
)

func NewGroupCommand() *cobra.Command {
	var filter, month, sortBy, order string
	cmd := &cobra.Command{
		Use:   "group <name>",
		Short: "키워드 그룹 대시보드 출력",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := view.ParseClassFilter(filter)
			if err != nil {
				return err
			}
			key, err := view.ParseSortKey(sortBy)
			if err != nil {
				return err
			}
			o, err := view.ParseSortOrder(order)
			if err != nil {
				return err
			}
			m, err := view.ParseMonth(month)
			if err != nil {
				return err
			}
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			ctx := signals.SetupSignalHandler()
			p := page.NewKeywordDashboard(env.client, env.notifier, args[0])
			p.SetFilter(f)
			p.SetSortBy(key)
			p.SetOrder(o)
			// 指定月份后不再套用默认月份
			if m != "" {
				p.SetMonth(m)
			}
			if err := p.Load(ctx); err != nil {
				return err
			}
			env.println(render.KeywordDashboardPage(p))
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "all", "분류 필터: all / press / organic")
	cmd.Flags().StringVar(&month, "month", "", "월 (YYYY-MM), 비워두면 최근 데이터가 있는 월")
	cmd.Flags().StringVar(&sortBy, "sort", "date", "정렬 기준: date / title / press")
	cmd.Flags().StringVar(&order, "order", "desc", "정렬 방향: asc / desc")
	return cmd
}

func NewClassifyCommand() *cobra.Command {
	var reason string
	cmd := &cobra.Command{
		Use:   "classify <articleID> <label>",
		Short: "기사 분류 수정 (보도자료 / 오가닉 / 해당없음)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			label, err := parseClassification(args[1])
			if err != nil {
				return err
			}
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			p := page.NewKeywordDashboard(env.client, env.notifier, "")
			return p.UpdateClassification(cmd.Context(), id, label, reason)
		},
	}
	cmd.Flags().StringVarP(&reason, "reason", "r", "", "수정 사유")
	return cmd
}

func NewReasonCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reason <articleID>",
		Short: "기사 분류 이유 조회",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			p := page.NewKeywordDashboard(env.client, env.notifier, "")
			rv, err := p.OpenReason(cmd.Context(), id)
			if err != nil {
				return err
			}
			env.println(render.ReasonView(*rv))
			return nil
		},
	}
}
