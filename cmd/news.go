package cmd

import (
	"fmt"

	"keyword-monitor/pkg/model"
	"keyword-monitor/pkg/notify"
	"keyword-monitor/pkg/page"
	"keyword-monitor/pkg/render"
	"keyword-monitor/pkg/signals"

	"github.com/spf13/cobra"
)

func NewNewsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "news",
		Short: "뉴스 모니터링 현황 출력",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			ctx := signals.SetupSignalHandler()
			p := page.NewNewsMonitoring(env.client, env.notifier)
			loadErr := p.Load(ctx)
			// 部分请求失败时仍然输出已加载的部分
			env.println(render.NewsPage(p))
			return loadErr
		},
	}
}

func NewKeywordCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keyword",
		Short: "모니터링 키워드 관리",
	}
	cmd.AddCommand(
		newKeywordListCommand(),
		newKeywordAddCommand(),
		newKeywordEditCommand(),
		newKeywordDeleteCommand(),
	)
	return cmd
}

// loadNews 变更前先加载现有关键词，用于重复检查
func loadNews(cmd *cobra.Command, env *runtimeEnv) (*page.NewsMonitoring, error) {
	p := page.NewNewsMonitoring(env.client, env.notifier)
	if err := p.Load(cmd.Context()); err != nil {
		return nil, err
	}
	return p, nil
}

func newKeywordListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "키워드 목록",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			p, err := loadNews(cmd, env)
			if err != nil {
				return err
			}
			printKeywords(env, p.Keywords())
			return nil
		},
	}
}

func newKeywordAddCommand() *cobra.Command {
	var group string
	cmd := &cobra.Command{
		Use:   "add <keyword>",
		Short: "키워드 추가",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			p, err := loadNews(cmd, env)
			if err != nil {
				return err
			}
			if err := p.AddKeyword(cmd.Context(), args[0], group); err != nil {
				return err
			}
			printKeywords(env, p.Keywords())
			return nil
		},
	}
	cmd.Flags().StringVarP(&group, "group", "g", "", "키워드 그룹, 비워두면 자동 분류")
	return cmd
}

func newKeywordEditCommand() *cobra.Command {
	var (
		group string
		typ   string
	)
	cmd := &cobra.Command{
		Use:   "edit <id> <keyword>",
		Short: "키워드 수정",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			kt, err := parseKeywordType(typ)
			if err != nil {
				return err
			}
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			p, err := loadNews(cmd, env)
			if err != nil {
				return err
			}
			if err := p.UpdateKeyword(cmd.Context(), id, args[1], kt, group); err != nil {
				return err
			}
			printKeywords(env, p.Keywords())
			return nil
		},
	}
	cmd.Flags().StringVarP(&group, "group", "g", "", "키워드 그룹")
	cmd.Flags().StringVarP(&typ, "type", "t", "", "키워드 유형: 자사(own) / 경쟁사(competitor)")
	return cmd
}

func newKeywordDeleteCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "키워드 삭제",
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

			p, err := loadNews(cmd, env)
			if err != nil {
				return err
			}
			var confirmer notify.Confirmer = notify.AutoConfirmer(true)
			if !yes {
				confirmer = &notify.PromptConfirmer{In: cmd.InOrStdin(), Out: env.out}
			}
			deleted, err := p.DeleteKeyword(cmd.Context(), id, confirmer)
			if err != nil {
				return err
			}
			if !deleted {
				env.println(render.Muted("취소되었습니다"))
				return nil
			}
			printKeywords(env, p.Keywords())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "확인 없이 삭제")
	return cmd
}

func printKeywords(env *runtimeEnv, keywords []model.Keyword) {
	env.println(render.Section(fmt.Sprintf("모니터링 키워드 (%d)", len(keywords))))
	render.KeywordTable(env.out, keywords)
}
