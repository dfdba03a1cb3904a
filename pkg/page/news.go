package page

import (
	"context"
	"slices"
	"strings"
	"sync"

	"keyword-monitor/pkg/client"
	"keyword-monitor/pkg/loader"
	"keyword-monitor/pkg/model"
	"keyword-monitor/pkg/notify"
	"keyword-monitor/pkg/view"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrKeywordRequired  = errors.New("keyword is required")
	ErrKeywordDuplicate = errors.New("keyword already exists")
)

// NotificationSettings 通知设置，只保存在页面状态中
type NotificationSettings struct {
	DailyReport   bool `json:"daily_report"`
	RealtimeAlert bool `json:"realtime_alert"`
	WeeklyReport  bool `json:"weekly_report"`
}

// NewsMonitoring 新闻监控首页
type NewsMonitoring struct {
	api      NewsAPI
	notifier notify.Notifier

	stats    loader.Loader[model.KeywordStats]
	summary  loader.Loader[model.DashboardSummary]
	keywords loader.Loader[[]model.Keyword]
	monthly  loader.Loader[[]model.MonthlyStat]

	mu       sync.Mutex
	settings NotificationSettings
}

func NewNewsMonitoring(api NewsAPI, notifier notify.Notifier) *NewsMonitoring {
	return &NewsMonitoring{
		api:      api,
		notifier: notifier,
		settings: NotificationSettings{DailyReport: true, RealtimeAlert: true},
	}
}

// Load 并发加载四个数据源，各自独立成功或失败，失败时保留之前的数据
func (p *NewsMonitoring) Load(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return p.loadStats(ctx) })
	g.Go(func() error { return p.loadSummary(ctx) })
	g.Go(func() error { return p.loadKeywords(ctx) })
	g.Go(func() error { return p.loadMonthly(ctx) })
	err := g.Wait()
	if err != nil {
		p.notifier.Error(notify.MsgLoadFailed)
	}
	return err
}

func (p *NewsMonitoring) loadStats(ctx context.Context) error {
	_, err := p.stats.Run(ctx, func(ctx context.Context) (model.KeywordStats, error) {
		s, err := p.api.KeywordStats(ctx)
		if err != nil {
			return model.KeywordStats{}, err
		}
		return *s, nil
	})
	return ignoreStale(err, "统计")
}

func (p *NewsMonitoring) loadSummary(ctx context.Context) error {
	_, err := p.summary.Run(ctx, func(ctx context.Context) (model.DashboardSummary, error) {
		s, err := p.api.DashboardSummary(ctx)
		if err != nil {
			return model.DashboardSummary{}, err
		}
		return *s, nil
	})
	return ignoreStale(err, "汇总统计")
}

func (p *NewsMonitoring) loadKeywords(ctx context.Context) error {
	_, err := p.keywords.Run(ctx, func(ctx context.Context) ([]model.Keyword, error) {
		keywords, err := p.api.ListKeywords(ctx)
		if err != nil {
			return nil, err
		}
		return view.SortKeywords(keywords), nil
	})
	return ignoreStale(err, "关键词列表")
}

func (p *NewsMonitoring) loadMonthly(ctx context.Context) error {
	_, err := p.monthly.Run(ctx, func(ctx context.Context) ([]model.MonthlyStat, error) {
		return p.api.MonthlyStats(ctx)
	})
	return ignoreStale(err, "月度统计")
}

// ignoreStale 过期响应不算失败，其它错误只记录日志
func ignoreStale(err error, what string) error {
	if err == nil || errors.Is(err, loader.ErrStale) {
		return nil
	}
	zap.S().Warnf("加载%s失败, 业务失败: %v, err: %v", what, client.IsAppFailure(err), err)
	return errors.Wrapf(err, "加载%s失败", what)
}

// Keywords 排序后的关键词列表
func (p *NewsMonitoring) Keywords() []model.Keyword {
	keywords, _ := p.keywords.Data()
	return slices.Clone(keywords)
}

func (p *NewsMonitoring) Stats() (model.KeywordStats, bool) {
	return p.stats.Data()
}

func (p *NewsMonitoring) Summary() (model.DashboardSummary, bool) {
	return p.summary.Data()
}

// GroupCards 本月按分组合并后的统计卡片
func (p *NewsMonitoring) GroupCards() []model.GroupMonthlyStat {
	rows, _ := p.monthly.Data()
	return view.FoldGroupStats(rows)
}

// KeywordsState 关键词列表的加载状态
func (p *NewsMonitoring) KeywordsState() loader.State {
	return p.keywords.State()
}

// AddKeyword 新增关键词，分组为空时由后端推断
func (p *NewsMonitoring) AddKeyword(ctx context.Context, keyword, group string) error {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		p.notifier.Error(notify.MsgKeywordRequired)
		return ErrKeywordRequired
	}
	if view.KeywordExists(p.Keywords(), keyword, 0) {
		p.notifier.Error(notify.MsgKeywordDuplicate)
		return ErrKeywordDuplicate
	}
	res, err := p.api.CreateKeyword(ctx, model.KeywordInput{Keyword: keyword, GroupName: strings.TrimSpace(group)})
	return p.afterMutation(ctx, res, err)
}

// UpdateKeyword 修改关键词，修改后保持启用
func (p *NewsMonitoring) UpdateKeyword(ctx context.Context, id int64, keyword string, typ model.KeywordType, group string) error {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		p.notifier.Error(notify.MsgKeywordRequired)
		return ErrKeywordRequired
	}
	if view.KeywordExists(p.Keywords(), keyword, id) {
		p.notifier.Error(notify.MsgKeywordDuplicate)
		return ErrKeywordDuplicate
	}
	active := 1
	res, err := p.api.UpdateKeyword(ctx, id, model.KeywordInput{
		Keyword:   keyword,
		Type:      typ,
		GroupName: strings.TrimSpace(group),
		IsActive:  &active,
	})
	return p.afterMutation(ctx, res, err)
}

// DeleteKeyword 确认后删除，用户取消时返回 false
func (p *NewsMonitoring) DeleteKeyword(ctx context.Context, id int64, confirmer notify.Confirmer) (bool, error) {
	ok, err := confirmer.Confirm(ctx, notify.DeleteKeywordConfirm)
	if err != nil || !ok {
		return false, err
	}
	res, err := p.api.DeleteKeyword(ctx, id)
	if err := p.afterMutation(ctx, res, err); err != nil {
		return false, err
	}
	return true, nil
}

// afterMutation 成功后提示后端信息并重新加载关键词和统计
func (p *NewsMonitoring) afterMutation(ctx context.Context, res *model.MutationResult, err error) error {
	if err != nil {
		zap.S().Warnf("关键词修改失败, 业务失败: %v, err: %v", client.IsAppFailure(err), err)
		p.notifier.Error(notify.MutationMessage(err))
		return err
	}
	p.notifier.Success(res.Message)

	var g errgroup.Group
	g.Go(func() error { return p.loadKeywords(ctx) })
	g.Go(func() error { return p.loadStats(ctx) })
	if err := g.Wait(); err != nil {
		p.notifier.Error(notify.MsgLoadFailed)
	}
	return nil
}

func (p *NewsMonitoring) Settings() NotificationSettings {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settings
}

func (p *NewsMonitoring) SetDailyReport(on bool) {
	p.mu.Lock()
	p.settings.DailyReport = on
	p.mu.Unlock()
}

func (p *NewsMonitoring) SetRealtimeAlert(on bool) {
	p.mu.Lock()
	p.settings.RealtimeAlert = on
	p.mu.Unlock()
}

func (p *NewsMonitoring) SetWeeklyReport(on bool) {
	p.mu.Lock()
	p.settings.WeeklyReport = on
	p.mu.Unlock()
}
