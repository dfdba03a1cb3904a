package page

import (
	"context"
	"sync"
	"time"

	"keyword-monitor/pkg/client"
	"keyword-monitor/pkg/loader"
	"keyword-monitor/pkg/model"
	"keyword-monitor/pkg/notify"
	"keyword-monitor/pkg/view"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrClassificationRequired = errors.New("classification is required")

const reasonTimeLayout = "2006-01-02 15:04:05"

// ReasonView 当前打开的分类原因
type ReasonView struct {
	ArticleID int64 `json:"article_id"`
	model.ClassificationReason
}

// KeywordDashboard 单个分组的新闻看板
type KeywordDashboard struct {
	api      GroupAPI
	notifier notify.Notifier
	now      func() time.Time

	stats    loader.Loader[model.GroupStats]
	articles loader.Loader[[]model.Article]

	mu      sync.Mutex
	group   string
	query   view.ArticleQuery
	months  view.MonthSelector
	buckets []string
	reason  *ReasonView
}

func NewKeywordDashboard(api GroupAPI, notifier notify.Notifier, group string) *KeywordDashboard {
	return &KeywordDashboard{
		api:      api,
		notifier: notifier,
		now:      time.Now,
		group:    group,
		query:    view.DefaultArticleQuery(),
	}
}

// WithClock 替换当前时间，用于默认月份
func (p *KeywordDashboard) WithClock(now func() time.Time) *KeywordDashboard {
	p.now = now
	return p
}

func (p *KeywordDashboard) Group() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.group
}

// SetGroup 切换分组，清空数据和筛选条件，月份会在下次加载时重新取默认值
func (p *KeywordDashboard) SetGroup(group string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if group == p.group {
		return
	}
	p.group = group
	p.query = view.DefaultArticleQuery()
	p.months.Reset()
	p.buckets = nil
	p.reason = nil
	p.stats.Reset()
	p.articles.Reset()
}

// Load 先加载分组统计再加载文章，任一失败都提示一次，已有数据保持不变。
// 两个请求的 token 和分组在同一把锁内确定，加载途中切换分组时结果全部作废。
func (p *KeywordDashboard) Load(ctx context.Context) error {
	p.mu.Lock()
	group := p.group
	if group == "" {
		p.mu.Unlock()
		return nil
	}
	statsToken := p.stats.Begin()
	articlesToken := p.articles.Begin()
	p.mu.Unlock()

	statsErr := ignoreStale(p.loadStats(ctx, group, statsToken), "分组统计")
	articlesErr := ignoreStale(p.loadArticles(ctx, group, articlesToken), "分组文章")

	err := statsErr
	if err == nil {
		err = articlesErr
	}
	if err != nil {
		p.notifier.Error(notify.MsgLoadFailed)
		return err
	}
	return nil
}

func (p *KeywordDashboard) loadStats(ctx context.Context, group string, token loader.Token) error {
	s, err := p.api.GroupStats(ctx, group)
	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		if !p.stats.Fail(token, err) {
			return loader.ErrStale
		}
		return err
	}
	if !p.stats.Resolve(token, *s) {
		return loader.ErrStale
	}
	return nil
}

// loadArticles 提交文章并套用默认月份，在 p.mu 内完成，SetGroup 不会插在中间
func (p *KeywordDashboard) loadArticles(ctx context.Context, group string, token loader.Token) error {
	articles, err := p.api.GroupArticles(ctx, group)
	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		if !p.articles.Fail(token, err) {
			return loader.ErrStale
		}
		return err
	}
	if !p.articles.Resolve(token, articles) {
		return loader.ErrStale
	}
	p.buckets = view.MonthBuckets(articles)
	p.months.ApplyDefault(p.buckets, p.now())
	return nil
}

func (p *KeywordDashboard) Stats() (model.GroupStats, bool) {
	return p.stats.Data()
}

// State 文章列表的加载状态
func (p *KeywordDashboard) State() loader.State {
	return p.articles.State()
}

// Months 可选月份，最新在前
func (p *KeywordDashboard) Months() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.buckets...)
}

// Query 当前筛选条件，Month 为空表示全部
func (p *KeywordDashboard) Query() view.ArticleQuery {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.query.WithMonth(p.months.Selected())
}

// Articles 按当前条件筛选排序后的文章
func (p *KeywordDashboard) Articles() []model.Article {
	articles, _ := p.articles.Data()
	return view.ApplyArticleQuery(articles, p.Query())
}

// AllArticles 未筛选的文章
func (p *KeywordDashboard) AllArticles() []model.Article {
	articles, _ := p.articles.Data()
	return articles
}

func (p *KeywordDashboard) SetFilter(f view.ClassFilter) {
	p.mu.Lock()
	p.query = p.query.WithFilter(f)
	p.mu.Unlock()
}

// SetMonth 用户选择月份，view.MonthAll 表示全部
func (p *KeywordDashboard) SetMonth(month string) {
	p.mu.Lock()
	p.months.Select(month)
	p.mu.Unlock()
}

// ClearMonth 用户清空月份选择
func (p *KeywordDashboard) ClearMonth() {
	p.mu.Lock()
	p.months.Clear()
	p.mu.Unlock()
}

func (p *KeywordDashboard) SetSortBy(key view.SortKey) {
	p.mu.Lock()
	p.query = p.query.WithSortBy(key)
	p.mu.Unlock()
}

func (p *KeywordDashboard) SetOrder(order view.SortOrder) {
	p.mu.Lock()
	p.query = p.query.WithOrder(order)
	p.mu.Unlock()
}

func (p *KeywordDashboard) ToggleOrder() {
	p.mu.Lock()
	p.query = p.query.ToggleOrder()
	p.mu.Unlock()
}

// UpdateClassification 人工修改分类，成功后只在本地更新这篇文章
func (p *KeywordDashboard) UpdateClassification(ctx context.Context, id int64, label model.Classification, reason string) error {
	if label == "" {
		return ErrClassificationRequired
	}
	if _, err := p.api.UpdateClassification(ctx, id, label, reason); err != nil {
		zap.S().Warnf("分类修改失败, article: %d, 业务失败: %v, err: %v", id, client.IsAppFailure(err), err)
		p.notifier.Error(notify.MessageFor(err, notify.MsgClassifyFailed))
		return err
	}

	p.articles.Mutate(func(articles []model.Article) []model.Article {
		return view.PatchClassification(articles, id, label)
	})

	p.mu.Lock()
	if p.reason != nil && p.reason.ArticleID == id {
		p.reason.ClassificationResult = label
		p.reason.ConfidenceScore = 1.0
		p.reason.Reason = reason
		p.reason.CreatedAt = p.now().Format(reasonTimeLayout)
	}
	p.mu.Unlock()

	p.notifier.Success(notify.MsgClassifyUpdated)
	return nil
}

// OpenReason 加载并打开文章的分类原因
func (p *KeywordDashboard) OpenReason(ctx context.Context, id int64) (*ReasonView, error) {
	r, err := p.api.ClassificationReason(ctx, id)
	if err != nil {
		zap.S().Warnf("分类原因加载失败, article: %d, err: %v", id, err)
		p.notifier.Error(notify.ReasonMessage(err))
		return nil, err
	}
	rv := &ReasonView{ArticleID: id, ClassificationReason: *r}
	p.mu.Lock()
	p.reason = rv
	out := *rv
	p.mu.Unlock()
	return &out, nil
}

// Reason 当前打开的分类原因
func (p *KeywordDashboard) Reason() (ReasonView, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.reason == nil {
		return ReasonView{}, false
	}
	return *p.reason, true
}

func (p *KeywordDashboard) CloseReason() {
	p.mu.Lock()
	p.reason = nil
	p.mu.Unlock()
}
