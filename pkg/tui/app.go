// Package tui 交互式终端看板
package tui

import (
	"context"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"keyword-monitor/config"
	"keyword-monitor/pkg/model"
	"keyword-monitor/pkg/notify"
	"keyword-monitor/pkg/page"
	"keyword-monitor/pkg/render"
	"keyword-monitor/pkg/view"
)

const toastInterval = 200 * time.Millisecond

// API 看板需要的全部后端接口
type API interface {
	page.NewsAPI
	page.GroupAPI
	page.InfluencerAPI
}

type loadedMsg struct {
	route render.Route
	err   error
}

type actionMsg struct{ err error }

type toastTickMsg time.Time

type liveTickMsg time.Time

type pendingDelete struct {
	id      int64
	keyword string
}

// Model bubbletea 模型，页面状态保存在 page 中，这里只管路由、光标和按键
type Model struct {
	ctx context.Context

	news       *page.NewsMonitoring
	dashboard  *page.KeywordDashboard
	influencer *page.InfluencerMonitoring
	trends     *page.ChinaSNSTrends
	center     *notify.Center

	route    render.Route
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	viewport viewport.Model

	width, height int
	cursor        int
	pending       int
	toastTicking  bool
	confirm       *pendingDelete

	liveInterval time.Duration
	rng          *rand.Rand
}

// New 创建看板，初始页面为新闻监控
func New(ctx context.Context, api API, cfg *config.GlobalConfig) Model {
	if cfg == nil {
		cfg = config.NewDefaultGlobalConfig()
	}
	live := config.NewDefaultDashboardConfig().LiveInterval
	if cfg.DashboardConfig != nil {
		live = cfg.DashboardConfig.LiveInterval
	}
	center := notify.NewCenter(cfg.NotifyConfig)

	vp := viewport.New(80, 20)
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:          ctx,
		news:         page.NewNewsMonitoring(api, center),
		dashboard:    page.NewKeywordDashboard(api, center, ""),
		influencer:   page.NewInfluencerMonitoring(api, center),
		trends:       page.NewChinaSNSTrends(),
		center:       center,
		route:        render.RouteNews,
		keys:         defaultKeyMap(),
		help:         help.New(),
		spinner:      sp,
		viewport:     vp,
		pending:      1,
		liveInterval: live,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	m.syncViewport()
	return m
}

// WithRand 替换点赞模拟用的随机源
func (m Model) WithRand(rng *rand.Rand) Model {
	m.rng = rng
	return m
}

// Close 停止提示消息的定时器
func (m Model) Close() {
	m.center.Close()
}

func (m Model) Route() render.Route { return m.route }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(render.RouteNews), m.spinner.Tick, m.liveTick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.clampCursor()
	m.syncViewport()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = max(msg.Width-lipgloss.Width(render.Sidebar(m.route))-2, 20)
		m.viewport.Height = max(msg.Height-8, 3)
		return nil

	case loadedMsg:
		m.finish()
		if msg.err != nil {
			zap.S().Debugf("页面 %s 加载失败: %v", msg.route, msg.err)
		}
		return m.startToastTick()

	case actionMsg:
		m.finish()
		if msg.err != nil {
			zap.S().Debugf("操作失败: %v", msg.err)
		}
		return m.startToastTick()

	case toastTickMsg:
		if len(m.center.Toasts()) > 0 {
			return m.toastTick()
		}
		m.toastTicking = false
		return nil

	case liveTickMsg:
		if m.route == render.RouteInfluencer {
			m.influencer.Tick(m.rng)
		}
		return m.liveTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.confirm != nil {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			id, news := m.confirm.id, m.news
			m.confirm = nil
			return m.begin(m.action(func(ctx context.Context) error {
				_, err := news.DeleteKeyword(ctx, id, notify.AutoConfirmer(true))
				return err
			}))
		case key.Matches(msg, m.keys.Cancel):
			m.confirm = nil
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.Next):
		return m.switchTo(nextRoute(m.route, 1))
	case key.Matches(msg, m.keys.Prev):
		return m.switchTo(nextRoute(m.route, -1))
	case key.Matches(msg, m.keys.Reload):
		return m.begin(m.load(m.route))
	case key.Matches(msg, m.keys.Up):
		m.cursor--
		return nil
	case key.Matches(msg, m.keys.Down):
		m.cursor++
		return nil
	}

	switch m.route {
	case render.RouteNews:
		return m.handleNewsKey(msg)
	case render.RouteKeyword:
		return m.handleDashboardKey(msg)
	case render.RouteInfluencer:
		return m.handleInfluencerKey(msg)
	}
	return m.scroll(msg)
}

func (m *Model) handleNewsKey(msg tea.KeyMsg) tea.Cmd {
	kw, ok := m.selectedKeyword()
	switch {
	case key.Matches(msg, m.keys.Open):
		if !ok {
			return nil
		}
		group := kw.GroupName
		if group == "" {
			group = kw.Keyword
		}
		m.dashboard.SetGroup(group)
		return m.switchTo(render.RouteKeyword)
	case key.Matches(msg, m.keys.Delete):
		if ok {
			m.confirm = &pendingDelete{id: kw.ID, keyword: kw.Keyword}
		}
		return nil
	}
	return m.scroll(msg)
}

func (m *Model) handleDashboardKey(msg tea.KeyMsg) tea.Cmd {
	dashboard := m.dashboard
	q := dashboard.Query()
	switch {
	case key.Matches(msg, m.keys.Back):
		if _, open := m.dashboard.Reason(); open {
			m.dashboard.CloseReason()
			return nil
		}
		return m.switchTo(render.RouteNews)
	case key.Matches(msg, m.keys.Filter):
		m.dashboard.SetFilter(view.NextFilter(q.Filter))
		m.cursor = 0
	case key.Matches(msg, m.keys.Month):
		m.dashboard.SetMonth(view.NextMonth(m.dashboard.Months(), q.Month))
		m.cursor = 0
	case key.Matches(msg, m.keys.Sort):
		m.dashboard.SetSortBy(view.NextSortKey(q.SortBy))
	case key.Matches(msg, m.keys.Order):
		m.dashboard.ToggleOrder()
	case key.Matches(msg, m.keys.Classify):
		a, ok := m.selectedArticle()
		if !ok {
			return nil
		}
		label := nextClassification(a.ClassificationResult)
		return m.begin(m.action(func(ctx context.Context) error {
			return dashboard.UpdateClassification(ctx, a.ID, label, "")
		}))
	case key.Matches(msg, m.keys.Reason):
		a, ok := m.selectedArticle()
		if !ok {
			return nil
		}
		return m.begin(m.action(func(ctx context.Context) error {
			_, err := dashboard.OpenReason(ctx, a.ID)
			return err
		}))
	default:
		return m.scroll(msg)
	}
	return nil
}

func (m *Model) handleInfluencerKey(msg tea.KeyMsg) tea.Cmd {
	sel := m.influencer.Selection()
	switch {
	case key.Matches(msg, m.keys.Brand):
		brands := m.influencer.Brands()
		if len(brands) == 0 {
			return nil
		}
		idx := slices.IndexFunc(brands, func(o model.FilterOption) bool { return string(o.BrandID) == sel.BrandID })
		m.influencer.SelectBrand(string(brands[(idx+1)%len(brands)].BrandID))
	case key.Matches(msg, m.keys.Month):
		brand, ok := m.influencer.CurrentBrand()
		if !ok {
			return nil
		}
		keys := make([]string, 0, len(brand.Months))
		for _, mo := range brand.Months {
			keys = append(keys, mo.MonthKey)
		}
		m.influencer.SelectMonth(cycle(keys, sel.Month))
	case key.Matches(msg, m.keys.Toggle):
		campaigns := m.influencer.MonthCampaigns()
		if m.cursor < 0 || m.cursor >= len(campaigns) {
			return nil
		}
		m.influencer.ToggleCampaign(string(campaigns[m.cursor].CampaignID))
	default:
		return m.scroll(msg)
	}
	m.cursor = min(m.cursor, max(len(m.influencer.MonthCampaigns())-1, 0))
	return m.begin(m.action(m.influencer.Refresh))
}

func (m *Model) scroll(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// switchTo 切换页面并重新加载，离开页面时丢弃光标位置
func (m *Model) switchTo(r render.Route) tea.Cmd {
	if r != render.RouteKeyword {
		m.dashboard.CloseReason()
	}
	m.route = r
	m.cursor = 0
	m.viewport.GotoTop()
	return m.begin(m.load(r))
}

func (m *Model) begin(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	m.pending++
	return cmd
}

func (m *Model) finish() {
	if m.pending > 0 {
		m.pending--
	}
}

func (m Model) load(r render.Route) tea.Cmd {
	ctx := m.ctx
	var fn func(context.Context) error
	switch r {
	case render.RouteNews:
		fn = m.news.Load
	case render.RouteKeyword:
		fn = m.dashboard.Load
	case render.RouteInfluencer:
		fn = m.influencer.Load
	default:
		return nil
	}
	return func() tea.Msg {
		return loadedMsg{route: r, err: fn(ctx)}
	}
}

func (m Model) action(fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return actionMsg{err: fn(ctx)}
	}
}

func (m *Model) startToastTick() tea.Cmd {
	if m.toastTicking || len(m.center.Toasts()) == 0 {
		return nil
	}
	m.toastTicking = true
	return m.toastTick()
}

func (m Model) toastTick() tea.Cmd {
	return tea.Tick(toastInterval, func(t time.Time) tea.Msg { return toastTickMsg(t) })
}

func (m Model) liveTick() tea.Cmd {
	return tea.Tick(m.liveInterval, func(t time.Time) tea.Msg { return liveTickMsg(t) })
}

func (m Model) selectedKeyword() (model.Keyword, bool) {
	keywords := m.news.Keywords()
	if m.cursor < 0 || m.cursor >= len(keywords) {
		return model.Keyword{}, false
	}
	return keywords[m.cursor], true
}

func (m Model) selectedArticle() (model.Article, bool) {
	articles := m.dashboard.Articles()
	if m.cursor < 0 || m.cursor >= len(articles) {
		return model.Article{}, false
	}
	return articles[m.cursor], true
}

func (m Model) rows() int {
	switch m.route {
	case render.RouteNews:
		return len(m.news.Keywords())
	case render.RouteKeyword:
		return len(m.dashboard.Articles())
	case render.RouteInfluencer:
		return len(m.influencer.MonthCampaigns())
	}
	return 0
}

func (m *Model) clampCursor() {
	n := m.rows()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) syncViewport() {
	m.viewport.SetContent(m.content())
}

func (m Model) content() string {
	switch m.route {
	case render.RouteNews:
		return render.NewsPage(m.news)
	case render.RouteKeyword:
		return render.KeywordDashboardPage(m.dashboard)
	case render.RouteInfluencer:
		return render.InfluencerPage(m.influencer)
	case render.RouteTrends:
		return render.TrendsPage(m.trends)
	}
	return ""
}

func (m Model) selectionLine() string {
	switch m.route {
	case render.RouteNews:
		if kw, ok := m.selectedKeyword(); ok {
			return render.Muted("선택: ") + kw.Keyword + render.Muted(" ["+kw.GroupName+"]")
		}
	case render.RouteKeyword:
		if a, ok := m.selectedArticle(); ok {
			return render.Muted("선택: ") + a.Title
		}
	case render.RouteInfluencer:
		campaigns := m.influencer.MonthCampaigns()
		if m.cursor < len(campaigns) {
			c := campaigns[m.cursor]
			mark := "[ ]"
			if slices.Contains(m.influencer.Selection().CampaignIDs, string(c.CampaignID)) {
				mark = "[x]"
			}
			return render.Muted("캠페인: ") + mark + " " + c.CampName
		}
	}
	return ""
}

func (m Model) View() string {
	right := ""
	if m.pending > 0 {
		right = m.spinner.View() + " 불러오는 중"
	}
	parts := []string{
		render.Header(m.width, right),
		render.Layout(m.route, m.viewport.View()),
	}
	if line := m.selectionLine(); line != "" {
		parts = append(parts, line)
	}
	if m.confirm != nil {
		parts = append(parts, render.ConfirmView(notify.DeleteKeywordConfirm)+render.Muted("  "+m.confirm.keyword))
	}
	var toasts []string
	for _, t := range m.center.Toasts() {
		toasts = append(toasts, render.ToastView(t))
	}
	if len(toasts) > 0 {
		parts = append(parts, strings.Join(toasts, "\n"))
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Run 启动看板，ctx 取消时退出
func Run(ctx context.Context, api API, cfg *config.GlobalConfig) error {
	m := New(ctx, api, cfg)
	defer m.Close()
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
