package render

import (
	"fmt"
	"strconv"
	"strings"

	"keyword-monitor/pkg/page"
	"keyword-monitor/pkg/view"
)

// NewsPage 新闻监控页：统计卡片、本月分组统计、关键词列表、通知设置
func NewsPage(p *page.NewsMonitoring) string {
	var b strings.Builder
	b.WriteString(PageTitle("뉴스 모니터링") + "\n")

	stats, _ := p.Stats()
	summary, _ := p.Summary()
	b.WriteString(Cards(
		StatCard{Title: "모니터링 브랜드", Value: strconv.Itoa(stats.TotalCount)},
		StatCard{Title: "이번 달 수집된 기사", Value: strconv.Itoa(summary.MonthArticles)},
		StatCard{Title: "보도자료", Value: strconv.Itoa(summary.MonthPressReleases)},
		StatCard{Title: "오가닉 기사", Value: strconv.Itoa(summary.MonthOrganicArticles)},
	) + "\n")

	b.WriteString(Section("월간 통계") + "\n")
	GroupCardTable(&b, p.GroupCards())

	keywords := p.Keywords()
	b.WriteString(Section(fmt.Sprintf("모니터링 키워드 (%d)", len(keywords))) + "\n")
	KeywordTable(&b, keywords)

	s := p.Settings()
	b.WriteString(Section("알림 설정") + "\n")
	b.WriteString(settingLine("일일 리포트", "매일 오전 9시에 전일 모니터링 결과를 이메일로 전송", s.DailyReport))
	b.WriteString(settingLine("실시간 알림", "중요 이슈 발생 시 즉시 알림", s.RealtimeAlert))
	b.WriteString(settingLine("주간 분석 리포트", "매주 월요일 오전 10시에 주간 트렌드 분석 리포트 전송", s.WeeklyReport))
	return b.String()
}

func settingLine(title, desc string, on bool) string {
	state := "OFF"
	if on {
		state = "ON "
	}
	return fmt.Sprintf("[%s] %s  %s\n", state, title, Muted(desc))
}

// KeywordDashboardPage 分组看板：本月统计、筛选条件、文章列表
func KeywordDashboardPage(p *page.KeywordDashboard) string {
	var b strings.Builder
	b.WriteString(PageTitle(p.Group()+" 키워드 대시보드") + "\n")

	stats, _ := p.Stats()
	b.WriteString(Cards(
		StatCard{Title: "이번 달 기사", Value: strconv.Itoa(stats.TotalArticles)},
		StatCard{Title: "보도자료", Value: strconv.Itoa(stats.PressReleases)},
		StatCard{Title: "오가닉 기사", Value: strconv.Itoa(stats.OrganicArticles)},
		StatCard{Title: "보도자료 커버리지", Value: fmt.Sprintf("%d%%", stats.MentionRate)},
	) + "\n")

	q := p.Query()
	month := q.Month
	if month == "" || month == view.MonthAll {
		month = "전체"
	}
	b.WriteString(Muted(fmt.Sprintf("분류: %s  |  월: %s  |  정렬: %s %s", view.FilterLabel(q.Filter), month, sortLabel(q.SortBy), orderLabel(q.Order))) + "\n")

	articles := p.Articles()
	b.WriteString(Section(fmt.Sprintf("수집된 기사 (%d건)", len(articles))) + "\n")
	ArticleTable(&b, articles)

	if r, ok := p.Reason(); ok {
		b.WriteString("\n" + ReasonView(r))
	}
	return b.String()
}

// ReasonView 分类原因弹窗
func ReasonView(r page.ReasonView) string {
	body := fmt.Sprintf("%s\n\n분류: %s\n이유: %s\n분류 일시: %s",
		view.CleanText(r.Title),
		view.ClassificationBadge(r.ClassificationResult, r.ConfidenceScore),
		r.Reason,
		r.CreatedAt,
	)
	return modalStyle.Render(titleStyle.Render("분류 이유") + "\n" + body)
}

func sortLabel(k view.SortKey) string {
	switch k {
	case view.SortByTitle:
		return "제목"
	case view.SortByPress:
		return "언론사"
	default:
		return "날짜"
	}
}

func orderLabel(o view.SortOrder) string {
	if o == view.Asc {
		return "↑"
	}
	return "↓"
}

// InfluencerPage 网红监控页：筛选、汇总提醒、活动表、品类气泡、最新内容
func InfluencerPage(p *page.InfluencerMonitoring) string {
	var b strings.Builder
	b.WriteString(PageTitle("인플루언서 모니터링") + "\n")

	sel := p.Selection()
	brand := "-"
	if o, ok := p.CurrentBrand(); ok {
		brand = view.BrandLabel(o.BrandName)
	}
	month := sel.Month
	if month == "" {
		month = "전체"
	}
	b.WriteString(Muted(fmt.Sprintf("브랜드: %s  |  월: %s  |  캠페인: %d개 선택", brand, month, len(sel.CampaignIDs))) + "\n")

	b.WriteString(Section("AI 인사이트") + "\n")
	for _, in := range p.Insights() {
		fmt.Fprintf(&b, "%s %s  %s  [%s]\n", in.Icon, in.Title, Muted(in.Desc), in.Action)
	}

	if data, ok := p.Dashboard(); ok && data != nil {
		b.WriteString(Section(fmt.Sprintf("캠페인 현황 (%d)", data.Total)) + "\n")
		CampaignTable(&b, data.Campaigns)
	}

	b.WriteString(Section("품목별 콘텐츠 공급 현황") + "\n")
	b.WriteString(BubbleList(p.CirclePack()))

	b.WriteString(Section("최신 콘텐츠") + "\n")
	for _, c := range p.Contents() {
		fmt.Fprintf(&b, "%s  ❤️ %d  💬 %d  👁 %d  %s\n", c.Username, c.Likes, c.Comments, c.Views, Muted(c.PostDate))
	}
	return b.String()
}

// TrendsPage 中国社媒趋势页
func TrendsPage(p *page.ChinaSNSTrends) string {
	var b strings.Builder
	b.WriteString(PageTitle("중국 SNS 트렌드") + "\n")

	stats := p.Stats()
	cards := make([]StatCard, 0, len(stats))
	for _, s := range stats {
		cards = append(cards, StatCard{Title: s.Title, Value: s.Value, Sub: s.Change})
	}
	b.WriteString(Cards(cards...) + "\n")

	b.WriteString(Section("브랜드 영향력") + "\n")
	RankingTable(&b, p.BrandRanking())

	b.WriteString(Section("최근 4주 브랜드 영향력") + "\n")
	b.WriteString(LineChart(p.Series(), page.WeekLabels, page.TrendMin, page.TrendMax, 11) + "\n")

	b.WriteString(Section("인기 해시태그") + "\n")
	for i, h := range p.Hashtags() {
		fmt.Fprintf(&b, "%d. %s  %s  %s\n", i+1, h.Name, h.Growth, Muted(h.Posts))
	}

	b.WriteString(Section("협업 추천 크리에이터") + "\n")
	for _, c := range p.Creators() {
		fmt.Fprintf(&b, "%s  팔로워 %s  매칭 %s  %s\n", c.Name, c.Followers, c.Match, Muted(strings.Join(c.Platforms, ", ")))
	}
	return b.String()
}
