package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"keyword-monitor/pkg/model"
	"keyword-monitor/pkg/view"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

// KeywordTable 监控关键词列表
func KeywordTable(w io.Writer, keywords []model.Keyword) {
	table := newTable(w, []string{"ID", "키워드", "유형", "그룹"})
	for _, k := range keywords {
		table.Append([]string{strconv.FormatInt(k.ID, 10), k.Keyword, string(k.DisplayType()), k.GroupName})
	}
	table.Render()
}

// GroupCardTable 本月分组统计
func GroupCardTable(w io.Writer, groups []model.GroupMonthlyStat) {
	table := newTable(w, []string{"그룹", "유형", "전체 기사", "보도 자료", "보도자료 커버리지"})
	for _, g := range groups {
		table.Append([]string{
			g.GroupName,
			string(g.Type),
			strconv.Itoa(g.TotalArticles),
			strconv.Itoa(g.PressReleases),
			fmt.Sprintf("%d%%", g.CoveragePercent),
		})
	}
	table.Render()
}

// ArticleTable 分组文章列表
func ArticleTable(w io.Writer, articles []model.Article) {
	table := newTable(w, []string{"ID", "제목", "언론사", "발행일", "분류"})
	for _, a := range articles {
		table.Append([]string{
			strconv.FormatInt(a.ID, 10),
			truncate(view.CleanText(a.Title), 48),
			a.Press,
			formatPubDate(a),
			view.ClassificationBadge(a.ClassificationResult, a.ConfidenceScore),
		})
	}
	table.Render()
}

// CampaignTable 活动监控指标
func CampaignTable(w io.Writer, campaigns []model.Campaign) {
	table := newTable(w, []string{"캠페인", "상태", "인플루언서", "완료율", "콘텐츠 업로드", "배송 완료", "알림"})
	for _, c := range campaigns {
		table.Append([]string{
			c.CampName,
			c.Status,
			strconv.FormatInt(int64(c.TotalInfluencers), 10),
			percent(float64(c.CompletionRate)),
			percent(float64(c.ContentUploadRate)),
			percent(float64(c.DeliveryCompletionRate)),
			strings.Join(c.BusinessRuleAlerts, ", "),
		})
	}
	table.Render()
}

// RankingTable 品牌影响力排名
func RankingTable(w io.Writer, ranking []model.BrandInfluence) {
	table := newTable(w, []string{"순위", "브랜드", "변동", "멘션", "영향력", "업데이트"})
	for i, r := range ranking {
		table.Append([]string{strconv.Itoa(i + 1), r.Brand, RankDelta(r.RankDelta), r.Mentions, r.Score, r.Updated})
	}
	table.Render()
}

// RankDelta 排名变化，例如 ▲2、▼1、-0
func RankDelta(d int) string {
	switch {
	case d > 0:
		return fmt.Sprintf("▲%d", d)
	case d < 0:
		return fmt.Sprintf("▼%d", -d)
	default:
		return "-0"
	}
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func formatPubDate(a model.Article) string {
	t, ok := a.PublishedAt()
	if !ok {
		return a.PubDate
	}
	return t.Format("2006. 01. 02. 15:04")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
