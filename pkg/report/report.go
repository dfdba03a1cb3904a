// Package report 每日监控报告
package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"keyword-monitor/config"
	"keyword-monitor/pkg/model"
	"keyword-monitor/pkg/notify"
	"keyword-monitor/pkg/page"
)

const dayLayout = "2006-01-02"

// Reporter 生成前一天的监控报告
type Reporter struct {
	api page.NewsAPI
	cfg *config.ReportConfig
	now func() time.Time
}

func NewReporter(api page.NewsAPI, cfg *config.ReportConfig) *Reporter {
	if cfg == nil {
		cfg = config.NewDefaultReportConfig()
	}
	return &Reporter{api: api, cfg: cfg, now: time.Now}
}

// WithClock 替换时钟，测试用
func (r *Reporter) WithClock(now func() time.Time) *Reporter {
	r.now = now
	return r
}

// Generate 加载新闻监控数据并写入 markdown 文件，返回文件路径
func (r *Reporter) Generate(ctx context.Context) (string, error) {
	p := page.NewNewsMonitoring(r.api, logNotifier{})
	if err := p.Load(ctx); err != nil {
		return "", errors.Wrap(err, "加载监控数据失败")
	}

	now := r.now()
	day := now.AddDate(0, 0, -1).Format(dayLayout)
	var buf bytes.Buffer
	writeMarkdown(&buf, p, day, now)

	if err := os.MkdirAll(r.cfg.OutputDir, 0755); err != nil {
		return "", errors.Wrapf(err, "创建报告目录失败: %s", r.cfg.OutputDir)
	}
	path := filepath.Join(r.cfg.OutputDir, "daily-report-"+day+".md")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", errors.Wrapf(err, "写入报告失败: %s", path)
	}
	zap.S().Infof("每日报告已生成: %s", path)
	return path, nil
}

func writeMarkdown(w io.Writer, p *page.NewsMonitoring, day string, generatedAt time.Time) {
	stats, _ := p.Stats()
	summary, _ := p.Summary()

	fmt.Fprintf(w, "# 뉴스 모니터링 일일 리포트 (%s)\n\n", day)
	fmt.Fprintf(w, "생성 시각: %s\n\n", generatedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintln(w, "## 요약")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "- 모니터링 브랜드: %d\n", stats.TotalCount)
	fmt.Fprintf(w, "- 오늘 수집된 기사: %d (보도자료 %d / 오가닉 %d)\n", stats.TodayArticles, stats.PressReleases, stats.OrganicArticles)
	fmt.Fprintf(w, "- 이번 달 자사 기사: %d (보도자료 %d / 오가닉 %d, 커버리지 %d%%)\n\n",
		summary.MonthArticles, summary.MonthPressReleases, summary.MonthOrganicArticles, summary.CoverageRate)

	fmt.Fprintln(w, "## 월간 통계")
	fmt.Fprintln(w)
	groups := p.GroupCards()
	table := markdownTable(w, []string{"그룹", "유형", "전체 기사", "보도 자료", "보도자료 커버리지"})
	for _, g := range groups {
		table.Append([]string{g.GroupName, string(g.Type), strconv.Itoa(g.TotalArticles), strconv.Itoa(g.PressReleases), fmt.Sprintf("%d%%", g.CoveragePercent)})
	}
	table.Render()
	fmt.Fprintln(w)

	keywords := p.Keywords()
	fmt.Fprintf(w, "## 모니터링 키워드 (%d)\n\n", len(keywords))
	table = markdownTable(w, []string{"키워드", "유형", "그룹"})
	for _, k := range keywords {
		table.Append([]string{k.Keyword, string(k.DisplayType()), groupLabel(k)})
	}
	table.Render()
}

func groupLabel(k model.Keyword) string {
	if k.GroupName == "" {
		return "-"
	}
	return k.GroupName
}

func markdownTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	return table
}

// logNotifier 定时任务没有界面，提示只写日志
type logNotifier struct{}

var _ notify.Notifier = logNotifier{}

func (logNotifier) Success(message string) uint64 {
	zap.S().Info(message)
	return 0
}

func (logNotifier) Error(message string) uint64 {
	zap.S().Warn(message)
	return 0
}

func (logNotifier) Info(message string) uint64 {
	zap.S().Info(message)
	return 0
}
