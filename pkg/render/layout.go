package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"keyword-monitor/pkg/notify"
)

// Route 侧边栏的页面
type Route string

const (
	RouteNews       Route = "/news-monitoring"
	RouteTrends     Route = "/china-sns-trends"
	RouteInfluencer Route = "/influencer-monitoring"
	RouteKeyword    Route = "/keyword-dashboard"
)

// NavItem 侧边栏菜单项
type NavItem struct {
	Route Route
	Label string
}

// NavItems 侧边栏菜单，分组看板从新闻监控页进入，不在菜单中
var NavItems = []NavItem{
	{Route: RouteNews, Label: "뉴스 모니터링"},
	{Route: RouteTrends, Label: "중국 SNS 트렌드"},
	{Route: RouteInfluencer, Label: "인플루언서 모니터링"},
}

const appTitle = "MARKETING AI AGENT"

// Header 顶部标题栏
func Header(width int, right string) string {
	left := appTitle
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Width(max(width, 0)).Render(left + strings.Repeat(" ", gap) + right)
}

// Sidebar 侧边栏，active 为当前页面
func Sidebar(active Route) string {
	lines := make([]string, 0, len(NavItems))
	for _, item := range NavItems {
		if item.Route == active || (active == RouteKeyword && item.Route == RouteNews) {
			lines = append(lines, navActiveStyle.Render("▸ "+item.Label))
			continue
		}
		lines = append(lines, navItemStyle.Render("  "+item.Label))
	}
	return sidebarStyle.Render(strings.Join(lines, "\n"))
}

// Layout 侧边栏 + 内容区
func Layout(active Route, body string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, Sidebar(active), "  ", body)
}

// PageTitle 页面标题
func PageTitle(title string) string {
	return titleStyle.Render(title)
}

// Section 小节标题
func Section(title string) string {
	return sectionStyle.Render(title)
}

// StatCard 统计卡片
type StatCard struct {
	Title string
	Value string
	Sub   string
}

// Cards 横向排列的统计卡片
func Cards(cards ...StatCard) string {
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := c.Title + "\n" + cardValueStyle.Render(c.Value)
		if c.Sub != "" {
			body += "\n" + mutedStyle.Render(c.Sub)
		}
		rendered = append(rendered, cardStyle.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// ToastView 提示条
func ToastView(t notify.Toast) string {
	return ToastStyle(t.Kind).Render(t.Message)
}

// ConfirmView 确认框
func ConfirmView(c notify.Confirm) string {
	return modalStyle.Render(fmt.Sprintf("%s\n\n%s\n\n%s", titleStyle.Render(c.Title), c.Message, mutedStyle.Render("[y] 확인   [n] 취소")))
}

// Muted 次要文字
func Muted(s string) string {
	return mutedStyle.Render(s)
}
