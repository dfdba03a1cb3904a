// Package render 终端展示：页面布局、表格、文字图表和提示
package render

import (
	"github.com/charmbracelet/lipgloss"

	"keyword-monitor/pkg/model"
	"keyword-monitor/pkg/notify"
)

var (
	colorPrimary = lipgloss.Color("#4285f4")
	colorText    = lipgloss.Color("#23304a")
	colorMuted   = lipgloss.Color("#8c96a8")
	colorBorder  = lipgloss.Color("#dce0e5")
	colorSuccess = lipgloss.Color("#52c41a")
	colorError   = lipgloss.Color("#ff4d4f")
	colorInfo    = lipgloss.Color("#1890ff")
	colorPress   = lipgloss.Color("#1d4ed8")
	colorOrganic = lipgloss.Color("#15803d")
	colorUnknown = lipgloss.Color("#6b7280")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(colorText).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText).MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText).MarginTop(1)

	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(colorBorder).
			Padding(1, 2, 1, 1)

	navItemStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	navActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			Width(22)

	cardValueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)

	toastBase = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 3)
)

// BadgeStyle 分类标签的样式
func BadgeStyle(c model.Classification) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1)
	switch c {
	case model.ClassPressRelease:
		return base.Foreground(colorPress)
	case model.ClassOrganic:
		return base.Foreground(colorOrganic)
	default:
		return base.Foreground(colorUnknown)
	}
}

// ToastStyle 提示的背景色随类型变化
func ToastStyle(kind notify.Kind) lipgloss.Style {
	switch kind {
	case notify.KindSuccess:
		return toastBase.Background(colorSuccess)
	case notify.KindError:
		return toastBase.Background(colorError)
	default:
		return toastBase.Background(colorInfo)
	}
}
