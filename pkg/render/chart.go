package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"keyword-monitor/pkg/model"
	"keyword-monitor/pkg/view"
)

// 折线图每个点的标记，按序列顺序使用
var seriesMarks = []rune{'●', '■', '▲', '◆', '★', '○', '□'}

// LineChart 把多条序列画成文字折线图，纵轴固定为 [lo, hi]，height 为行数
func LineChart(series []model.Series, labels []string, lo, hi float64, height int) string {
	if height < 2 || hi <= lo || len(labels) == 0 {
		return ""
	}
	const colWidth = 8
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", colWidth*len(labels)))
	}

	for si, s := range series {
		mark := seriesMarks[si%len(seriesMarks)]
		for x, v := range s.Values {
			if x >= len(labels) {
				break
			}
			row := scaleRow(v, lo, hi, height)
			col := x*colWidth + colWidth/2
			if grid[row][col] == ' ' {
				grid[row][col] = mark
			} else if col+1 < len(grid[row]) {
				grid[row][col+1] = mark
			}
		}
	}

	var b strings.Builder
	for i, row := range grid {
		value := hi - (hi-lo)*float64(i)/float64(height-1)
		fmt.Fprintf(&b, "%4.0f │%s\n", value, string(row))
	}
	b.WriteString("     └" + strings.Repeat("─", colWidth*len(labels)) + "\n      ")
	for _, l := range labels {
		pad := colWidth - lipgloss.Width(l)
		left := pad / 2
		if left < 0 {
			left = 0
		}
		b.WriteString(strings.Repeat(" ", left) + l + strings.Repeat(" ", max(pad-left, 0)))
	}
	b.WriteString("\n")
	b.WriteString(Legend(series))
	return b.String()
}

// scaleRow 数值对应的行号，0 为最上面一行
func scaleRow(v, lo, hi float64, height int) int {
	v = math.Max(lo, math.Min(hi, v))
	ratio := (v - lo) / (hi - lo)
	return height - 1 - int(math.Round(ratio*float64(height-1)))
}

// Legend 图例
func Legend(series []model.Series) string {
	parts := make([]string, 0, len(series))
	for i, s := range series {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color))
		parts = append(parts, style.Render(string(seriesMarks[i%len(seriesMarks)])+" "+s.Label))
	}
	return strings.Join(parts, "  ")
}

// BarChart 横向条形图，宽度按最大值缩放
func BarChart(labels []string, values []float64, width int) string {
	if len(labels) != len(values) || width <= 0 {
		return ""
	}
	maxValue := 0.0
	labelWidth := 0
	for i, v := range values {
		maxValue = math.Max(maxValue, v)
		labelWidth = max(labelWidth, lipgloss.Width(labels[i]))
	}
	var b strings.Builder
	for i, v := range values {
		n := 0
		if maxValue > 0 {
			n = int(math.Round(v / maxValue * float64(width)))
		}
		pad := labelWidth - lipgloss.Width(labels[i])
		fmt.Fprintf(&b, "%s%s │%s %g\n", labels[i], strings.Repeat(" ", pad), strings.Repeat("█", n), v)
	}
	return b.String()
}

// BubbleList 气泡图的文字版本：按布局后的直径画条形
func BubbleList(circles []view.Circle) string {
	labels := make([]string, 0, len(circles))
	values := make([]float64, 0, len(circles))
	for _, c := range circles {
		labels = append(labels, c.Name)
		values = append(values, c.Value)
	}
	return BarChart(labels, values, 30)
}
