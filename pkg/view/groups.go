package view

import (
	"math"

	"keyword-monitor/pkg/model"
)

// FoldGroupStats 把关键词月度统计按分组合并，类型取第一次出现的值，结果保持分组首次出现的顺序。
// 合并完成后再计算每组新闻稿占全部分组新闻稿的比例。
func FoldGroupStats(rows []model.MonthlyStat) []model.GroupMonthlyStat {
	index := make(map[string]int)
	groups := make([]model.GroupMonthlyStat, 0)
	for _, row := range rows {
		i, ok := index[row.GroupName]
		if !ok {
			i = len(groups)
			index[row.GroupName] = i
			groups = append(groups, model.GroupMonthlyStat{
				GroupName: row.GroupName,
				Type:      row.Type,
			})
		}
		groups[i].TotalArticles += row.TotalArticles
		groups[i].PressReleases += row.PressReleases
	}

	total := 0
	for _, g := range groups {
		total += g.PressReleases
	}
	for i := range groups {
		groups[i].CoveragePercent = CoveragePercent(groups[i].PressReleases, total)
	}
	return groups
}

// CoveragePercent round(part / total * 100)，total 为 0 时返回 0
func CoveragePercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return roundHalfUp(float64(part) / float64(total) * 100)
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
