package view

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"

	"keyword-monitor/pkg/model"
)

const monthLayout = "2006-01"

// MonthKey 文章发布时间的 YYYY-MM，日期无法解析时返回 false
func MonthKey(a model.Article) (string, bool) {
	t, ok := a.PublishedAt()
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month())), true
}

// ValidMonthKey 是否为补零的 YYYY-MM，2024-6 这种写法不算
func ValidMonthKey(s string) bool {
	t, err := time.Parse(monthLayout, s)
	return err == nil && t.Format(monthLayout) == s
}

// ParseMonth 解析命令行/查询参数中的月份，空串和 all 都表示全部
func ParseMonth(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, MonthAll) {
		return strings.ToLower(s), nil
	}
	if !ValidMonthKey(s) {
		return "", errors.Errorf("月份格式错误: %s，应为 YYYY-MM", s)
	}
	return s, nil
}

// MonthBuckets 文章覆盖的所有月份，去重后按时间倒序
func MonthBuckets(articles []model.Article) []string {
	seen := make(map[string]struct{})
	months := make([]string, 0)
	for _, a := range articles {
		key, ok := MonthKey(a)
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		months = append(months, key)
	}
	slices.Sort(months)
	slices.Reverse(months)
	return months
}

// MonthSelector 月份选择状态。默认值只自动设置一次：优先当前月，其次最近有数据的月份。
// 用户的选择（包括显式清空）之后不会再被默认逻辑覆盖，切换分组时调用 Reset。
type MonthSelector struct {
	selected string
	chosen   bool
}

func (s *MonthSelector) Selected() string {
	return s.selected
}

// Chosen 是否已经有过选择（默认选择或用户选择）
func (s *MonthSelector) Chosen() bool {
	return s.chosen
}

// ApplyDefault 根据可选月份设置默认值，返回当前选择
func (s *MonthSelector) ApplyDefault(buckets []string, now time.Time) string {
	if s.chosen || len(buckets) == 0 {
		return s.selected
	}
	current := now.Format("2006-01")
	if slices.Contains(buckets, current) {
		s.selected = current
	} else {
		s.selected = buckets[0]
	}
	s.chosen = true
	return s.selected
}

// Select 用户选择月份，MonthAll 表示全部
func (s *MonthSelector) Select(month string) {
	s.selected = month
	s.chosen = true
}

// Clear 用户显式清空选择，等同于不按月份筛选
func (s *MonthSelector) Clear() {
	s.selected = ""
	s.chosen = true
}

// Reset 回到从未选择的状态，下次加载会重新设置默认值
func (s *MonthSelector) Reset() {
	s.selected = ""
	s.chosen = false
}

// NextMonth 终端界面中循环切换月份：all → 最新 → ... → 最早 → all
func NextMonth(buckets []string, current string) string {
	if len(buckets) == 0 {
		return MonthAll
	}
	if current == "" || current == MonthAll {
		return buckets[0]
	}
	idx := slices.Index(buckets, current)
	if idx < 0 || idx == len(buckets)-1 {
		return MonthAll
	}
	return buckets[idx+1]
}
