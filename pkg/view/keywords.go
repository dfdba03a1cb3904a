// Package view 把后端返回的原始数据转换成页面展示用的视图
package view

import (
	"slices"
	"strings"

	"keyword-monitor/pkg/collation"
	"keyword-monitor/pkg/model"
)

// SortKeywords 返回排序后的新切片：自有品牌优先，其次按分组名，最后按关键词
func SortKeywords(keywords []model.Keyword) []model.Keyword {
	out := slices.Clone(keywords)
	slices.SortStableFunc(out, compareKeywords)
	return out
}

func compareKeywords(a, b model.Keyword) int {
	aOwn, bOwn := a.Type == model.TypeOwn, b.Type == model.TypeOwn
	if aOwn != bOwn {
		if aOwn {
			return -1
		}
		return 1
	}
	if c := collation.Compare(a.GroupName, b.GroupName); c != 0 {
		return c
	}
	return collation.Compare(a.Keyword, b.Keyword)
}

// KeywordExists 判断关键词是否已存在，exceptID 用于修改时排除自身
func KeywordExists(keywords []model.Keyword, text string, exceptID int64) bool {
	for _, k := range keywords {
		if k.Keyword == text && k.ID != exceptID {
			return true
		}
	}
	return false
}

// GroupNames 按出现顺序返回去重后的分组名
func GroupNames(keywords []model.Keyword) []string {
	seen := make(map[string]struct{}, len(keywords))
	var names []string
	for _, k := range keywords {
		name := strings.TrimSpace(k.GroupName)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
