package view

import (
	"fmt"
	"slices"
	"strings"

	"keyword-monitor/pkg/collation"
	"keyword-monitor/pkg/model"

	"github.com/pkg/errors"
)

// ClassFilter 分类筛选
type ClassFilter string

const (
	FilterAll          ClassFilter = "all"
	FilterPressRelease             = ClassFilter(model.ClassPressRelease)
	FilterOrganic                  = ClassFilter(model.ClassOrganic)
)

// SortKey 文章排序字段
type SortKey string

const (
	SortByDate  SortKey = "date"
	SortByTitle SortKey = "title"
	SortByPress SortKey = "press"
)

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// MonthAll 不按月份筛选
const MonthAll = "all"

// ArticleQuery 文章列表的筛选与排序条件，排序字段与方向互相独立
type ArticleQuery struct {
	Filter ClassFilter `json:"filter"`
	Month  string      `json:"month"`
	SortBy SortKey     `json:"sort_by"`
	Order  SortOrder   `json:"order"`
}

func DefaultArticleQuery() ArticleQuery {
	return ArticleQuery{Filter: FilterAll, SortBy: SortByDate, Order: Desc}
}

func (q ArticleQuery) WithFilter(f ClassFilter) ArticleQuery {
	q.Filter = f
	return q
}

func (q ArticleQuery) WithMonth(month string) ArticleQuery {
	q.Month = month
	return q
}

func (q ArticleQuery) WithSortBy(key SortKey) ArticleQuery {
	q.SortBy = key
	return q
}

func (q ArticleQuery) WithOrder(order SortOrder) ArticleQuery {
	q.Order = order
	return q
}

// ToggleOrder 切换升降序
func (q ArticleQuery) ToggleOrder() ArticleQuery {
	if q.normalized().Order == Desc {
		q.Order = Asc
	} else {
		q.Order = Desc
	}
	return q
}

func (q ArticleQuery) normalized() ArticleQuery {
	if q.Filter == "" {
		q.Filter = FilterAll
	}
	if q.SortBy == "" {
		q.SortBy = SortByDate
	}
	if q.Order == "" {
		q.Order = Desc
	}
	return q
}

// ApplyArticleQuery 先筛选再排序
func ApplyArticleQuery(articles []model.Article, q ArticleQuery) []model.Article {
	q = q.normalized()
	return SortArticles(FilterArticles(articles, q.Filter, q.Month), q.SortBy, q.Order)
}

// FilterArticles 返回同时满足分类和月份条件的文章，month 为空或 all 时不按月份筛选
func FilterArticles(articles []model.Article, filter ClassFilter, month string) []model.Article {
	out := make([]model.Article, 0, len(articles))
	for _, a := range articles {
		if filter != "" && filter != FilterAll && a.ClassificationResult != model.Classification(filter) {
			continue
		}
		if month != "" && month != MonthAll {
			key, ok := MonthKey(a)
			if !ok || key != month {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// SortArticles 返回排序后的新切片，相等元素保持原顺序
func SortArticles(articles []model.Article, key SortKey, order SortOrder) []model.Article {
	out := slices.Clone(articles)
	cmp := articleComparator(key)
	slices.SortStableFunc(out, func(a, b model.Article) int {
		if order == Desc {
			return -cmp(a, b)
		}
		return cmp(a, b)
	})
	return out
}

func articleComparator(key SortKey) func(a, b model.Article) int {
	switch key {
	case SortByTitle:
		return func(a, b model.Article) int { return collation.Compare(a.Title, b.Title) }
	case SortByPress:
		return func(a, b model.Article) int { return collation.Compare(a.Press, b.Press) }
	default:
		// 无法解析的日期视为最早
		return func(a, b model.Article) int {
			ta, _ := a.PublishedAt()
			tb, _ := b.PublishedAt()
			return ta.Compare(tb)
		}
	}
}

// PatchClassification 人工修改分类成功后只更新对应文章，置信度视为 1.0
func PatchClassification(articles []model.Article, id int64, label model.Classification) []model.Article {
	out := slices.Clone(articles)
	for i := range out {
		if out[i].ID == id {
			out[i].ClassificationResult = label
			out[i].ConfidenceScore = 1.0
		}
	}
	return out
}

// ParseClassFilter 解析命令行/查询参数中的分类筛选
func ParseClassFilter(s string) (ClassFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "press", "press_release", "press-release", string(model.ClassPressRelease):
		return FilterPressRelease, nil
	case "organic", string(model.ClassOrganic):
		return FilterOrganic, nil
	}
	return "", errors.Errorf("未知的分类筛选: %s", s)
}

func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortByDate:
		return SortByDate, nil
	case SortByTitle:
		return SortByTitle, nil
	case SortByPress:
		return SortByPress, nil
	}
	return "", errors.Errorf("未知的排序字段: %s", s)
}

func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", Desc:
		return Desc, nil
	case Asc:
		return Asc, nil
	}
	return "", errors.Errorf("未知的排序方向: %s", s)
}

// ClassificationBadge 分类标签文本，例如 "보도자료 (87%)"
func ClassificationBadge(label model.Classification, confidence float64) string {
	return fmt.Sprintf("%s (%d%%)", label.Label(), roundHalfUp(confidence*100))
}

// FilterLabel 筛选项展示名
func FilterLabel(f ClassFilter) string {
	switch f {
	case FilterPressRelease, FilterOrganic:
		return string(f)
	default:
		return "전체"
	}
}

// NextFilter 终端界面中循环切换筛选
func NextFilter(f ClassFilter) ClassFilter {
	switch f {
	case FilterAll, "":
		return FilterPressRelease
	case FilterPressRelease:
		return FilterOrganic
	default:
		return FilterAll
	}
}

// NextSortKey 循环切换排序字段
func NextSortKey(k SortKey) SortKey {
	switch k {
	case SortByDate, "":
		return SortByTitle
	case SortByTitle:
		return SortByPress
	default:
		return SortByDate
	}
}
