package view

import (
	"math/rand"
	"testing"

	"keyword-monitor/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArticles() []model.Article {
	return []model.Article{
		{ID: 1, Title: "나 기사", Press: "한국일보", PubDate: "2024-06-15 10:00:00", ClassificationResult: model.ClassPressRelease, ConfidenceScore: 0.8},
		{ID: 2, Title: "가 기사", Press: "조선일보", PubDate: "2024-07-01 09:00:00", ClassificationResult: model.ClassOrganic, ConfidenceScore: 0.6},
		{ID: 3, Title: "다 기사", Press: "경향신문", PubDate: "2024-06-01 08:00:00", ClassificationResult: model.ClassOrganic, ConfidenceScore: 0.9},
		{ID: 4, Title: "라 기사", Press: "동아일보", PubDate: "not a date", ClassificationResult: model.ClassUnknown},
	}
}

func ids(articles []model.Article) []int64 {
	out := make([]int64, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.ID)
	}
	return out
}

func TestFilterArticlesMonthScenario(t *testing.T) {
	articles := []model.Article{
		{ID: 1, PubDate: "2024-06-15"},
		{ID: 2, PubDate: "2024-07-01"},
	}
	got := FilterArticles(articles, FilterAll, "2024-06")
	assert.Equal(t, []int64{1}, ids(got))
}

func TestFilterArticles(t *testing.T) {
	tests := []struct {
		name   string
		filter ClassFilter
		month  string
		want   []int64
	}{
		{"all", FilterAll, MonthAll, []int64{1, 2, 3, 4}},
		{"empty month means all", FilterAll, "", []int64{1, 2, 3, 4}},
		{"press only", FilterPressRelease, MonthAll, []int64{1}},
		{"organic in june", FilterOrganic, "2024-06", []int64{3}},
		{"month excludes undated", FilterAll, "2024-07", []int64{2}},
		{"no match", FilterPressRelease, "2024-07", []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterArticles(sampleArticles(), tt.filter, tt.month)))
		})
	}
}

func TestFilterArticlesIsExactPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	classes := []model.Classification{model.ClassPressRelease, model.ClassOrganic, model.ClassUnknown}
	dates := []string{"2024-05-31 23:59:59", "2024-06-01 00:00:00", "2024-06-30", "2024-07-15 12:00:00", ""}
	filters := []ClassFilter{FilterAll, FilterPressRelease, FilterOrganic}
	months := []string{MonthAll, "2024-05", "2024-06", "2024-07"}

	for round := 0; round < 30; round++ {
		articles := make([]model.Article, rng.Intn(25))
		for i := range articles {
			articles[i] = model.Article{
				ID:                   int64(i),
				PubDate:              dates[rng.Intn(len(dates))],
				ClassificationResult: classes[rng.Intn(len(classes))],
			}
		}
		for _, f := range filters {
			for _, m := range months {
				got := FilterArticles(articles, f, m)
				kept := make(map[int64]bool, len(got))
				for _, a := range got {
					kept[a.ID] = true
				}
				for _, a := range articles {
					classOK := f == FilterAll || a.ClassificationResult == model.Classification(f)
					key, ok := MonthKey(a)
					monthOK := m == MonthAll || (ok && key == m)
					require.Equal(t, classOK && monthOK, kept[a.ID], "article %d filter %s month %s", a.ID, f, m)
				}
			}
		}
	}
}

func TestSortArticles(t *testing.T) {
	tests := []struct {
		name  string
		key   SortKey
		order SortOrder
		want  []int64
	}{
		{"date desc", SortByDate, Desc, []int64{2, 1, 3, 4}},
		{"date asc", SortByDate, Asc, []int64{4, 3, 1, 2}},
		{"title asc", SortByTitle, Asc, []int64{2, 1, 3, 4}},
		{"title desc", SortByTitle, Desc, []int64{4, 3, 1, 2}},
		{"press asc", SortByPress, Asc, []int64{3, 4, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(SortArticles(sampleArticles(), tt.key, tt.order)))
		})
	}
}

func TestApplyArticleQueryDefaults(t *testing.T) {
	got := ApplyArticleQuery(sampleArticles(), ArticleQuery{})
	assert.Equal(t, []int64{2, 1, 3, 4}, ids(got))
}

func TestArticleQuerySortControlsAreIndependent(t *testing.T) {
	q := DefaultArticleQuery().WithOrder(Asc)
	q = q.WithSortBy(SortByTitle)
	assert.Equal(t, Asc, q.Order)

	q = q.ToggleOrder()
	assert.Equal(t, SortByTitle, q.SortBy)
	assert.Equal(t, Desc, q.Order)
}

func TestPatchClassificationScenario(t *testing.T) {
	articles := []model.Article{
		{ID: 6, Title: "a", ClassificationResult: model.ClassOrganic, ConfidenceScore: 0.4},
		{ID: 7, Title: "b", Press: "p", ClassificationResult: model.ClassOrganic, ConfidenceScore: 0.55},
		{ID: 8, Title: "c", ClassificationResult: model.ClassUnknown, ConfidenceScore: 0},
	}
	got := PatchClassification(articles, 7, model.ClassPressRelease)

	assert.Equal(t, articles[0], got[0])
	assert.Equal(t, articles[2], got[2])
	assert.Equal(t, model.Article{ID: 7, Title: "b", Press: "p", ClassificationResult: model.ClassPressRelease, ConfidenceScore: 1.0}, got[1])
	// 原切片未被修改
	assert.Equal(t, model.ClassOrganic, articles[1].ClassificationResult)
}

func TestParseQueryValues(t *testing.T) {
	f, err := ParseClassFilter("press")
	require.NoError(t, err)
	assert.Equal(t, FilterPressRelease, f)

	f, err = ParseClassFilter("오가닉")
	require.NoError(t, err)
	assert.Equal(t, FilterOrganic, f)

	_, err = ParseClassFilter("rumor")
	assert.Error(t, err)

	k, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortByDate, k)

	_, err = ParseSortOrder("sideways")
	assert.Error(t, err)
}

func TestClassificationBadge(t *testing.T) {
	assert.Equal(t, "보도자료 (87%)", ClassificationBadge(model.ClassPressRelease, 0.87))
	assert.Equal(t, "미분류 (0%)", ClassificationBadge(model.ClassUnknown, 0))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, `MLB "신상" 출시`, CleanText(`<b>MLB</b> &quot;신상&quot;   출시`))
	assert.Equal(t, "", CleanText(""))
}
