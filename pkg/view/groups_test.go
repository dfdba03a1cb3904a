package view

import (
	"math/rand"
	"testing"

	"keyword-monitor/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldGroupStatsScenario(t *testing.T) {
	rows := []model.MonthlyStat{
		{GroupName: "G1", Type: model.TypeOwn, PressReleases: 10, TotalArticles: 20},
		{GroupName: "G2", Type: model.TypeCompetitor, PressReleases: 30, TotalArticles: 40},
	}
	got := FoldGroupStats(rows)
	require.Len(t, got, 2)
	assert.Equal(t, 25, got[0].CoveragePercent)
	assert.Equal(t, 75, got[1].CoveragePercent)
}

func TestFoldGroupStatsMergesRows(t *testing.T) {
	rows := []model.MonthlyStat{
		{Keyword: "MLB", GroupName: "MLB", Type: model.TypeOwn, TotalArticles: 5, PressReleases: 2},
		{Keyword: "나이키", GroupName: "나이키", Type: model.TypeCompetitor, TotalArticles: 3, PressReleases: 0},
		{Keyword: "엠엘비", GroupName: "MLB", Type: model.TypeCompetitor, TotalArticles: 4, PressReleases: 1},
	}
	got := FoldGroupStats(rows)
	assert.Equal(t, []model.GroupMonthlyStat{
		{GroupName: "MLB", Type: model.TypeOwn, TotalArticles: 9, PressReleases: 3, CoveragePercent: 100},
		{GroupName: "나이키", Type: model.TypeCompetitor, TotalArticles: 3, PressReleases: 0, CoveragePercent: 0},
	}, got)
}

func TestFoldGroupStatsZeroDenominator(t *testing.T) {
	got := FoldGroupStats([]model.MonthlyStat{{GroupName: "A", TotalArticles: 3}, {GroupName: "B"}})
	for _, g := range got {
		assert.Equal(t, 0, g.CoveragePercent)
	}
	assert.Empty(t, FoldGroupStats(nil))
}

func TestFoldGroupStatsProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	names := []string{"A", "B", "C", "가", "나"}
	for round := 0; round < 50; round++ {
		rows := make([]model.MonthlyStat, rng.Intn(30))
		sumTotal, sumPress := 0, 0
		for i := range rows {
			rows[i] = model.MonthlyStat{
				GroupName:     names[rng.Intn(len(names))],
				TotalArticles: rng.Intn(100),
				PressReleases: rng.Intn(50),
			}
			sumTotal += rows[i].TotalArticles
			sumPress += rows[i].PressReleases
		}
		got := FoldGroupStats(rows)

		outTotal, outPress := 0, 0
		for _, g := range got {
			outTotal += g.TotalArticles
			outPress += g.PressReleases
			require.GreaterOrEqual(t, g.CoveragePercent, 0)
			require.LessOrEqual(t, g.CoveragePercent, 100)
		}
		require.Equal(t, sumTotal, outTotal)
		require.Equal(t, sumPress, outPress)

		// 交换输入顺序不影响合计
		shuffled := append([]model.MonthlyStat(nil), rows...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		byName := func(gs []model.GroupMonthlyStat) map[string][2]int {
			m := make(map[string][2]int)
			for _, g := range gs {
				m[g.GroupName] = [2]int{g.TotalArticles, g.PressReleases}
			}
			return m
		}
		require.Equal(t, byName(got), byName(FoldGroupStats(shuffled)))
	}
}

func TestCoveragePercentRounding(t *testing.T) {
	assert.Equal(t, 33, CoveragePercent(1, 3))
	assert.Equal(t, 67, CoveragePercent(2, 3))
	assert.Equal(t, 50, CoveragePercent(1, 2))
	assert.Equal(t, 0, CoveragePercent(5, 0))
}
