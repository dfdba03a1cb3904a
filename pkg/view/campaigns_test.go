package view

import (
	"testing"

	"keyword-monitor/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeCampaigns(t *testing.T) {
	data := &model.DashboardData{
		Total: 3,
		Campaigns: []model.Campaign{
			{CampaignID: "1", CompletionRate: 90, BusinessRuleAlerts: []string{"해시태그 누락"}},
			{CampaignID: "2", CompletionRate: 20},
			{CampaignID: "3", CompletionRate: 55.5, BusinessRuleAlerts: []string{"a", "b"}},
		},
	}
	s := SummarizeCampaigns(data)
	assert.Equal(t, CampaignSummary{Total: 3, AverageCompletion: 55, HighPerformers: 1, LowPerformers: 1, RuleAlerts: 3}, s)

	insights := Insights(s)
	require.Len(t, insights, 4)
	assert.Equal(t, "총 3개 캠페인 • 평균 완료율 55%", insights[0].Desc)
}

func TestSummarizeCampaignsEmpty(t *testing.T) {
	assert.Equal(t, CampaignSummary{}, SummarizeCampaigns(nil))
	s := SummarizeCampaigns(&model.DashboardData{})
	assert.Len(t, Insights(s), 1)
}

func TestDefaultBrand(t *testing.T) {
	options := []model.FilterOption{
		{BrandID: "10", BrandName: "MLB"},
		{BrandID: "20", BrandName: "디스커버리 익스페디션"},
	}
	id, ok := DefaultBrand(options)
	require.True(t, ok)
	assert.Equal(t, "20", id)

	id, ok = DefaultBrand(options[:1])
	require.True(t, ok)
	assert.Equal(t, "10", id)

	_, ok = DefaultBrand(nil)
	assert.False(t, ok)
}

func TestMonthCampaigns(t *testing.T) {
	options := []model.FilterOption{{
		BrandID: "1",
		Months: []model.MonthOption{
			{MonthKey: "2024-06", Campaigns: []model.CampaignOption{{CampaignID: "c1"}, {CampaignID: "c2"}}},
		},
	}}
	assert.Len(t, MonthCampaigns(options, "1", "2024-06"), 2)
	assert.Empty(t, MonthCampaigns(options, "1", ""))
	assert.Empty(t, MonthCampaigns(options, "2", "2024-06"))
}

func TestCirclePack(t *testing.T) {
	items := []PackItem{{Name: "티셔츠", Value: 120}, {Name: "모자", Value: 8}}
	circles := CirclePack(items, 400, 320)
	require.Len(t, circles, 3)

	maxRadius := 320 * 0.35
	assert.InDelta(t, maxRadius*2, circles[0].Size, 1e-9)
	assert.Less(t, circles[1].Size, circles[0].Size)
	assert.Equal(t, TotalLabel, circles[2].Name)
	assert.InDelta(t, 128.0, circles[2].Value, 1e-9)
	assert.Nil(t, CirclePack(nil, 400, 320))
}
