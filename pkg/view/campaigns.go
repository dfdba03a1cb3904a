package view

import (
	"fmt"
	"strings"

	"keyword-monitor/pkg/model"
)

const (
	highCompletionRate = 80
	lowCompletionRate  = 30
)

// CampaignSummary 当前筛选条件下的活动汇总
type CampaignSummary struct {
	Total             int `json:"total"`
	AverageCompletion int `json:"average_completion"`
	HighPerformers    int `json:"high_performers"`
	LowPerformers     int `json:"low_performers"`
	RuleAlerts        int `json:"rule_alerts"`
}

func SummarizeCampaigns(data *model.DashboardData) CampaignSummary {
	var s CampaignSummary
	if data == nil {
		return s
	}
	s.Total = int(data.Total)
	sum := 0.0
	for _, c := range data.Campaigns {
		rate := float64(c.CompletionRate)
		sum += rate
		if rate > highCompletionRate {
			s.HighPerformers++
		}
		if rate < lowCompletionRate {
			s.LowPerformers++
		}
		s.RuleAlerts += len(c.BusinessRuleAlerts)
	}
	if n := len(data.Campaigns); n > 0 {
		s.AverageCompletion = roundHalfUp(sum / float64(n))
	}
	return s
}

// Insight 提醒卡片
type Insight struct {
	Icon      string `json:"icon"`
	Title     string `json:"title"`
	Desc      string `json:"desc"`
	Action    string `json:"action"`
	Secondary bool   `json:"secondary"`
}

// Insights 根据汇总生成提醒，没有对应情况的卡片不出现
func Insights(s CampaignSummary) []Insight {
	out := []Insight{{
		Icon:   "📊",
		Title:  "선택된 필터 요약",
		Desc:   fmt.Sprintf("총 %d개 캠페인 • 평균 완료율 %d%%", s.Total, s.AverageCompletion),
		Action: "리포트 생성",
	}}
	if s.HighPerformers > 0 {
		out = append(out, Insight{
			Icon:   "🚀",
			Title:  "높은 성과 캠페인 감지",
			Desc:   fmt.Sprintf("%d개 캠페인이 %d%% 이상 완료율 달성", s.HighPerformers, highCompletionRate),
			Action: "광고 집행 제안",
		})
	}
	if s.LowPerformers > 0 {
		out = append(out, Insight{
			Icon:      "⏰",
			Title:     "주의 필요 캠페인",
			Desc:      fmt.Sprintf("%d개 캠페인의 완료율이 %d%% 미만", s.LowPerformers, lowCompletionRate),
			Action:    "팔로업 DM",
			Secondary: true,
		})
	}
	if s.RuleAlerts > 0 {
		out = append(out, Insight{
			Icon:      "⚠️",
			Title:     "비즈니스 룰 위반 감지",
			Desc:      fmt.Sprintf("%d개 알림 • 즉시 조치 필요", s.RuleAlerts),
			Action:    "규칙 안내 DM",
			Secondary: true,
		})
	}
	return out
}

// DefaultBrand 默认选中 Discovery 品牌，没有时取第一个
func DefaultBrand(options []model.FilterOption) (string, bool) {
	if len(options) == 0 {
		return "", false
	}
	for _, o := range options {
		if strings.Contains(o.BrandName, "디스커버리") || strings.Contains(strings.ToLower(o.BrandName), "discovery") {
			return string(o.BrandID), true
		}
	}
	return string(options[0].BrandID), true
}

// FindBrand 按 ID 查找品牌
func FindBrand(options []model.FilterOption, brandID string) (model.FilterOption, bool) {
	for _, o := range options {
		if string(o.BrandID) == brandID {
			return o, true
		}
	}
	return model.FilterOption{}, false
}

// MonthCampaigns 品牌某个月份下的活动
func MonthCampaigns(options []model.FilterOption, brandID, month string) []model.CampaignOption {
	brand, ok := FindBrand(options, brandID)
	if !ok || month == "" {
		return nil
	}
	for _, m := range brand.Months {
		if m.MonthKey == month {
			return m.Campaigns
		}
	}
	return nil
}

// BrandLabel 品牌的简短展示名
func BrandLabel(name string) string {
	if name == "디스커버리 익스페디션" {
		return "디스커버리"
	}
	return name
}
