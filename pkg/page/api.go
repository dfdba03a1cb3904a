// Package page 四个页面的状态：加载、筛选、修改后本地更新
package page

import (
	"context"

	"keyword-monitor/pkg/client"
	"keyword-monitor/pkg/model"
)

// NewsAPI 新闻监控页面用到的接口
type NewsAPI interface {
	ListKeywords(ctx context.Context) ([]model.Keyword, error)
	CreateKeyword(ctx context.Context, in model.KeywordInput) (*model.MutationResult, error)
	UpdateKeyword(ctx context.Context, id int64, in model.KeywordInput) (*model.MutationResult, error)
	DeleteKeyword(ctx context.Context, id int64) (*model.MutationResult, error)
	KeywordStats(ctx context.Context) (*model.KeywordStats, error)
	MonthlyStats(ctx context.Context) ([]model.MonthlyStat, error)
	DashboardSummary(ctx context.Context) (*model.DashboardSummary, error)
}

// GroupAPI 关键词分组看板用到的接口
type GroupAPI interface {
	GroupStats(ctx context.Context, group string) (*model.GroupStats, error)
	GroupArticles(ctx context.Context, group string) ([]model.Article, error)
	UpdateClassification(ctx context.Context, id int64, label model.Classification, reason string) (string, error)
	ClassificationReason(ctx context.Context, id int64) (*model.ClassificationReason, error)
}

// InfluencerAPI 网红监控页面用到的接口
type InfluencerAPI interface {
	HierarchicalFilters(ctx context.Context) (*model.HierarchicalFilters, error)
	Campaigns(ctx context.Context, f model.CampaignFilter) (*model.DashboardData, error)
}

var (
	_ NewsAPI       = (*client.Client)(nil)
	_ GroupAPI      = (*client.Client)(nil)
	_ InfluencerAPI = (*client.Client)(nil)
)
