package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"keyword-monitor/pkg/model"
)

const influencerPrefix = "/api/influencer-monitoring"

// HierarchicalFilters 品牌 → 月份 → 活动 的完整筛选树
func (c *Client) HierarchicalFilters(ctx context.Context) (*model.HierarchicalFilters, error) {
	var out model.HierarchicalFilters
	if err := c.callRaw(ctx, http.MethodGet, influencerPrefix+"/filter-options/hierarchical", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Campaigns 按筛选条件查询活动监控数据，空条件不会出现在查询参数中
func (c *Client) Campaigns(ctx context.Context, f model.CampaignFilter) (*model.DashboardData, error) {
	var out model.DashboardData
	if err := c.callRaw(ctx, http.MethodGet, influencerPrefix+"/campaigns", campaignQuery(f), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func campaignQuery(f model.CampaignFilter) url.Values {
	q := url.Values{}
	if f.BrandID != "" {
		q.Set("brand_id", f.BrandID)
	}
	if f.Month != "" {
		q.Set("month", f.Month)
	}
	if len(f.CampaignIDs) > 0 {
		q.Set("campaign_ids", strings.Join(f.CampaignIDs, ","))
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

// LatestContents 最近 hours 小时内上传的内容
func (c *Client) LatestContents(ctx context.Context, brandID string, hours, limit int) ([]model.ContentItem, error) {
	q := url.Values{}
	if brandID != "" {
		q.Set("brand_id", brandID)
	}
	if hours > 0 {
		q.Set("hours", strconv.Itoa(hours))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out struct {
		Contents []model.ContentItem `json:"contents"`
	}
	if err := c.callRaw(ctx, http.MethodGet, influencerPrefix+"/latest-contents", q, &out); err != nil {
		return nil, err
	}
	return out.Contents, nil
}
