package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"keyword-monitor/pkg/model"

	"go.uber.org/zap"
)

// ListKeywords GET /api/keywords，该接口没有 success 字段，只返回 {keywords: [...]}
func (c *Client) ListKeywords(ctx context.Context) ([]model.Keyword, error) {
	const path = "/api/keywords"
	status, data, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	var body struct {
		Keywords []model.Keyword `json:"keywords"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, &APIError{Endpoint: path, Status: status, Message: snippet(data), cause: err}
	}
	if body.Keywords == nil {
		zap.S().Warnf("关键词列表为空或格式错误, status: %d", status)
		return nil, &APIError{Endpoint: path, Status: status, Message: snippet(data)}
	}
	return body.Keywords, nil
}

func (c *Client) mutateKeyword(ctx context.Context, method, path string, body interface{}) (*model.MutationResult, error) {
	env, err := c.callEnvelope(ctx, method, path, nil, body, nil)
	if err != nil {
		return nil, err
	}
	return &model.MutationResult{Message: env.Message, Type: env.Type, GroupName: env.GroupName}, nil
}

// CreateKeyword POST /api/keywords
func (c *Client) CreateKeyword(ctx context.Context, in model.KeywordInput) (*model.MutationResult, error) {
	return c.mutateKeyword(ctx, http.MethodPost, "/api/keywords", in)
}

// UpdateKeyword PUT /api/keywords/:id
func (c *Client) UpdateKeyword(ctx context.Context, id int64, in model.KeywordInput) (*model.MutationResult, error) {
	return c.mutateKeyword(ctx, http.MethodPut, "/api/keywords/"+strconv.FormatInt(id, 10), in)
}

// DeleteKeyword DELETE /api/keywords/:id，后端为软删除
func (c *Client) DeleteKeyword(ctx context.Context, id int64) (*model.MutationResult, error) {
	return c.mutateKeyword(ctx, http.MethodDelete, "/api/keywords/"+strconv.FormatInt(id, 10), nil)
}

// KeywordStats GET /api/keywords/stats
func (c *Client) KeywordStats(ctx context.Context) (*model.KeywordStats, error) {
	var out model.KeywordStats
	if _, err := c.callEnvelope(ctx, http.MethodGet, "/api/keywords/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MonthlyStats GET /api/keywords/monthly_stats，每个关键词一行
func (c *Client) MonthlyStats(ctx context.Context) ([]model.MonthlyStat, error) {
	var out []model.MonthlyStat
	if _, err := c.callEnvelope(ctx, http.MethodGet, "/api/keywords/monthly_stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DashboardSummary GET /api/dashboard/summary
func (c *Client) DashboardSummary(ctx context.Context) (*model.DashboardSummary, error) {
	var out model.DashboardSummary
	if _, err := c.callEnvelope(ctx, http.MethodGet, "/api/dashboard/summary", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GroupStats GET /api/keywords/group/:groupName/stats
func (c *Client) GroupStats(ctx context.Context, group string) (*model.GroupStats, error) {
	var out model.GroupStats
	path := "/api/keywords/group/" + url.PathEscape(group) + "/stats"
	if _, err := c.callEnvelope(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GroupArticles GET /api/keywords/group/:groupName/articles
func (c *Client) GroupArticles(ctx context.Context, group string) ([]model.Article, error) {
	var out []model.Article
	path := "/api/keywords/group/" + url.PathEscape(group) + "/articles"
	if _, err := c.callEnvelope(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Article{}
	}
	return out, nil
}

// UpdateClassification PUT /api/keywords/article/:id/classification，成功时返回后端信息
func (c *Client) UpdateClassification(ctx context.Context, id int64, label model.Classification, reason string) (string, error) {
	path := "/api/keywords/article/" + strconv.FormatInt(id, 10) + "/classification"
	body := model.ClassificationUpdate{Classification: label, Reason: reason}
	env, err := c.callEnvelope(ctx, http.MethodPut, path, nil, body, nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// ClassificationReason GET /api/keywords/article/:id/classification-reason
func (c *Client) ClassificationReason(ctx context.Context, id int64) (*model.ClassificationReason, error) {
	var out model.ClassificationReason
	path := "/api/keywords/article/" + strconv.FormatInt(id, 10) + "/classification-reason"
	if _, err := c.callEnvelope(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
