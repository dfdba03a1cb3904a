package server

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"keyword-monitor/pkg/model"
	"keyword-monitor/pkg/notify"
	"keyword-monitor/pkg/page"
	"keyword-monitor/pkg/util"
	"keyword-monitor/pkg/view"
)

type newsView struct {
	Keywords   []model.Keyword           `json:"keywords"`
	Stats      model.KeywordStats        `json:"stats"`
	Summary    model.DashboardSummary    `json:"summary"`
	GroupCards []model.GroupMonthlyStat  `json:"group_cards"`
	Settings   page.NotificationSettings `json:"settings"`
}

type groupView struct {
	Group    string            `json:"group"`
	Stats    model.GroupStats  `json:"stats"`
	Months   []string          `json:"months"`
	Query    view.ArticleQuery `json:"query"`
	Total    int               `json:"total"`
	Articles []model.Article   `json:"articles"`
}

type influencerView struct {
	Selection  page.Selection       `json:"selection"`
	Brands     []model.FilterOption `json:"brands"`
	Dashboard  *model.DashboardData `json:"dashboard,omitempty"`
	Summary    view.CampaignSummary `json:"summary"`
	Insights   []view.Insight       `json:"insights"`
	CirclePack []view.Circle        `json:"circle_pack"`
	Contents   []model.ContentItem  `json:"contents"`
}

type trendsView struct {
	Stats    []model.TrendStat      `json:"stats"`
	Ranking  []model.BrandInfluence `json:"ranking"`
	Weeks    []string               `json:"weeks"`
	Series   []model.Series         `json:"series"`
	Hashtags []model.Hashtag        `json:"hashtags"`
	Creators []model.Creator        `json:"creators"`
}

type classifyRequest struct {
	Classification model.Classification `json:"classification"`
	Reason         string               `json:"reason"`
}

func (s *Server) health(c *gin.Context) {
	ok(c, util.GetVersion(), "")
}

func (s *Server) news(c *gin.Context) {
	var col collector
	p := page.NewNewsMonitoring(s.api, &col)
	if err := p.Load(c.Request.Context()); err != nil {
		fail(c, http.StatusBadGateway, col.message(), err)
		return
	}
	stats, _ := p.Stats()
	summary, _ := p.Summary()
	ok(c, newsView{
		Keywords:   p.Keywords(),
		Stats:      stats,
		Summary:    summary,
		GroupCards: p.GroupCards(),
		Settings:   p.Settings(),
	}, "")
}

func (s *Server) group(c *gin.Context) {
	filter, err := view.ParseClassFilter(c.Query("filter"))
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	sortBy, err := view.ParseSortKey(c.Query("sort"))
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	order, err := view.ParseSortOrder(c.Query("order"))
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	month, err := view.ParseMonth(c.Query("month"))
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	var col collector
	p := page.NewKeywordDashboard(s.api, &col, c.Param("group"))
	p.SetFilter(filter)
	p.SetSortBy(sortBy)
	p.SetOrder(order)
	// 显式指定月份时不再使用默认月份
	if month != "" {
		p.SetMonth(month)
	}
	if err := p.Load(c.Request.Context()); err != nil {
		fail(c, http.StatusBadGateway, col.message(), err)
		return
	}

	stats, _ := p.Stats()
	articles := p.Articles()
	ok(c, groupView{
		Group:    p.Group(),
		Stats:    stats,
		Months:   p.Months(),
		Query:    p.Query(),
		Total:    len(articles),
		Articles: articles,
	}, "")
}

func (s *Server) classify(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "文章 id 错误", err)
		return
	}
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "请求体格式错误", err)
		return
	}
	if req.Classification != "" && !req.Classification.Manual() {
		fail(c, http.StatusBadRequest, "未知的分类: "+string(req.Classification), nil)
		return
	}

	var col collector
	p := page.NewKeywordDashboard(s.api, &col, "")
	err = p.UpdateClassification(c.Request.Context(), id, req.Classification, req.Reason)
	switch {
	case errors.Is(err, page.ErrClassificationRequired):
		fail(c, http.StatusBadRequest, notify.MsgClassifyRequired, nil)
		return
	case err != nil:
		fail(c, http.StatusBadGateway, col.message(), err)
		return
	}
	ok(c, gin.H{"id": id, "classification": req.Classification}, col.message())
}

func (s *Server) reason(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "文章 id 错误", err)
		return
	}
	var col collector
	p := page.NewKeywordDashboard(s.api, &col, "")
	rv, err := p.OpenReason(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadGateway, col.message(), err)
		return
	}
	ok(c, rv, "")
}

func (s *Server) influencer(c *gin.Context) {
	month := strings.TrimSpace(c.Query("month"))
	if month != "" && !view.ValidMonthKey(month) {
		fail(c, http.StatusBadRequest, "月份格式错误: "+month+"，应为 YYYY-MM", nil)
		return
	}
	var col collector
	p := page.NewInfluencerMonitoring(s.api, &col)
	if brand := c.Query("brand_id"); brand != "" {
		p.SelectBrand(brand)
	}
	if month != "" {
		p.SelectMonth(month)
	}
	for _, id := range campaignIDs(c) {
		p.ToggleCampaign(id)
	}
	if err := p.Load(c.Request.Context()); err != nil {
		fail(c, http.StatusBadGateway, col.message(), err)
		return
	}

	data, _ := p.Dashboard()
	ok(c, influencerView{
		Selection:  p.Selection(),
		Brands:     p.Brands(),
		Dashboard:  data,
		Summary:    p.Summary(),
		Insights:   p.Insights(),
		CirclePack: p.CirclePack(),
		Contents:   p.Contents(),
	}, "")
}

// campaignIDs 支持 campaign_ids=a,b 和重复参数两种写法，去重后保持顺序
func campaignIDs(c *gin.Context) []string {
	var ids []string
	for _, v := range c.QueryArray("campaign_ids") {
		for _, id := range strings.Split(v, ",") {
			id = strings.TrimSpace(id)
			if id != "" && !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func (s *Server) trends(c *gin.Context) {
	t := page.NewChinaSNSTrends()
	ok(c, trendsView{
		Stats:    t.Stats(),
		Ranking:  t.BrandRanking(),
		Weeks:    page.WeekLabels,
		Series:   t.Series(),
		Hashtags: t.Hashtags(),
		Creators: t.Creators(),
	}, "")
}
