package page

import (
	"context"
	"math/rand"
	"slices"
	"sync"

	"keyword-monitor/pkg/client"
	"keyword-monitor/pkg/loader"
	"keyword-monitor/pkg/model"
	"keyword-monitor/pkg/notify"
	"keyword-monitor/pkg/view"

	"go.uber.org/zap"
)

// 气泡图容器尺寸
const (
	packWidth  = 400
	packHeight = 320
)

// supplyItems 各品类的内容供给数量
var supplyItems = []view.PackItem{
	{Name: "티셔츠", Value: 120, Color: "#818cf8"},
	{Name: "슬라이드", Value: 65, Color: "#6ee7b7"},
	{Name: "슬링백", Value: 35, Color: "#fbbf24"},
	{Name: "모자", Value: 8, Color: "#f87171"},
	{Name: "스윔웨어", Value: 22, Color: "#a78bfa"},
}

// sampleContents 后端没有返回最新内容时展示的示例
var sampleContents = []model.ContentItem{
	{ID: 1, Username: "@jenny_style", Avatar: "https://randomuser.me/api/portraits/women/1.jpg", Image: "/images/discovery-report-preview.jpg", Likes: 1234, Comments: 56, Views: 12000, PostDate: "07-18"},
	{ID: 2, Username: "@travel_mtb", Avatar: "https://randomuser.me/api/portraits/women/2.jpg", Image: "/images/discovery-report-preview.jpg", Likes: 892, Comments: 23, Views: 8500, PostDate: "07-18"},
}

// Selection 品牌 → 月份 → 活动 的当前选择
type Selection struct {
	BrandID     string   `json:"brand_id"`
	Month       string   `json:"month"`
	CampaignIDs []string `json:"campaign_ids"`
}

// Filter 转成活动查询条件
func (s Selection) Filter() model.CampaignFilter {
	return model.CampaignFilter{
		BrandID:     s.BrandID,
		Month:       s.Month,
		CampaignIDs: slices.Clone(s.CampaignIDs),
	}
}

// InfluencerMonitoring 网红活动监控页面
type InfluencerMonitoring struct {
	api      InfluencerAPI
	notifier notify.Notifier

	filters   loader.Loader[[]model.FilterOption]
	dashboard loader.Loader[*model.DashboardData]

	mu        sync.Mutex
	selection Selection
	contents  []model.ContentItem
}

func NewInfluencerMonitoring(api InfluencerAPI, notifier notify.Notifier) *InfluencerMonitoring {
	return &InfluencerMonitoring{
		api:      api,
		notifier: notifier,
		contents: slices.Clone(sampleContents),
	}
}

// Load 加载筛选树，还没有选择品牌时默认选中 Discovery，然后加载活动数据
func (p *InfluencerMonitoring) Load(ctx context.Context) error {
	options, err := p.filters.Run(ctx, func(ctx context.Context) ([]model.FilterOption, error) {
		tree, err := p.api.HierarchicalFilters(ctx)
		if err != nil {
			return nil, err
		}
		return tree.Filters, nil
	})
	if err = ignoreStale(err, "筛选项"); err != nil {
		p.notifier.Error(notify.MessageFor(err, notify.MsgLoadFailed))
		return err
	}

	p.mu.Lock()
	if p.selection.BrandID == "" {
		if id, ok := view.DefaultBrand(options); ok {
			p.selection = Selection{BrandID: id}
		}
	}
	p.mu.Unlock()

	return p.Refresh(ctx)
}

// Refresh 按当前选择加载活动数据，没有选择品牌时不请求
func (p *InfluencerMonitoring) Refresh(ctx context.Context) error {
	sel := p.Selection()
	if sel.BrandID == "" {
		return nil
	}
	data, err := p.dashboard.Run(ctx, func(ctx context.Context) (*model.DashboardData, error) {
		return p.api.Campaigns(ctx, sel.Filter())
	})
	if err = ignoreStale(err, "活动数据"); err != nil {
		zap.S().Debugf("活动数据加载失败, 业务失败: %v", client.IsAppFailure(err))
		p.notifier.Error(notify.MessageFor(err, notify.MsgLoadFailed))
		return err
	}
	if data != nil && len(data.LatestContents) > 0 {
		p.mu.Lock()
		p.contents = slices.Clone(data.LatestContents)
		p.mu.Unlock()
	}
	return nil
}

func (p *InfluencerMonitoring) Selection() Selection {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.selection
	s.CampaignIDs = slices.Clone(s.CampaignIDs)
	return s
}

// SelectBrand 切换品牌，同时清空月份和活动
func (p *InfluencerMonitoring) SelectBrand(brandID string) {
	p.mu.Lock()
	p.selection = Selection{BrandID: brandID}
	p.mu.Unlock()
}

// SelectMonth 切换月份，同时清空活动
func (p *InfluencerMonitoring) SelectMonth(month string) {
	p.mu.Lock()
	p.selection.Month = month
	p.selection.CampaignIDs = nil
	p.mu.Unlock()
}

// ToggleCampaign 选中或取消选中活动
func (p *InfluencerMonitoring) ToggleCampaign(campaignID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ids := p.selection.CampaignIDs
	if i := slices.Index(ids, campaignID); i >= 0 {
		p.selection.CampaignIDs = slices.Delete(slices.Clone(ids), i, i+1)
		return
	}
	p.selection.CampaignIDs = append(slices.Clone(ids), campaignID)
}

// Brands 全部品牌筛选项
func (p *InfluencerMonitoring) Brands() []model.FilterOption {
	options, _ := p.filters.Data()
	return options
}

// CurrentBrand 当前品牌的筛选项
func (p *InfluencerMonitoring) CurrentBrand() (model.FilterOption, bool) {
	return view.FindBrand(p.Brands(), p.Selection().BrandID)
}

// MonthCampaigns 当前品牌和月份下可选的活动
func (p *InfluencerMonitoring) MonthCampaigns() []model.CampaignOption {
	sel := p.Selection()
	return view.MonthCampaigns(p.Brands(), sel.BrandID, sel.Month)
}

// Dashboard 最近一次成功加载的活动数据
func (p *InfluencerMonitoring) Dashboard() (*model.DashboardData, bool) {
	return p.dashboard.Data()
}

func (p *InfluencerMonitoring) Summary() view.CampaignSummary {
	data, _ := p.dashboard.Data()
	return view.SummarizeCampaigns(data)
}

func (p *InfluencerMonitoring) Insights() []view.Insight {
	return view.Insights(p.Summary())
}

// CirclePack 各品类内容供给的气泡图
func (p *InfluencerMonitoring) CirclePack() []view.Circle {
	return view.CirclePack(supplyItems, packWidth, packHeight)
}

// Contents 最新内容，点赞数由 Tick 更新
func (p *InfluencerMonitoring) Contents() []model.ContentItem {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.contents)
}

// Tick 模拟实时数据：每条内容的点赞数增加 0~9
func (p *InfluencerMonitoring) Tick(rng *rand.Rand) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.contents {
		p.contents[i].Likes += rng.Intn(10)
	}
}
