package model

// FilterOption 品牌 → 月份 → 活动 的层级筛选项
type FilterOption struct {
	BrandID        FlexString    `json:"brand_id"`
	BrandName      string        `json:"brand_name"`
	TotalCampaigns FlexInt       `json:"total_campaigns"`
	Months         []MonthOption `json:"months"`
}

type MonthOption struct {
	MonthKey      string           `json:"month_key"`
	MonthDisplay  string           `json:"month_display"`
	CampaignCount FlexInt          `json:"campaign_count"`
	Campaigns     []CampaignOption `json:"campaigns"`
}

type CampaignOption struct {
	CampaignID FlexString `json:"campaign_id"`
	CampCode   string     `json:"camp_code"`
	CampName   string     `json:"camp_nm"`
	Status     string     `json:"status"`
}

// HierarchicalFilters /api/influencer-monitoring/filter-options/hierarchical
type HierarchicalFilters struct {
	Filters []FilterOption `json:"hierarchical_filters"`
	Summary struct {
		TotalBrands    FlexInt `json:"total_brands"`
		TotalCampaigns FlexInt `json:"total_campaigns"`
	} `json:"summary"`
}

// Campaign 活动监控指标
type Campaign struct {
	CampaignID             FlexString `json:"campaign_id"`
	CampName               string     `json:"camp_nm"`
	CampCode               string     `json:"camp_code"`
	Status                 string     `json:"status"`
	TotalInfluencers       FlexInt    `json:"total_influencers"`
	CompletionRate         FlexFloat  `json:"completion_rate"`
	ContentUploadRate      FlexFloat  `json:"content_upload_rate"`
	DeliveryCompletionRate FlexFloat  `json:"delivery_completion_rate"`
	BusinessRuleAlerts     []string   `json:"business_rule_alerts,omitempty"`
}

// ContentItem 最新上传的网红内容
type ContentItem struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Image    string `json:"image"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	Views    int    `json:"views"`
	PostDate string `json:"postDate"`
}

// DashboardData /api/influencer-monitoring/campaigns
type DashboardData struct {
	Total          FlexInt       `json:"total"`
	Campaigns      []Campaign    `json:"campaigns"`
	LatestContents []ContentItem `json:"latest_contents,omitempty"`
}

// CampaignFilter 活动查询条件，空值不作为条件
type CampaignFilter struct {
	BrandID     string
	Month       string
	CampaignIDs []string
	Status      string
	Limit       int
}
