package model

// KeywordStats /api/keywords/stats
type KeywordStats struct {
	TotalCount      int `json:"total_count"`
	TodayArticles   int `json:"today_articles"`
	PressReleases   int `json:"press_releases"`
	OrganicArticles int `json:"organic_articles"`
}

// DashboardSummary /api/dashboard/summary，本月自有品牌数据
type DashboardSummary struct {
	MonthArticles        int `json:"month_articles"`
	MonthPressReleases   int `json:"month_press_releases"`
	MonthOrganicArticles int `json:"month_organic_articles"`
	CoverageRate         int `json:"coverage_rate"`
}

// GroupStats 分组统计
type GroupStats struct {
	GroupName       string `json:"group_name"`
	TotalArticles   int    `json:"total_articles"`
	PressReleases   int    `json:"press_releases"`
	OrganicArticles int    `json:"organic_articles"`
	MentionRate     int    `json:"mention_rate"`
}

// MonthlyStat 单个关键词的本月统计
type MonthlyStat struct {
	Keyword       string      `json:"keyword"`
	Type          KeywordType `json:"type"`
	GroupName     string      `json:"group_name"`
	TotalArticles int         `json:"total_articles"`
	PressReleases int         `json:"press_releases"`
	MentionRate   int         `json:"mention_rate"`
}

// GroupMonthlyStat 按分组合并后的本月统计，CoveragePercent 为该组占全部新闻稿的比例
type GroupMonthlyStat struct {
	GroupName       string      `json:"group_name"`
	Type            KeywordType `json:"type"`
	TotalArticles   int         `json:"total_articles"`
	PressReleases   int         `json:"press_releases"`
	CoveragePercent int         `json:"mention_rate"`
}
