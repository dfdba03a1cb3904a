package model

// TrendStat 中国社媒趋势页顶部指标
type TrendStat struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Change   string `json:"change"`
	Positive bool   `json:"positive"`
}

// BrandInfluence 品牌影响力排名，RankDelta 为排名变化
type BrandInfluence struct {
	Brand     string `json:"brand"`
	RankDelta int    `json:"rank_delta"`
	Mentions  string `json:"mentions"`
	Updated   string `json:"updated"`
	Score     string `json:"score"`
}

// Series 折线图的一条数据
type Series struct {
	Label  string    `json:"label"`
	Color  string    `json:"color"`
	Values []float64 `json:"values"`
}

type Hashtag struct {
	Name   string `json:"name"`
	Growth string `json:"growth"`
	Posts  string `json:"posts"`
}

// Creator 推荐合作的达人
type Creator struct {
	Name      string   `json:"name"`
	Followers string   `json:"followers"`
	Match     string   `json:"match"`
	Platforms []string `json:"platforms"`
}
