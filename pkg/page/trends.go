package page

import "keyword-monitor/pkg/model"

// ChinaSNSTrends 中国社媒趋势页，目前只有示例数据
type ChinaSNSTrends struct{}

func NewChinaSNSTrends() *ChinaSNSTrends {
	return &ChinaSNSTrends{}
}

// WeekLabels 折线图横轴
var WeekLabels = []string{"1주차", "2주차", "3주차", "4주차"}

// 折线图纵轴范围
const (
	TrendMin = 0
	TrendMax = 100
)

func (*ChinaSNSTrends) Stats() []model.TrendStat {
	return []model.TrendStat{
		{Title: "MLB 멘션", Value: "89.5K", Change: "+18.3% ▲", Positive: true},
		{Title: "수집 키워드", Value: "234", Change: "+15개 ▲", Positive: true},
		{Title: "급상승 키워드", Value: "92.7%", Change: "+28% ▲", Positive: true},
		{Title: "수집 채널", Value: "샤오홍수/도우인", Change: "", Positive: true},
	}
}

// BrandRanking 品牌影响力排名
func (*ChinaSNSTrends) BrandRanking() []model.BrandInfluence {
	return []model.BrandInfluence{
		{Brand: "MLB", RankDelta: 2, Mentions: "18.7K", Updated: "1일 전", Score: "+23%"},
		{Brand: "Nike", RankDelta: -1, Mentions: "15.2K", Updated: "1일 전", Score: "+15%"},
		{Brand: "Salomon", RankDelta: 1, Mentions: "12.8K", Updated: "1일 전", Score: "+12%"},
		{Brand: "Arc'teryx", RankDelta: 0, Mentions: "9.4K", Updated: "1일 전", Score: "+9%"},
		{Brand: "Adidas", RankDelta: -2, Mentions: "8.1K", Updated: "1일 전", Score: "+5%"},
	}
}

// Series 最近四周的品牌热度
func (*ChinaSNSTrends) Series() []model.Series {
	return []model.Series{
		{Label: "MLB", Color: "#3b82f6", Values: []float64{45, 68, 85, 92}},
		{Label: "Nike", Color: "#10b981", Values: []float64{75, 72, 68, 65}},
		{Label: "Salomon", Color: "#f59e0b", Values: []float64{35, 55, 48, 72}},
		{Label: "Arc'teryx", Color: "#ef4444", Values: []float64{60, 45, 38, 42}},
		{Label: "Adidas", Color: "#8b5cf6", Values: []float64{55, 42, 35, 28}},
	}
}

func (*ChinaSNSTrends) Hashtags() []model.Hashtag {
	return []model.Hashtag{
		{Name: "#Y2K패션", Growth: "+245%", Posts: "18.7K 포스트"},
		{Name: "#크롭후디", Growth: "+178%", Posts: "15.2K 포스트"},
		{Name: "#미니멀패션", Growth: "+134%", Posts: "12.8K 포스트"},
		{Name: "#아테지어", Growth: "+98%", Posts: "9.4K 포스트"},
		{Name: "#스트리트패션", Growth: "+76%", Posts: "8.1K 포스트"},
		{Name: "#패션코디", Growth: "+65%", Posts: "7.3K 포스트"},
	}
}

// Creators 推荐合作的达人
func (*ChinaSNSTrends) Creators() []model.Creator {
	return []model.Creator{
		{Name: "김패션", Followers: "234K", Match: "96%", Platforms: []string{"xiaohongshu", "weibo"}},
		{Name: "박스타일", Followers: "156K", Match: "94%", Platforms: []string{"xiaohongshu", "weibo"}},
		{Name: "이코디", Followers: "98K", Match: "91%", Platforms: []string{"xiaohongshu"}},
		{Name: "최패션", Followers: "187K", Match: "88%", Platforms: []string{"weibo"}},
	}
}
