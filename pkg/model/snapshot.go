package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// KeywordSnapshot 导出快照中的关键词
type KeywordSnapshot struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	RunID     string    `gorm:"column:run_id;index;size:36" json:"run_id"`
	KeywordID int64     `gorm:"column:keyword_id" json:"keyword_id"`
	Keyword   string    `gorm:"size:255" json:"keyword"`
	Type      string    `gorm:"size:32" json:"type"`
	GroupName string    `gorm:"column:group_name;size:255" json:"group_name"`
	CreatedAt time.Time `json:"created_at"`
}

func (KeywordSnapshot) TableName() string {
	return "snapshot_keywords"
}

// GroupStatSnapshot 导出快照中的分组月度统计
type GroupStatSnapshot struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	RunID           string    `gorm:"column:run_id;index;size:36" json:"run_id"`
	GroupName       string    `gorm:"column:group_name;size:255" json:"group_name"`
	Type            string    `gorm:"size:32" json:"type"`
	TotalArticles   int       `gorm:"column:total_articles" json:"total_articles"`
	PressReleases   int       `gorm:"column:press_releases" json:"press_releases"`
	CoveragePercent int       `gorm:"column:coverage_percent" json:"coverage_percent"`
	CreatedAt       time.Time `json:"created_at"`
}

func (GroupStatSnapshot) TableName() string {
	return "snapshot_group_stats"
}

// ArticleSnapshot 导出快照中的文章
type ArticleSnapshot struct {
	ID                   uint      `gorm:"primarykey" json:"id"`
	RunID                string    `gorm:"column:run_id;index;size:36" json:"run_id"`
	ArticleID            int64     `gorm:"column:article_id" json:"article_id"`
	GroupName            string    `gorm:"column:group_name;size:255" json:"group_name"`
	Title                string    `gorm:"type:text" json:"title"`
	Press                string    `gorm:"size:255" json:"press"`
	PubDate              string    `gorm:"column:pub_date;size:32" json:"pub_date"`
	URL                  string    `gorm:"type:text" json:"url"`
	ClassificationResult string    `gorm:"column:classification_result;size:32" json:"classification_result"`
	ConfidenceScore      float64   `gorm:"column:confidence_score" json:"confidence_score"`
	CreatedAt            time.Time `json:"created_at"`
}

func (ArticleSnapshot) TableName() string {
	return "snapshot_articles"
}

// CampaignSnapshot 导出快照中的网红活动指标
type CampaignSnapshot struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	RunID          string     `gorm:"column:run_id;index;size:36" json:"run_id"`
	BrandID        string     `gorm:"column:brand_id;size:64" json:"brand_id"`
	CampaignID     string     `gorm:"column:campaign_id;size:64" json:"campaign_id"`
	CampName       string     `gorm:"column:camp_nm;size:255" json:"camp_nm"`
	Status         string     `gorm:"size:32" json:"status"`
	CompletionRate float64    `gorm:"column:completion_rate" json:"completion_rate"`
	Alerts         StringList `gorm:"type:text" json:"alerts"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (CampaignSnapshot) TableName() string {
	return "snapshot_campaigns"
}

// StringList 以 JSON 文本存储的字符串列表
type StringList []string

// Value 实现 driver.Valuer 接口
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	bytes, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

// Scan 实现 sql.Scanner 接口，无法解析时置空
func (s *StringList) Scan(value interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}
	var list []string
	if err := json.Unmarshal(bytes, &list); err != nil {
		*s = nil
		return nil
	}
	*s = list
	return nil
}
