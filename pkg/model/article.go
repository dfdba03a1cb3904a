package model

import (
	"strings"
	"time"
)

// Classification 文章分类结果
type Classification string

const (
	ClassPressRelease  Classification = "보도자료"
	ClassOrganic       Classification = "오가닉"
	ClassNotApplicable Classification = "해당없음"
	ClassUnknown       Classification = "unknown"
)

// ManualClassifications 允许人工修改的分类
var ManualClassifications = []Classification{ClassPressRelease, ClassOrganic, ClassNotApplicable}

func (c Classification) Manual() bool {
	for _, m := range ManualClassifications {
		if c == m {
			return true
		}
	}
	return false
}

// Label 展示用名称
func (c Classification) Label() string {
	switch c {
	case ClassPressRelease, ClassOrganic, ClassNotApplicable:
		return string(c)
	default:
		return "미분류"
	}
}

// Article 分组下的新闻文章
type Article struct {
	ID                   int64          `json:"id"`
	Title                string         `json:"title"`
	Press                string         `json:"press"`
	PubDate              string         `json:"pub_date"`
	URL                  string         `json:"url"`
	ClassificationResult Classification `json:"classification_result"`
	ConfidenceScore      float64        `json:"confidence_score"`
}

// 后端 pub_date 可能出现的格式，无时区的按本地时间解析
var naiveDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

var zonedDateLayouts = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
}

// PublishedAt 解析发布时间
func (a Article) PublishedAt() (time.Time, bool) {
	return ParseDate(a.PubDate)
}

func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range naiveDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	for _, layout := range zonedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(time.Local), true
		}
	}
	return time.Time{}, false
}

// ClassificationReason 分类原因
type ClassificationReason struct {
	Title                string         `json:"title"`
	URL                  string         `json:"url"`
	ClassificationResult Classification `json:"classification_result"`
	ConfidenceScore      float64        `json:"confidence_score"`
	Reason               string         `json:"reason"`
	CreatedAt            string         `json:"created_at"`
}

// ClassificationUpdate 分类修改请求体
type ClassificationUpdate struct {
	Classification Classification `json:"classification"`
	Reason         string         `json:"reason,omitempty"`
}
