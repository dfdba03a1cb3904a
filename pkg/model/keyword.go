package model

// KeywordType 关键词类型，自有品牌或竞品
type KeywordType string

const (
	TypeOwn        KeywordType = "자사"
	TypeCompetitor KeywordType = "경쟁사"
)

// Keyword 监控关键词
type Keyword struct {
	ID        int64       `json:"id"`
	Keyword   string      `json:"keyword"`
	Type      KeywordType `json:"type"`
	GroupName string      `json:"group_name,omitempty"` // 可能为 null
	IsActive  int         `json:"is_active,omitempty"`
}

// DisplayType 类型为空时按自有品牌展示
func (k Keyword) DisplayType() KeywordType {
	if k.Type == "" {
		return TypeOwn
	}
	return k.Type
}

// KeywordInput 新增/修改关键词的请求体，Type/GroupName 为空时由后端推断
type KeywordInput struct {
	Keyword   string      `json:"keyword"`
	Type      KeywordType `json:"type,omitempty"`
	GroupName string      `json:"group_name"`
	IsActive  *int        `json:"is_active,omitempty"`
}

// MutationResult 关键词增删改的返回
type MutationResult struct {
	Message   string      `json:"message"`
	Type      KeywordType `json:"type,omitempty"`
	GroupName string      `json:"group_name,omitempty"`
}
