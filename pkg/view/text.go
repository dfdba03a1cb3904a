package view

import (
	"html"
	"regexp"
	"strings"
)

var (
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// CleanText 去掉新闻标题里的 HTML 标签（如 <b>）并解码实体，用于展示
func CleanText(text string) string {
	if text == "" {
		return text
	}
	// 先解码实体，&lt;b&gt; 这种转义过的标签也会被去掉
	decoded := html.UnescapeString(text)
	cleaned := htmlTagRegex.ReplaceAllString(decoded, "")
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(cleaned, " "))
}
