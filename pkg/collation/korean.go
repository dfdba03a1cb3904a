// Package collation 提供韩语环境下的字符串排序
package collation

import (
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// collate.Collator 内部有缓冲区，不能并发使用
var (
	mu       sync.Mutex
	collator = collate.New(language.Korean)
)

// Compare 按韩语排序规则比较，规则上相等时退回字节序，保证全序
func Compare(a, b string) int {
	a, b = norm.NFC.String(a), norm.NFC.String(b)
	mu.Lock()
	r := collator.CompareString(a, b)
	mu.Unlock()
	if r != 0 {
		return r
	}
	return strings.Compare(a, b)
}

// Less 用于 sort 回调
func Less(a, b string) bool {
	return Compare(a, b) < 0
}
