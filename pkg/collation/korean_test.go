package collation

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareHangul(t *testing.T) {
	words := []string{"하나", "가방", "나무", "다리", "마을"}
	sort.Slice(words, func(i, j int) bool { return Less(words[i], words[j]) })
	assert.Equal(t, []string{"가방", "나무", "다리", "마을", "하나"}, words)
}

func TestCompareIsTotal(t *testing.T) {
	assert.Equal(t, 0, Compare("디스커버리", "디스커버리"))
	assert.NotEqual(t, 0, Compare("abc", "ABC"))
	assert.Equal(t, -Compare("abc", "ABC"), Compare("ABC", "abc"))
}

func TestCompareNormalizesInput(t *testing.T) {
	// 组合形式与预组合形式视为相同
	decomposed := "\u1100\u1161" // ᄀ + ᅡ
	assert.Equal(t, 0, Compare(decomposed, "가"))
}

func TestCompareLatin(t *testing.T) {
	assert.Negative(t, Compare("groupA", "groupB"))
	assert.Positive(t, Compare("xyz", "abc"))
}
