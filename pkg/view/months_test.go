package view

import (
	"testing"
	"time"

	"keyword-monitor/pkg/model"

	"github.com/stretchr/testify/assert"
)

func TestMonthBuckets(t *testing.T) {
	articles := []model.Article{
		{PubDate: "2024-06-15 10:00:00"},
		{PubDate: "2024-07-01"},
		{PubDate: "2023-12-31 23:00:00"},
		{PubDate: "2024-06-02"},
		{PubDate: "garbage"},
	}
	assert.Equal(t, []string{"2024-07", "2024-06", "2023-12"}, MonthBuckets(articles))
	assert.Empty(t, MonthBuckets(nil))
}

func TestMonthSelectorDefaults(t *testing.T) {
	now := time.Date(2024, 6, 20, 0, 0, 0, 0, time.Local)

	t.Run("current month present", func(t *testing.T) {
		var s MonthSelector
		assert.Equal(t, "2024-06", s.ApplyDefault([]string{"2024-07", "2024-06"}, now))
	})

	t.Run("falls back to most recent", func(t *testing.T) {
		var s MonthSelector
		assert.Equal(t, "2024-05", s.ApplyDefault([]string{"2024-05", "2024-04"}, now))
	})

	t.Run("no buckets leaves unselected", func(t *testing.T) {
		var s MonthSelector
		assert.Equal(t, "", s.ApplyDefault(nil, now))
		assert.False(t, s.Chosen())
		// 之后有数据时仍会设置默认值
		assert.Equal(t, "2024-06", s.ApplyDefault([]string{"2024-06"}, now))
	})
}

func TestMonthSelectorOnlyDefaultsOnce(t *testing.T) {
	now := time.Date(2024, 6, 20, 0, 0, 0, 0, time.Local)
	var s MonthSelector
	s.ApplyDefault([]string{"2024-06", "2024-05"}, now)

	s.Select("2024-05")
	assert.Equal(t, "2024-05", s.ApplyDefault([]string{"2024-06", "2024-05"}, now))

	s.Clear()
	assert.Equal(t, "", s.ApplyDefault([]string{"2024-06", "2024-05"}, now))

	s.Reset()
	assert.Equal(t, "2024-06", s.ApplyDefault([]string{"2024-06", "2024-05"}, now))
}

func TestNextMonth(t *testing.T) {
	buckets := []string{"2024-07", "2024-06"}
	assert.Equal(t, "2024-07", NextMonth(buckets, MonthAll))
	assert.Equal(t, "2024-06", NextMonth(buckets, "2024-07"))
	assert.Equal(t, MonthAll, NextMonth(buckets, "2024-06"))
	assert.Equal(t, MonthAll, NextMonth(nil, ""))
}

func TestParseMonth(t *testing.T) {
	for in, want := range map[string]string{
		"":          "",
		"all":       MonthAll,
		" ALL ":     MonthAll,
		"2024-06":   "2024-06",
		" 2024-12 ": "2024-12",
	} {
		got, err := ParseMonth(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"2024-6", "2024-13", "202406", "2024/06", "june"} {
		_, err := ParseMonth(bad)
		assert.Error(t, err, bad)
	}
	assert.True(t, ValidMonthKey("2024-06"))
	assert.False(t, ValidMonthKey("all"))
}
