package report

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"keyword-monitor/config"
	"keyword-monitor/pkg/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeNews struct {
	keywordsErr error
}

func (f *fakeNews) ListKeywords(context.Context) ([]model.Keyword, error) {
	if f.keywordsErr != nil {
		return nil, f.keywordsErr
	}
	return []model.Keyword{
		{ID: 1, Keyword: "나이키", Type: model.TypeCompetitor, GroupName: "나이키"},
		{ID: 2, Keyword: "MLB", Type: model.TypeOwn, GroupName: "MLB"},
		{ID: 3, Keyword: "엠엘비"},
	}, nil
}

func (f *fakeNews) CreateKeyword(context.Context, model.KeywordInput) (*model.MutationResult, error) {
	return &model.MutationResult{}, nil
}

func (f *fakeNews) UpdateKeyword(context.Context, int64, model.KeywordInput) (*model.MutationResult, error) {
	return &model.MutationResult{}, nil
}

func (f *fakeNews) DeleteKeyword(context.Context, int64) (*model.MutationResult, error) {
	return &model.MutationResult{}, nil
}

func (f *fakeNews) KeywordStats(context.Context) (*model.KeywordStats, error) {
	return &model.KeywordStats{TotalCount: 3, TodayArticles: 5, PressReleases: 2, OrganicArticles: 3}, nil
}

func (f *fakeNews) MonthlyStats(context.Context) ([]model.MonthlyStat, error) {
	return []model.MonthlyStat{
		{GroupName: "MLB", Type: model.TypeOwn, TotalArticles: 4, PressReleases: 1},
		{GroupName: "나이키", Type: model.TypeCompetitor, TotalArticles: 6, PressReleases: 3},
	}, nil
}

func (f *fakeNews) DashboardSummary(context.Context) (*model.DashboardSummary, error) {
	return &model.DashboardSummary{MonthArticles: 4, MonthPressReleases: 1, MonthOrganicArticles: 3, CoverageRate: 25}, nil
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.ReportConfig{Enabled: true, Schedule: "0 9 * * *", OutputDir: filepath.Join(dir, "reports")}
	r := NewReporter(&fakeNews{}, cfg).WithClock(func() time.Time {
		return time.Date(2024, 6, 16, 9, 0, 0, 0, time.Local)
	})

	path, err := r.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "reports", "daily-report-2024-06-15.md"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)
	assert.Contains(t, content, "# 뉴스 모니터링 일일 리포트 (2024-06-15)")
	assert.Contains(t, content, "- 모니터링 브랜드: 3")
	assert.Contains(t, content, "## 모니터링 키워드 (3)")
	assert.Contains(t, content, "| MLB")
	assert.Contains(t, content, "75%")
	assert.Contains(t, content, "| 엠엘비")
}

func TestGenerateFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.ReportConfig{Schedule: "0 9 * * *", OutputDir: dir}
	r := NewReporter(&fakeNews{keywordsErr: errors.New("boom")}, cfg)

	_, err := r.Generate(context.Background())
	require.Error(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestScheduleRejectsBadExpression(t *testing.T) {
	r := NewReporter(&fakeNews{}, &config.ReportConfig{Schedule: "not a cron line", OutputDir: t.TempDir()})
	assert.Error(t, r.Schedule(context.Background()))
}

func TestScheduleStopsOnCancel(t *testing.T) {
	r := NewReporter(&fakeNews{}, &config.ReportConfig{Schedule: "@every 1h", OutputDir: t.TempDir()})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Schedule(ctx) }()
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestCronLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := cronLogger{log: zap.New(core).Sugar()}

	l.Info("schedule", "entry", 1)
	l.Error(errors.New("panic"), "job failed", "entry", 1)

	require.Equal(t, 2, logs.Len())
	failed := logs.FilterMessage("job failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
	assert.Equal(t, "panic", failed[0].ContextMap()["error"])
}
