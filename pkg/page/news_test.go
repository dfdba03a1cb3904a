package page

import (
	"context"
	"testing"

	"keyword-monitor/pkg/model"
	"keyword-monitor/pkg/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newsFixture() *fakeAPI {
	return &fakeAPI{
		keywords: []model.Keyword{
			{ID: 1, Keyword: "abc", Type: model.TypeOwn, GroupName: "groupB"},
			{ID: 2, Keyword: "xyz", Type: model.TypeCompetitor, GroupName: "groupA"},
			{ID: 3, Keyword: "def", Type: model.TypeOwn, GroupName: "groupA"},
		},
		stats: model.KeywordStats{TotalCount: 3},
		monthly: []model.MonthlyStat{
			{GroupName: "G1", Type: model.TypeOwn, PressReleases: 10, TotalArticles: 12},
			{GroupName: "G2", Type: model.TypeCompetitor, PressReleases: 30, TotalArticles: 31},
		},
	}
}

func TestNewsMonitoringLoad(t *testing.T) {
	api := newsFixture()
	rec := &recorder{}
	p := NewNewsMonitoring(api, rec)

	require.NoError(t, p.Load(context.Background()))
	assert.Zero(t, rec.count())

	var ids []int64
	for _, k := range p.Keywords() {
		ids = append(ids, k.ID)
	}
	assert.Equal(t, []int64{3, 1, 2}, ids)

	stats, ok := p.Stats()
	require.True(t, ok)
	assert.Equal(t, 3, stats.TotalCount)

	cards := p.GroupCards()
	require.Len(t, cards, 2)
	assert.Equal(t, 25, cards[0].CoveragePercent)
	assert.Equal(t, 75, cards[1].CoveragePercent)
}

func TestNewsMonitoringFailedLoadKeepsData(t *testing.T) {
	api := newsFixture()
	rec := &recorder{}
	p := NewNewsMonitoring(api, rec)
	require.NoError(t, p.Load(context.Background()))

	api.mu.Lock()
	api.statsErr = errNetwork
	api.keywordsErr = &appError{msg: "boom"}
	api.mu.Unlock()

	require.Error(t, p.Load(context.Background()))
	kind, msg := rec.last()
	assert.Equal(t, "error", kind)
	assert.Equal(t, notify.MsgLoadFailed, msg)
	assert.Equal(t, 1, rec.count())

	stats, ok := p.Stats()
	require.True(t, ok)
	assert.Equal(t, 3, stats.TotalCount)
	assert.Len(t, p.Keywords(), 3)
}

func TestAddKeywordValidation(t *testing.T) {
	api := newsFixture()
	rec := &recorder{}
	p := NewNewsMonitoring(api, rec)
	require.NoError(t, p.Load(context.Background()))

	assert.ErrorIs(t, p.AddKeyword(context.Background(), "   ", ""), ErrKeywordRequired)
	_, msg := rec.last()
	assert.Equal(t, notify.MsgKeywordRequired, msg)

	assert.ErrorIs(t, p.AddKeyword(context.Background(), "abc", ""), ErrKeywordDuplicate)
	_, msg = rec.last()
	assert.Equal(t, notify.MsgKeywordDuplicate, msg)

	assert.Empty(t, api.created)
}

func TestAddKeywordRefetches(t *testing.T) {
	api := newsFixture()
	rec := &recorder{}
	p := NewNewsMonitoring(api, rec)
	require.NoError(t, p.Load(context.Background()))

	require.NoError(t, p.AddKeyword(context.Background(), " 나이키 ", "나이키"))
	require.Len(t, api.created, 1)
	assert.Equal(t, model.KeywordInput{Keyword: "나이키", GroupName: "나이키"}, api.created[0])

	kind, msg := rec.last()
	assert.Equal(t, "success", kind)
	assert.Equal(t, "키워드가 추가되었습니다.", msg)
	assert.Len(t, p.Keywords(), 4)
	assert.Equal(t, 2, api.listCalls)
}

func TestMutationFailureMessages(t *testing.T) {
	api := newsFixture()
	rec := &recorder{}
	p := NewNewsMonitoring(api, rec)
	require.NoError(t, p.Load(context.Background()))

	api.mutationErr = &appError{msg: "keyword, group_name, type 필수"}
	require.Error(t, p.AddKeyword(context.Background(), "new", ""))
	_, msg := rec.last()
	assert.Equal(t, "오류: keyword, group_name, type 필수", msg)

	api.mutationErr = errNetwork
	require.Error(t, p.UpdateKeyword(context.Background(), 1, "abc2", model.TypeOwn, ""))
	_, msg = rec.last()
	assert.Equal(t, notify.MsgServerUnreachable, msg)
}

func TestUpdateKeywordAllowsSelf(t *testing.T) {
	api := newsFixture()
	p := NewNewsMonitoring(api, &recorder{})
	require.NoError(t, p.Load(context.Background()))

	require.NoError(t, p.UpdateKeyword(context.Background(), 1, "abc", model.TypeOwn, "groupC"))
	in := api.updated[1]
	require.NotNil(t, in.IsActive)
	assert.Equal(t, 1, *in.IsActive)
	assert.Equal(t, "groupC", in.GroupName)

	assert.ErrorIs(t, p.UpdateKeyword(context.Background(), 1, "xyz", model.TypeOwn, ""), ErrKeywordDuplicate)
}

func TestDeleteKeywordConfirm(t *testing.T) {
	api := newsFixture()
	p := NewNewsMonitoring(api, &recorder{})
	require.NoError(t, p.Load(context.Background()))

	ok, err := p.DeleteKeyword(context.Background(), 2, notify.AutoConfirmer(false))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, api.deleted)

	ok, err = p.DeleteKeyword(context.Background(), 2, notify.AutoConfirmer(true))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int64{2}, api.deleted)
}

func TestNotificationSettings(t *testing.T) {
	p := NewNewsMonitoring(newsFixture(), &recorder{})
	assert.Equal(t, NotificationSettings{DailyReport: true, RealtimeAlert: true}, p.Settings())
	p.SetDailyReport(false)
	p.SetRealtimeAlert(false)
	p.SetWeeklyReport(true)
	assert.Equal(t, NotificationSettings{WeeklyReport: true}, p.Settings())
}
