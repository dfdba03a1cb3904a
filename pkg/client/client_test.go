package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"keyword-monitor/config"
	"keyword-monitor/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(&config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(&config.APIConfig{BaseURL: "not a url"})
	assert.Error(t, err)
}

func TestListKeywords(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/keywords", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"keywords": []map[string]interface{}{
				{"id": 1, "keyword": "MLB", "type": "자사", "group_name": "MLB", "is_active": 1},
				{"id": 2, "keyword": "나이키", "type": "경쟁사", "group_name": nil, "is_active": 1},
			},
		})
	})
	c := newTestClient(t, mux)

	got, err := c.ListKeywords(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.TypeOwn, got[0].Type)
	assert.Equal(t, "", got[1].GroupName)
}

func TestCreateKeywordFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/keywords", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"keyword":"MLB","group_name":""}`, string(body))
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "이미 존재하는 키워드입니다."})
	})
	c := newTestClient(t, mux)

	_, err := c.CreateKeyword(context.Background(), model.KeywordInput{Keyword: "MLB"})
	require.Error(t, err)
	assert.True(t, IsAppFailure(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "이미 존재하는 키워드입니다.", apiErr.UserMessage())
}

func TestCreateKeywordSuccess(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/keywords", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"success": true, "message": "키워드가 추가되었습니다.", "type": "경쟁사", "group_name": "나이키",
		})
	})
	c := newTestClient(t, mux)

	res, err := c.CreateKeyword(context.Background(), model.KeywordInput{Keyword: "나이키"})
	require.NoError(t, err)
	assert.Equal(t, &model.MutationResult{Message: "키워드가 추가되었습니다.", Type: model.TypeCompetitor, GroupName: "나이키"}, res)
}

func TestGroupArticlesEscapesGroupName(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/keywords/group/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/keywords/group/디스커버리 익스페디션/articles", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"id": 7, "title": "t", "press": "p", "pub_date": "2024-06-15 10:00:00", "url": "u", "classification_result": "보도자료", "confidence_score": 0.9},
			},
		})
	})
	c := newTestClient(t, mux)

	got, err := c.GroupArticles(context.Background(), "디스커버리 익스페디션")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].ID)
	assert.Equal(t, model.ClassPressRelease, got[0].ClassificationResult)
}

func TestUpdateClassification(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/keywords/article/7/classification", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		var body model.ClassificationUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.Classification != model.ClassPressRelease {
			writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "message": "유효하지 않은 분류 값입니다."})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "ok"})
	})
	c := newTestClient(t, mux)

	msg, err := c.UpdateClassification(context.Background(), 7, model.ClassPressRelease, "")
	require.NoError(t, err)
	assert.Equal(t, "ok", msg)

	_, err = c.UpdateClassification(context.Background(), 7, "rumor", "")
	require.Error(t, err)
	assert.True(t, IsAppFailure(err))
	assert.Contains(t, err.Error(), "유효하지 않은 분류 값입니다.")
}

func TestMalformedEnvelopeIsNotAppFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/keywords/stats", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>Internal Server Error</html>"))
	})
	c := newTestClient(t, mux)

	_, err := c.KeywordStats(context.Background())
	require.Error(t, err)
	assert.False(t, IsAppFailure(err))
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(&config.APIConfig{BaseURL: url, Timeout: time.Second})
	require.NoError(t, err)
	_, err = c.MonthlyStats(context.Background())
	require.Error(t, err)
	assert.False(t, IsAppFailure(err))
}

func TestCampaignsQuery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/influencer-monitoring/campaigns", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "20", q.Get("brand_id"))
		assert.Equal(t, "2024-06", q.Get("month"))
		assert.Equal(t, "1,2", q.Get("campaign_ids"))
		assert.False(t, q.Has("status"))
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"total": "2",
			"campaigns": []map[string]interface{}{
				{"campaign_id": 1, "camp_nm": "여름 캠페인", "completion_rate": "85.5", "total_influencers": 10},
				{"campaign_id": "2", "camp_nm": "가을 캠페인", "completion_rate": nil},
			},
		})
	})
	c := newTestClient(t, mux)

	got, err := c.Campaigns(context.Background(), model.CampaignFilter{BrandID: "20", Month: "2024-06", CampaignIDs: []string{"1", "2"}})
	require.NoError(t, err)
	assert.Equal(t, model.FlexInt(2), got.Total)
	require.Len(t, got.Campaigns, 2)
	assert.Equal(t, model.FlexString("1"), got.Campaigns[0].CampaignID)
	assert.InDelta(t, 85.5, float64(got.Campaigns[0].CompletionRate), 1e-9)
	assert.Zero(t, got.Campaigns[1].CompletionRate)
}

func TestInfluencerDetailError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/influencer-monitoring/filter-options/hierarchical", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"detail": "조회 실패: timeout"})
	})
	c := newTestClient(t, mux)

	_, err := c.HierarchicalFilters(context.Background())
	require.Error(t, err)
	assert.True(t, IsAppFailure(err))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "조회 실패: timeout", apiErr.UserMessage())
}
