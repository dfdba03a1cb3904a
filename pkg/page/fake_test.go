package page

import (
	"context"
	"sync"

	"keyword-monitor/pkg/model"

	"github.com/pkg/errors"
)

var errNetwork = errors.New("dial tcp: connection refused")

// appError 模拟后端返回 success=false
type appError struct{ msg string }

func (e *appError) Error() string       { return e.msg }
func (e *appError) UserMessage() string { return e.msg }
func (e *appError) IsAppFailure() bool  { return true }

type recorder struct {
	mu       sync.Mutex
	messages []string
	kinds    []string
}

func (r *recorder) add(kind, msg string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
	r.kinds = append(r.kinds, kind)
	return uint64(len(r.messages))
}

func (r *recorder) Success(msg string) uint64 { return r.add("success", msg) }
func (r *recorder) Error(msg string) uint64   { return r.add("error", msg) }
func (r *recorder) Info(msg string) uint64    { return r.add("info", msg) }

func (r *recorder) last() (string, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return "", ""
	}
	return r.kinds[len(r.kinds)-1], r.messages[len(r.messages)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}

type fakeAPI struct {
	mu sync.Mutex

	keywords    []model.Keyword
	keywordsErr error
	stats       model.KeywordStats
	statsErr    error
	summary     model.DashboardSummary
	monthly     []model.MonthlyStat
	mutationErr error
	created     []model.KeywordInput
	updated     map[int64]model.KeywordInput
	deleted     []int64
	listCalls   int

	groupStats  model.GroupStats
	articles    []model.Article
	articlesErr error
	classifyErr error
	classified  []int64
	reason      model.ClassificationReason
	reasonErr   error

	filters      []model.FilterOption
	filtersErr   error
	campaigns    *model.DashboardData
	campaignsErr error
	queries      []model.CampaignFilter
}

func (f *fakeAPI) ListKeywords(context.Context) ([]model.Keyword, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return append([]model.Keyword(nil), f.keywords...), f.keywordsErr
}

func (f *fakeAPI) CreateKeyword(_ context.Context, in model.KeywordInput) (*model.MutationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mutationErr != nil {
		return nil, f.mutationErr
	}
	f.created = append(f.created, in)
	f.keywords = append(f.keywords, model.Keyword{ID: int64(len(f.keywords) + 100), Keyword: in.Keyword, GroupName: in.GroupName, Type: model.TypeCompetitor})
	return &model.MutationResult{Message: "키워드가 추가되었습니다."}, nil
}

func (f *fakeAPI) UpdateKeyword(_ context.Context, id int64, in model.KeywordInput) (*model.MutationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mutationErr != nil {
		return nil, f.mutationErr
	}
	if f.updated == nil {
		f.updated = make(map[int64]model.KeywordInput)
	}
	f.updated[id] = in
	return &model.MutationResult{Message: "키워드 수정 완료"}, nil
}

func (f *fakeAPI) DeleteKeyword(_ context.Context, id int64) (*model.MutationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mutationErr != nil {
		return nil, f.mutationErr
	}
	f.deleted = append(f.deleted, id)
	return &model.MutationResult{Message: "키워드가 삭제되었습니다."}, nil
}

func (f *fakeAPI) KeywordStats(context.Context) (*model.KeywordStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	s := f.stats
	return &s, nil
}

func (f *fakeAPI) MonthlyStats(context.Context) ([]model.MonthlyStat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.monthly, nil
}

func (f *fakeAPI) DashboardSummary(context.Context) (*model.DashboardSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.summary
	return &s, nil
}

func (f *fakeAPI) GroupStats(_ context.Context, group string) (*model.GroupStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.groupStats
	s.GroupName = group
	return &s, nil
}

func (f *fakeAPI) GroupArticles(context.Context, string) ([]model.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.articlesErr != nil {
		return nil, f.articlesErr
	}
	return append([]model.Article(nil), f.articles...), nil
}

func (f *fakeAPI) UpdateClassification(_ context.Context, id int64, _ model.Classification, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.classifyErr != nil {
		return "", f.classifyErr
	}
	f.classified = append(f.classified, id)
	return "분류가 업데이트되었습니다.", nil
}

func (f *fakeAPI) ClassificationReason(context.Context, int64) (*model.ClassificationReason, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.reasonErr != nil {
		return nil, f.reasonErr
	}
	r := f.reason
	return &r, nil
}

func (f *fakeAPI) HierarchicalFilters(context.Context) (*model.HierarchicalFilters, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.filtersErr != nil {
		return nil, f.filtersErr
	}
	return &model.HierarchicalFilters{Filters: f.filters}, nil
}

func (f *fakeAPI) Campaigns(_ context.Context, filter model.CampaignFilter) (*model.DashboardData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, filter)
	if f.campaignsErr != nil {
		return nil, f.campaignsErr
	}
	return f.campaigns, nil
}
