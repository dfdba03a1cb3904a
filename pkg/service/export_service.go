package service

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"keyword-monitor/pkg/model"
	"keyword-monitor/pkg/page"
	"keyword-monitor/pkg/view"
)

const (
	defaultBatchSize = 100
	fetchConcurrency = 4
)

// NewsSource 导出需要的新闻监控接口
type NewsSource interface {
	ListKeywords(ctx context.Context) ([]model.Keyword, error)
	MonthlyStats(ctx context.Context) ([]model.MonthlyStat, error)
	GroupArticles(ctx context.Context, group string) ([]model.Article, error)
}

type Option func(*ExportService)

// WithInfluencer 同时导出各品牌的活动指标
func WithInfluencer(api page.InfluencerAPI) Option {
	return func(s *ExportService) { s.influencer = api }
}

func WithDuckDB(conn *sql.DB) Option {
	return func(s *ExportService) { s.duck = conn }
}

func WithMySQL(orm *gorm.DB) Option {
	return func(s *ExportService) { s.orm = orm }
}

func WithBatchSize(n int) Option {
	return func(s *ExportService) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *ExportService) { s.now = now }
}

// ExportService 把当前的监控数据保存为一次快照
type ExportService struct {
	news       NewsSource
	influencer page.InfluencerAPI
	duck       *sql.DB
	orm        *gorm.DB
	batchSize  int
	now        func() time.Time
}

func NewExportService(news NewsSource, opts ...Option) *ExportService {
	s := &ExportService{news: news, batchSize: defaultBatchSize, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot 一次导出的全部数据
type Snapshot struct {
	RunID     string
	CreatedAt time.Time
	Keywords  []model.KeywordSnapshot
	Groups    []model.GroupStatSnapshot
	Articles  []model.ArticleSnapshot
	Campaigns []model.CampaignSnapshot
}

// Counts 各快照表的行数
type Counts map[string]int64

// Export 拉取数据后写入 DuckDB，配置了 MySQL 时也写入 MySQL
func (s *ExportService) Export(ctx context.Context) (*Snapshot, error) {
	if s.duck == nil && s.orm == nil {
		return nil, errors.New("没有可用的导出目标")
	}
	startTime := time.Now()

	snap, err := s.collect(ctx)
	if err != nil {
		return nil, err
	}
	if s.duck != nil {
		if err := s.writeDuckDB(ctx, snap); err != nil {
			return nil, err
		}
	}
	if s.orm != nil {
		if err := s.writeMySQL(ctx, snap); err != nil {
			return nil, err
		}
	}

	zap.S().Infof("快照导出完成, run: %s, 关键词 %d, 分组 %d, 文章 %d, 活动 %d",
		snap.RunID, len(snap.Keywords), len(snap.Groups), len(snap.Articles), len(snap.Campaigns))
	zap.S().Infof("耗时：%s", time.Since(startTime))
	return snap, nil
}

func (s *ExportService) collect(ctx context.Context) (*Snapshot, error) {
	keywords, err := s.news.ListKeywords(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "加载关键词失败")
	}
	monthly, err := s.news.MonthlyStats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "加载月度统计失败")
	}

	snap := &Snapshot{RunID: uuid.NewString(), CreatedAt: s.now()}
	for _, k := range view.SortKeywords(keywords) {
		snap.Keywords = append(snap.Keywords, model.KeywordSnapshot{
			RunID:     snap.RunID,
			KeywordID: k.ID,
			Keyword:   k.Keyword,
			Type:      string(k.DisplayType()),
			GroupName: k.GroupName,
			CreatedAt: snap.CreatedAt,
		})
	}
	for _, g := range view.FoldGroupStats(monthly) {
		snap.Groups = append(snap.Groups, model.GroupStatSnapshot{
			RunID:           snap.RunID,
			GroupName:       g.GroupName,
			Type:            string(g.Type),
			TotalArticles:   g.TotalArticles,
			PressReleases:   g.PressReleases,
			CoveragePercent: g.CoveragePercent,
			CreatedAt:       snap.CreatedAt,
		})
	}

	groups := view.GroupNames(keywords)
	articles, err := fetchAll(ctx, groups, func(ctx context.Context, group string) ([]model.Article, error) {
		a, err := s.news.GroupArticles(ctx, group)
		return a, errors.Wrapf(err, "加载分组 %s 的文章失败", group)
	})
	if err != nil {
		return nil, err
	}
	for i, group := range groups {
		for _, a := range articles[i] {
			snap.Articles = append(snap.Articles, model.ArticleSnapshot{
				RunID:                snap.RunID,
				ArticleID:            a.ID,
				GroupName:            group,
				Title:                view.CleanText(a.Title),
				Press:                a.Press,
				PubDate:              a.PubDate,
				URL:                  a.URL,
				ClassificationResult: string(a.ClassificationResult),
				ConfidenceScore:      a.ConfidenceScore,
				CreatedAt:            snap.CreatedAt,
			})
		}
	}

	if s.influencer != nil {
		if snap.Campaigns, err = s.collectCampaigns(ctx, snap); err != nil {
			return nil, err
		}
	}
	return snap, nil
}

func (s *ExportService) collectCampaigns(ctx context.Context, snap *Snapshot) ([]model.CampaignSnapshot, error) {
	tree, err := s.influencer.HierarchicalFilters(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "加载品牌筛选项失败")
	}
	brands := make([]string, 0, len(tree.Filters))
	for _, b := range tree.Filters {
		brands = append(brands, string(b.BrandID))
	}
	data, err := fetchAll(ctx, brands, func(ctx context.Context, brand string) (*model.DashboardData, error) {
		d, err := s.influencer.Campaigns(ctx, model.CampaignFilter{BrandID: brand})
		return d, errors.Wrapf(err, "加载品牌 %s 的活动失败", brand)
	})
	if err != nil {
		return nil, err
	}

	var out []model.CampaignSnapshot
	for i, brand := range brands {
		if data[i] == nil {
			continue
		}
		for _, c := range data[i].Campaigns {
			out = append(out, model.CampaignSnapshot{
				RunID:          snap.RunID,
				BrandID:        brand,
				CampaignID:     string(c.CampaignID),
				CampName:       c.CampName,
				Status:         c.Status,
				CompletionRate: float64(c.CompletionRate),
				Alerts:         model.StringList(c.BusinessRuleAlerts),
				CreatedAt:      snap.CreatedAt,
			})
		}
	}
	return out, nil
}

// fetchAll 并发请求，结果与 keys 顺序一致，任一失败即返回
func fetchAll[T any](ctx context.Context, keys []string, fetch func(context.Context, string) (T, error)) ([]T, error) {
	out := make([]T, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, key := range keys {
		g.Go(func() error {
			v, err := fetch(gctx, key)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

type duckTable struct {
	name    string
	ddl     string
	columns []string
}

var (
	runsTable = duckTable{
		name:    "snapshot_runs",
		ddl:     "run_id VARCHAR PRIMARY KEY, created_at TIMESTAMP, keyword_count INTEGER, group_count INTEGER, article_count INTEGER, campaign_count INTEGER",
		columns: []string{"run_id", "created_at", "keyword_count", "group_count", "article_count", "campaign_count"},
	}
	keywordsTable = duckTable{
		name:    model.KeywordSnapshot{}.TableName(),
		ddl:     "run_id VARCHAR, keyword_id BIGINT, keyword VARCHAR, type VARCHAR, group_name VARCHAR, created_at TIMESTAMP",
		columns: []string{"run_id", "keyword_id", "keyword", "type", "group_name", "created_at"},
	}
	groupsTable = duckTable{
		name:    model.GroupStatSnapshot{}.TableName(),
		ddl:     "run_id VARCHAR, group_name VARCHAR, type VARCHAR, total_articles INTEGER, press_releases INTEGER, coverage_percent INTEGER, created_at TIMESTAMP",
		columns: []string{"run_id", "group_name", "type", "total_articles", "press_releases", "coverage_percent", "created_at"},
	}
	articlesTable = duckTable{
		name:    model.ArticleSnapshot{}.TableName(),
		ddl:     "run_id VARCHAR, article_id BIGINT, group_name VARCHAR, title VARCHAR, press VARCHAR, pub_date VARCHAR, url VARCHAR, classification_result VARCHAR, confidence_score DOUBLE, created_at TIMESTAMP",
		columns: []string{"run_id", "article_id", "group_name", "title", "press", "pub_date", "url", "classification_result", "confidence_score", "created_at"},
	}
	campaignsTable = duckTable{
		name:    model.CampaignSnapshot{}.TableName(),
		ddl:     "run_id VARCHAR, brand_id VARCHAR, campaign_id VARCHAR, camp_nm VARCHAR, status VARCHAR, completion_rate DOUBLE, alerts VARCHAR, created_at TIMESTAMP",
		columns: []string{"run_id", "brand_id", "campaign_id", "camp_nm", "status", "completion_rate", "alerts", "created_at"},
	}
	duckTables = []duckTable{runsTable, keywordsTable, groupsTable, articlesTable, campaignsTable}
)

// createDuckDBTables 表不存在时创建，已有的快照保留
func (s *ExportService) createDuckDBTables(ctx context.Context) error {
	for _, t := range duckTables {
		query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", t.name, t.ddl)
		if _, err := s.duck.ExecContext(ctx, query); err != nil {
			return errors.Wrapf(err, "创建表 %s 失败", t.name)
		}
	}
	zap.S().Debug("DuckDB 快照表已就绪")
	return nil
}

func (s *ExportService) writeDuckDB(ctx context.Context, snap *Snapshot) error {
	if err := s.createDuckDBTables(ctx); err != nil {
		return err
	}

	tx, err := s.duck.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "开启 DuckDB 事务失败")
	}
	defer func() { _ = tx.Rollback() }()

	batches := []struct {
		table duckTable
		rows  [][]interface{}
	}{
		{runsTable, [][]interface{}{{snap.RunID, snap.CreatedAt, len(snap.Keywords), len(snap.Groups), len(snap.Articles), len(snap.Campaigns)}}},
		{keywordsTable, keywordRows(snap.Keywords)},
		{groupsTable, groupRows(snap.Groups)},
		{articlesTable, articleRows(snap.Articles)},
		{campaignsTable, campaignRows(snap.Campaigns)},
	}
	for _, b := range batches {
		if err := insertBatches(ctx, tx, b.table, b.rows, s.batchSize); err != nil {
			return err
		}
	}
	return errors.Wrap(tx.Commit(), "提交 DuckDB 事务失败")
}

// insertBatches 每批拼成一条多行 INSERT
func insertBatches(ctx context.Context, tx *sql.Tx, t duckTable, rows [][]interface{}, batchSize int) error {
	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(t.columns)), ", ") + ")"
	for chunk := range slices.Chunk(rows, batchSize) {
		values := make([]string, len(chunk))
		args := make([]interface{}, 0, len(chunk)*len(t.columns))
		for i, row := range chunk {
			values[i] = placeholder
			args = append(args, row...)
		}
		query := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s", t.name, strings.Join(t.columns, ", "), strings.Join(values, ", "))
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrapf(err, "写入 %s 失败", t.name)
		}
	}
	return nil
}

func keywordRows(in []model.KeywordSnapshot) [][]interface{} {
	rows := make([][]interface{}, 0, len(in))
	for _, k := range in {
		rows = append(rows, []interface{}{k.RunID, k.KeywordID, k.Keyword, k.Type, k.GroupName, k.CreatedAt})
	}
	return rows
}

func groupRows(in []model.GroupStatSnapshot) [][]interface{} {
	rows := make([][]interface{}, 0, len(in))
	for _, g := range in {
		rows = append(rows, []interface{}{g.RunID, g.GroupName, g.Type, g.TotalArticles, g.PressReleases, g.CoveragePercent, g.CreatedAt})
	}
	return rows
}

func articleRows(in []model.ArticleSnapshot) [][]interface{} {
	rows := make([][]interface{}, 0, len(in))
	for _, a := range in {
		rows = append(rows, []interface{}{a.RunID, a.ArticleID, a.GroupName, a.Title, a.Press, a.PubDate, a.URL, a.ClassificationResult, a.ConfidenceScore, a.CreatedAt})
	}
	return rows
}

func campaignRows(in []model.CampaignSnapshot) [][]interface{} {
	rows := make([][]interface{}, 0, len(in))
	for _, c := range in {
		// alerts 以 JSON 文本写入
		alerts, _ := c.Alerts.Value()
		rows = append(rows, []interface{}{c.RunID, c.BrandID, c.CampaignID, c.CampName, c.Status, c.CompletionRate, alerts, c.CreatedAt})
	}
	return rows
}

func (s *ExportService) writeMySQL(ctx context.Context, snap *Snapshot) error {
	orm := s.orm.WithContext(ctx)
	if err := orm.AutoMigrate(&model.KeywordSnapshot{}, &model.GroupStatSnapshot{}, &model.ArticleSnapshot{}, &model.CampaignSnapshot{}); err != nil {
		return errors.Wrap(err, "MySQL 建表失败")
	}
	err := orm.Transaction(func(tx *gorm.DB) error {
		if len(snap.Keywords) > 0 {
			if err := tx.CreateInBatches(&snap.Keywords, s.batchSize).Error; err != nil {
				return err
			}
		}
		if len(snap.Groups) > 0 {
			if err := tx.CreateInBatches(&snap.Groups, s.batchSize).Error; err != nil {
				return err
			}
		}
		if len(snap.Articles) > 0 {
			if err := tx.CreateInBatches(&snap.Articles, s.batchSize).Error; err != nil {
				return err
			}
		}
		if len(snap.Campaigns) > 0 {
			if err := tx.CreateInBatches(&snap.Campaigns, s.batchSize).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return errors.Wrap(err, "写入 MySQL 失败")
}

// SnapshotCount 各快照表的行数，优先统计 DuckDB
func (s *ExportService) SnapshotCount(ctx context.Context) (Counts, error) {
	counts := Counts{}
	switch {
	case s.duck != nil:
		for _, t := range duckTables {
			var n int64
			if err := s.duck.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+t.name).Scan(&n); err != nil {
				return nil, errors.Wrapf(err, "查询 %s 数量失败", t.name)
			}
			counts[t.name] = n
		}
	case s.orm != nil:
		orm := s.orm.WithContext(ctx)
		for _, m := range []interface{ TableName() string }{model.KeywordSnapshot{}, model.GroupStatSnapshot{}, model.ArticleSnapshot{}, model.CampaignSnapshot{}} {
			var n int64
			if err := orm.Table(m.TableName()).Count(&n).Error; err != nil {
				return nil, errors.Wrapf(err, "查询 %s 数量失败", m.TableName())
			}
			counts[m.TableName()] = n
		}
	default:
		return nil, errors.New("没有可用的导出目标")
	}
	return counts, nil
}
