package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"wxwriter/dao"
	"wxwriter/internal/llm"
	"wxwriter/internal/wechatmp"
	"wxwriter/model"
)

// 内存版存储实现，供各 service 测试复用

type memUsers struct {
	nextID uint64
	users  map[uint64]*model.User
}

func newMemUsers() *memUsers {
	return &memUsers{nextID: 1, users: map[uint64]*model.User{}}
}

func (m *memUsers) Create(user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email || u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *memUsers) GetByEmail(email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUsers) GetByID(id uint64) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *memUsers) UpdateProfile(id uint64, updates map[string]interface{}) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := updates["username"]; ok {
		u.Username = v.(string)
	}
	if v, ok := updates["avatar_url"]; ok {
		u.AvatarURL = v.(string)
	}
	copied := *u
	return &copied, nil
}

type memArticles struct {
	nextID    uint64
	articles  map[uint64]*model.Article
	deleteErr error // 注入 DeleteWithHistory 失败
	updateErr error // 注入 Update 失败
	histories []*model.ArticleHistory
}

func newMemArticles() *memArticles {
	return &memArticles{nextID: 1, articles: map[uint64]*model.Article{}}
}

func (m *memArticles) List(f dao.ArticleFilter) ([]model.Article, int64, error) {
	var all []model.Article
	for _, a := range m.articles {
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.UserID != 0 && a.UserID != f.UserID {
			continue
		}
		all = append(all, *a)
	}
	sort.Slice(all, func(i, j int) bool {
		if f.Order == "ASC" {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	total := int64(len(all))
	start := (f.Page - 1) * f.Limit
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + f.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (m *memArticles) GetByID(id uint64) (*model.Article, error) {
	a, ok := m.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *a
	return &copied, nil
}

func (m *memArticles) GetOwned(id, userID uint64) (*model.Article, error) {
	a, ok := m.articles[id]
	if !ok || a.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *a
	return &copied, nil
}

func (m *memArticles) Create(article *model.Article) error {
	article.ID = m.nextID
	m.nextID++
	article.CreatedAt = time.Now()
	m.articles[article.ID] = article
	return nil
}

func (m *memArticles) Update(id uint64, updates map[string]interface{}) (*model.Article, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	a, ok := m.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for k, v := range updates {
		switch k {
		case "title":
			a.Title = v.(string)
		case "content":
			a.Content = v.(string)
		case "word_count":
			a.WordCount = v.(int)
		case "status":
			a.Status = v.(string)
		case "cover_image_url":
			a.CoverImageURL = v.(string)
		case "article_type":
			a.ArticleType = v.(string)
		case "style":
			a.Style = v.(string)
		case "structure":
			a.Structure = v.(string)
		case "wechat_sync_status":
			a.WeChatSyncStatus = v.(string)
		case "wechat_article_id":
			a.WeChatArticleID = v.(string)
		case "wechat_sync_time":
			t := v.(time.Time)
			a.WeChatSyncTime = &t
		}
	}
	copied := *a
	return &copied, nil
}

func (m *memArticles) DeleteWithHistory(article *model.Article, history *model.ArticleHistory) error {
	// 模拟事务：失败时两边都不生效
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.histories = append(m.histories, history)
	delete(m.articles, article.ID)
	return nil
}

func (m *memArticles) CountCreatedSince(userID uint64, since time.Time) (int64, error) {
	var count int64
	for _, a := range m.articles {
		if a.UserID == userID && !a.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

type memLogs struct {
	nextID     uint64
	genLogs    map[uint64]*model.GenerationLog
	syncLogs   []*model.SyncLog
	histories  []*model.ArticleHistory
	historyErr error
}

func newMemLogs() *memLogs {
	return &memLogs{nextID: 1, genLogs: map[uint64]*model.GenerationLog{}}
}

func (m *memLogs) CreateGenerationLog(log *model.GenerationLog) error {
	log.ID = m.nextID
	m.nextID++
	log.CreatedAt = time.Now()
	m.genLogs[log.ID] = log
	return nil
}

func (m *memLogs) UpdateGenerationLog(log *model.GenerationLog) error {
	if _, ok := m.genLogs[log.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.genLogs[log.ID] = log
	return nil
}

func (m *memLogs) ListGenerationLogs(userID uint64, page, limit int) ([]model.GenerationLog, int64, error) {
	var logs []model.GenerationLog
	for _, l := range m.genLogs {
		if l.UserID == userID {
			logs = append(logs, *l)
		}
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].CreatedAt.After(logs[j].CreatedAt) })
	return logs, int64(len(logs)), nil
}

func (m *memLogs) CreateSyncLog(log *model.SyncLog) error {
	log.CreatedAt = time.Now()
	m.syncLogs = append(m.syncLogs, log)
	return nil
}

func (m *memLogs) ListSyncLogsByArticle(articleID uint64) ([]model.SyncLog, error) {
	var logs []model.SyncLog
	for _, l := range m.syncLogs {
		if l.ArticleID == articleID {
			logs = append(logs, *l)
		}
	}
	return logs, nil
}

func (m *memLogs) ListSyncLogsByUser(userID uint64, page, limit int) ([]model.SyncLog, int64, error) {
	logs := make([]model.SyncLog, 0, len(m.syncLogs))
	for _, l := range m.syncLogs {
		logs = append(logs, *l)
	}
	return logs, int64(len(logs)), nil
}

func (m *memLogs) CreateHistory(entry *model.ArticleHistory) error {
	if m.historyErr != nil {
		return m.historyErr
	}
	entry.CreatedAt = time.Now()
	m.histories = append(m.histories, entry)
	return nil
}

// fakeGenerator 返回固定文本，可注入失败
type fakeGenerator struct {
	content      string
	tokens       int
	err          error
	gotMaxTokens int
	gotMessages  []llm.Message
	calls        int
}

func (f *fakeGenerator) ChatCompletion(ctx context.Context, model string, messages []llm.Message, maxTokens int) (*llm.Completion, error) {
	f.calls++
	f.gotMaxTokens = maxTokens
	f.gotMessages = messages
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Completion{Content: f.content, TokensUsed: f.tokens}, nil
}

// fakePublisher 可注入失败的发布端
type fakePublisher struct {
	result *wechatmp.PublishResult
	err    error
	calls  int
}

func (f *fakePublisher) Publish(ctx context.Context, draft wechatmp.ArticleDraft) (*wechatmp.PublishResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakePublisher) GetAccountInfo(ctx context.Context) (*wechatmp.AccountInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &wechatmp.AccountInfo{AppID: "test-app", AccountStatus: "active"}, nil
}

var errProvider = errors.New("provider unavailable")
