package v1

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"wxwriter/dao"
	"wxwriter/internal/llm"
	"wxwriter/internal/wechatmp"
	"wxwriter/model"
)

// 路由级测试用的内存存储

type stubUsers struct {
	nextID uint64
	users  map[uint64]*model.User
}

func newStubUsers() *stubUsers {
	return &stubUsers{nextID: 1, users: map[uint64]*model.User{}}
}

func (s *stubUsers) Create(user *model.User) error {
	for _, u := range s.users {
		if u.Email == user.Email || u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = user
	return nil
}

func (s *stubUsers) GetByEmail(email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUsers) GetByID(id uint64) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *stubUsers) UpdateProfile(id uint64, updates map[string]interface{}) (*model.User, error) {
	u, ok := s.users[id]
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

type stubArticles struct {
	nextID   uint64
	articles map[uint64]*model.Article
	history  []*model.ArticleHistory
}

func newStubArticles() *stubArticles {
	return &stubArticles{nextID: 1, articles: map[uint64]*model.Article{}}
}

func (s *stubArticles) List(f dao.ArticleFilter) ([]model.Article, int64, error) {
	var all []model.Article
	for _, a := range s.articles {
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.UserID != 0 && a.UserID != f.UserID {
			continue
		}
		all = append(all, *a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
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

func (s *stubArticles) GetByID(id uint64) (*model.Article, error) {
	a, ok := s.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *a
	return &copied, nil
}

func (s *stubArticles) GetOwned(id, userID uint64) (*model.Article, error) {
	a, ok := s.articles[id]
	if !ok || a.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *a
	return &copied, nil
}

func (s *stubArticles) Create(article *model.Article) error {
	article.ID = s.nextID
	s.nextID++
	article.CreatedAt = time.Now()
	s.articles[article.ID] = article
	return nil
}

func (s *stubArticles) Update(id uint64, updates map[string]interface{}) (*model.Article, error) {
	a, ok := s.articles[id]
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

func (s *stubArticles) DeleteWithHistory(article *model.Article, history *model.ArticleHistory) error {
	s.history = append(s.history, history)
	delete(s.articles, article.ID)
	return nil
}

func (s *stubArticles) CountCreatedSince(userID uint64, since time.Time) (int64, error) {
	var count int64
	for _, a := range s.articles {
		if a.UserID == userID && !a.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

type stubLogs struct {
	nextID   uint64
	genLogs  map[uint64]*model.GenerationLog
	syncLogs []*model.SyncLog
	history  []*model.ArticleHistory
}

func newStubLogs() *stubLogs {
	return &stubLogs{nextID: 1, genLogs: map[uint64]*model.GenerationLog{}}
}

func (s *stubLogs) CreateGenerationLog(log *model.GenerationLog) error {
	log.ID = s.nextID
	s.nextID++
	log.CreatedAt = time.Now()
	s.genLogs[log.ID] = log
	return nil
}

func (s *stubLogs) UpdateGenerationLog(log *model.GenerationLog) error {
	s.genLogs[log.ID] = log
	return nil
}

func (s *stubLogs) ListGenerationLogs(userID uint64, page, limit int) ([]model.GenerationLog, int64, error) {
	var logs []model.GenerationLog
	for _, l := range s.genLogs {
		if l.UserID == userID {
			logs = append(logs, *l)
		}
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].ID > logs[j].ID })
	return logs, int64(len(logs)), nil
}

func (s *stubLogs) CreateSyncLog(log *model.SyncLog) error {
	s.syncLogs = append(s.syncLogs, log)
	return nil
}

func (s *stubLogs) ListSyncLogsByArticle(articleID uint64) ([]model.SyncLog, error) {
	var logs []model.SyncLog
	for _, l := range s.syncLogs {
		if l.ArticleID == articleID {
			logs = append(logs, *l)
		}
	}
	return logs, nil
}

func (s *stubLogs) ListSyncLogsByUser(userID uint64, page, limit int) ([]model.SyncLog, int64, error) {
	logs := make([]model.SyncLog, 0, len(s.syncLogs))
	for _, l := range s.syncLogs {
		logs = append(logs, *l)
	}
	return logs, int64(len(logs)), nil
}

func (s *stubLogs) CreateHistory(entry *model.ArticleHistory) error {
	s.history = append(s.history, entry)
	return nil
}

type stubTopics struct {
	nextID uint64
	topics map[uint64]*model.HotTopic
}

func newStubTopics() *stubTopics {
	return &stubTopics{nextID: 1, topics: map[uint64]*model.HotTopic{}}
}

func (s *stubTopics) List(f dao.HotTopicFilter) ([]model.HotTopic, int64, error) {
	var all []model.HotTopic
	for _, t := range s.topics {
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		all = append(all, *t)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].HotnessScore > all[j].HotnessScore })
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

func (s *stubTopics) GetByID(id uint64) (*model.HotTopic, error) {
	t, ok := s.topics[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	return &copied, nil
}

func (s *stubTopics) ListTrending(limit int) ([]model.HotTopic, error) {
	var hot []model.HotTopic
	for _, t := range s.topics {
		if t.HotnessScore > 80 {
			hot = append(hot, *t)
		}
	}
	if len(hot) > limit {
		hot = hot[:limit]
	}
	return hot, nil
}

func (s *stubTopics) ListByCategory(category string, limit int) ([]model.HotTopic, error) {
	var out []model.HotTopic
	for _, t := range s.topics {
		if t.Category == category {
			out = append(out, *t)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubTopics) Create(topic *model.HotTopic) error {
	topic.ID = s.nextID
	s.nextID++
	s.topics[topic.ID] = topic
	return nil
}

type stubGenerator struct {
	content string
	tokens  int
	err     error
	calls   int
}

func (s *stubGenerator) ChatCompletion(ctx context.Context, model string, messages []llm.Message, maxTokens int) (*llm.Completion, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &llm.Completion{Content: s.content, TokensUsed: s.tokens}, nil
}

type stubPublisher struct {
	err   error
	calls int
}

func (s *stubPublisher) Publish(ctx context.Context, draft wechatmp.ArticleDraft) (*wechatmp.PublishResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &wechatmp.PublishResult{ArticleID: "wx-1", URL: "https://mp.weixin.qq.com/s/wx-1", PublishedAt: time.Now()}, nil
}

func (s *stubPublisher) GetAccountInfo(ctx context.Context) (*wechatmp.AccountInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &wechatmp.AccountInfo{AppID: "app-id", AccountStatus: "active"}, nil
}
