package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"wxwriter/dao"
	"wxwriter/model"
)

type articleStore interface {
	List(f dao.ArticleFilter) ([]model.Article, int64, error)
	GetByID(id uint64) (*model.Article, error)
	GetOwned(id, userID uint64) (*model.Article, error)
	Create(article *model.Article) error
	Update(id uint64, updates map[string]interface{}) (*model.Article, error)
	DeleteWithHistory(article *model.Article, history *model.ArticleHistory) error
	CountCreatedSince(userID uint64, since time.Time) (int64, error)
}

type historyStore interface {
	CreateHistory(entry *model.ArticleHistory) error
}

// CountWords 按空白分词统计字数，与入库口径一致
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// CreateArticleInput 手工建稿的入参
type CreateArticleInput struct {
	Title                  string
	Content                string
	CoverImageURL          string
	ArticleType            string
	Style                  string
	Structure              string
	HotTopicID             *uint64
	AdditionalRequirements map[string]interface{}
}

// UpdateArticleInput 部分更新；nil 字段保持原值
type UpdateArticleInput struct {
	Title         *string
	Content       *string
	CoverImageURL *string
	ArticleType   *string
	Style         *string
	Structure     *string
	Status        *string
}

// ArticleService 文章 CRUD。所有写操作都要求调用者是文章所有者，
// 所有权不满足时一律返回 ErrNotFound。
type ArticleService struct {
	articles articleStore
	history  historyStore
}

func NewArticleService(articles articleStore, history historyStore) *ArticleService {
	return &ArticleService{articles: articles, history: history}
}

// List 公开的文章列表
func (s *ArticleService) List(f dao.ArticleFilter) ([]model.Article, int64, error) {
	return s.articles.List(f)
}

// GetByID 查询单篇文章
func (s *ArticleService) GetByID(id uint64) (*model.Article, error) {
	article, err := s.articles.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return article, nil
}

// ListByUser 当前用户自己的文章
func (s *ArticleService) ListByUser(userID uint64, status string, page, limit int) ([]model.Article, int64, error) {
	return s.articles.List(dao.ArticleFilter{
		UserID: userID,
		Status: status,
		SortBy: "created_at",
		Order:  "DESC",
		Page:   page,
		Limit:  limit,
	})
}

// Create 手工建稿；word_count 由内容重算
func (s *ArticleService) Create(userID uint64, in CreateArticleInput) (*model.Article, error) {
	article := &model.Article{
		UserID:           userID,
		HotTopicID:       in.HotTopicID,
		Title:            in.Title,
		Content:          in.Content,
		CoverImageURL:    in.CoverImageURL,
		ArticleType:      orDefault(in.ArticleType, "educational"),
		Style:            orDefault(in.Style, "professional"),
		Structure:        orDefault(in.Structure, "standard"),
		WordCount:        CountWords(in.Content),
		Status:           model.ArticleStatusDraft,
		WeChatSyncStatus: model.SyncStatusPending,
	}
	if in.AdditionalRequirements != nil {
		article.AdditionalRequirements = datatypes.JSONMap(in.AdditionalRequirements)
	}
	if err := s.articles.Create(article); err != nil {
		return nil, err
	}

	// 审计行失败不回滚创建，与生成路径保持一致
	_ = s.history.CreateHistory(&model.ArticleHistory{
		UserID:    userID,
		ArticleID: article.ID,
		Action:    model.HistoryActionCreated,
		Metadata:  datatypes.JSONMap{"source": "manual"},
	})
	return article, nil
}

// Update 部分更新自己的文章；内容变化时重算 word_count
func (s *ArticleService) Update(userID, id uint64, in UpdateArticleInput) (*model.Article, error) {
	if _, err := s.articles.GetOwned(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	var changed []string
	setField := func(name string, v *string) {
		if v != nil {
			updates[name] = *v
			changed = append(changed, name)
		}
	}
	setField("title", in.Title)
	setField("cover_image_url", in.CoverImageURL)
	setField("article_type", in.ArticleType)
	setField("style", in.Style)
	setField("structure", in.Structure)
	setField("status", in.Status)
	if in.Content != nil {
		updates["content"] = *in.Content
		updates["word_count"] = CountWords(*in.Content)
		changed = append(changed, "content")
	}

	article, err := s.articles.Update(id, updates)
	if err != nil {
		return nil, err
	}

	meta := datatypes.JSONMap{}
	if len(changed) > 0 {
		fields := make([]interface{}, len(changed))
		for i, f := range changed {
			fields[i] = f
		}
		meta["fields_updated"] = fields
	}
	_ = s.history.CreateHistory(&model.ArticleHistory{
		UserID:    userID,
		ArticleID: id,
		Action:    model.HistoryActionUpdated,
		Metadata:  meta,
	})
	return article, nil
}

// Delete removes an owned article; the audit row and the delete commit or
// roll back together.
func (s *ArticleService) Delete(userID, id uint64) error {
	article, err := s.articles.GetOwned(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.articles.DeleteWithHistory(article, &model.ArticleHistory{
		UserID:    userID,
		ArticleID: id,
		Action:    model.HistoryActionDeleted,
		Metadata:  datatypes.JSONMap{"reason": "user_action"},
	})
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
