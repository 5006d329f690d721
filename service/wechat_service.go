package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"wxwriter/internal/wechatmp"
	"wxwriter/model"
)

type publisher interface {
	Publish(ctx context.Context, draft wechatmp.ArticleDraft) (*wechatmp.PublishResult, error)
	GetAccountInfo(ctx context.Context) (*wechatmp.AccountInfo, error)
}

type syncLogStore interface {
	CreateSyncLog(log *model.SyncLog) error
	ListSyncLogsByArticle(articleID uint64) ([]model.SyncLog, error)
	ListSyncLogsByUser(userID uint64, page, limit int) ([]model.SyncLog, int64, error)
}

// SyncStatus 当前同步状态与完整历史
type SyncStatus struct {
	CurrentStatus   string          `json:"current_status"`
	WeChatArticleID string          `json:"wechat_article_id,omitempty"`
	WeChatSyncTime  *time.Time      `json:"wechat_sync_time,omitempty"`
	SyncHistory     []model.SyncLog `json:"sync_history"`
}

// SyncResult 同步成功后的返回
type SyncResult struct {
	WeChatArticleID string    `json:"wechat_article_id"`
	SyncTime        time.Time `json:"sync_time"`
}

// WeChatService 把文章投递到公众号并维护同步状态机。
// 每次尝试恰好产生一条 SyncLog，成功与失败互斥。
type WeChatService struct {
	articles  articleStore
	logs      syncLogStore
	publisher publisher
}

func NewWeChatService(articles articleStore, logs syncLogStore, pub publisher) *WeChatService {
	return &WeChatService{articles: articles, logs: logs, publisher: pub}
}

// Sync 发布一篇自己的文章到微信。
func (s *WeChatService) Sync(ctx context.Context, userID, articleID uint64) (*SyncResult, error) {
	article, err := s.articles.GetOwned(articleID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if article.WeChatSyncStatus == model.SyncStatusSynced {
		return nil, ErrAlreadySynced
	}

	author := ""
	if article.User != nil {
		author = article.User.Username
	}
	result, err := s.publisher.Publish(ctx, wechatmp.ArticleDraft{
		Title:   article.Title,
		Content: article.Content,
		Author:  author,
	})
	if err != nil {
		// 失败：置 failed、追加失败日志，再把错误抛给调用方
		if _, uerr := s.articles.Update(articleID, map[string]interface{}{
			"wechat_sync_status": model.SyncStatusFailed,
		}); uerr != nil {
			slog.Warn("mark article sync failed", "article_id", articleID, "error", uerr)
		}
		_ = s.logs.CreateSyncLog(&model.SyncLog{
			ArticleID:    articleID,
			SyncStatus:   model.SyncLogFailed,
			ErrorMessage: err.Error(),
		})
		return nil, &UpstreamError{Op: "sync to WeChat", Err: err}
	}

	syncTime := result.PublishedAt
	if _, err := s.articles.Update(articleID, map[string]interface{}{
		"wechat_sync_status": model.SyncStatusSynced,
		"wechat_article_id":  result.ArticleID,
		"wechat_sync_time":   syncTime,
	}); err != nil {
		return nil, err
	}
	_ = s.logs.CreateSyncLog(&model.SyncLog{
		ArticleID:       articleID,
		SyncStatus:      model.SyncLogSuccess,
		WeChatArticleID: result.ArticleID,
		WeChatResponse: datatypes.JSONMap{
			"article_id":   result.ArticleID,
			"url":          result.URL,
			"published_at": result.PublishedAt.Format(time.RFC3339),
		},
	})

	return &SyncResult{WeChatArticleID: result.ArticleID, SyncTime: syncTime}, nil
}

// Status 某篇自己文章的同步状态与历史
func (s *WeChatService) Status(userID, articleID uint64) (*SyncStatus, error) {
	article, err := s.articles.GetOwned(articleID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	history, err := s.logs.ListSyncLogsByArticle(articleID)
	if err != nil {
		return nil, err
	}
	return &SyncStatus{
		CurrentStatus:   article.WeChatSyncStatus,
		WeChatArticleID: article.WeChatArticleID,
		WeChatSyncTime:  article.WeChatSyncTime,
		SyncHistory:     history,
	}, nil
}

// Logs 当前用户名下所有文章的同步记录
func (s *WeChatService) Logs(userID uint64, page, limit int) ([]model.SyncLog, int64, error) {
	return s.logs.ListSyncLogsByUser(userID, page, limit)
}

// AccountInfo 公众号概要
func (s *WeChatService) AccountInfo(ctx context.Context) (*wechatmp.AccountInfo, error) {
	info, err := s.publisher.GetAccountInfo(ctx)
	if err != nil {
		return nil, &UpstreamError{Op: "fetch WeChat account info", Err: err}
	}
	return info, nil
}
