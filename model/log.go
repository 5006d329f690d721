package model

import (
	"time"

	"gorm.io/datatypes"
)

// GenerationLog 每次生成请求一条，先写后调，失败也保留。只追加。
type GenerationLog struct {
	ID                    uint64    `gorm:"primarykey" json:"id"`
	UserID                uint64    `gorm:"not null;index" json:"user_id"`
	ArticleID             *uint64   `gorm:"index" json:"article_id,omitempty"`
	Prompt                string    `gorm:"type:text" json:"prompt"`
	Response              string    `gorm:"type:text" json:"response,omitempty"`
	ModelUsed             string    `gorm:"size:64" json:"model_used"`
	TokensUsed            int       `json:"tokens_used"`
	GenerationTimeSeconds int       `json:"generation_time_seconds"`
	Success               bool      `json:"success"`
	ErrorMessage          string    `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt             time.Time `json:"created_at"`

	// 文章删除后日志保留，article_id 置空
	Article *Article `gorm:"foreignKey:ArticleID;constraint:OnDelete:SET NULL" json:"article,omitempty"`
}

// 同步结果
const (
	SyncLogSuccess = "success"
	SyncLogFailed  = "failed"
)

// SyncLog 每次微信同步尝试一条。只追加。
type SyncLog struct {
	ID              uint64            `gorm:"primarykey" json:"id"`
	ArticleID       uint64            `gorm:"not null;index" json:"article_id"`
	SyncStatus      string            `gorm:"size:16;not null" json:"sync_status"`
	WeChatArticleID string            `gorm:"column:wechat_article_id;size:128" json:"wechat_article_id,omitempty"`
	WeChatResponse  datatypes.JSONMap `gorm:"column:wechat_response" json:"wechat_response,omitempty"`
	ErrorMessage    string            `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`

	// 同步日志脱离文章没有意义，随文章删除
	Article *Article `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE" json:"article,omitempty"`
}

// 文章历史动作
const (
	HistoryActionCreated = "created"
	HistoryActionUpdated = "updated"
	HistoryActionDeleted = "deleted"
)

// ArticleHistory 文章操作审计，只追加。
type ArticleHistory struct {
	ID        uint64            `gorm:"primarykey" json:"id"`
	UserID    uint64            `gorm:"not null;index" json:"user_id"`
	ArticleID uint64            `gorm:"not null;index" json:"article_id"`
	Action    string            `gorm:"size:16;not null" json:"action"`
	Metadata  datatypes.JSONMap `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
