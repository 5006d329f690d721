package model

import (
	"time"

	"gorm.io/datatypes"
)

// 文章生命周期状态
const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

// 微信同步状态
const (
	SyncStatusPending = "pending"
	SyncStatusSynced  = "synced"
	SyncStatusFailed  = "failed"
)

// Article 文章模型。所有权在创建时确定，之后不变。
type Article struct {
	ID                     uint64            `gorm:"primarykey" json:"id"`
	UserID                 uint64            `gorm:"not null;index" json:"user_id"`
	HotTopicID             *uint64           `gorm:"index" json:"hot_topic_id,omitempty"`
	Title                  string            `gorm:"not null;size:255" json:"title"`
	Content                string            `gorm:"type:text" json:"content"`
	CoverImageURL          string            `gorm:"size:512" json:"cover_image_url"`
	ArticleType            string            `gorm:"size:32;default:educational" json:"article_type"`
	Style                  string            `gorm:"size:32;default:professional" json:"style"`
	Structure              string            `gorm:"size:32;default:standard" json:"structure"`
	WordCount              int               `json:"word_count"` // 服务端按空白分词重算，不信任客户端
	Status                 string            `gorm:"size:16;index;default:draft" json:"status"`
	AdditionalRequirements datatypes.JSONMap `json:"additional_requirements,omitempty"`
	AIModel                string            `gorm:"size:64" json:"ai_model,omitempty"`
	GenerationTimeSeconds  int               `json:"generation_time_seconds,omitempty"`
	WeChatSyncStatus       string            `gorm:"column:wechat_sync_status;size:16;index;default:pending" json:"wechat_sync_status"`
	WeChatArticleID        string            `gorm:"column:wechat_article_id;size:128" json:"wechat_article_id,omitempty"`
	WeChatSyncTime         *time.Time        `gorm:"column:wechat_sync_time" json:"wechat_sync_time,omitempty"`
	PublishedAt            *time.Time        `json:"published_at,omitempty"`
	CreatedAt              time.Time         `json:"created_at"`
	UpdatedAt              time.Time         `json:"updated_at"`

	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	HotTopic *HotTopic `gorm:"foreignKey:HotTopicID" json:"hot_topic,omitempty"`
}
