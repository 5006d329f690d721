package model

import "time"

// User 用户模型
type User struct {
	ID                  uint64    `gorm:"primarykey" json:"id"`
	Username            string    `gorm:"uniqueIndex;not null;size:50" json:"username"`
	Email               string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash        string    `gorm:"not null;size:255" json:"-"` // 忽略JSON序列化
	SubscriptionType    string    `gorm:"not null;size:20;default:free" json:"subscription_type"`
	DailyArticleLimit   int       `gorm:"not null;default:5" json:"daily_article_limit"`
	MonthlyArticleLimit int       `gorm:"not null;default:50" json:"monthly_article_limit"`
	AvatarURL           string    `gorm:"size:255" json:"avatar_url"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
