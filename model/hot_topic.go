package model

import (
	"time"

	"gorm.io/datatypes"
)

// HotTopic 热点话题，供生成文章时参考；除显式编辑外不发生变化。
type HotTopic struct {
	ID              uint64            `gorm:"primarykey" json:"id"`
	Title           string            `gorm:"not null;size:255" json:"title"`
	Summary         string            `gorm:"type:text" json:"summary"`
	Category        string            `gorm:"size:64;index" json:"category"`
	Source          string            `gorm:"size:64" json:"source"`
	HotnessScore    float64           `gorm:"index" json:"hotness_score"`
	TrendData       datatypes.JSONMap `json:"trend_data"`
	RelatedKeywords string            `gorm:"size:512" json:"related_keywords"` // 逗号分隔
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
