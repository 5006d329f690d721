package request

type HotTopicListQuery struct {
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit    int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
	Category string `form:"category"`
	SortBy   string `form:"sortBy"`
	Order    string `form:"order"`
}

type LimitQuery struct {
	Limit int `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}

type CreateHotTopicRequest struct {
	Title           string                 `json:"title" binding:"required,max=255"`
	Summary         string                 `json:"summary"`
	Category        string                 `json:"category" binding:"omitempty,max=64"`
	Source          string                 `json:"source" binding:"omitempty,max=64"`
	HotnessScore    float64                `json:"hotness_score" binding:"omitempty,min=0,max=100"`
	TrendData       map[string]interface{} `json:"trend_data"`
	RelatedKeywords string                 `json:"related_keywords" binding:"omitempty,max=512"`
}
