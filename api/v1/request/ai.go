package request

type AdditionalRequirements struct {
	IncludeData        bool   `json:"include_data"`
	IncludeInteraction bool   `json:"include_interaction"`
	Tone               string `json:"tone" binding:"omitempty,max=32"`
}

type GenerateRequest struct {
	Topic                  string                  `json:"topic" binding:"required,max=255"`
	ArticleType            string                  `json:"article_type" binding:"omitempty,max=32"`
	Style                  string                  `json:"style" binding:"omitempty,max=32"`
	Structure              string                  `json:"structure" binding:"omitempty,max=32"`
	WordCount              int                     `json:"word_count" binding:"omitempty,min=100,max=5000"`
	AdditionalRequirements *AdditionalRequirements `json:"additional_requirements"`
	AIModel                string                  `json:"ai_model" binding:"omitempty,max=64"`
	HotTopicID             *uint64                 `json:"hot_topic_id"`
}

type HistoryQuery struct {
	Page  int `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}
