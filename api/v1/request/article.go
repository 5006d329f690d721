package request

type ArticleListQuery struct {
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=draft published"`
	UserID uint64 `form:"user_id"`
	SortBy string `form:"sortBy"`
	Order  string `form:"order"`
}

type MyArticlesQuery struct {
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=draft published"`
}

type CreateArticleRequest struct {
	Title                  string                 `json:"title" binding:"required,max=255"`
	Content                string                 `json:"content" binding:"required"`
	CoverImageURL          string                 `json:"cover_image_url" binding:"omitempty,url"`
	ArticleType            string                 `json:"article_type" binding:"omitempty,max=32"`
	Style                  string                 `json:"style" binding:"omitempty,max=32"`
	Structure              string                 `json:"structure" binding:"omitempty,max=32"`
	HotTopicID             *uint64                `json:"hot_topic_id"`
	AdditionalRequirements map[string]interface{} `json:"additional_requirements"`
}

type UpdateArticleRequest struct {
	Title         *string `json:"title" binding:"omitempty,max=255"`
	Content       *string `json:"content"`
	CoverImageURL *string `json:"cover_image_url" binding:"omitempty,url"`
	ArticleType   *string `json:"article_type" binding:"omitempty,max=32"`
	Style         *string `json:"style" binding:"omitempty,max=32"`
	Structure     *string `json:"structure" binding:"omitempty,max=32"`
	Status        *string `json:"status" binding:"omitempty,oneof=draft published"`
}
