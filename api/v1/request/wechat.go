package request

type SyncRequest struct {
	ArticleID uint64 `json:"article_id" binding:"required"`
}

type SyncLogsQuery struct {
	Page  int `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}
