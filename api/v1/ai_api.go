package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wxwriter/api/v1/request"
	"wxwriter/internal/metrics"
	"wxwriter/model"
	"wxwriter/service"
)

// AIAPI 文章生成相关 Handler。
type AIAPI struct {
	service *service.GenerationService
}

func NewAIAPI(s *service.GenerationService) *AIAPI {
	return &AIAPI{service: s}
}

// Generate 触发一次生成，成功返回新建的草稿文章和生成元数据
func (a *AIAPI) Generate(c *gin.Context) {
	var req request.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncGeneration("bad_request")
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	in := service.GenerateInput{
		Topic:       req.Topic,
		ArticleType: req.ArticleType,
		Style:       req.Style,
		Structure:   req.Structure,
		WordCount:   req.WordCount,
		AIModel:     req.AIModel,
		HotTopicID:  req.HotTopicID,
	}
	if req.AdditionalRequirements != nil {
		in.AdditionalRequirements = &service.AdditionalRequirements{
			IncludeData:        req.AdditionalRequirements.IncludeData,
			IncludeInteraction: req.AdditionalRequirements.IncludeInteraction,
			Tone:               req.AdditionalRequirements.Tone,
		}
	}

	article, info, err := a.service.Generate(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		metrics.IncGeneration("failed")
		respondServiceError(c, err, "failed to generate article")
		return
	}
	metrics.IncGeneration("success")
	respondOK(c, gin.H{"article": article, "generation_info": info})
}

// History 当前用户的生成历史
func (a *AIAPI) History(c *gin.Context) {
	var q request.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	logs, total, err := a.service.History(currentUserID(c), q.Page, q.Limit)
	if err != nil {
		respondServiceError(c, err, "failed to fetch generation history")
		return
	}
	respondPage(c, logs, model.NewPagination(q.Page, q.Limit, total))
}
