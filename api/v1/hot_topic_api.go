package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"wxwriter/api/v1/request"
	"wxwriter/dao"
	"wxwriter/model"
	"wxwriter/service"
)

// HotTopicAPI 热点话题浏览与录入。
type HotTopicAPI struct {
	service *service.HotTopicService
}

func NewHotTopicAPI(s *service.HotTopicService) *HotTopicAPI {
	return &HotTopicAPI{service: s}
}

// List 分页浏览话题，支持分类过滤与白名单排序
func (h *HotTopicAPI) List(c *gin.Context) {
	var q request.HotTopicListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	topics, total, err := h.service.List(dao.HotTopicFilter{
		Category: q.Category,
		SortBy:   q.SortBy,
		Order:    strings.ToUpper(q.Order),
		Page:     q.Page,
		Limit:    q.Limit,
	})
	if err != nil {
		respondServiceError(c, err, "failed to fetch hot topics")
		return
	}
	respondPage(c, topics, model.NewPagination(q.Page, q.Limit, total))
}

// Trending 高热度话题
func (h *HotTopicAPI) Trending(c *gin.Context) {
	var q request.LimitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	topics, err := h.service.Trending(c.Request.Context(), q.Limit)
	if err != nil {
		respondServiceError(c, err, "failed to fetch trending topics")
		return
	}
	respondOK(c, topics)
}

// ByCategory 某分类下热度最高的话题
func (h *HotTopicAPI) ByCategory(c *gin.Context) {
	var q request.LimitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	topics, err := h.service.ByCategory(c.Param("category"), q.Limit)
	if err != nil {
		respondServiceError(c, err, "failed to fetch hot topics by category")
		return
	}
	respondOK(c, topics)
}

// GetByID 单条话题
func (h *HotTopicAPI) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid hot topic id")
		return
	}

	topic, err := h.service.GetByID(id)
	if err != nil {
		respondServiceError(c, err, "failed to fetch hot topic")
		return
	}
	respondOK(c, topic)
}

// Create 录入新话题
func (h *HotTopicAPI) Create(c *gin.Context) {
	var req request.CreateHotTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	topic := &model.HotTopic{
		Title:           req.Title,
		Summary:         req.Summary,
		Category:        req.Category,
		Source:          req.Source,
		HotnessScore:    req.HotnessScore,
		RelatedKeywords: req.RelatedKeywords,
	}
	if req.TrendData != nil {
		topic.TrendData = datatypes.JSONMap(req.TrendData)
	}
	if err := h.service.Create(topic); err != nil {
		respondServiceError(c, err, "failed to create hot topic")
		return
	}
	respondCreated(c, topic)
}
