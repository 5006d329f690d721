package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"wxwriter/api/v1/request"
	"wxwriter/dao"
	"wxwriter/model"
	"wxwriter/service"
)

// ArticleAPI 文章 CRUD Handler。
type ArticleAPI struct {
	service *service.ArticleService
}

func NewArticleAPI(s *service.ArticleService) *ArticleAPI {
	return &ArticleAPI{service: s}
}

// List 公开文章列表
func (a *ArticleAPI) List(c *gin.Context) {
	var q request.ArticleListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	articles, total, err := a.service.List(dao.ArticleFilter{
		Status: q.Status,
		UserID: q.UserID,
		SortBy: q.SortBy,
		Order:  strings.ToUpper(q.Order),
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		respondServiceError(c, err, "failed to fetch articles")
		return
	}
	respondPage(c, articles, model.NewPagination(q.Page, q.Limit, total))
}

// GetByID 单篇文章
func (a *ArticleAPI) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid article id")
		return
	}

	article, err := a.service.GetByID(id)
	if err != nil {
		respondServiceError(c, err, "failed to fetch article")
		return
	}
	respondOK(c, article)
}

// MyArticles 当前用户自己的文章
func (a *ArticleAPI) MyArticles(c *gin.Context) {
	var q request.MyArticlesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	articles, total, err := a.service.ListByUser(currentUserID(c), q.Status, q.Page, q.Limit)
	if err != nil {
		respondServiceError(c, err, "failed to fetch user articles")
		return
	}
	respondPage(c, articles, model.NewPagination(q.Page, q.Limit, total))
}

// Create 手工建稿
func (a *ArticleAPI) Create(c *gin.Context) {
	var req request.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	article, err := a.service.Create(currentUserID(c), service.CreateArticleInput{
		Title:                  req.Title,
		Content:                req.Content,
		CoverImageURL:          req.CoverImageURL,
		ArticleType:            req.ArticleType,
		Style:                  req.Style,
		Structure:              req.Structure,
		HotTopicID:             req.HotTopicID,
		AdditionalRequirements: req.AdditionalRequirements,
	})
	if err != nil {
		respondServiceError(c, err, "failed to create article")
		return
	}
	respondCreated(c, article)
}

// Update 部分更新自己的文章
func (a *ArticleAPI) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid article id")
		return
	}

	var req request.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	article, err := a.service.Update(currentUserID(c), id, service.UpdateArticleInput{
		Title:         req.Title,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
		ArticleType:   req.ArticleType,
		Style:         req.Style,
		Structure:     req.Structure,
		Status:        req.Status,
	})
	if err != nil {
		respondServiceError(c, err, "failed to update article")
		return
	}
	respondOK(c, article)
}

// Delete 删除自己的文章（连同审计行在同一事务内）
func (a *ArticleAPI) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid article id")
		return
	}

	if err := a.service.Delete(currentUserID(c), id); err != nil {
		respondServiceError(c, err, "failed to delete article")
		return
	}
	respondOK(c, gin.H{"message": "article deleted successfully"})
}
