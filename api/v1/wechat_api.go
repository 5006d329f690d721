package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wxwriter/api/v1/request"
	"wxwriter/internal/metrics"
	"wxwriter/model"
	"wxwriter/service"
)

// WeChatAPI 公众号同步相关 Handler。
type WeChatAPI struct {
	service *service.WeChatService
}

func NewWeChatAPI(s *service.WeChatService) *WeChatAPI {
	return &WeChatAPI{service: s}
}

// Sync 把自己的文章发布到公众号
func (w *WeChatAPI) Sync(c *gin.Context) {
	var req request.SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncSync("bad_request")
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := w.service.Sync(c.Request.Context(), currentUserID(c), req.ArticleID)
	if err != nil {
		metrics.IncSync("failed")
		respondServiceError(c, err, "failed to sync article to WeChat")
		return
	}
	metrics.IncSync("success")
	respondOK(c, gin.H{
		"message":           "Article successfully synced to WeChat",
		"wechat_article_id": result.WeChatArticleID,
		"sync_time":         result.SyncTime,
	})
}

// Status 某篇自己文章的同步状态与历史
func (w *WeChatAPI) Status(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid article id")
		return
	}

	status, err := w.service.Status(currentUserID(c), articleID)
	if err != nil {
		respondServiceError(c, err, "failed to fetch sync status")
		return
	}
	respondOK(c, status)
}

// Logs 当前用户所有文章的同步记录
func (w *WeChatAPI) Logs(c *gin.Context) {
	var q request.SyncLogsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	logs, total, err := w.service.Logs(currentUserID(c), q.Page, q.Limit)
	if err != nil {
		respondServiceError(c, err, "failed to fetch sync logs")
		return
	}
	respondPage(c, logs, model.NewPagination(q.Page, q.Limit, total))
}

// AccountInfo 公众号概要
func (w *WeChatAPI) AccountInfo(c *gin.Context) {
	info, err := w.service.AccountInfo(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "failed to fetch WeChat account information")
		return
	}
	respondOK(c, info)
}
