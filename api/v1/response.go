package v1

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wxwriter/model"
	"wxwriter/service"
)

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, model.Response{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, model.Response{Success: true, Data: data})
}

func respondPage(c *gin.Context, data interface{}, p *model.Pagination) {
	c.JSON(http.StatusOK, model.Response{Success: true, Data: data, Pagination: p})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, model.Response{Success: false, Error: msg})
}

// respondServiceError maps service-level errors onto the envelope.
// 所有权失败按 NotFound 返回；外部服务失败对外只给通用提示，
// 细节进日志（非 release 模式下随响应带出）。
func respondServiceError(c *gin.Context, err error, upstreamMsg string) {
	var limitErr *service.DailyLimitError
	var upstream *service.UpstreamError

	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, "not found or unauthorized")
	case errors.Is(err, service.ErrUserExists):
		respondError(c, http.StatusConflict, "user with this email or username already exists")
	case errors.Is(err, service.ErrInvalidCredential):
		respondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrAlreadySynced):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &limitErr):
		respondError(c, http.StatusTooManyRequests, limitErr.Error())
	case errors.As(err, &upstream):
		slog.Error("upstream call failed", "op", upstream.Op, "error", upstream.Err)
		resp := model.Response{Success: false, Error: upstreamMsg}
		if gin.Mode() != gin.ReleaseMode {
			resp.Details = upstream.Err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}
