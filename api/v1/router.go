package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wxwriter/internal/auth"
	"wxwriter/middleware"
)

// Router 聚合全部 API 并负责路由注册。
type Router struct {
	Users     *UserAPI
	HotTopics *HotTopicAPI
	Articles  *ArticleAPI
	AI        *AIAPI
	WeChat    *WeChatAPI

	Tokens *auth.TokenManager
	Redis  *redis.Client
}

// Register mounts every route on the engine. 需要登录的路由统一走
// AuthMiddleware，登录接口另挂 IP 限流。
func (rt *Router) Register(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	authRequired := middleware.AuthMiddleware(rt.Tokens)

	users := api.Group("/users")
	{
		users.POST("/register", rt.Users.Register)
		loginLimiter := middleware.RateLimiter(rt.Redis, "login", 5, time.Minute)
		users.POST("/login", loginLimiter, rt.Users.Login)
		users.GET("/profile", authRequired, rt.Users.GetProfile)
		users.PUT("/profile", authRequired, rt.Users.UpdateProfile)
	}

	topics := api.Group("/hot-topics")
	{
		topics.GET("", rt.HotTopics.List)
		// /trending 必须注册在 /:id 之前
		topics.GET("/trending", rt.HotTopics.Trending)
		topics.GET("/category/:category", rt.HotTopics.ByCategory)
		topics.GET("/:id", rt.HotTopics.GetByID)
		topics.POST("", rt.HotTopics.Create)
	}

	articles := api.Group("/articles")
	{
		articles.GET("", rt.Articles.List)
		articles.GET("/user/my-articles", authRequired, rt.Articles.MyArticles)
		articles.GET("/:id", rt.Articles.GetByID)
		articles.POST("", authRequired, rt.Articles.Create)
		articles.PUT("/:id", authRequired, rt.Articles.Update)
		articles.DELETE("/:id", authRequired, rt.Articles.Delete)
	}

	ai := api.Group("/ai", authRequired)
	{
		ai.POST("/generate", rt.AI.Generate)
		ai.GET("/history", rt.AI.History)
	}

	wechat := api.Group("/wechat", authRequired)
	{
		wechat.POST("/sync", rt.WeChat.Sync)
		wechat.GET("/sync-status/:article_id", rt.WeChat.Status)
		wechat.GET("/sync-logs", rt.WeChat.Logs)
		wechat.GET("/account-info", rt.WeChat.AccountInfo)
	}
}
