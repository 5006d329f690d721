package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wxwriter/internal/auth"
	"wxwriter/model"
)

// AuthMiddleware 验证 Bearer Token；缺失 401，无效/过期 403
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.Response{
				Success: false,
				Error:   "access token required",
			})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, model.Response{
				Success: false,
				Error:   "invalid or expired token",
			})
			return
		}

		// 将用户信息写入上下文
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
