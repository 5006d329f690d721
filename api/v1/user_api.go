package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wxwriter/api/v1/request"
	"wxwriter/internal/metrics"
	"wxwriter/service"
)

// UserAPI 聚合注册/登录/资料相关的 HTTP Handler。
type UserAPI struct {
	service *service.UserService
}

// NewUserAPI wires the service layer into the HTTP handlers.
func NewUserAPI(s *service.UserService) *UserAPI {
	return &UserAPI{service: s}
}

// Register handles new account creation and returns user + token.
func (u *UserAPI) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := u.service.Register(req.Username, req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err, "failed to register user")
		return
	}
	respondCreated(c, gin.H{"user": user, "token": token})
}

// Login validates credentials and returns user + token.
func (u *UserAPI) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncLogin("bad_request")
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := u.service.Login(req.Email, req.Password)
	if err != nil {
		metrics.IncLogin("unauthorized")
		respondServiceError(c, err, "failed to login user")
		return
	}
	metrics.IncLogin("success")
	respondOK(c, gin.H{"user": user, "token": token})
}

// GetProfile 返回当前登录用户的资料
func (u *UserAPI) GetProfile(c *gin.Context) {
	user, err := u.service.GetProfile(currentUserID(c))
	if err != nil {
		respondServiceError(c, err, "failed to fetch user profile")
		return
	}
	respondOK(c, user)
}

// UpdateProfile 更新用户名/头像
func (u *UserAPI) UpdateProfile(c *gin.Context) {
	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := u.service.UpdateProfile(currentUserID(c), req.Username, req.AvatarURL)
	if err != nil {
		respondServiceError(c, err, "failed to update user profile")
		return
	}
	respondOK(c, user)
}

// currentUserID 读取 AuthMiddleware 写入的用户标识
func currentUserID(c *gin.Context) uint64 {
	return c.GetUint64("user_id")
}
