package service

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"wxwriter/internal/auth"
	"wxwriter/model"
	"wxwriter/utils"
)

// userStore 是 UserService 依赖的最小存储接口，由 dao.UserDAO 实现
type userStore interface {
	Create(user *model.User) error
	GetByEmail(email string) (*model.User, error)
	GetByID(id uint64) (*model.User, error)
	UpdateProfile(id uint64, updates map[string]interface{}) (*model.User, error)
}

// 新用户默认额度
const (
	defaultSubscription = "free"
	defaultDailyLimit   = 5
	defaultMonthlyLimit = 50
)

// UserService bundles the user store and token issuance.
type UserService struct {
	store  userStore
	tokens *auth.TokenManager
}

func NewUserService(store userStore, tokens *auth.TokenManager) *UserService {
	return &UserService{store: store, tokens: tokens}
}

// Register persists a freshly created user after hashing the password and
// issues the first token. 重复注册依赖数据库唯一索引兜底。
func (s *UserService) Register(username, email, password string) (*model.User, string, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Username:            username,
		Email:               email,
		PasswordHash:        hashed,
		SubscriptionType:    defaultSubscription,
		DailyArticleLimit:   defaultDailyLimit,
		MonthlyArticleLimit: defaultMonthlyLimit,
	}
	if err := s.store.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrUserExists
		}
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return nil, "", ErrUserExists
		}
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login handles email/password authentication and issues a token.
func (s *UserService) Login(email, password string) (*model.User, string, error) {
	user, err := s.store.GetByEmail(email)
	if err != nil {
		// 未知邮箱与密码错误返回同一个错误
		return nil, "", ErrInvalidCredential
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredential
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetProfile 返回当前用户资料
func (s *UserService) GetProfile(userID uint64) (*model.User, error) {
	user, err := s.store.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile 只允许改用户名和头像
func (s *UserService) UpdateProfile(userID uint64, username, avatarURL string) (*model.User, error) {
	if _, err := s.store.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if username != "" {
		updates["username"] = username
	}
	if avatarURL != "" {
		updates["avatar_url"] = avatarURL
	}
	return s.store.UpdateProfile(userID, updates)
}
