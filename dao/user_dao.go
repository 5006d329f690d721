package dao

import (
	"wxwriter/model"

	"gorm.io/gorm"
)

type UserDAO struct {
	db *gorm.DB
}

// NewUserDAO 创建一个新的 UserDAO 实例
func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// Create 创建新用户；用户名/邮箱唯一性由数据库唯一索引保证
func (dao *UserDAO) Create(user *model.User) error {
	return dao.db.Create(user).Error
}

// GetByEmail 根据邮箱查询用户
func (dao *UserDAO) GetByEmail(email string) (*model.User, error) {
	var user model.User
	if err := dao.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID 根据 ID 查询用户
func (dao *UserDAO) GetByID(id uint64) (*model.User, error) {
	var user model.User
	if err := dao.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies the non-empty profile fields and returns the updated row.
func (dao *UserDAO) UpdateProfile(id uint64, updates map[string]interface{}) (*model.User, error) {
	if len(updates) > 0 {
		if err := dao.db.Model(&model.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return dao.GetByID(id)
}
