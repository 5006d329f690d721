package dao

import (
	"wxwriter/model"

	"gorm.io/gorm"
)

// HotTopicFilter 列表查询参数。SortBy 只接受白名单字段，其余回落到默认值。
type HotTopicFilter struct {
	Category string
	SortBy   string
	Order    string
	Page     int
	Limit    int
}

// 允许排序的字段集合是封闭的，防止通过 sortBy 注入
var hotTopicSortFields = map[string]bool{
	"hotness_score": true,
	"created_at":    true,
	"title":         true,
}

type HotTopicDAO struct {
	db *gorm.DB
}

func NewHotTopicDAO(db *gorm.DB) *HotTopicDAO {
	return &HotTopicDAO{db: db}
}

// List 分页查询热点话题
func (dao *HotTopicDAO) List(f HotTopicFilter) ([]model.HotTopic, int64, error) {
	query := dao.db.Model(&model.HotTopic{})
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var topics []model.HotTopic
	err := query.Order(sortClause(f.SortBy, hotTopicSortFields, "hotness_score", f.Order)).
		Offset(pageOffset(f.Page, f.Limit)).
		Limit(f.Limit).
		Find(&topics).Error
	return topics, total, err
}

// GetByID 根据 ID 查询话题
func (dao *HotTopicDAO) GetByID(id uint64) (*model.HotTopic, error) {
	var topic model.HotTopic
	if err := dao.db.First(&topic, id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

// ListTrending 返回热度超过 80 的话题，按热度倒序
func (dao *HotTopicDAO) ListTrending(limit int) ([]model.HotTopic, error) {
	var topics []model.HotTopic
	err := dao.db.Where("hotness_score > ?", 80).
		Order("hotness_score DESC").
		Limit(limit).
		Find(&topics).Error
	return topics, err
}

// ListByCategory 按分类取热度最高的若干条
func (dao *HotTopicDAO) ListByCategory(category string, limit int) ([]model.HotTopic, error) {
	var topics []model.HotTopic
	err := dao.db.Where("category = ?", category).
		Order("hotness_score DESC").
		Limit(limit).
		Find(&topics).Error
	return topics, err
}

// Create 创建话题
func (dao *HotTopicDAO) Create(topic *model.HotTopic) error {
	return dao.db.Create(topic).Error
}
