package dao

import (
	"wxwriter/model"

	"gorm.io/gorm"
)

// LogDAO 承载三张只追加的日志表：生成日志、同步日志、文章历史。
type LogDAO struct {
	db *gorm.DB
}

func NewLogDAO(db *gorm.DB) *LogDAO {
	return &LogDAO{db: db}
}

// CreateGenerationLog 写入生成日志（在调用外部服务之前）
func (dao *LogDAO) CreateGenerationLog(log *model.GenerationLog) error {
	return dao.db.Create(log).Error
}

// UpdateGenerationLog 更新已有日志行（用量、耗时、结果）
func (dao *LogDAO) UpdateGenerationLog(log *model.GenerationLog) error {
	return dao.db.Save(log).Error
}

// ListGenerationLogs 某用户的生成历史，按时间倒序分页
func (dao *LogDAO) ListGenerationLogs(userID uint64, page, limit int) ([]model.GenerationLog, int64, error) {
	query := dao.db.Model(&model.GenerationLog{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []model.GenerationLog
	err := query.Preload("Article").
		Order("created_at DESC").
		Offset(pageOffset(page, limit)).
		Limit(limit).
		Find(&logs).Error
	return logs, total, err
}

// CreateSyncLog 写入一条同步日志
func (dao *LogDAO) CreateSyncLog(log *model.SyncLog) error {
	return dao.db.Create(log).Error
}

// ListSyncLogsByArticle 某篇文章的全部同步记录，按时间倒序
func (dao *LogDAO) ListSyncLogsByArticle(articleID uint64) ([]model.SyncLog, error) {
	var logs []model.SyncLog
	err := dao.db.Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}

// ListSyncLogsByUser 某用户全部文章的同步记录，按时间倒序分页
func (dao *LogDAO) ListSyncLogsByUser(userID uint64, page, limit int) ([]model.SyncLog, int64, error) {
	base := dao.db.Model(&model.SyncLog{}).
		Joins("JOIN articles ON articles.id = sync_logs.article_id").
		Where("articles.user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []model.SyncLog
	err := base.Preload("Article").
		Order("sync_logs.created_at DESC").
		Offset(pageOffset(page, limit)).
		Limit(limit).
		Find(&logs).Error
	return logs, total, err
}

// CreateHistory 写入文章历史
func (dao *LogDAO) CreateHistory(entry *model.ArticleHistory) error {
	return dao.db.Create(entry).Error
}
