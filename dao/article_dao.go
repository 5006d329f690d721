package dao

import (
	"time"

	"wxwriter/model"

	"gorm.io/gorm"
)

// ArticleFilter 列表查询参数
type ArticleFilter struct {
	Status string
	UserID uint64
	SortBy string
	Order  string
	Page   int
	Limit  int
}

var articleSortFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"title":      true,
	"word_count": true,
	"status":     true,
}

type ArticleDAO struct {
	db *gorm.DB
}

func NewArticleDAO(db *gorm.DB) *ArticleDAO {
	return &ArticleDAO{db: db}
}

// List 分页查询文章，带作者与关联话题
func (dao *ArticleDAO) List(f ArticleFilter) ([]model.Article, int64, error) {
	query := dao.db.Model(&model.Article{})
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.UserID != 0 {
		query = query.Where("user_id = ?", f.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []model.Article
	err := query.Preload("User").Preload("HotTopic").
		Order(sortClause(f.SortBy, articleSortFields, "created_at", f.Order)).
		Offset(pageOffset(f.Page, f.Limit)).
		Limit(f.Limit).
		Find(&articles).Error
	return articles, total, err
}

// GetByID 根据 ID 查询文章（含作者与话题）
func (dao *ArticleDAO) GetByID(id uint64) (*model.Article, error) {
	var article model.Article
	if err := dao.db.Preload("User").Preload("HotTopic").First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// GetOwned returns the article only when it belongs to userID.
// 不区分"不存在"和"非本人"，避免泄露文章是否存在。
func (dao *ArticleDAO) GetOwned(id, userID uint64) (*model.Article, error) {
	var article model.Article
	if err := dao.db.Preload("User").Where("id = ? AND user_id = ?", id, userID).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// Create 创建文章
func (dao *ArticleDAO) Create(article *model.Article) error {
	return dao.db.Create(article).Error
}

// Update 应用给定字段并返回最新行
func (dao *ArticleDAO) Update(id uint64, updates map[string]interface{}) (*model.Article, error) {
	if err := dao.db.Model(&model.Article{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return dao.GetByID(id)
}

// DeleteWithHistory removes the article and writes its audit row in one
// transaction: both succeed or both roll back. 生成日志解除指向保留，
// 同步日志随文章删除，避免外键拦下整个删除。
func (dao *ArticleDAO) DeleteWithHistory(article *model.Article, history *model.ArticleHistory) error {
	return dao.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(history).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.GenerationLog{}).
			Where("article_id = ?", article.ID).
			Update("article_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", article.ID).Delete(&model.SyncLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Article{}, article.ID).Error
	})
}

// CountCreatedSince 统计某用户自 since 起创建的文章数（用于当日限额）
func (dao *ArticleDAO) CountCreatedSince(userID uint64, since time.Time) (int64, error) {
	var count int64
	err := dao.db.Model(&model.Article{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}
