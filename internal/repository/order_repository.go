package repository

import (
	"errors"
	"time"

	"github.com/shopnext/internal/models"

	"gorm.io/gorm"
)

// StatusCount 单个状态的订单数量
type StatusCount struct {
	Status string
	Count  int64
}

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order, items []models.OrderItem, steps []models.TrackingStep) error
	GetByID(id uint) (*models.Order, error)
	GetByIDAndUser(id uint, userID uint) (*models.Order, error)
	List(filter OrderListFilter) ([]models.Order, int64, error)
	UpdateStatus(id uint, status string, updates map[string]interface{}) error
	CompleteStep(stepID uint, completedAt time.Time) error
	GetStep(orderID, stepID uint) (*models.TrackingStep, error)
	CountByStatus(userID uint) ([]StatusCount, error)
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

func (r *GormOrderRepository) withAssociations(query *gorm.DB) *gorm.DB {
	return query.Preload("Items").Preload("TrackingSteps", func(db *gorm.DB) *gorm.DB {
		return db.Order("tracking_steps.sort_order asc")
	})
}

// Create 创建订单、订单项与追踪步骤
func (r *GormOrderRepository) Create(order *models.Order, items []models.OrderItem, steps []models.TrackingStep) error {
	if err := r.db.Create(order).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := r.db.Create(&items).Error; err != nil {
			return err
		}
	}
	for i := range steps {
		steps[i].OrderID = order.ID
	}
	if len(steps) > 0 {
		if err := r.db.Create(&steps).Error; err != nil {
			return err
		}
	}
	order.Items = items
	order.TrackingSteps = steps
	return nil
}

// GetByID 根据 ID 获取订单；不存在时返回 nil
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.withAssociations(r.db).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByIDAndUser 获取归属于指定用户的订单详情
func (r *GormOrderRepository) GetByIDAndUser(id uint, userID uint) (*models.Order, error) {
	var order models.Order
	if err := r.withAssociations(r.db).Where("id = ? AND user_id = ?", id, userID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// List 订单列表，按创建时间倒序；UserID 为 0 时不限定归属（管理端）
func (r *GormOrderRepository) List(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var orders []models.Order
	if err := r.withAssociations(query).Order("created_at desc, id desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus 更新订单状态
func (r *GormOrderRepository) UpdateStatus(id uint, status string, updates map[string]interface{}) error {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["status"] = status
	return r.db.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error
}

// GetStep 获取订单的指定追踪步骤；不存在时返回 nil
func (r *GormOrderRepository) GetStep(orderID, stepID uint) (*models.TrackingStep, error) {
	var step models.TrackingStep
	if err := r.db.Where("id = ? AND order_id = ?", stepID, orderID).First(&step).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &step, nil
}

// CompleteStep 把追踪步骤标记为完成
func (r *GormOrderRepository) CompleteStep(stepID uint, completedAt time.Time) error {
	return r.db.Model(&models.TrackingStep{}).Where("id = ?", stepID).Updates(map[string]interface{}{
		"completed":    true,
		"completed_at": completedAt,
		"updated_at":   completedAt,
	}).Error
}

// CountByStatus 按状态统计订单数量；userID 为 0 时统计全部
func (r *GormOrderRepository) CountByStatus(userID uint) ([]StatusCount, error) {
	query := r.db.Model(&models.Order{}).Select("status, count(*) as count").Group("status")
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}
	var counts []StatusCount
	if err := query.Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}
