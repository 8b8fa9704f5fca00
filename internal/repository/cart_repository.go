package repository

import (
	"errors"
	"time"

	"github.com/shopnext/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口。
// 所有写入都是针对单个用户购物车聚合的读改写，并发写入为后写覆盖。
type CartRepository interface {
	GetByUser(userID uint) (*models.Cart, error)
	Create(cart *models.Cart) error
	SaveTotals(cartID uint, subtotal, shipping, total models.Money) error
	CreateItem(item *models.CartItem) error
	UpdateItemQuantity(itemID uint, quantity int) error
	DeleteItem(itemID uint) error
	Clear(cartID uint) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// GetByUser 获取用户购物车（含购物车项与关联商品）；不存在时返回 nil
func (r *GormCartRepository) GetByUser(userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("cart_items.id asc")
	}).Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// Create 创建购物车
func (r *GormCartRepository) Create(cart *models.Cart) error {
	return r.db.Create(cart).Error
}

// SaveTotals 写入派生金额
func (r *GormCartRepository) SaveTotals(cartID uint, subtotal, shipping, total models.Money) error {
	return r.db.Model(&models.Cart{}).Where("id = ?", cartID).Updates(map[string]interface{}{
		"subtotal":   subtotal,
		"shipping":   shipping,
		"total":      total,
		"updated_at": time.Now(),
	}).Error
}

// CreateItem 新增购物车项
func (r *GormCartRepository) CreateItem(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// UpdateItemQuantity 设置购物车项数量
func (r *GormCartRepository) UpdateItemQuantity(itemID uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", itemID).Updates(map[string]interface{}{
		"quantity":   quantity,
		"updated_at": time.Now(),
	}).Error
}

// DeleteItem 删除购物车项
func (r *GormCartRepository) DeleteItem(itemID uint) error {
	return r.db.Where("id = ?", itemID).Delete(&models.CartItem{}).Error
}

// Clear 清空购物车：删除全部项并把派生金额归零
func (r *GormCartRepository) Clear(cartID uint) error {
	if err := r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	return r.SaveTotals(cartID, 0, 0, 0)
}
