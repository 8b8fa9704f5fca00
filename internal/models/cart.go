package models

import (
	"time"
)

// Cart 购物车聚合（每个用户恰好一个，首次访问时懒创建，结算后只清空不删除）
type Cart struct {
	ID        uint      `gorm:"primarykey" json:"id"`                   // 主键
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`    // 用户ID（1:1）
	Subtotal  Money     `gorm:"not null;default:0" json:"subtotal"`     // 商品小计（派生值，每次读写重算）
	Shipping  Money     `gorm:"not null;default:0" json:"shipping"`     // 运费（派生值）
	Total     Money     `gorm:"not null;default:0" json:"total"`        // 合计（派生值）
	CreatedAt time.Time `json:"created_at"`                             // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                // 更新时间

	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"` // 购物车项
}

// TableName 指定表名
func (Cart) TableName() string {
	return "carts"
}

// FindItem 按 (商品, 尺码) 查找购物车项
func (c *Cart) FindItem(productID uint, size string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Size == size {
			return &c.Items[i]
		}
	}
	return nil
}
