package models

import (
	"time"
)

// OrderItem 订单项表：下单时商品数据的冻结快照，
// 之后目录里的价格/名称变更不得影响已有订单。
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                    // 主键
	OrderID   uint      `gorm:"index;not null" json:"order_id"`          // 订单ID
	ProductID uint      `gorm:"index;not null" json:"product_id"`        // 商品ID
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`  // 商品名称快照
	Size      string    `gorm:"type:varchar(20);not null" json:"size"`   // 尺码
	Quantity  int       `gorm:"not null" json:"quantity"`                // 数量
	UnitPrice Money     `gorm:"not null;default:0" json:"unit_price"`    // 单价快照（最小货币单位）
	Image     string    `gorm:"type:varchar(500)" json:"image"`          // 主图快照
	CreatedAt time.Time `json:"created_at"`                              // 创建时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
