package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表。创建后除 status 与追踪步骤外不可变；
// 取消是状态值而不是删除，金额在创建时冻结。
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`                          // 主键
	OrderNo         string         `gorm:"uniqueIndex;not null" json:"order_no"`          // 订单编号
	UserID          uint           `gorm:"index;not null" json:"user_id"`                 // 用户ID
	AddressID       uint           `gorm:"not null" json:"address_id"`                    // 收货地址ID
	PaymentMethod   string         `gorm:"type:varchar(50);not null" json:"payment_method"` // 支付方式
	PaymentProofRef string         `gorm:"type:varchar(500)" json:"payment_proof_ref"`    // 支付凭证引用（不校验，按原样存储）
	Status          string         `gorm:"index;not null" json:"status"`                  // 订单状态
	Subtotal        Money          `gorm:"not null;default:0" json:"subtotal"`            // 商品小计（冻结）
	Shipping        Money          `gorm:"not null;default:0" json:"shipping"`            // 运费（冻结）
	Total           Money          `gorm:"not null;default:0" json:"total"`               // 合计（冻结）
	CancelledAt     *time.Time     `gorm:"index" json:"cancelled_at,omitempty"`           // 取消时间
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                       // 创建时间
	UpdatedAt       time.Time      `json:"updated_at"`                                    // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                // 软删除时间

	Items         []OrderItem    `gorm:"foreignKey:OrderID" json:"items,omitempty"`          // 订单项快照
	TrackingSteps []TrackingStep `gorm:"foreignKey:OrderID" json:"tracking_steps,omitempty"` // 追踪步骤
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
