package models

import (
	"time"
)

// TrackingStep 订单追踪步骤。每个订单在创建时播种固定的 5 步序列，
// 之后只允许把步骤标记为完成。
type TrackingStep struct {
	ID          uint       `gorm:"primarykey" json:"id"`                          // 主键
	OrderID     uint       `gorm:"index;not null" json:"order_id"`                // 订单ID
	SortOrder   int        `gorm:"not null" json:"sort_order"`                    // 序号（1 起）
	Label       string     `gorm:"type:varchar(50);not null" json:"label"`        // 步骤名
	Description string     `gorm:"type:varchar(200)" json:"description"`          // 描述
	Completed   bool       `gorm:"not null;default:false" json:"completed"`       // 是否完成
	CompletedAt *time.Time `json:"completed_at,omitempty"`                        // 完成时间
	CreatedAt   time.Time  `json:"created_at"`                                    // 创建时间
	UpdatedAt   time.Time  `json:"updated_at"`                                    // 更新时间
}

// TableName 指定表名
func (TrackingStep) TableName() string {
	return "tracking_steps"
}
