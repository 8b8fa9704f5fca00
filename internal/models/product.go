package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表（目录维护由外部服务负责，这里只做只读查询）
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                          // 主键
	Name        string         `gorm:"type:varchar(200);not null" json:"name"`        // 商品名称
	PriceAmount Money          `gorm:"not null;default:0" json:"price_amount"`        // 单价（最小货币单位）
	Image       string         `gorm:"type:varchar(500)" json:"image"`                // 主图
	Sizes       StringArray    `gorm:"type:json" json:"sizes"`                        // 可选尺码
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`           // 是否上架
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`             // 排序权重
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                       // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                    // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
