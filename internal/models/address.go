package models

import (
	"time"

	"gorm.io/gorm"
)

// Address 收货地址表（地址 CRUD 由外部服务负责，结算时只做归属校验）
type Address struct {
	ID         uint           `gorm:"primarykey" json:"id"`                  // 主键
	UserID     uint           `gorm:"index;not null" json:"user_id"`         // 用户ID
	Recipient  string         `gorm:"type:varchar(100);not null" json:"recipient"` // 收件人
	Phone      string         `gorm:"type:varchar(30)" json:"phone"`         // 联系电话
	Line1      string         `gorm:"type:varchar(200);not null" json:"line1"` // 地址行
	City       string         `gorm:"type:varchar(100)" json:"city"`         // 城市
	Province   string         `gorm:"type:varchar(100)" json:"province"`     // 省份
	PostalCode string         `gorm:"type:varchar(20)" json:"postal_code"`   // 邮编
	IsDefault  bool           `gorm:"not null;default:false" json:"is_default"` // 默认地址标记
	CreatedAt  time.Time      `json:"created_at"`                            // 创建时间
	UpdatedAt  time.Time      `json:"updated_at"`                            // 更新时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                        // 软删除时间
}

// TableName 指定表名
func (Address) TableName() string {
	return "addresses"
}
