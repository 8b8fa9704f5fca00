package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表（登录与会话签发由外部服务负责，这里只存身份与权限标记）
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                 // 主键
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`    // 邮箱
	Name         string         `gorm:"type:varchar(100)" json:"name"`        // 昵称
	PasswordHash string         `gorm:"type:varchar(200);not null" json:"-"`  // 密码哈希
	IsAdmin      bool           `gorm:"not null;default:false" json:"is_admin"` // 管理员标记
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`              // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                           // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                       // 软删除时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
