package repository

import (
	"errors"

	"github.com/shopnext/internal/models"

	"gorm.io/gorm"
)

// AddressRepository 地址数据访问接口（只读，地址维护由外部服务负责）
type AddressRepository interface {
	GetOwned(userID, addressID uint) (*models.Address, error)
}

// GormAddressRepository GORM 实现
type GormAddressRepository struct {
	db *gorm.DB
}

// NewAddressRepository 创建地址仓库
func NewAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// GetOwned 获取属于指定用户的地址；不存在或不归属时返回 nil
func (r *GormAddressRepository) GetOwned(userID, addressID uint) (*models.Address, error) {
	var address models.Address
	if err := r.db.Where("id = ? AND user_id = ?", addressID, userID).First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}
