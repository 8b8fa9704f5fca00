package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopnext/internal/cache"
	"github.com/shopnext/internal/logger"
	"github.com/shopnext/internal/models"
	"github.com/shopnext/internal/repository"
)

const productListCacheTTL = 5 * time.Minute

// CatalogService 商品目录读取服务，列表走 Redis 缓存
type CatalogService struct {
	productRepo repository.ProductRepository
}

// NewCatalogService 创建目录服务
func NewCatalogService(productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

type cachedProductList struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
}

// ListProducts 列出上架商品，分页参数为 0 时返回全量
func (s *CatalogService) ListProducts(page, pageSize int) ([]models.Product, int64, error) {
	ctx := context.Background()
	cacheKey := fmt.Sprintf("products:list:%d:%d", page, pageSize)
	if cache.Enabled() {
		var cached cachedProductList
		if ok, _ := cache.GetJSON(ctx, cacheKey, &cached); ok {
			return cached.Products, cached.Total, nil
		}
	}

	products, total, err := s.productRepo.List(repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		OnlyActive: true,
	})
	if err != nil {
		return nil, 0, err
	}

	if cache.Enabled() {
		if err := cache.SetJSON(ctx, cacheKey, cachedProductList{Products: products, Total: total}, productListCacheTTL); err != nil {
			logger.Warnw("cache product list failed", "key", cacheKey, "error", err)
		}
	}
	return products, total, nil
}

// GetProduct 获取单个上架商品
func (s *CatalogService) GetProduct(productID uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}
	return product, nil
}
