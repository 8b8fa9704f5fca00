package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopnext/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:product_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate product failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createCatalogProduct(t *testing.T, db *gorm.DB, name string, price models.Money, active bool, sortOrder int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:        name,
		PriceAmount: price,
		Sizes:       models.StringArray{"S", "M", "L"},
		IsActive:    true,
		SortOrder:   sortOrder,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	// is_active 带 default:true，零值 false 会被建表默认值覆盖，停用需显式更新
	if !active {
		if err := db.Model(product).Update("is_active", false).Error; err != nil {
			t.Fatalf("deactivate product failed: %v", err)
		}
	}
	return product
}

func TestProductListOnlyActiveAndPagination(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)

	createCatalogProduct(t, db, "Tee", 2900, true, 3)
	createCatalogProduct(t, db, "Hoodie", 6900, true, 2)
	createCatalogProduct(t, db, "Jeans", 8900, true, 1)
	createCatalogProduct(t, db, "Retired Jacket", 12900, false, 10)

	products, total, err := repo.List(ProductListFilter{OnlyActive: true})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("active total want 3 got %d", total)
	}
	if len(products) != 3 {
		t.Fatalf("active rows want 3 got %d", len(products))
	}
	if products[0].Name != "Tee" {
		t.Fatalf("first product want Tee got %s", products[0].Name)
	}

	page2, total, err := repo.List(ProductListFilter{Page: 2, PageSize: 2, OnlyActive: true})
	if err != nil {
		t.Fatalf("list page 2 failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("paged total want 3 got %d", total)
	}
	if len(page2) != 1 {
		t.Fatalf("page 2 rows want 1 got %d", len(page2))
	}
	if page2[0].Name != "Jeans" {
		t.Fatalf("page 2 product want Jeans got %s", page2[0].Name)
	}

	all, total, err := repo.List(ProductListFilter{})
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if total != 4 || len(all) != 4 {
		t.Fatalf("unfiltered list want 4/4 got %d/%d", total, len(all))
	}
}

func TestProductGetByIDMissing(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)

	product := createCatalogProduct(t, db, "Tee", 2900, true, 0)
	got, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got == nil || got.Name != "Tee" {
		t.Fatalf("unexpected product: %+v", got)
	}

	missing, err := repo.GetByID(9999)
	if err != nil {
		t.Fatalf("get missing product should not error: %v", err)
	}
	if missing != nil {
		t.Fatalf("missing product want nil got %+v", missing)
	}

	if err := db.Delete(product).Error; err != nil {
		t.Fatalf("soft delete product failed: %v", err)
	}
	deleted, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get soft-deleted product should not error: %v", err)
	}
	if deleted != nil {
		t.Fatalf("soft-deleted product want nil got %+v", deleted)
	}
}
