package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopnext/internal/models"
	"github.com/shopnext/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateAll(db); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	svc := NewCartService(
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		PricingConfig{FreeShippingThreshold: 5000, ShippingFee: 500},
	)
	return svc, db
}

func seedCartProduct(t *testing.T, db *gorm.DB, name string, price models.Money, sizes ...string) *models.Product {
	t.Helper()
	if len(sizes) == 0 {
		sizes = []string{"S", "M", "L"}
	}
	product := models.Product{
		Name:        name,
		PriceAmount: price,
		Sizes:       models.StringArray(sizes),
		IsActive:    true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return &product
}

func TestCartServiceAddItemMergesSameProductAndSize(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "Tee", 1000)

	if err := svc.AddItem(AddItemInput{UserID: 1, ProductID: product.ID, Size: "M", Quantity: 1}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := svc.AddItem(AddItemInput{UserID: 1, ProductID: product.ID, Size: "M", Quantity: 2}); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	view, err := svc.Read(1)
	if err != nil {
		t.Fatalf("read cart failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("expected merged into 1 line, got: %d", len(view.Items))
	}
	if view.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got: %d", view.Items[0].Quantity)
	}
}

func TestCartServiceAddItemDifferentSizeCreatesNewLine(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "Tee", 1000)

	if err := svc.AddItem(AddItemInput{UserID: 1, ProductID: product.ID, Size: "M", Quantity: 1}); err != nil {
		t.Fatalf("add M failed: %v", err)
	}
	if err := svc.AddItem(AddItemInput{UserID: 1, ProductID: product.ID, Size: "L", Quantity: 1}); err != nil {
		t.Fatalf("add L failed: %v", err)
	}

	view, err := svc.Read(1)
	if err != nil {
		t.Fatalf("read cart failed: %v", err)
	}
	if len(view.Items) != 2 {
		t.Fatalf("expected 2 lines, got: %d", len(view.Items))
	}
}

func TestCartServiceTotalsInvariant(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	tee := seedCartProduct(t, db, "Tee", 1000)
	hoodie := seedCartProduct(t, db, "Hoodie", 2500)

	if err := svc.AddItem(AddItemInput{UserID: 1, ProductID: tee.ID, Size: "M", Quantity: 2}); err != nil {
		t.Fatalf("add tee failed: %v", err)
	}
	if err := svc.AddItem(AddItemInput{UserID: 1, ProductID: hoodie.ID, Size: "L", Quantity: 1}); err != nil {
		t.Fatalf("add hoodie failed: %v", err)
	}

	view, err := svc.Read(1)
	if err != nil {
		t.Fatalf("read cart failed: %v", err)
	}
	if view.Subtotal != 4500 {
		t.Fatalf("expected subtotal 4500, got: %d", view.Subtotal)
	}
	if view.Total != view.Subtotal+view.Shipping {
		t.Fatalf("total invariant broken: %d != %d + %d", view.Total, view.Subtotal, view.Shipping)
	}

	var stored models.Cart
	if err := db.Where("user_id = ?", 1).First(&stored).Error; err != nil {
		t.Fatalf("load stored cart failed: %v", err)
	}
	if stored.Subtotal != view.Subtotal || stored.Total != view.Total {
		t.Fatalf("stored totals diverge from view: %+v vs %+v", stored, view)
	}
}

func TestCartServiceAddItemValidation(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "Tee", 1000, "S", "M")

	if err := svc.AddItem(AddItemInput{UserID: 1, ProductID: product.ID, Size: "M", Quantity: 0}); !errors.Is(err, ErrQuantityInvalid) {
		t.Fatalf("expected ErrQuantityInvalid, got: %v", err)
	}
	if err := svc.AddItem(AddItemInput{UserID: 1, ProductID: product.ID, Size: "XXL", Quantity: 1}); !errors.Is(err, ErrSizeInvalid) {
		t.Fatalf("expected ErrSizeInvalid, got: %v", err)
	}
	if err := svc.AddItem(AddItemInput{UserID: 1, ProductID: 9999, Size: "M", Quantity: 1}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got: %v", err)
	}
}

func TestCartServiceUpdateItemSetsAbsoluteQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "Tee", 1000)

	if err := svc.AddItem(AddItemInput{UserID: 1, ProductID: product.ID, Size: "M", Quantity: 2}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	view, err := svc.Read(1)
	if err != nil {
		t.Fatalf("read cart failed: %v", err)
	}
	itemID := view.Items[0].ItemID

	if err := svc.UpdateItem(1, itemID, 5); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	view, err = svc.Read(1)
	if err != nil {
		t.Fatalf("read cart failed: %v", err)
	}
	if view.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got: %d", view.Items[0].Quantity)
	}

	if err := svc.UpdateItem(1, itemID, 0); !errors.Is(err, ErrQuantityInvalid) {
		t.Fatalf("expected ErrQuantityInvalid, got: %v", err)
	}
	if err := svc.UpdateItem(1, 9999, 1); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got: %v", err)
	}
	if err := svc.UpdateItem(77, itemID, 1); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound for unknown user, got: %v", err)
	}
}

func TestCartServiceRemoveItemReprices(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	tee := seedCartProduct(t, db, "Tee", 1000)
	hoodie := seedCartProduct(t, db, "Hoodie", 2500)

	if err := svc.AddItem(AddItemInput{UserID: 1, ProductID: tee.ID, Size: "M", Quantity: 1}); err != nil {
		t.Fatalf("add tee failed: %v", err)
	}
	if err := svc.AddItem(AddItemInput{UserID: 1, ProductID: hoodie.ID, Size: "L", Quantity: 1}); err != nil {
		t.Fatalf("add hoodie failed: %v", err)
	}

	view, err := svc.Read(1)
	if err != nil {
		t.Fatalf("read cart failed: %v", err)
	}
	var hoodieItemID uint
	for _, item := range view.Items {
		if item.ProductID == hoodie.ID {
			hoodieItemID = item.ItemID
		}
	}
	if err := svc.RemoveItem(1, hoodieItemID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	view, err = svc.Read(1)
	if err != nil {
		t.Fatalf("read cart failed: %v", err)
	}
	if len(view.Items) != 1 || view.Subtotal != 1000 {
		t.Fatalf("expected single tee line with subtotal 1000, got: %+v", view)
	}

	if err := svc.RemoveItem(1, 9999); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got: %v", err)
	}
}

func TestCartServiceReadRepricesAfterCatalogChange(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "Tee", 1000)

	if err := svc.AddItem(AddItemInput{UserID: 1, ProductID: product.ID, Size: "M", Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).Update("price_amount", 2000).Error; err != nil {
		t.Fatalf("update price failed: %v", err)
	}

	view, err := svc.Read(1)
	if err != nil {
		t.Fatalf("read cart failed: %v", err)
	}
	if view.Subtotal != 2000 {
		t.Fatalf("expected repriced subtotal 2000, got: %d", view.Subtotal)
	}
}
