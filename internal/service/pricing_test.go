package service

import (
	"testing"

	"github.com/shopnext/internal/models"
)

func testPricingConfig() PricingConfig {
	return PricingConfig{
		FreeShippingThreshold: 5000,
		ShippingFee:           500,
	}
}

func TestPriceItemsBasic(t *testing.T) {
	products := map[uint]*models.Product{
		1: {ID: 1, Name: "Tee", PriceAmount: 1000},
	}
	items := []models.CartItem{
		{ProductID: 1, Size: "M", Quantity: 2},
	}

	totals := PriceItems(items, products, testPricingConfig())
	if totals.Subtotal != 2000 {
		t.Fatalf("expected subtotal 2000, got: %d", totals.Subtotal)
	}
	if totals.Shipping != 500 {
		t.Fatalf("expected shipping 500, got: %d", totals.Shipping)
	}
	if totals.Total != 2500 {
		t.Fatalf("expected total 2500, got: %d", totals.Total)
	}
}

func TestPriceItemsFreeShippingAboveThreshold(t *testing.T) {
	products := map[uint]*models.Product{
		1: {ID: 1, PriceAmount: 3000},
	}
	items := []models.CartItem{
		{ProductID: 1, Size: "L", Quantity: 2},
	}

	totals := PriceItems(items, products, testPricingConfig())
	if totals.Shipping != 0 {
		t.Fatalf("expected free shipping, got: %d", totals.Shipping)
	}
	if totals.Total != totals.Subtotal {
		t.Fatalf("expected total == subtotal, got: %d vs %d", totals.Total, totals.Subtotal)
	}
}

func TestPriceItemsExactThresholdStillCharged(t *testing.T) {
	products := map[uint]*models.Product{
		1: {ID: 1, PriceAmount: 5000},
	}
	items := []models.CartItem{
		{ProductID: 1, Quantity: 1},
	}

	totals := PriceItems(items, products, testPricingConfig())
	if totals.Shipping != 500 {
		t.Fatalf("subtotal equal to threshold should not be free, got shipping: %d", totals.Shipping)
	}
}

func TestPriceItemsSkipsVanishedProducts(t *testing.T) {
	products := map[uint]*models.Product{
		1: {ID: 1, PriceAmount: 1000},
	}
	items := []models.CartItem{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 3}, // 商品已删除
	}

	totals := PriceItems(items, products, testPricingConfig())
	if totals.Subtotal != 1000 {
		t.Fatalf("expected vanished product skipped, got subtotal: %d", totals.Subtotal)
	}
}

func TestPriceItemsEmptyAndUnpriceable(t *testing.T) {
	totals := PriceItems(nil, nil, testPricingConfig())
	if totals.Subtotal != 0 || totals.Shipping != 0 || totals.Total != 0 {
		t.Fatalf("expected zero totals for empty cart, got: %+v", totals)
	}

	items := []models.CartItem{{ProductID: 9, Quantity: 2}}
	totals = PriceItems(items, map[uint]*models.Product{}, testPricingConfig())
	if totals.Subtotal != 0 || totals.Shipping != 0 || totals.Total != 0 {
		t.Fatalf("expected zero totals when nothing priceable, got: %+v", totals)
	}
}
