package service

import (
	"github.com/shopnext/internal/models"
)

// PricingConfig 计价参数（最小货币单位）
type PricingConfig struct {
	FreeShippingThreshold models.Money
	ShippingFee           models.Money
}

// PricedTotals 计价结果
type PricedTotals struct {
	Subtotal models.Money
	Shipping models.Money
	Total    models.Money
}

// PriceItems 纯函数计价：对每个购物车项按当前目录单价累加小计。
// 商品已不可解析的项直接跳过而不是整体失败（商品可能在被
// 购物车引用期间下架或删除）。小计超过免邮阈值时运费为 0，
// 否则收固定运费；空结果全部为 0。结果不缓存，目录价格可能
// 变化时必须重算。
func PriceItems(items []models.CartItem, products map[uint]*models.Product, cfg PricingConfig) PricedTotals {
	var subtotal models.Money
	priced := 0
	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok || product == nil {
			continue
		}
		subtotal += product.PriceAmount.Mul(item.Quantity)
		priced++
	}

	if priced == 0 {
		return PricedTotals{}
	}

	shipping := cfg.ShippingFee
	if subtotal > cfg.FreeShippingThreshold {
		shipping = 0
	}
	return PricedTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}
