package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money 统一金额类型，以最小货币单位存储（整数，不使用浮点）。
type Money int64

// MoneyFromMajor 从主单位字符串解析金额（例如 "25.00" -> 2500）
func MoneyFromMajor(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse money %q failed: %w", s, err)
	}
	return Money(d.Shift(2).Round(0).IntPart()), nil
}

// Mul 数量乘法
func (m Money) Mul(quantity int) Money {
	return m * Money(quantity)
}

// Decimal 转换为主单位 decimal（2 位小数货币）
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// Major 返回主单位字符串（例如 2500 -> "25.00"），用于通知与展示
func (m Money) Major() string {
	return m.Decimal().StringFixed(2)
}
