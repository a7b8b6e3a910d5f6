package service

import (
	"github.com/shopspring/decimal"

	"Catalog/internal/cli/model"
)

// TaxRate ставка налога, применяемая к цене товара.
var TaxRate = decimal.RequireFromString("0.19")

// TaxFor возвращает налог для цены: round-half-up(price * 0.19), для price <= 0 — 0.
// Умножение в decimal: 150 * 0.19 = 28.5 → 29.
func TaxFor(price float64) float64 {
	if price <= 0 {
		return 0
	}
	// для положительных чисел Round (half away from zero) совпадает с half up
	return decimal.NewFromFloat(price).Mul(TaxRate).Round(0).InexactFloat64()
}

// ApplyTaxes добавляет поле taxes к каждому товару, сохраняя порядок и длину.
func ApplyTaxes(products []model.Product) []model.ProductWithTax {
	out := make([]model.ProductWithTax, len(products))
	for i, p := range products {
		out[i] = model.ProductWithTax{Product: p, Taxes: TaxFor(p.Price)}
	}
	return out
}
