package models

import "github.com/shopspring/decimal"

// AmountPlaces is the number of decimal places amounts are rounded to.
const AmountPlaces = 2

// ComputeTotal sums quantity * unit_price over items, rounded to AmountPlaces.
func ComputeTotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total.Round(AmountPlaces)
}

// MinorUnits converts an amount to integer minor units (cents/öre) as stored.
func MinorUnits(d decimal.Decimal) int64 {
	return d.Shift(AmountPlaces).Round(0).IntPart()
}

// FromMinorUnits is the inverse of MinorUnits.
func FromMinorUnits(n int64) decimal.Decimal {
	return decimal.New(n, -AmountPlaces)
}
