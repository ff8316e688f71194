package reporting

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// percentChange computes the month-over-month delta as a percentage rounded
// to one decimal place, half away from zero. Appearing revenue (previous 0,
// current positive) reads as +100%; two empty periods read as 0%.
func percentChange(current, previous float64) float64 {
	switch {
	case previous > 0:
		cur := decimal.NewFromFloat(current)
		prev := decimal.NewFromFloat(previous)
		change, _ := cur.Sub(prev).Div(prev).Mul(hundred).Round(1).Float64()
		return change
	case current > 0:
		return 100.0
	default:
		return 0
	}
}

// wholePercent computes count's share of total as a whole percentage,
// half away from zero. Zero total reads as 0%.
func wholePercent(count, total int64) int {
	if total <= 0 {
		return 0
	}
	share := decimal.NewFromInt(count).Div(decimal.NewFromInt(total)).Mul(hundred)
	return int(share.Round(0).IntPart())
}
