package service

import "rental-calculator/domain"

type ratingBand struct {
	threshold   float64
	rating      domain.Rating
	description string
}

// ratingTable is evaluated top-down; the first band whose threshold the value
// reaches wins, and fallback applies below every threshold.
type ratingTable struct {
	metric   string
	bands    []ratingBand
	fallback ratingBand
}

var capRateTable = ratingTable{
	metric: "Cap Rate",
	bands: []ratingBand{
		{CapRateGoodThreshold, domain.RatingGood, "Excellent cap rate indicating strong income potential relative to property value. This suggests good cash flow and return on investment."},
		{CapRateFairThreshold, domain.RatingFair, "Decent cap rate that is acceptable for many markets. Consider comparing with local averages and factor in appreciation potential."},
	},
	fallback: ratingBand{rating: domain.RatingPoor, description: "Low cap rate may indicate overpriced property or low rental income. Consider if appreciation potential justifies the investment."},
}

var cashOnCashTable = ratingTable{
	metric: "Cash-on-Cash Return",
	bands: []ratingBand{
		{CashOnCashGoodThreshold, domain.RatingGood, "Excellent cash-on-cash return that significantly outperforms most alternative investments. Strong cash flow relative to initial investment."},
		{CashOnCashFairThreshold, domain.RatingFair, "Reasonable return that may be acceptable depending on market conditions and investment goals. Compare with other opportunities."},
	},
	fallback: ratingBand{rating: domain.RatingPoor, description: "Low return on invested cash. Consider if appreciation, tax benefits, or other factors make this investment worthwhile."},
}

var cashFlowTable = ratingTable{
	metric: "Monthly Cash Flow",
	bands: []ratingBand{
		{CashFlowGoodThreshold, domain.RatingGood, "Strong positive cash flow provides good monthly income and buffer for unexpected expenses or vacancy periods."},
		{CashFlowFairThreshold, domain.RatingFair, "Break-even or minimal positive cash flow. Property should cover expenses but provides limited monthly income."},
	},
	fallback: ratingBand{rating: domain.RatingPoor, description: "Negative cash flow means you'll need to contribute monthly to cover expenses. Ensure appreciation potential justifies the ongoing cost."},
}

func (t ratingTable) rate(value float64) domain.MetricAnalysis {
	band := t.fallback
	for _, b := range t.bands {
		if value >= b.threshold {
			band = b
			break
		}
	}
	return domain.MetricAnalysis{
		Metric:      t.metric,
		Value:       value,
		Rating:      band.rating,
		Description: band.description,
	}
}

func RateCapRate(capRatePct float64) domain.MetricAnalysis {
	return capRateTable.rate(capRatePct)
}

func RateCashOnCash(cashOnCashPct float64) domain.MetricAnalysis {
	return cashOnCashTable.rate(cashOnCashPct)
}

func RateCashFlow(netMonthlyCashFlow float64) domain.MetricAnalysis {
	return cashFlowTable.rate(netMonthlyCashFlow)
}

// Analyze rates the headline metrics of a result.
func Analyze(result domain.RentalResult) []domain.MetricAnalysis {
	return []domain.MetricAnalysis{
		RateCapRate(result.CapRatePct),
		RateCashOnCash(result.CashOnCashReturnPct),
		RateCashFlow(result.NetMonthlyCashFlow),
	}
}
