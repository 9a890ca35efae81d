package service

const (
	MaxPurchasePrice = 1_000_000_000.0 // 1 billion
	MaxInterestRate  = 1000.0          // 1000% annual
	MaxLoanTermYears = 50
	MaxAnnualAmount  = 1_000_000_000.0 // rent*12 and insurance ceiling

	// ClosingCostRate is the share of the purchase price assumed to be paid
	// in closing costs on top of the down payment.
	ClosingCostRate = 0.03

	monthsPerYear = 12
)

// Rating thresholds. A value equal to a threshold earns that tier.
const (
	CapRateGoodThreshold = 8.0
	CapRateFairThreshold = 6.0

	CashOnCashGoodThreshold = 10.0
	CashOnCashFairThreshold = 6.0

	CashFlowGoodThreshold = 200.0
	CashFlowFairThreshold = 0.0
)
