package service

import "math"

// MonthlyPayment returns the amortized monthly payment of a fixed-rate loan.
// A zero rate falls back to straight-line repayment; a non-positive term
// yields NaN. The payment never drops below the straight-line amount.
func MonthlyPayment(principal, annualRatePct float64, months int) float64 {
	if months <= 0 {
		return math.NaN()
	}
	n := float64(months)

	straightLine := principal / n

	monthlyRate := annualRatePct / 100 / monthsPerYear
	if monthlyRate == 0 {
		return straightLine
	}

	// (1+r)^n - 1 sin cancelación cuando r es muy pequeña
	growthMinusOne := math.Expm1(n * math.Log1p(monthlyRate))
	payment := principal * monthlyRate * (growthMinusOne + 1) / growthMinusOne

	// Redondeo de punto flotante: con tasas ínfimas puede quedar un ulp abajo
	if payment < straightLine {
		return straightLine
	}
	return payment
}
