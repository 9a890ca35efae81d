package service

import (
	"math"

	"rental-calculator/domain"
)

// Compute derives the investment metrics for input. It is a pure function:
// identical inputs always produce identical results.
func Compute(input domain.RentalInput) (domain.RentalResult, error) {
	if err := ValidateInput(input); err != nil {
		return domain.RentalResult{}, err
	}

	price := input.PurchasePrice

	downPayment := price * input.DownPaymentPct / 100
	loanAmount := price - downPayment

	mortgage := MonthlyPayment(loanAmount, input.InterestRatePct, input.LoanTermYears*monthsPerYear)

	propertyTax := price * input.PropertyTaxPct / 100 / monthsPerYear
	insurance := input.InsuranceAnnual / monthsPerYear
	maintenance := price * input.MaintenancePct / 100 / monthsPerYear
	capEx := price * input.CapExPct / 100 / monthsPerYear

	effectiveRent := input.MonthlyRent * (1 - input.VacancyPct/100)
	managementFee := effectiveRent * input.ManagementFeePct / 100

	operating := propertyTax + insurance + maintenance + capEx + managementFee

	netMonthly := effectiveRent - (mortgage + operating)
	netAnnual := netMonthly * monthsPerYear

	// El NOI excluye la hipoteca: el servicio de deuda no es gasto operativo
	noi := effectiveRent*monthsPerYear - operating*monthsPerYear

	totalCash := downPayment + price*ClosingCostRate

	result := domain.RentalResult{
		DownPaymentAmount:    downPayment,
		LoanAmount:           loanAmount,
		MonthlyMortgage:      mortgage,
		MonthlyPropertyTax:   propertyTax,
		MonthlyInsurance:     insurance,
		MonthlyMaintenance:   maintenance,
		MonthlyCapEx:         capEx,
		MonthlyManagementFee: managementFee,
		EffectiveMonthlyRent: effectiveRent,
		NetMonthlyCashFlow:   netMonthly,
		NetAnnualCashFlow:    netAnnual,
		NOI:                  noi,
		TotalCashInvested:    totalCash,
		GrossAnnualRent:      input.MonthlyRent * monthsPerYear,
		EffectiveAnnualRent:  effectiveRent * monthsPerYear,
	}

	var err error
	if result.CapRatePct, err = percentOf(noi, price, "capRatePct"); err != nil {
		return domain.RentalResult{}, err
	}
	if result.CashOnCashReturnPct, err = percentOf(netAnnual, totalCash, "cashOnCashReturnPct"); err != nil {
		return domain.RentalResult{}, err
	}
	appreciation := price * input.AppreciationPct / 100
	if result.TotalReturnPct, err = percentOf(netAnnual+appreciation, totalCash, "totalReturnPct"); err != nil {
		return domain.RentalResult{}, err
	}

	if err := checkFinite(result); err != nil {
		return domain.RentalResult{}, err
	}
	return result, nil
}

func percentOf(numerator, denominator float64, metric string) (float64, error) {
	if denominator == 0 {
		return 0, &DegenerateError{Metric: metric}
	}
	v := numerator / denominator * 100
	if !isFinite(v) {
		return 0, &DegenerateError{Metric: metric}
	}
	return v, nil
}

func checkFinite(r domain.RentalResult) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"downPaymentAmount", r.DownPaymentAmount},
		{"loanAmount", r.LoanAmount},
		{"monthlyMortgage", r.MonthlyMortgage},
		{"monthlyPropertyTax", r.MonthlyPropertyTax},
		{"monthlyInsurance", r.MonthlyInsurance},
		{"monthlyMaintenance", r.MonthlyMaintenance},
		{"monthlyCapEx", r.MonthlyCapEx},
		{"monthlyManagementFee", r.MonthlyManagementFee},
		{"effectiveMonthlyRent", r.EffectiveMonthlyRent},
		{"netMonthlyCashFlow", r.NetMonthlyCashFlow},
		{"netAnnualCashFlow", r.NetAnnualCashFlow},
		{"noi", r.NOI},
		{"capRatePct", r.CapRatePct},
		{"cashOnCashReturnPct", r.CashOnCashReturnPct},
		{"totalReturnPct", r.TotalReturnPct},
		{"totalCashInvested", r.TotalCashInvested},
		{"grossAnnualRent", r.GrossAnnualRent},
		{"effectiveAnnualRent", r.EffectiveAnnualRent},
	}
	for _, f := range fields {
		if !isFinite(f.value) {
			return &DegenerateError{Metric: f.name}
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
