package service

import (
	"fmt"

	"rental-calculator/domain"
)

// ValidateInput rejects inputs outside their domain. The returned error
// wraps ErrInvalidInput and names the first offending field.
func ValidateInput(input domain.RentalInput) error {
	finite := []struct {
		name  string
		value float64
	}{
		{"purchasePrice", input.PurchasePrice},
		{"downPaymentPct", input.DownPaymentPct},
		{"interestRatePct", input.InterestRatePct},
		{"monthlyRent", input.MonthlyRent},
		{"propertyTaxPct", input.PropertyTaxPct},
		{"insuranceAnnual", input.InsuranceAnnual},
		{"maintenancePct", input.MaintenancePct},
		{"vacancyPct", input.VacancyPct},
		{"managementFeePct", input.ManagementFeePct},
		{"capExPct", input.CapExPct},
		{"appreciationPct", input.AppreciationPct},
	}
	for _, f := range finite {
		if !isFinite(f.value) {
			return invalid(f.name, "must be a finite number")
		}
	}

	// Validar rangos
	if input.PurchasePrice <= 0 {
		return invalid("purchasePrice", "must be greater than 0")
	}
	if input.PurchasePrice > MaxPurchasePrice {
		return invalid("purchasePrice", fmt.Sprintf("exceeds the maximum of $%.2f", MaxPurchasePrice))
	}
	if err := percentRange("downPaymentPct", input.DownPaymentPct); err != nil {
		return err
	}
	if input.InterestRatePct < 0 {
		return invalid("interestRatePct", "must not be negative")
	}
	if input.InterestRatePct > MaxInterestRate {
		return invalid("interestRatePct", fmt.Sprintf("exceeds the maximum of %.2f%%", MaxInterestRate))
	}
	if input.LoanTermYears <= 0 {
		return invalid("loanTermYears", "must be greater than 0")
	}
	if input.LoanTermYears > MaxLoanTermYears {
		return invalid("loanTermYears", fmt.Sprintf("exceeds the maximum of %d years", MaxLoanTermYears))
	}
	if input.MonthlyRent < 0 {
		return invalid("monthlyRent", "must not be negative")
	}
	if input.MonthlyRent*monthsPerYear > MaxAnnualAmount {
		return invalid("monthlyRent", "exceeds the maximum annual rent")
	}
	if input.PropertyTaxPct < 0 {
		return invalid("propertyTaxPct", "must not be negative")
	}
	if input.InsuranceAnnual < 0 {
		return invalid("insuranceAnnual", "must not be negative")
	}
	if input.InsuranceAnnual > MaxAnnualAmount {
		return invalid("insuranceAnnual", "exceeds the maximum annual amount")
	}
	if input.MaintenancePct < 0 {
		return invalid("maintenancePct", "must not be negative")
	}
	if err := percentRange("vacancyPct", input.VacancyPct); err != nil {
		return err
	}
	if err := percentRange("managementFeePct", input.ManagementFeePct); err != nil {
		return err
	}
	if input.CapExPct < 0 {
		return invalid("capExPct", "must not be negative")
	}
	return nil
}

func percentRange(field string, value float64) error {
	if value < 0 || value > 100 {
		return invalid(field, "must be between 0 and 100")
	}
	return nil
}
