package domain

// RentalInput holds the property, financing and operating assumptions of a
// rental investment. Percentages are expressed in percent (7.0 means 7%).
type RentalInput struct {
	PurchasePrice    float64 `json:"purchasePrice"`
	DownPaymentPct   float64 `json:"downPaymentPct"`
	InterestRatePct  float64 `json:"interestRatePct"`
	LoanTermYears    int     `json:"loanTermYears"`
	MonthlyRent      float64 `json:"monthlyRent"`
	PropertyTaxPct   float64 `json:"propertyTaxPct"`
	InsuranceAnnual  float64 `json:"insuranceAnnual"`
	MaintenancePct   float64 `json:"maintenancePct"`
	VacancyPct       float64 `json:"vacancyPct"`
	ManagementFeePct float64 `json:"managementFeePct"`
	CapExPct         float64 `json:"capExPct"`
	AppreciationPct  float64 `json:"appreciationPct"`
}

// RentalResult is derived from a RentalInput. Currency fields are monthly
// unless the name says otherwise.
type RentalResult struct {
	DownPaymentAmount    float64 `json:"downPaymentAmount"`
	LoanAmount           float64 `json:"loanAmount"`
	MonthlyMortgage      float64 `json:"monthlyMortgage"`
	MonthlyPropertyTax   float64 `json:"monthlyPropertyTax"`
	MonthlyInsurance     float64 `json:"monthlyInsurance"`
	MonthlyMaintenance   float64 `json:"monthlyMaintenance"`
	MonthlyCapEx         float64 `json:"monthlyCapEx"`
	MonthlyManagementFee float64 `json:"monthlyManagementFee"`
	EffectiveMonthlyRent float64 `json:"effectiveMonthlyRent"`
	NetMonthlyCashFlow   float64 `json:"netMonthlyCashFlow"`
	NetAnnualCashFlow    float64 `json:"netAnnualCashFlow"`
	NOI                  float64 `json:"noi"`
	CapRatePct           float64 `json:"capRatePct"`
	CashOnCashReturnPct  float64 `json:"cashOnCashReturnPct"`
	TotalReturnPct       float64 `json:"totalReturnPct"`
	TotalCashInvested    float64 `json:"totalCashInvested"`
	GrossAnnualRent      float64 `json:"grossAnnualRent"`
	EffectiveAnnualRent  float64 `json:"effectiveAnnualRent"`
}

type Rating string

const (
	RatingGood Rating = "good"
	RatingFair Rating = "fair"
	RatingPoor Rating = "poor"
)

type MetricAnalysis struct {
	Metric      string  `json:"metric"`
	Value       float64 `json:"value"`
	Rating      Rating  `json:"rating"`
	Description string  `json:"description"`
}

type RentalAnalysis struct {
	Input    RentalInput      `json:"input"`
	Result   RentalResult     `json:"result"`
	Analysis []MetricAnalysis `json:"analysis"`
	Summary  string           `json:"summary,omitempty"`
}

// DefaultRentalInput returns the assumptions the calculator starts from.
func DefaultRentalInput() RentalInput {
	return RentalInput{
		PurchasePrice:    500000,
		DownPaymentPct:   20,
		InterestRatePct:  7.0,
		LoanTermYears:    30,
		MonthlyRent:      3500,
		PropertyTaxPct:   1.2,
		InsuranceAnnual:  1200,
		MaintenancePct:   2.0,
		VacancyPct:       5.0,
		ManagementFeePct: 8.0,
		CapExPct:         1.0,
		AppreciationPct:  3.5,
	}
}
