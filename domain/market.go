package domain

import "time"

// Shapes returned by the external market-data API. This service only relays
// them; nothing here is computed locally.

type ChartDataPoint struct {
	Date            string   `json:"date"`
	HistoricalPrice *float64 `json:"historical_price,omitempty"`
	PredictedPrice  *float64 `json:"predicted_price,omitempty"`
	UpperBound      *float64 `json:"upper_bound,omitempty"`
	LowerBound      *float64 `json:"lower_bound,omitempty"`
}

type RiskFactor struct {
	Factor      string `json:"factor"`
	Description string `json:"description"`
}

type Forecast struct {
	Address         string           `json:"address"`
	County          string           `json:"county"`
	CurrentValue    float64          `json:"current_value"`
	PredictedValue  float64          `json:"predicted_value"`
	RecentChange    float64          `json:"recent_change"`
	PredictedChange float64          `json:"predicted_change"`
	MarketType      string           `json:"market_type"`
	Confidence      int              `json:"confidence"`
	Volatility      string           `json:"volatility"`
	SeasonalTrend   string           `json:"seasonal_trend"`
	Momentum        string           `json:"momentum"`
	ChartData       []ChartDataPoint `json:"chart_data"`
	RiskFactors     []RiskFactor     `json:"risk_factors"`
}

// FeatureImpact is one signed feature attribution of an investment score.
type FeatureImpact struct {
	Feature string  `json:"feature"`
	Impact  float64 `json:"impact"`
}

type InvestmentMetrics struct {
	PriceToRentRatio     float64 `json:"price_to_rent_ratio"`
	PriceAppreciation5yr float64 `json:"price_appreciation_5yr"`
	RentalYield          float64 `json:"rental_yield"`
	MarketCapRate        float64 `json:"market_cap_rate"`
	DaysOnMarket         int     `json:"days_on_market"`
	InventoryLevel       string  `json:"inventory_level"`
	PopulationGrowth     float64 `json:"population_growth"`
	EmploymentGrowth     float64 `json:"employment_growth"`
}

type InvestmentScore struct {
	Address              string            `json:"address"`
	InvestmentScore      int               `json:"investment_score"`
	RiskLevel            string            `json:"risk_level"`
	ExpectedReturn       float64           `json:"expected_return"`
	LiquidityScore       int               `json:"liquidity_score"`
	Recommendation       string            `json:"recommendation"`
	RecommendationReason string            `json:"recommendation_reason"`
	KeyHighlights        []string          `json:"key_highlights"`
	ShapExplanations     []FeatureImpact   `json:"shap_explanations"`
	Metrics              InvestmentMetrics `json:"metrics"`
}

type InvestmentScoreRequest struct {
	Address string `json:"address"`
}

type TopArea struct {
	ID               int      `json:"id"`
	County           string   `json:"county"`
	Region           string   `json:"region"`
	OverallScore     int      `json:"overall_score"`
	PriceGrowth      float64  `json:"price_growth"`
	RentalYield      float64  `json:"rental_yield"`
	PopulationGrowth float64  `json:"population_growth"`
	MedianPrice      float64  `json:"median_price"`
	Highlights       []string `json:"highlights"`
	Description      string   `json:"description"`
}

type TopAreas struct {
	Areas       []TopArea `json:"areas"`
	LastUpdated time.Time `json:"last_updated"`
}
