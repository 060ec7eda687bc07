package types

import "github.com/pageza/healthshop/backend/internal/knowledge"

// HealthScore is the composite wellness score for a user.
type HealthScore struct {
	OverallScore        int              `json:"overall_score"`
	Grade               string           `json:"grade"`
	Summary             string           `json:"summary"`
	Dimensions          []ScoreDimension `json:"dimensions"`
	Improvements        []string         `json:"improvements"`
	RecommendedProducts []ProductSummary `json:"recommended_products"`
}

type ScoreDimension struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Status string `json:"status"` // excellent, good, fair, poor
	Tip    string `json:"tip"`
}

// Nutrient coverage statuses.
const (
	NutrientDeficient = "deficient"
	NutrientLow       = "low"
	NutrientAdequate  = "adequate"
	NutrientOptimal   = "optimal"
)

type NutritionGap struct {
	Nutrient           string `json:"nutrient"`
	CurrentStatus      string `json:"current_status"`
	FulfillmentPercent int    `json:"fulfillment_percent"`
	Recommendation     string `json:"recommendation"`
}

type NutritionGapAnalysis struct {
	Gaps              []NutritionGap   `json:"gaps"`
	SuggestedProducts []ProductSummary `json:"suggested_products"`
}

type HealthTip = knowledge.HealthTip

// HealthInsights is the combined dashboard payload.
type HealthInsights struct {
	HealthScore       *HealthScore          `json:"health_score"`
	PurchaseInsights  *PurchaseInsights     `json:"purchase_insights"`
	PersonalizedPicks []ProductSummary      `json:"personalized_picks"`
	DailyTips         []HealthTip           `json:"daily_tips"`
	NutritionGaps     *NutritionGapAnalysis `json:"nutrition_gaps"`
}

// ExportedReport points at an archived insights report.
type ExportedReport struct {
	Key       string `json:"key"`
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in_seconds"`
}

type Dosage struct {
	ProductName       string   `json:"product_name"`
	RecommendedDosage string   `json:"recommended_dosage"`
	Timing            string   `json:"timing"`
	Frequency         string   `json:"frequency"`
	Tips              []string `json:"tips"`
	Warnings          []string `json:"warnings"`
	PersonalizedNote  string   `json:"personalized_note"`
}
