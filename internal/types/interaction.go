package types

import "github.com/google/uuid"

type InteractionCheckRequest struct {
	ProductIDs         []uuid.UUID `json:"product_ids"`
	CurrentMedications []string    `json:"current_medications"`
}

// Overall interaction risk levels.
const (
	RiskHigh     = "high"
	RiskModerate = "moderate"
	RiskLow      = "low"
	RiskNone     = "none"
)

type InteractionReport struct {
	Warnings         []InteractionWarning `json:"warnings"`
	SafeCombinations []SafeCombination    `json:"safe_combinations"`
	OverallRisk      string               `json:"overall_risk"`
	GeneralAdvice    []string             `json:"general_advice"`
}

type InteractionWarning struct {
	Severity       string `json:"severity"`
	Product1       string `json:"product1"`
	Product2       string `json:"product2"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

type SafeCombination struct {
	Product1 string `json:"product1"`
	Product2 string `json:"product2"`
	Benefit  string `json:"benefit"`
}
