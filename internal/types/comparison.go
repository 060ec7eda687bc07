package types

import "github.com/google/uuid"

type ComparisonRequest struct {
	ProductIDs []uuid.UUID `json:"product_ids" binding:"required"`
}

type Comparison struct {
	Products             []ComparisonProduct   `json:"products"`
	RecommendedID        uuid.UUID             `json:"recommended_id"`
	RecommendationReason string                `json:"recommendation_reason"`
	Dimensions           []ComparisonDimension `json:"dimensions"`
}

type ComparisonProduct struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Brand         string           `json:"brand"`
	Price         float64          `json:"price"`
	DiscountPrice *float64         `json:"discount_price,omitempty"`
	Rating        float64          `json:"rating"`
	ReviewCount   int              `json:"review_count"`
	ImageURL      string           `json:"image_url"`
	HealthGoals   []string         `json:"health_goals"`
	DietaryInfo   string           `json:"dietary_info"`
	Dosage        string           `json:"dosage"`
	Ingredients   string           `json:"ingredients"`
	Scores        []DimensionScore `json:"scores"`
	TotalScore    float64          `json:"total_score"`
}

// DimensionScore is one scored comparison dimension, in dimension order.
type DimensionScore struct {
	Dimension string `json:"dimension"`
	Score     int    `json:"score"`
	Label     string `json:"label"`
}

type ComparisonDimension struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
