package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/pageza/healthshop/backend/internal/models"
	"github.com/pageza/healthshop/backend/internal/textmatch"
)

// ProductSummary is the product shape returned by every engine endpoint.
type ProductSummary struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Slug              string     `json:"slug"`
	Description       string     `json:"description"`
	Ingredients       string     `json:"ingredients"`
	Benefits          string     `json:"benefits"`
	Price             float64    `json:"price"`
	DiscountPrice     *float64   `json:"discount_price,omitempty"`
	Brand             string     `json:"brand"`
	ImageURL          string     `json:"image_url"`
	CategoryID        *uuid.UUID `json:"category_id,omitempty"`
	CategoryName      string     `json:"category_name"`
	Tags              []string   `json:"tags"`
	HealthGoals       []string   `json:"health_goals"`
	SuitableAgeGroups string     `json:"suitable_age_groups"`
	DietaryInfo       string     `json:"dietary_info"`
	AllergenInfo      string     `json:"allergen_info"`
	Dosage            string     `json:"dosage"`
	AverageRating     float64    `json:"average_rating"`
	ReviewCount       int        `json:"review_count"`
	PurchaseCount     int        `json:"purchase_count"`
	Featured          bool       `json:"featured"`
	CreatedAt         time.Time  `json:"created_at"`
}

// NewProductSummary converts a catalog product into its response form.
func NewProductSummary(p *models.Product) ProductSummary {
	return ProductSummary{
		ID:                p.ID,
		Name:              p.Name,
		Slug:              p.Slug,
		Description:       p.Description,
		Ingredients:       p.Ingredients,
		Benefits:          p.Benefits,
		Price:             p.Price,
		DiscountPrice:     p.DiscountPrice,
		Brand:             p.Brand,
		ImageURL:          p.ImageURL,
		CategoryID:        p.CategoryID,
		CategoryName:      p.CategoryName(),
		Tags:              textmatch.SplitList(p.Tags),
		HealthGoals:       p.GoalList(),
		SuitableAgeGroups: p.SuitableAgeGroups,
		DietaryInfo:       p.DietaryInfo,
		AllergenInfo:      p.AllergenInfo,
		Dosage:            p.Dosage,
		AverageRating:     p.AverageRating,
		ReviewCount:       p.ReviewCount,
		PurchaseCount:     p.PurchaseCount,
		Featured:          p.Featured,
		CreatedAt:         p.CreatedAt,
	}
}

// NewProductSummaries converts products preserving order. It never returns nil
// so empty lists encode as [].
func NewProductSummaries(products []*models.Product) []ProductSummary {
	out := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductSummary(p))
	}
	return out
}
