package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/healthshop/backend/internal/textmatch"
)

// Category groups products in the catalog.
type Category struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Slug      string    `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	Active    bool      `gorm:"not null" json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Product is the catalog read projection. List-like fields (ingredients,
// tags, health goals, age groups, allergens) are comma-delimited strings.
type Product struct {
	ID                uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	Name              string     `gorm:"size:255;not null" json:"name"`
	Slug              string     `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description       string     `gorm:"type:text" json:"description"`
	Ingredients       string     `gorm:"type:text" json:"ingredients"`
	Benefits          string     `gorm:"type:text" json:"benefits"`
	Price             float64    `gorm:"not null" json:"price"`
	DiscountPrice     *float64   `json:"discount_price,omitempty"`
	Brand             string     `gorm:"size:100" json:"brand"`
	ImageURL          string     `gorm:"size:255" json:"image_url"`
	CategoryID        *uuid.UUID `gorm:"type:varchar(36);index" json:"category_id,omitempty"`
	Category          *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags              string     `gorm:"type:text" json:"tags"`
	HealthGoals       string     `gorm:"type:text" json:"health_goals"`
	SuitableAgeGroups string     `gorm:"size:255" json:"suitable_age_groups"`
	DietaryInfo       string     `gorm:"size:255" json:"dietary_info"`
	AllergenInfo      string     `gorm:"type:text" json:"allergen_info"`
	Dosage            string     `gorm:"size:255" json:"dosage"`
	AverageRating     float64    `json:"average_rating"`
	ReviewCount       int        `json:"review_count"`
	PurchaseCount     int        `gorm:"index" json:"purchase_count"`
	Featured          bool       `gorm:"not null" json:"featured"`
	Active            bool       `gorm:"not null" json:"active"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// SearchText is the canonical lowercase string used for keyword matching:
// name, ingredients, tags and health goals in that order.
func (p *Product) SearchText() string {
	return textmatch.Searchable(p.Name, p.Ingredients, p.Tags, p.HealthGoals)
}

// SearchTextWithDescription matches name, ingredients, tags and description.
// Health goals are left out.
func (p *Product) SearchTextWithDescription() string {
	return textmatch.Searchable(p.Name, p.Ingredients, p.Tags, p.Description)
}

// EffectivePrice is the discount price when one is set, else the list price.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

func (p *Product) HasDiscount() bool {
	return p.DiscountPrice != nil
}

// CategoryName returns the preloaded category name, or "" if the category was
// not loaded.
func (p *Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

func (p *Product) GoalList() []string {
	return textmatch.SplitList(p.HealthGoals)
}

func (p *Product) IngredientList() []string {
	return textmatch.SplitList(p.Ingredients)
}

// ContainsAllergen reports whether any of the given allergens occurs in the
// product's allergen warnings.
func (p *Product) ContainsAllergen(allergens []string) bool {
	if len(allergens) == 0 || strings.TrimSpace(p.AllergenInfo) == "" {
		return false
	}
	return textmatch.ContainsAny(p.AllergenInfo, allergens...)
}
