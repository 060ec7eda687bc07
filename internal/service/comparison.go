package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/models"
	"github.com/pageza/healthshop/backend/internal/textmatch"
	"github.com/pageza/healthshop/backend/internal/types"
)

const (
	minCompareProducts = 2
	maxCompareProducts = 4
)

// comparisonDimensions is the fixed scoring order. Scores on every
// ComparisonProduct follow it.
var comparisonDimensions = []types.ComparisonDimension{
	{Name: "Value for Money", Description: "Price relative to ingredients, dosage, and servings"},
	{Name: "Ingredient Quality", Description: "Number and quality of active ingredients"},
	{Name: "User Satisfaction", Description: "Average rating and review volume from customers"},
	{Name: "Health Goal Match", Description: "Breadth of health goals the product addresses"},
	{Name: "Brand Reputation", Description: "Brand recognition and product popularity"},
	{Name: "Dosage Adequacy", Description: "Whether the product provides clear dosage instructions"},
}

// ComparisonService ranks two to four products side by side
type ComparisonService struct {
	catalog CatalogStore
	log     *logger.Logger
}

var _ IComparisonService = (*ComparisonService)(nil)

// NewComparisonService creates a new ComparisonService instance
func NewComparisonService(catalog CatalogStore, log *logger.Logger) *ComparisonService {
	return &ComparisonService{
		catalog: catalog,
		log:     log.With("service", "comparison"),
	}
}

// Compare scores each product on six dimensions and picks the highest raw
// total. Ties keep the earlier product.
func (s *ComparisonService) Compare(ctx context.Context, productIDs []uuid.UUID) (*types.Comparison, error) {
	s.log.Info("comparing products", "count", len(productIDs))

	if len(productIDs) > maxCompareProducts {
		return nil, ErrTooManyProducts
	}
	products, err := resolveExisting(ctx, s.catalog, uniqueIDs(productIDs))
	if err != nil {
		return nil, err
	}
	if len(products) < minCompareProducts {
		return nil, ErrInsufficientProducts
	}

	maxPrice := 0.0
	for _, p := range products {
		maxPrice = math.Max(maxPrice, p.EffectivePrice())
	}

	out := &types.Comparison{
		Products:   make([]types.ComparisonProduct, 0, len(products)),
		Dimensions: comparisonDimensions,
	}
	best, bestTotal := -1, 0.0
	for i, p := range products {
		raw := []float64{
			valueScore(p, maxPrice),
			ingredientScore(p),
			satisfactionScore(p),
			goalMatchScore(p),
			brandScore(p),
			dosageScore(p),
		}
		cp := comparisonProduct(p)
		for d, v := range raw {
			cp.Scores = append(cp.Scores, types.DimensionScore{
				Dimension: comparisonDimensions[d].Name,
				Score:     int(v),
				Label:     scoreLabel(v),
			})
			cp.TotalScore += v
		}
		if best < 0 || cp.TotalScore > bestTotal {
			best, bestTotal = i, cp.TotalScore
		}
		out.Products = append(out.Products, cp)
	}

	winner := products[best]
	out.RecommendedID = winner.ID
	out.RecommendationReason = recommendationReason(winner)
	return out, nil
}

func comparisonProduct(p *models.Product) types.ComparisonProduct {
	return types.ComparisonProduct{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		Rating:        p.AverageRating,
		ReviewCount:   p.ReviewCount,
		ImageURL:      p.ImageURL,
		HealthGoals:   p.GoalList(),
		DietaryInfo:   p.DietaryInfo,
		Dosage:        p.Dosage,
		Ingredients:   p.Ingredients,
		Scores:        make([]types.DimensionScore, 0, len(comparisonDimensions)),
	}
}

// valueScore favours cheaper products relative to the priciest one compared.
func valueScore(p *models.Product, maxPrice float64) float64 {
	if maxPrice == 0 {
		return 50
	}
	v := (1 - p.EffectivePrice()/(maxPrice*1.2)) * 100
	return math.Max(0, math.Min(100, v))
}

func ingredientScore(p *models.Product) float64 {
	n := len(textmatch.SplitList(p.Ingredients))
	if n == 0 {
		return 30
	}
	return math.Min(100, float64(30+8*n))
}

func satisfactionScore(p *models.Product) float64 {
	rating := p.AverageRating * 15
	reviews := math.Min(25, float64(p.ReviewCount)*2.5)
	return math.Max(0, math.Min(100, rating+reviews))
}

func goalMatchScore(p *models.Product) float64 {
	return math.Min(100, float64(20+20*len(p.GoalList())))
}

func brandScore(p *models.Product) float64 {
	score := 40.0
	switch {
	case p.PurchaseCount > 50:
		score += 30
	case p.PurchaseCount > 20:
		score += 20
	case p.PurchaseCount > 5:
		score += 10
	}
	if strings.TrimSpace(p.Brand) != "" {
		score += 20
	}
	return math.Min(100, score)
}

func dosageScore(p *models.Product) float64 {
	switch {
	case strings.TrimSpace(p.Dosage) == "":
		return 25
	case utf8.RuneCountInString(p.Dosage) > 20:
		return 85
	default:
		return 60
	}
}

func scoreLabel(v float64) string {
	switch {
	case v >= 85:
		return "Excellent"
	case v >= 70:
		return "Very Good"
	case v >= 55:
		return "Good"
	case v >= 40:
		return "Average"
	default:
		return "Below Average"
	}
}

func recommendationReason(p *models.Product) string {
	var b strings.Builder
	b.WriteString(p.Name)
	b.WriteString(" scores highest overall")
	if p.AverageRating >= 4.0 {
		fmt.Fprintf(&b, " with a %.1f★ rating", p.AverageRating)
	}
	if p.HasDiscount() {
		b.WriteString(", is currently discounted")
	}
	b.WriteString(". It offers the best combination of value, quality, and user satisfaction.")
	return b.String()
}
