package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/models"
	th "github.com/pageza/healthshop/backend/internal/testhelpers"
)

func TestCompareRequiresTwoProducts(t *testing.T) {
	p := th.NewProduct("Solo", 100)
	svc := NewComparisonService(th.NewFakeCatalog(p), logger.NewNop())

	_, err := svc.Compare(context.Background(), []uuid.UUID{p.ID})
	assert.ErrorIs(t, err, ErrInsufficientProducts)

	// duplicates and unknown ids do not count
	_, err = svc.Compare(context.Background(), []uuid.UUID{p.ID, p.ID, uuid.New()})
	assert.ErrorIs(t, err, ErrInsufficientProducts)
}

func TestCompareRejectsMoreThanFour(t *testing.T) {
	svc := NewComparisonService(th.NewFakeCatalog(), logger.NewNop())
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()}

	_, err := svc.Compare(context.Background(), ids)
	assert.ErrorIs(t, err, ErrTooManyProducts)
}

func TestComparePicksHighestTotal(t *testing.T) {
	cheap := th.NewProduct("Budget Magnesium", 200)
	premium := th.NewProduct("Premium Magnesium Glycinate", 1000)
	premium.Ingredients = "Magnesium Glycinate, Zinc, Vitamin B6"
	premium.HealthGoals = "Sleep,Stress Relief"
	premium.Brand = "Pure Labs"
	premium.AverageRating = 4.6
	premium.ReviewCount = 40
	premium.PurchaseCount = 60
	premium.Dosage = "2 capsules daily with dinner"
	discount := 900.0
	premium.DiscountPrice = &discount

	svc := NewComparisonService(th.NewFakeCatalog(cheap, premium), logger.NewNop())
	cmp, err := svc.Compare(context.Background(), []uuid.UUID{cheap.ID, premium.ID})
	require.NoError(t, err)

	require.Len(t, cmp.Products, 2)
	assert.Equal(t, cheap.ID, cmp.Products[0].ID)
	assert.Len(t, cmp.Dimensions, 6)
	for _, p := range cmp.Products {
		require.Len(t, p.Scores, 6)
		for i, s := range p.Scores {
			assert.Equal(t, cmp.Dimensions[i].Name, s.Dimension)
		}
	}

	assert.Equal(t, premium.ID, cmp.RecommendedID)
	assert.Equal(t, "Premium Magnesium Glycinate scores highest overall with a 4.6★ rating, is currently discounted. "+
		"It offers the best combination of value, quality, and user satisfaction.", cmp.RecommendationReason)

	// cheap: value (1-200/1080)*100 = 81.48
	assert.Equal(t, 81, cmp.Products[0].Scores[0].Score)
	assert.Equal(t, "Very Good", cmp.Products[0].Scores[0].Label)
}

func TestCompareTieKeepsInputOrder(t *testing.T) {
	a := th.NewProduct("Twin A", 500)
	b := th.NewProduct("Twin B", 500)
	svc := NewComparisonService(th.NewFakeCatalog(a, b), logger.NewNop())

	cmp, err := svc.Compare(context.Background(), []uuid.UUID{b.ID, a.ID})
	require.NoError(t, err)
	assert.Equal(t, b.ID, cmp.RecommendedID)
	assert.Equal(t, cmp.Products[0].TotalScore, cmp.Products[1].TotalScore)
}

func TestComparisonScoreRules(t *testing.T) {
	p := &models.Product{Ingredients: "a,b,c,d,e,f,g,h,i,j", HealthGoals: "a,b,c,d,e"}
	assert.Equal(t, 100.0, ingredientScore(p))
	assert.Equal(t, 100.0, goalMatchScore(p))
	assert.Equal(t, 30.0, ingredientScore(&models.Product{}))
	assert.Equal(t, 20.0, goalMatchScore(&models.Product{}))

	assert.Equal(t, 25.0, dosageScore(&models.Product{}))
	assert.Equal(t, 60.0, dosageScore(&models.Product{Dosage: "1 daily"}))
	assert.Equal(t, 85.0, dosageScore(&models.Product{Dosage: "1 capsule twice daily with food"}))

	assert.Equal(t, 40.0, brandScore(&models.Product{}))
	assert.Equal(t, 90.0, brandScore(&models.Product{Brand: "Acme", PurchaseCount: 51}))

	assert.Equal(t, 50.0, valueScore(&models.Product{}, 0))
	assert.Equal(t, 100.0, satisfactionScore(&models.Product{AverageRating: 5, ReviewCount: 100}))
}
