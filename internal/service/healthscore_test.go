package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/healthshop/backend/internal/knowledge"
	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/models"
	th "github.com/pageza/healthshop/backend/internal/testhelpers"
)

func newHealthScoreService(catalog *th.FakeCatalog, orders *th.FakeOrders, profiles *th.FakeProfiles) *HealthScoreService {
	return NewHealthScoreService(catalog, orders, profiles, knowledge.New(), logger.NewNop())
}

func TestHealthScoreNoProfileNoPurchases(t *testing.T) {
	featured := th.NewProduct("Vitamin D3 5000 IU", 499)
	featured.Featured = true
	svc := newHealthScoreService(th.NewFakeCatalog(featured), th.NewFakeOrders(), th.NewFakeProfiles())

	score, err := svc.CalculateForUser(context.Background(), uuid.New())
	require.NoError(t, err)

	scores := make([]int, len(score.Dimensions))
	for i, d := range score.Dimensions {
		scores[i] = d.Score
	}
	assert.Equal(t, []int{10, 45, 45, 60, 55}, scores)
	assert.Equal(t, 43, score.OverallScore)
	assert.Equal(t, "D", score.Grade)
	assert.Equal(t, "fair", score.Dimensions[1].Status)
	assert.Equal(t, "poor", score.Dimensions[0].Status)

	require.Len(t, score.Improvements, 5)
	assert.Equal(t, createProfilePrompt, score.Improvements[0])

	require.Len(t, score.RecommendedProducts, 1)
	assert.Equal(t, featured.ID, score.RecommendedProducts[0].ID)
}

func TestHealthScoreCompleteProfile(t *testing.T) {
	userID := uuid.New()
	age, height, weight := 34, 172.0, 68.0
	profile := &models.HealthProfile{
		UserID:             userID,
		Age:                &age,
		Gender:             "female",
		Height:             &height,
		Weight:             &weight,
		HealthGoals:        "Immunity",
		Allergies:          "Shellfish",
		DietaryPreferences: "Vegan",
		MedicalConditions:  "Asthma",
	}

	vitC := th.NewProduct("Vitamin C 1000mg", 299)
	vitC.HealthGoals = "Immunity"
	zinc := th.NewProduct("Zinc Picolinate", 349)
	zinc.HealthGoals = "Immunity,Skin Health"
	protein := th.NewProduct("Whey Protein", 1999)
	protein.HealthGoals = "Fitness"
	elder := th.NewProduct("Elderberry Syrup", 599)
	elder.HealthGoals = "Immunity"

	catalog := th.NewFakeCatalog(vitC, zinc, protein, elder)
	orders := th.NewFakeOrders(th.NewOrder(userID, time.Now(), vitC, zinc, protein))
	svc := newHealthScoreService(catalog, orders, th.NewFakeProfiles(profile))

	score, err := svc.CalculateForUser(context.Background(), userID)
	require.NoError(t, err)

	byName := map[string]int{}
	for _, d := range score.Dimensions {
		byName[d.Name] = d.Score
	}
	assert.Equal(t, 100, byName[dimProfileCompleteness])
	// two of three purchases carry the Immunity goal
	assert.Equal(t, 66, byName[dimGoalAlignment])
	// Vitamin C and Zinc out of five Immunity nutrients
	assert.Equal(t, 40, byName[dimNutritionCoverage])
	assert.Equal(t, 65, byName[dimPurchaseConsistency])
	// no categories assigned
	assert.Equal(t, 40, byName[dimProductDiversity])

	assert.NotContains(t, score.Improvements, createProfilePrompt)

	// unpurchased goal matches only
	require.Len(t, score.RecommendedProducts, 1)
	assert.Equal(t, elder.ID, score.RecommendedProducts[0].ID)
}

func TestHealthScoreDiversityCountsCategories(t *testing.T) {
	userID := uuid.New()
	var products []*models.Product
	for _, name := range []string{"Vitamins", "Minerals", "Herbs", "Protein", "Probiotics"} {
		p := th.NewProduct(name+" pick", 100)
		th.InCategory(th.NewCategory(name), p)
		products = append(products, p)
	}
	catalog := th.NewFakeCatalog(products...)
	orders := th.NewFakeOrders(th.NewOrder(userID, time.Now(), products...))
	svc := newHealthScoreService(catalog, orders, th.NewFakeProfiles())

	score, err := svc.CalculateForUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 95, score.Dimensions[4].Score)
	assert.Equal(t, 80, score.Dimensions[3].Score)
}

func TestHealthScoreCountsRepeatPurchases(t *testing.T) {
	userID := uuid.New()
	vitC := th.NewProduct("Vitamin C 1000mg", 299)
	vitC.HealthGoals = "Immunity"
	protein := th.NewProduct("Whey Protein", 1999)
	protein.HealthGoals = "Fitness"

	var history []*models.Order
	start := time.Now().Add(-30 * 24 * time.Hour)
	for i := 0; i < 10; i++ {
		history = append(history, th.NewOrder(userID, start.Add(time.Duration(i)*24*time.Hour), vitC))
	}
	history = append(history, th.NewOrder(userID, time.Now(), protein))

	catalog := th.NewFakeCatalog(vitC, protein)
	profiles := th.NewFakeProfiles(th.NewHealthProfile(userID, "Immunity"))
	svc := newHealthScoreService(catalog, th.NewFakeOrders(history...), profiles)

	score, err := svc.CalculateForUser(context.Background(), userID)
	require.NoError(t, err)

	byName := map[string]int{}
	for _, d := range score.Dimensions {
		byName[d.Name] = d.Score
	}
	// eleven order lines, ten of them aligned with Immunity
	assert.Equal(t, 95, byName[dimPurchaseConsistency])
	assert.Equal(t, 90, byName[dimGoalAlignment])
	assert.Equal(t, 40, byName[dimProductDiversity])
}

func TestHealthScoreStoreError(t *testing.T) {
	profiles := th.NewFakeProfiles()
	profiles.Err = errors.New("connection refused")
	svc := newHealthScoreService(th.NewFakeCatalog(), th.NewFakeOrders(), profiles)

	_, err := svc.CalculateForUser(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, profiles.Err)
}

func TestHealthScoreBounds(t *testing.T) {
	svc := newHealthScoreService(th.NewFakeCatalog(), th.NewFakeOrders(), th.NewFakeProfiles())
	ids := []uuid.UUID{}
	for i := 0; i < 12; i++ {
		ids = append(ids, uuid.New())
	}
	for _, purchased := range [][]uuid.UUID{nil, ids[:1], ids[:4], ids} {
		score, err := svc.Calculate(context.Background(), nil, purchased)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score.OverallScore, 0)
		assert.LessOrEqual(t, score.OverallScore, 100)
		for _, d := range score.Dimensions {
			assert.GreaterOrEqual(t, d.Score, 0)
			assert.LessOrEqual(t, d.Score, 100)
		}
	}
}

func TestGradeIsMonotonic(t *testing.T) {
	rank := map[string]int{"D": 0, "C": 1, "B": 2, "B+": 3, "A": 4, "A+": 5}
	prev := -1
	for s := 0; s <= 100; s++ {
		r, ok := rank[Grade(s)]
		require.True(t, ok, "unexpected grade for %d", s)
		assert.GreaterOrEqual(t, r, prev, "grade dropped at %d", s)
		prev = r
	}
	assert.Equal(t, "A+", Grade(90))
	assert.Equal(t, "A", Grade(89))
	assert.Equal(t, "C", Grade(50))
	assert.Equal(t, "D", Grade(49))
}
