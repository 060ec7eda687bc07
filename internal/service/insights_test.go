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
	th "github.com/pageza/healthshop/backend/internal/testhelpers"
	"github.com/pageza/healthshop/backend/internal/types"
)

func newInsightsService(catalog *th.FakeCatalog, orders *th.FakeOrders, profiles *th.FakeProfiles, now time.Time) *InsightsService {
	kb := knowledge.New()
	log := logger.NewNop()
	scores := NewHealthScoreService(catalog, orders, profiles, kb, log)
	patterns := NewPurchasePatternService(catalog, orders, kb, log)
	patterns.now = func() time.Time { return now }
	svc := NewInsightsService(catalog, orders, profiles, scores, patterns, kb, log)
	svc.now = func() time.Time { return now }
	return svc
}

func gapStatuses(gaps []types.NutritionGap) map[string]types.NutritionGap {
	out := make(map[string]types.NutritionGap, len(gaps))
	for _, g := range gaps {
		out[g.Nutrient] = g
	}
	return out
}

func TestNutritionGapsWithoutProfile(t *testing.T) {
	svc := newInsightsService(th.NewFakeCatalog(), th.NewFakeOrders(), th.NewFakeProfiles(), time.Now())

	analysis, err := svc.NutritionGaps(context.Background(), uuid.New())
	require.NoError(t, err)

	require.Len(t, analysis.Gaps, 5)
	names := make([]string, len(analysis.Gaps))
	percents := make([]int, len(analysis.Gaps))
	for i, g := range analysis.Gaps {
		names[i] = g.Nutrient
		percents[i] = g.FulfillmentPercent
	}
	assert.Equal(t, []string{"Vitamin D", "Omega-3", "Magnesium", "Vitamin C", "Probiotics"}, names)
	assert.Equal(t, []int{10, 22, 35, 8, 18}, percents)
	assert.Equal(t, types.NutrientDeficient, analysis.Gaps[0].CurrentStatus)
	assert.Equal(t, types.NutrientLow, analysis.Gaps[1].CurrentStatus)
	assert.NotNil(t, analysis.SuggestedProducts)
}

func TestNutritionGapsCoveredAndSuggestions(t *testing.T) {
	userID := uuid.New()
	profile := th.NewHealthProfile(userID, "Sleep")

	magnesium := th.NewProduct("Magnesium Glycinate", 15)
	fishOil := th.NewProduct("Arctic Fish Oil", 25)
	vitD := th.NewProduct("Vitamin D3 Drops", 12)
	probiotic := th.NewProduct("Daily Probiotic", 30)

	catalog := th.NewFakeCatalog(magnesium, fishOil, vitD, probiotic)
	orders := th.NewFakeOrders(th.NewOrder(userID, time.Now(), magnesium))
	svc := newInsightsService(catalog, orders, th.NewFakeProfiles(profile), time.Now())

	analysis, err := svc.NutritionGaps(context.Background(), userID)
	require.NoError(t, err)

	names := make([]string, len(analysis.Gaps))
	for i, g := range analysis.Gaps {
		names[i] = g.Nutrient
	}
	// goal-related nutrients first, then the defaults not yet listed
	assert.Equal(t, []string{"Vitamin D", "Magnesium", "Omega-3", "Vitamin C", "Probiotics"}, names)

	byName := gapStatuses(analysis.Gaps)
	assert.Equal(t, types.NutrientOptimal, byName["Magnesium"].CurrentStatus)
	assert.Equal(t, 85, byName["Magnesium"].FulfillmentPercent)
	// the uncovered sequence skips covered nutrients
	assert.Equal(t, 10, byName["Vitamin D"].FulfillmentPercent)
	assert.Equal(t, 22, byName["Omega-3"].FulfillmentPercent)
	assert.Equal(t, 35, byName["Vitamin C"].FulfillmentPercent)
	assert.Equal(t, 8, byName["Probiotics"].FulfillmentPercent)

	// suggestions follow uncovered nutrient order and skip what was bought
	assert.Equal(t, []uuid.UUID{vitD.ID, fishOil.ID, probiotic.ID}, summaryIDs(analysis.SuggestedProducts))
}

func TestCoveredGapBuckets(t *testing.T) {
	omega := coveredGap("Omega-3")
	assert.Equal(t, types.NutrientOptimal, omega.CurrentStatus)
	assert.Equal(t, 85+83%15, omega.FulfillmentPercent)

	vitD := coveredGap("Vitamin D")
	assert.Equal(t, types.NutrientAdequate, vitD.CurrentStatus)
	assert.Equal(t, 65+38%20, vitD.FulfillmentPercent)
}

func TestDailyTipsRotateByDay(t *testing.T) {
	jan1 := time.Date(2026, time.January, 1, 8, 0, 0, 0, time.UTC)
	svc := newInsightsService(th.NewFakeCatalog(), th.NewFakeOrders(), th.NewFakeProfiles(), jan1)

	tips, err := svc.DailyTips(context.Background(), uuid.New())
	require.NoError(t, err)
	titles := make([]string, len(tips))
	for i, tip := range tips {
		titles[i] = tip.Title
	}
	assert.Equal(t, []string{"Move Daily", "Prioritize Sleep", "Manage Stress", "Eat the Rainbow"}, titles)
}

func TestDailyTipsPreferGoalRelated(t *testing.T) {
	userID := uuid.New()
	// YearDay 15 starts the window at the head of the pool.
	jan15 := time.Date(2026, time.January, 15, 8, 0, 0, 0, time.UTC)
	profiles := th.NewFakeProfiles(th.NewHealthProfile(userID, "Better Sleep"))
	svc := newInsightsService(th.NewFakeCatalog(), th.NewFakeOrders(), profiles, jan15)

	tips, err := svc.DailyTips(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, tips, 4)
	titles := make([]string, len(tips))
	for i, tip := range tips {
		titles[i] = tip.Title
	}
	assert.Equal(t, []string{"Stay Hydrated", "Prioritize Sleep", "Eat the Rainbow", "Get Sunlight"}, titles)
}

func TestInsightsDashboard(t *testing.T) {
	userID := uuid.New()
	profile := th.NewHealthProfile(userID, "Immunity")
	profile.Allergies = "fish"

	vitC := th.NewProduct("Vitamin C", 10)
	vitC.HealthGoals = "Immunity"
	fishy := th.NewProduct("Cod Liver Oil", 20)
	fishy.HealthGoals = "Immunity"
	fishy.AllergenInfo = "Contains fish"
	zinc := th.NewProduct("Zinc", 8)
	zinc.HealthGoals = "Immunity"
	zinc.Featured = true

	catalog := th.NewFakeCatalog(vitC, fishy, zinc)
	orders := th.NewFakeOrders(th.NewOrder(userID, time.Now().Add(-24*time.Hour), zinc))
	svc := newInsightsService(catalog, orders, th.NewFakeProfiles(profile), time.Now())

	dash, err := svc.Insights(context.Background(), userID)
	require.NoError(t, err)

	require.NotNil(t, dash.HealthScore)
	require.NotNil(t, dash.PurchaseInsights)
	require.NotNil(t, dash.NutritionGaps)
	assert.True(t, dash.PurchaseInsights.IsDemo)
	assert.Len(t, dash.DailyTips, 4)
	assert.Equal(t, []uuid.UUID{vitC.ID}, summaryIDs(dash.PersonalizedPicks))
}

func TestInsightsPropagatesStoreErrors(t *testing.T) {
	userID := uuid.New()
	catalog := th.NewFakeCatalog()
	catalog.Err = errors.New("catalog down")
	orders := th.NewFakeOrders()
	svc := newInsightsService(catalog, orders, th.NewFakeProfiles(), time.Now())

	_, err := svc.Insights(context.Background(), userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.Err)
}
