package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/healthshop/backend/internal/knowledge"
	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/models"
	th "github.com/pageza/healthshop/backend/internal/testhelpers"
	"github.com/pageza/healthshop/backend/internal/types"
)

func newRecommendationService(catalog *th.FakeCatalog, orders *th.FakeOrders, profiles *th.FakeProfiles) *RecommendationService {
	svc := NewRecommendationService(catalog, orders, profiles, knowledge.New(), logger.NewNop())
	svc.now = func() time.Time { return time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC) }
	return svc
}

func summaryIDs(items []types.ProductSummary) []uuid.UUID {
	out := make([]uuid.UUID, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestRecommendationsGoalBased(t *testing.T) {
	userID := uuid.New()
	profile := th.NewHealthProfile(userID, "Immunity", "Sleep")
	profile.Allergies = "Soy"

	vitC := th.NewProduct("Vitamin C", 10)
	vitC.HealthGoals = "Immunity"
	soyZinc := th.NewProduct("Zinc with Soy Lecithin", 12)
	soyZinc.HealthGoals = "Immunity"
	soyZinc.AllergenInfo = "Contains soy"
	owned := th.NewProduct("Elderberry", 15)
	owned.HealthGoals = "Immunity,Sleep"
	melatonin := th.NewProduct("Melatonin", 8)
	melatonin.HealthGoals = "Sleep,Immunity"

	catalog := th.NewFakeCatalog(vitC, soyZinc, owned, melatonin)
	orders := th.NewFakeOrders(th.NewOrder(userID, time.Now(), owned))
	svc := newRecommendationService(catalog, orders, th.NewFakeProfiles(profile))

	recs, err := svc.Recommendations(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{vitC.ID, melatonin.ID}, summaryIDs(recs.BasedOnGoals))
	assert.NotNil(t, recs.FrequentlyBoughtTogether)
	assert.Empty(t, recs.FrequentlyBoughtTogether)
	assert.Equal(t, "Winter Wellness ❄️", recs.SeasonName)
}

func TestRecommendationsColdStart(t *testing.T) {
	featured := th.NewProduct("Featured Multi", 20)
	featured.Featured = true
	featured.PurchaseCount = 5
	popular := th.NewProduct("Popular Fish Oil", 25)
	popular.PurchaseCount = 90
	popular.Tags = "immunity,heart"

	svc := newRecommendationService(th.NewFakeCatalog(featured, popular), th.NewFakeOrders(), th.NewFakeProfiles())
	recs, err := svc.Recommendations(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{featured.ID}, summaryIDs(recs.BasedOnGoals))
	assert.Equal(t, []uuid.UUID{popular.ID, featured.ID}, summaryIDs(recs.Trending))
	// no purchases and no age group fall back to trending
	assert.Equal(t, summaryIDs(recs.Trending), summaryIDs(recs.CustomersAlsoBought))
	assert.Equal(t, summaryIDs(recs.Trending), summaryIDs(recs.PopularInYourAgeGroup))
	assert.Equal(t, []uuid.UUID{popular.ID}, summaryIDs(recs.Seasonal))

	// neither product has a category, so no complement exists
	assert.NotNil(t, recs.Bundles)
	assert.Empty(t, recs.Bundles)
}

func TestRecommendationsCollaborative(t *testing.T) {
	me, other := uuid.New(), uuid.New()
	shared := th.NewProduct("Shared Magnesium", 10)
	theirs := th.NewProduct("Their Ashwagandha", 10)
	missing := th.NewProduct("Discontinued", 10)
	missing.Active = false

	catalog := th.NewFakeCatalog(shared, theirs, missing)
	orders := th.NewFakeOrders(
		th.NewOrder(me, time.Now(), shared),
		th.NewOrder(other, time.Now(), shared, missing, theirs),
	)
	svc := newRecommendationService(catalog, orders, th.NewFakeProfiles())

	recs, err := svc.Recommendations(context.Background(), me)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{theirs.ID}, summaryIDs(recs.CustomersAlsoBought))
}

func TestRecommendationsAgeGroup(t *testing.T) {
	userID := uuid.New()
	profile := th.NewHealthProfile(userID)
	profile.AgeGroup = models.AgeGroupSenior

	senior := th.NewProduct("Joint Support 50+", 30)
	senior.SuitableAgeGroups = "MIDDLE_AGED,SENIOR"
	teen := th.NewProduct("Teen Multi", 15)
	teen.SuitableAgeGroups = "TEEN"
	teen.PurchaseCount = 100

	svc := newRecommendationService(th.NewFakeCatalog(senior, teen), th.NewFakeOrders(), th.NewFakeProfiles(profile))
	recs, err := svc.Recommendations(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{senior.ID}, summaryIDs(recs.PopularInYourAgeGroup))
}

func TestBuildBundles(t *testing.T) {
	vitamins, herbs := th.NewCategory("Vitamins"), th.NewCategory("Herbs")
	main := th.NewProduct("Vitamin D3", 19.99)
	sameCat := th.NewProduct("Vitamin C", 9.99)
	other := th.NewProduct("Turmeric", 15.01)
	th.InCategory(vitamins, main, sameCat)
	th.InCategory(herbs, other)

	bundles := buildBundles([]*models.Product{main}, []*models.Product{main, sameCat, other})
	require.Len(t, bundles, 1)
	b := bundles[0]
	assert.Equal(t, "Power Pair: Vitamin D3 + Turmeric", b.Title)
	assert.Equal(t, "Complete your Vitamins regimen with this AI-curated set.", b.Description)
	assert.Equal(t, 35.0, b.TotalPrice)
	assert.Equal(t, 29.75, b.DiscountedPrice)
	assert.Equal(t, 15, b.DiscountPercentage)
	assert.Equal(t, []uuid.UUID{main.ID, other.ID}, summaryIDs(b.Products))

	assert.Empty(t, buildBundles(nil, []*models.Product{other}))
	assert.Empty(t, buildBundles([]*models.Product{main}, []*models.Product{main}))
}

func TestFrequentlyBoughtTogether(t *testing.T) {
	anchor := th.NewProduct("Anchor", 1)
	var others []*models.Product
	for i := 0; i < 8; i++ {
		others = append(others, th.NewProduct("Other "+string(rune('A'+i)), 1))
	}
	u := uuid.New()
	var history []*models.Order
	// Other A appears in three orders, Other B in two, the rest once.
	history = append(history,
		th.NewOrder(u, time.Now(), anchor, others[1], others[0]),
		th.NewOrder(u, time.Now(), anchor, others[0], others[1]),
		th.NewOrder(u, time.Now(), anchor, others[0]),
		th.NewOrder(u, time.Now(), anchor, others[2], others[3], others[4], others[5], others[6], others[7]),
	)
	catalog := th.NewFakeCatalog(append([]*models.Product{anchor}, others...)...)
	svc := newRecommendationService(catalog, th.NewFakeOrders(history...), th.NewFakeProfiles())

	got, err := svc.FrequentlyBoughtTogether(context.Background(), anchor.ID)
	require.NoError(t, err)
	require.Len(t, got, 6)
	assert.Equal(t, others[0].ID, got[0].ID)
	assert.Equal(t, others[1].ID, got[1].ID)
	assert.Equal(t, others[2].ID, got[2].ID)
}
