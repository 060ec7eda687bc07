package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/healthshop/backend/internal/knowledge"
	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/models"
	"github.com/pageza/healthshop/backend/internal/types"
)

const (
	recommendationLimit   = 12
	similarUserLimit      = 5
	boughtTogetherLimit   = 6
	seasonalLimit         = 4
	bundleDiscount        = 0.85
	bundleDiscountPercent = 15
)

// RecommendationService builds product recommendations from goals, purchase
// overlap, popularity and free-text symptoms
type RecommendationService struct {
	catalog  CatalogStore
	orders   OrderStore
	profiles ProfileStore
	kb       *knowledge.Base
	log      *logger.Logger
	now      func() time.Time
}

var _ IRecommendationService = (*RecommendationService)(nil)

// NewRecommendationService creates a new RecommendationService instance
func NewRecommendationService(catalog CatalogStore, orders OrderStore, profiles ProfileStore, kb *knowledge.Base, log *logger.Logger) *RecommendationService {
	return &RecommendationService{
		catalog:  catalog,
		orders:   orders,
		profiles: profiles,
		kb:       kb,
		log:      log.With("service", "recommendation"),
		now:      time.Now,
	}
}

// Recommendations runs every strategy for the user. Frequently bought
// together is product scoped and left empty here.
func (s *RecommendationService) Recommendations(ctx context.Context, userID uuid.UUID) (*types.Recommendations, error) {
	s.log.Info("generating recommendations", "user_id", userID)

	profile, err := s.profiles.ProfileForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	purchased, err := s.orders.PurchasedProductIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load purchases: %w", err)
	}

	goalBased, err := s.goalBased(ctx, profile, purchased, recommendationLimit)
	if err != nil {
		return nil, err
	}
	collaborative, err := s.collaborative(ctx, userID, purchased)
	if err != nil {
		return nil, err
	}
	trending, err := s.catalog.ListTrending(ctx, recommendationLimit)
	if err != nil {
		return nil, fmt.Errorf("list trending: %w", err)
	}
	ageGroup, err := s.ageGroup(ctx, profile)
	if err != nil {
		return nil, err
	}
	season := s.kb.SeasonFor(s.now().Month())
	seasonal, err := s.catalog.SearchByTag(ctx, season.Tag)
	if err != nil {
		return nil, fmt.Errorf("search seasonal tag: %w", err)
	}

	return &types.Recommendations{
		BasedOnGoals:             types.NewProductSummaries(goalBased),
		FrequentlyBoughtTogether: []types.ProductSummary{},
		CustomersAlsoBought:      types.NewProductSummaries(collaborative),
		PopularInYourAgeGroup:    types.NewProductSummaries(ageGroup),
		Trending:                 types.NewProductSummaries(limitProducts(trending, recommendationLimit)),
		Bundles:                  buildBundles(goalBased, trending),
		Seasonal:                 types.NewProductSummaries(limitProducts(seasonal, seasonalLimit)),
		SeasonName:               season.DisplayName,
	}, nil
}

// goalBased walks the profile goals in order and collects matching products
// the user has not bought and is not allergic to. Without goals it falls
// back to featured products.
func (s *RecommendationService) goalBased(ctx context.Context, profile *models.HealthProfile, purchased []uuid.UUID, limit int) ([]*models.Product, error) {
	if !profile.HasGoals() {
		featured, err := s.catalog.ListFeatured(ctx)
		if err != nil {
			return nil, fmt.Errorf("list featured: %w", err)
		}
		return limitProducts(featured, limit), nil
	}

	allergies := profile.AllergyList()
	seen := idSet(purchased)
	out := make([]*models.Product, 0, limit)
	for _, goal := range profile.Goals() {
		matches, err := s.catalog.SearchByHealthGoal(ctx, goal)
		if err != nil {
			return nil, fmt.Errorf("search goal %q: %w", goal, err)
		}
		for _, p := range matches {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			if p.ContainsAllergen(allergies) {
				continue
			}
			out = append(out, p)
			if len(out) == limit {
				return out, nil
			}
		}
	}
	return out, nil
}

// collaborative recommends what the first few overlapping purchasers bought
// that the user has not.
func (s *RecommendationService) collaborative(ctx context.Context, userID uuid.UUID, purchased []uuid.UUID) ([]*models.Product, error) {
	if len(purchased) == 0 {
		return s.trending(ctx)
	}
	similar, err := s.orders.UsersWithOverlappingPurchases(ctx, userID, uniqueIDs(purchased))
	if err != nil {
		return nil, fmt.Errorf("find similar users: %w", err)
	}
	if len(similar) == 0 {
		return s.trending(ctx)
	}
	if len(similar) > similarUserLimit {
		similar = similar[:similarUserLimit]
	}

	own := idSet(purchased)
	seen := idSet(nil)
	var ids []uuid.UUID
collect:
	for _, other := range similar {
		theirs, err := s.orders.PurchasedProductIDs(ctx, other)
		if err != nil {
			return nil, fmt.Errorf("load purchases for similar user: %w", err)
		}
		for _, id := range theirs {
			if _, ok := own[id]; ok {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
			if len(ids) == recommendationLimit {
				break collect
			}
		}
	}
	return resolveExisting(ctx, s.catalog, ids)
}

func (s *RecommendationService) ageGroup(ctx context.Context, profile *models.HealthProfile) ([]*models.Product, error) {
	if profile == nil || profile.AgeGroup == "" {
		return s.trending(ctx)
	}
	products, err := s.catalog.ListPopularByAgeGroup(ctx, string(profile.AgeGroup), recommendationLimit)
	if err != nil {
		return nil, fmt.Errorf("list popular for age group: %w", err)
	}
	return limitProducts(products, recommendationLimit), nil
}

func (s *RecommendationService) trending(ctx context.Context) ([]*models.Product, error) {
	products, err := s.catalog.ListTrending(ctx, recommendationLimit)
	if err != nil {
		return nil, fmt.Errorf("list trending: %w", err)
	}
	return limitProducts(products, recommendationLimit), nil
}

// FrequentlyBoughtTogether returns the products most often ordered with
// productID.
func (s *RecommendationService) FrequentlyBoughtTogether(ctx context.Context, productID uuid.UUID) ([]types.ProductSummary, error) {
	ids, err := s.orders.CoPurchasedProductIDs(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("load co-purchases: %w", err)
	}
	if len(ids) > boughtTogetherLimit {
		ids = ids[:boughtTogetherLimit]
	}
	products, err := resolveExisting(ctx, s.catalog, ids)
	if err != nil {
		return nil, err
	}
	return types.NewProductSummaries(products), nil
}

// buildBundles pairs the top goal pick with the first trending product from
// another category. It yields zero or one bundle.
func buildBundles(goalBased, trending []*models.Product) []types.Bundle {
	bundles := []types.Bundle{}
	if len(goalBased) == 0 {
		return bundles
	}
	main := goalBased[0]
	var complement *models.Product
	for _, p := range trending {
		if p.ID != main.ID && p.CategoryName() != main.CategoryName() {
			complement = p
			break
		}
	}
	if complement == nil {
		return bundles
	}

	category := main.CategoryName()
	if category == "" {
		category = "health"
	}
	total := main.Price + complement.Price
	return append(bundles, types.Bundle{
		Title:              "Power Pair: " + main.Name + " + " + complement.Name,
		Description:        "Complete your " + category + " regimen with this AI-curated set.",
		Products:           types.NewProductSummaries([]*models.Product{main, complement}),
		TotalPrice:         roundCents(total),
		DiscountedPrice:    roundCents(total * bundleDiscount),
		DiscountPercentage: bundleDiscountPercent,
	})
}
