package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/healthshop/backend/internal/models"
	"github.com/pageza/healthshop/backend/internal/types"
)

// CatalogStore is the read side of the product catalog. Implementations must
// return stable orderings for identical inputs. FindByID returns (nil, nil)
// for an unknown id.
type CatalogStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	SearchByTag(ctx context.Context, tag string) ([]*models.Product, error)
	SearchByHealthGoal(ctx context.Context, goal string) ([]*models.Product, error)
	ListFeatured(ctx context.Context) ([]*models.Product, error)
	ListTrending(ctx context.Context, limit int) ([]*models.Product, error)
	ListNewArrivals(ctx context.Context, limit int) ([]*models.Product, error)
	ListPopularByAgeGroup(ctx context.Context, ageGroup string, limit int) ([]*models.Product, error)
	FindAll(ctx context.Context) ([]*models.Product, error)
}

// OrderStore exposes a user's purchase history.
type OrderStore interface {
	// OrdersForUser returns at most limit orders, newest first, with items.
	OrdersForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Order, error)
	PurchasedProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	UsersWithOverlappingPurchases(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID) ([]uuid.UUID, error)
	// CoPurchasedProductIDs ranks products sharing an order with productID by
	// co-occurrence count, highest first.
	CoPurchasedProductIDs(ctx context.Context, productID uuid.UUID) ([]uuid.UUID, error)
}

// ProfileStore loads and saves health profiles. ProfileForUser returns
// (nil, nil) when the user has no profile.
type ProfileStore interface {
	ProfileForUser(ctx context.Context, userID uuid.UUID) (*models.HealthProfile, error)
	SaveProfile(ctx context.Context, profile *models.HealthProfile) error
}

// IHealthScoreService defines the interface for health score operations
type IHealthScoreService interface {
	CalculateForUser(ctx context.Context, userID uuid.UUID) (*types.HealthScore, error)
}

// IPurchasePatternService defines the interface for purchase history analysis
type IPurchasePatternService interface {
	Analyze(ctx context.Context, userID uuid.UUID) (*types.PurchaseInsights, error)
}

// IInteractionService defines the interface for supplement interaction checks
type IInteractionService interface {
	Check(ctx context.Context, req *types.InteractionCheckRequest) (*types.InteractionReport, error)
}

// IComparisonService defines the interface for product comparison
type IComparisonService interface {
	Compare(ctx context.Context, productIDs []uuid.UUID) (*types.Comparison, error)
}

// IRecommendationService defines the interface for recommendation operations
type IRecommendationService interface {
	Recommendations(ctx context.Context, userID uuid.UUID) (*types.Recommendations, error)
	FrequentlyBoughtTogether(ctx context.Context, productID uuid.UUID) ([]types.ProductSummary, error)
	SymptomSearch(ctx context.Context, description string) (*types.SymptomSearch, error)
	Chat(ctx context.Context, message string) (*types.ChatResponse, error)
}

// IInsightsService defines the interface for the health insights dashboard
type IInsightsService interface {
	Insights(ctx context.Context, userID uuid.UUID) (*types.HealthInsights, error)
	NutritionGaps(ctx context.Context, userID uuid.UUID) (*types.NutritionGapAnalysis, error)
	DailyTips(ctx context.Context, userID uuid.UUID) ([]types.HealthTip, error)
}

// IDosageService defines the interface for dosage guidance
type IDosageService interface {
	Calculate(ctx context.Context, productID uuid.UUID, userID *uuid.UUID) (*types.Dosage, error)
}

// IHealthProfileService defines the interface for health profile operations
type IHealthProfileService interface {
	Get(ctx context.Context, userID uuid.UUID) (*types.HealthProfileRequest, error)
	Update(ctx context.Context, userID uuid.UUID, req *types.HealthProfileRequest) (*types.HealthProfileRequest, error)
}
