package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pageza/healthshop/backend/internal/knowledge"
	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/models"
	"github.com/pageza/healthshop/backend/internal/types"
)

const (
	dimProfileCompleteness = "Profile Completeness"
	dimGoalAlignment       = "Goal Alignment"
	dimNutritionCoverage   = "Nutrition Coverage"
	dimPurchaseConsistency = "Purchase Consistency"
	dimProductDiversity    = "Product Diversity"

	scoreRecommendationLimit = 8
	featuredFallbackLimit    = 6
)

var dimensionTips = map[string]string{
	dimProfileCompleteness: "How complete your health profile is for better AI recommendations",
	dimGoalAlignment:       "How well your purchases align with your health goals",
	dimNutritionCoverage:   "How well your supplements cover nutritional needs",
	dimPurchaseConsistency: "How regularly you maintain your health supplement routine",
	dimProductDiversity:    "Variety of health categories in your purchases",
}

var dimensionImprovements = map[string]string{
	dimProfileCompleteness: "Complete your health profile with age, weight, goals, and allergies for better AI recommendations",
	dimGoalAlignment:       "Purchase products that match your stated health goals for a more targeted supplement routine",
	dimNutritionCoverage:   "You have gaps in your nutritional supplementation — explore products that cover missing nutrients",
	dimPurchaseConsistency: "Build a regular supplement routine by reordering consistently",
	dimProductDiversity:    "Diversify across more health categories for holistic wellness",
}

const createProfilePrompt = "🚀 Create your health profile to unlock personalized AI recommendations"

// HealthScoreService computes the composite health score
type HealthScoreService struct {
	catalog  CatalogStore
	orders   OrderStore
	profiles ProfileStore
	kb       *knowledge.Base
	log      *logger.Logger
}

var _ IHealthScoreService = (*HealthScoreService)(nil)

// NewHealthScoreService creates a new HealthScoreService instance
func NewHealthScoreService(catalog CatalogStore, orders OrderStore, profiles ProfileStore, kb *knowledge.Base, log *logger.Logger) *HealthScoreService {
	return &HealthScoreService{
		catalog:  catalog,
		orders:   orders,
		profiles: profiles,
		kb:       kb,
		log:      log.With("service", "health_score"),
	}
}

// CalculateForUser loads the user's profile and purchases and scores them.
func (s *HealthScoreService) CalculateForUser(ctx context.Context, userID uuid.UUID) (*types.HealthScore, error) {
	s.log.Info("calculating health score", "user_id", userID)

	profile, err := s.profiles.ProfileForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	purchased, err := s.orders.PurchasedProductIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load purchases: %w", err)
	}
	return s.Calculate(ctx, profile, purchased)
}

// Calculate scores a profile (nil when the user has none) against the ids of
// products the user has bought.
func (s *HealthScoreService) Calculate(ctx context.Context, profile *models.HealthProfile, purchased []uuid.UUID) (*types.HealthScore, error) {
	products, err := resolveExisting(ctx, s.catalog, purchased)
	if err != nil {
		return nil, err
	}

	dimensions := []types.ScoreDimension{
		buildDimension(dimProfileCompleteness, profileCompleteness(profile)),
		buildDimension(dimGoalAlignment, goalAlignment(profile, products, len(purchased))),
		buildDimension(dimNutritionCoverage, s.nutritionCoverage(profile, products)),
		buildDimension(dimPurchaseConsistency, purchaseConsistency(len(purchased))),
		buildDimension(dimProductDiversity, productDiversity(products, len(purchased))),
	}

	total := 0
	for _, d := range dimensions {
		total += d.Score
	}
	overall := clampScore(total / len(dimensions))

	recommended, err := s.improvementProducts(ctx, profile, purchased)
	if err != nil {
		return nil, err
	}

	return &types.HealthScore{
		OverallScore:        overall,
		Grade:               Grade(overall),
		Summary:             scoreSummary(overall),
		Dimensions:          dimensions,
		Improvements:        improvements(dimensions, profile),
		RecommendedProducts: types.NewProductSummaries(recommended),
	}, nil
}

func profileCompleteness(p *models.HealthProfile) int {
	if p == nil {
		return 10
	}
	score := 10
	if p.Age != nil {
		score += 15
	}
	if strings.TrimSpace(p.Gender) != "" {
		score += 10
	}
	if p.Height != nil {
		score += 10
	}
	if p.Weight != nil {
		score += 10
	}
	if len(p.Goals()) > 0 {
		score += 20
	}
	if len(p.AllergyList()) > 0 {
		score += 10
	}
	if len(p.DietaryList()) > 0 {
		score += 10
	}
	if len(p.ConditionList()) > 0 {
		score += 5
	}
	return clampScore(score)
}

func goalAlignment(p *models.HealthProfile, products []*models.Product, purchasedCount int) int {
	if !p.HasGoals() || purchasedCount == 0 {
		return 45
	}
	goals := p.Goals()
	aligned, total := 0, 0
	for _, prod := range products {
		if strings.TrimSpace(prod.HealthGoals) == "" {
			continue
		}
		total++
		productGoals := strings.ToLower(prod.HealthGoals)
		for _, g := range goals {
			if strings.Contains(productGoals, strings.ToLower(g)) {
				aligned++
				break
			}
		}
	}
	if total == 0 {
		return 50
	}
	return clampScore(100 * aligned / total)
}

func (s *HealthScoreService) nutritionCoverage(p *models.HealthProfile, products []*models.Product) int {
	if !p.HasGoals() {
		return 45
	}
	var required []string
	seen := make(map[string]struct{})
	for _, g := range p.Goals() {
		for _, n := range s.kb.NutrientsForGoal(g) {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			required = append(required, n)
		}
	}
	if len(required) == 0 {
		return 50
	}

	texts := make([]string, len(products))
	for i, prod := range products {
		texts[i] = prod.SearchText()
	}
	covered := 0
	for _, n := range required {
		needle := strings.ToLower(n)
		for _, text := range texts {
			if strings.Contains(text, needle) {
				covered++
				break
			}
		}
	}
	return clampScore(100 * covered / len(required))
}

func purchaseConsistency(purchasedCount int) int {
	switch {
	case purchasedCount == 0:
		return 60
	case purchasedCount >= 10:
		return 95
	case purchasedCount >= 5:
		return 80
	case purchasedCount >= 3:
		return 65
	default:
		return 45
	}
}

func productDiversity(products []*models.Product, purchasedCount int) int {
	if purchasedCount == 0 {
		return 55
	}
	categories := make(map[uuid.UUID]struct{})
	for _, p := range products {
		if p.CategoryID != nil {
			categories[*p.CategoryID] = struct{}{}
		}
	}
	switch n := len(categories); {
	case n >= 5:
		return 95
	case n >= 4:
		return 80
	case n >= 3:
		return 65
	case n >= 2:
		return 55
	default:
		return 40
	}
}

func buildDimension(name string, score int) types.ScoreDimension {
	return types.ScoreDimension{
		Name:   name,
		Score:  score,
		Status: dimensionStatus(score),
		Tip:    dimensionTips[name],
	}
}

func dimensionStatus(score int) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 60:
		return "good"
	case score >= 40:
		return "fair"
	default:
		return "poor"
	}
}

// Grade maps an overall score to its letter grade.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B+"
	case score >= 60:
		return "B"
	case score >= 50:
		return "C"
	default:
		return "D"
	}
}

func scoreSummary(score int) string {
	switch {
	case score >= 80:
		return "Excellent! Your health supplement routine is well-optimized. Keep it up!"
	case score >= 60:
		return "Good progress! A few adjustments could significantly improve your health coverage."
	case score >= 40:
		return "You're on the right track! Focus on completing your health profile and diversifying your supplement intake to boost your score."
	default:
		return "Your wellness journey is just beginning! Complete your health profile, set your goals, and explore products aligned with your needs."
	}
}

func improvements(dimensions []types.ScoreDimension, profile *models.HealthProfile) []string {
	out := make([]string, 0, len(dimensions)+1)
	if profile == nil {
		out = append(out, createProfilePrompt)
	}
	for _, d := range dimensions {
		if d.Score < 60 {
			out = append(out, dimensionImprovements[d.Name])
		}
	}
	return out
}

func (s *HealthScoreService) improvementProducts(ctx context.Context, profile *models.HealthProfile, purchased []uuid.UUID) ([]*models.Product, error) {
	if !profile.HasGoals() {
		featured, err := s.catalog.ListFeatured(ctx)
		if err != nil {
			return nil, fmt.Errorf("list featured: %w", err)
		}
		return limitProducts(featured, featuredFallbackLimit), nil
	}

	exclude := idSet(purchased)
	out := make([]*models.Product, 0, scoreRecommendationLimit)
	for _, goal := range profile.Goals() {
		matches, err := s.catalog.SearchByHealthGoal(ctx, goal)
		if err != nil {
			return nil, fmt.Errorf("search goal %q: %w", goal, err)
		}
		for _, p := range matches {
			if _, skip := exclude[p.ID]; skip {
				continue
			}
			exclude[p.ID] = struct{}{}
			out = append(out, p)
			if len(out) == scoreRecommendationLimit {
				return out, nil
			}
		}
	}
	return out, nil
}
