package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pageza/healthshop/backend/internal/knowledge"
	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/models"
	"github.com/pageza/healthshop/backend/internal/textmatch"
	"github.com/pageza/healthshop/backend/internal/types"
)

const (
	personalizedPickLimit = 6
	dailyTipCount         = 4
	gapSuggestionLimit    = 8
)

// InsightsService composes the health insights dashboard
type InsightsService struct {
	catalog  CatalogStore
	orders   OrderStore
	profiles ProfileStore
	scores   *HealthScoreService
	patterns IPurchasePatternService
	kb       *knowledge.Base
	log      *logger.Logger
	now      func() time.Time
}

var _ IInsightsService = (*InsightsService)(nil)

// NewInsightsService creates a new InsightsService instance
func NewInsightsService(
	catalog CatalogStore,
	orders OrderStore,
	profiles ProfileStore,
	scores *HealthScoreService,
	patterns IPurchasePatternService,
	kb *knowledge.Base,
	log *logger.Logger,
) *InsightsService {
	return &InsightsService{
		catalog:  catalog,
		orders:   orders,
		profiles: profiles,
		scores:   scores,
		patterns: patterns,
		kb:       kb,
		log:      log.With("service", "insights"),
		now:      time.Now,
	}
}

// userContext is the profile and purchase history shared by every section of
// the dashboard.
type userContext struct {
	profile   *models.HealthProfile
	purchased []uuid.UUID
}

func (s *InsightsService) loadUser(ctx context.Context, userID uuid.UUID) (*userContext, error) {
	profile, err := s.profiles.ProfileForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	purchased, err := s.orders.PurchasedProductIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load purchases: %w", err)
	}
	return &userContext{profile: profile, purchased: purchased}, nil
}

// Insights builds the full dashboard. The sections are independent reads and
// run concurrently.
func (s *InsightsService) Insights(ctx context.Context, userID uuid.UUID) (*types.HealthInsights, error) {
	s.log.Info("generating health insights", "user_id", userID)

	uc, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var (
		out   types.HealthInsights
		picks []*models.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		score, err := s.scores.Calculate(gctx, uc.profile, uc.purchased)
		if err != nil {
			return fmt.Errorf("health score: %w", err)
		}
		out.HealthScore = score
		return nil
	})
	g.Go(func() error {
		pi, err := s.patterns.Analyze(gctx, userID)
		if err != nil {
			return fmt.Errorf("purchase insights: %w", err)
		}
		out.PurchaseInsights = pi
		return nil
	})
	g.Go(func() error {
		p, err := s.personalizedPicks(gctx, uc)
		if err != nil {
			return fmt.Errorf("personalized picks: %w", err)
		}
		picks = p
		return nil
	})
	g.Go(func() error {
		gaps, err := s.nutritionGaps(gctx, uc)
		if err != nil {
			return fmt.Errorf("nutrition gaps: %w", err)
		}
		out.NutritionGaps = gaps
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.PersonalizedPicks = types.NewProductSummaries(picks)
	out.DailyTips = s.dailyTips(uc.profile)
	return &out, nil
}

// NutritionGaps reports coverage of the nutrients relevant to the user.
func (s *InsightsService) NutritionGaps(ctx context.Context, userID uuid.UUID) (*types.NutritionGapAnalysis, error) {
	uc, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.nutritionGaps(ctx, uc)
}

// DailyTips returns today's four tips, goal-related ones first.
func (s *InsightsService) DailyTips(ctx context.Context, userID uuid.UUID) ([]types.HealthTip, error) {
	profile, err := s.profiles.ProfileForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return s.dailyTips(profile), nil
}

func (s *InsightsService) personalizedPicks(ctx context.Context, uc *userContext) ([]*models.Product, error) {
	if !uc.profile.HasGoals() {
		trending, err := s.catalog.ListTrending(ctx, personalizedPickLimit)
		if err != nil {
			return nil, fmt.Errorf("list trending: %w", err)
		}
		return limitProducts(trending, personalizedPickLimit), nil
	}

	allergies := uc.profile.AllergyList()
	seen := idSet(uc.purchased)
	out := make([]*models.Product, 0, personalizedPickLimit)
	for _, goal := range uc.profile.Goals() {
		matches, err := s.catalog.SearchByHealthGoal(ctx, goal)
		if err != nil {
			return nil, fmt.Errorf("search goal %q: %w", goal, err)
		}
		for _, p := range matches {
			if _, ok := seen[p.ID]; ok || p.ContainsAllergen(allergies) {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, p)
			if len(out) == personalizedPickLimit {
				return out, nil
			}
		}
	}
	return out, nil
}

func (s *InsightsService) dailyTips(profile *models.HealthProfile) []types.HealthTip {
	pool := make([]types.HealthTip, len(s.kb.Tips))
	copy(pool, s.kb.Tips)
	if profile.HasGoals() {
		goals := strings.ToLower(profile.HealthGoals)
		sort.SliceStable(pool, func(i, j int) bool {
			return tipRelated(pool[i], goals) && !tipRelated(pool[j], goals)
		})
	}

	day := s.now().YearDay()
	n := min(dailyTipCount, len(pool))
	out := make([]types.HealthTip, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, pool[(day+i)%len(pool)])
	}
	return out
}

func tipRelated(tip types.HealthTip, goals string) bool {
	switch tip.Category {
	case knowledge.TipFitness:
		return strings.Contains(goals, "fitness") || strings.Contains(goals, "weight")
	case knowledge.TipSleep:
		return strings.Contains(goals, "sleep")
	case knowledge.TipMental:
		return strings.Contains(goals, "stress") || strings.Contains(goals, "brain")
	default:
		return tip.Category == knowledge.TipNutrition
	}
}

// relevantNutrients lists nutrients tied to the user's goals followed by the
// universal defaults, without repeats.
func (s *InsightsService) relevantNutrients(profile *models.HealthProfile) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	for _, goal := range profile.Goals() {
		for _, n := range s.kb.Nutrients {
			for _, related := range n.RelatedGoals {
				if strings.EqualFold(related, goal) {
					add(n.Name)
					break
				}
			}
		}
	}
	for _, name := range s.kb.DefaultNutrients {
		add(name)
	}
	return out
}

func (s *InsightsService) nutritionGaps(ctx context.Context, uc *userContext) (*types.NutritionGapAnalysis, error) {
	products, err := resolveExisting(ctx, s.catalog, uc.purchased)
	if err != nil {
		return nil, err
	}
	texts := make([]string, len(products))
	for i, p := range products {
		texts[i] = textmatch.Searchable(p.Name, p.Ingredients, p.Tags)
	}

	var (
		gaps      []types.NutritionGap
		uncovered []knowledge.NutrientEntry
		idx       int
	)
	for _, name := range s.relevantNutrients(uc.profile) {
		entry, ok := s.kb.Nutrient(name)
		if !ok {
			continue
		}
		if nutrientCovered(entry, texts) {
			gaps = append(gaps, coveredGap(name))
			continue
		}
		fulfilled := s.kb.UncoveredFulfilled[idx%len(s.kb.UncoveredFulfilled)]
		idx++
		gaps = append(gaps, uncoveredGap(entry, fulfilled))
		uncovered = append(uncovered, entry)
	}

	suggestions, err := s.gapSuggestions(ctx, uncovered, uc.purchased)
	if err != nil {
		return nil, err
	}
	if gaps == nil {
		gaps = []types.NutritionGap{}
	}
	return &types.NutritionGapAnalysis{
		Gaps:              gaps,
		SuggestedProducts: types.NewProductSummaries(suggestions),
	}, nil
}

func nutrientCovered(entry knowledge.NutrientEntry, texts []string) bool {
	for _, text := range texts {
		for _, kw := range entry.Keywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
	}
	return false
}

// coveredGap buckets a covered nutrient by knowledge.NameVariance. The
// percentage is for display variety only.
func coveredGap(name string) types.NutritionGap {
	v := knowledge.NameVariance(name)
	if v > 50 {
		return types.NutritionGap{
			Nutrient:           name,
			CurrentStatus:      types.NutrientOptimal,
			FulfillmentPercent: 85 + v%15,
			Recommendation:     "Excellent! Your " + name + " intake is optimal — keep it up!",
		}
	}
	return types.NutritionGap{
		Nutrient:           name,
		CurrentStatus:      types.NutrientAdequate,
		FulfillmentPercent: 65 + v%20,
		Recommendation:     "You're covering " + name + " at a good level — small boost could make it optimal",
	}
}

func uncoveredGap(entry knowledge.NutrientEntry, fulfilled int) types.NutritionGap {
	if fulfilled < 20 {
		return types.NutritionGap{
			Nutrient:           entry.Name,
			CurrentStatus:      types.NutrientDeficient,
			FulfillmentPercent: fulfilled,
			Recommendation: "⚠️ Your " + entry.Name + " level is critically low — strongly consider a " +
				entry.Name + " supplement for " + entry.Description,
		}
	}
	return types.NutritionGap{
		Nutrient:           entry.Name,
		CurrentStatus:      types.NutrientLow,
		FulfillmentPercent: fulfilled,
		Recommendation:     "Consider adding a " + entry.Name + " supplement for " + entry.Description,
	}
}

func (s *InsightsService) gapSuggestions(ctx context.Context, uncovered []knowledge.NutrientEntry, purchased []uuid.UUID) ([]*models.Product, error) {
	seen := idSet(purchased)
	out := make([]*models.Product, 0, gapSuggestionLimit)
	for _, entry := range uncovered {
		for _, kw := range entry.Keywords {
			matches, err := s.catalog.SearchByTag(ctx, kw)
			if err != nil {
				return nil, fmt.Errorf("search tag %q: %w", kw, err)
			}
			for _, p := range matches {
				if _, ok := seen[p.ID]; ok {
					continue
				}
				seen[p.ID] = struct{}{}
				out = append(out, p)
				if len(out) == gapSuggestionLimit {
					return out, nil
				}
			}
		}
	}
	return out, nil
}
