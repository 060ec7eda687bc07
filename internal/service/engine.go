package service

import (
	"github.com/pageza/healthshop/backend/internal/knowledge"
	"github.com/pageza/healthshop/backend/internal/logger"
)

// Engine bundles every engine component built over one set of stores and a
// shared knowledge base.
type Engine struct {
	HealthScore     *HealthScoreService
	PurchasePattern *PurchasePatternService
	Interactions    *InteractionService
	Comparison      *ComparisonService
	Dosage          *DosageService
	Insights        *InsightsService
	Recommendations *RecommendationService
	Profiles        *HealthProfileService
}

// NewEngine creates a new Engine instance
func NewEngine(catalog CatalogStore, orders OrderStore, profiles ProfileStore, kb *knowledge.Base, log *logger.Logger) *Engine {
	scores := NewHealthScoreService(catalog, orders, profiles, kb, log)
	patterns := NewPurchasePatternService(catalog, orders, kb, log)
	return &Engine{
		HealthScore:     scores,
		PurchasePattern: patterns,
		Interactions:    NewInteractionService(catalog, kb, log),
		Comparison:      NewComparisonService(catalog, log),
		Dosage:          NewDosageService(catalog, profiles, kb, log),
		Insights:        NewInsightsService(catalog, orders, profiles, scores, patterns, kb, log),
		Recommendations: NewRecommendationService(catalog, orders, profiles, kb, log),
		Profiles:        NewHealthProfileService(profiles, log),
	}
}
