package service

import (
	"context"
	"strings"

	"github.com/pageza/healthshop/backend/internal/knowledge"
	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/models"
	"github.com/pageza/healthshop/backend/internal/types"
)

var riskAdvice = map[string][]string{
	types.RiskHigh: {
		"⚠️ Critical interactions detected — consult your healthcare provider before proceeding",
		"Do not start any new supplement without medical clearance",
	},
	types.RiskModerate: {
		"Some moderate interactions found — timing adjustments may help",
		"Consider spacing out supplement intake throughout the day",
	},
	types.RiskLow: {
		"Minor interactions detected — generally safe with proper timing",
	},
	types.RiskNone: {
		"✅ No significant interactions detected between your selected products",
	},
}

var universalAdvice = []string{
	"Always inform your healthcare provider about all supplements you take",
	"Store supplements according to label instructions for maximum potency",
}

// InteractionService checks supplements against each other and against
// medications
type InteractionService struct {
	catalog CatalogStore
	kb      *knowledge.Base
	log     *logger.Logger
}

var _ IInteractionService = (*InteractionService)(nil)

// NewInteractionService creates a new InteractionService instance
func NewInteractionService(catalog CatalogStore, kb *knowledge.Base, log *logger.Logger) *InteractionService {
	return &InteractionService{
		catalog: catalog,
		kb:      kb,
		log:     log.With("service", "interactions"),
	}
}

// Check evaluates every unordered pair of the selected products and every
// product/medication pair against the interaction rules.
func (s *InteractionService) Check(ctx context.Context, req *types.InteractionCheckRequest) (*types.InteractionReport, error) {
	s.log.Info("checking interactions", "products", len(req.ProductIDs), "medications", len(req.CurrentMedications))

	products, err := resolveExisting(ctx, s.catalog, uniqueIDs(req.ProductIDs))
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(products))
	for i, p := range products {
		texts[i] = p.SearchTextWithDescription()
	}

	report := &types.InteractionReport{
		Warnings:         []types.InteractionWarning{},
		SafeCombinations: []types.SafeCombination{},
	}

	for i := 0; i < len(products); i++ {
		for j := i + 1; j < len(products); j++ {
			s.checkPair(products[i], products[j], texts[i], texts[j], report)
		}
	}

	for i, p := range products {
		for _, med := range req.CurrentMedications {
			med = strings.TrimSpace(med)
			if med == "" {
				continue
			}
			s.checkMedication(p, texts[i], med, report)
		}
	}

	report.OverallRisk = overallRisk(report.Warnings)
	report.GeneralAdvice = append(append([]string{}, riskAdvice[report.OverallRisk]...), universalAdvice...)
	return report, nil
}

func (s *InteractionService) checkPair(a, b *models.Product, textA, textB string, report *types.InteractionReport) {
	for _, rule := range s.kb.InteractionRules {
		if !rule.Matches(textA, textB) {
			continue
		}
		if rule.Beneficial {
			report.SafeCombinations = append(report.SafeCombinations, types.SafeCombination{
				Product1: a.Name,
				Product2: b.Name,
				Benefit:  rule.Description,
			})
			continue
		}
		report.Warnings = append(report.Warnings, warningFor(rule, a.Name, b.Name))
	}
}

func (s *InteractionService) checkMedication(p *models.Product, text, medication string, report *types.InteractionReport) {
	medText := strings.ToLower(medication)
	for _, rule := range s.kb.InteractionRules {
		if rule.Beneficial || !rule.Matches(text, medText) {
			continue
		}
		report.Warnings = append(report.Warnings, warningFor(rule, p.Name, medication+" (medication)"))
	}
}

func warningFor(rule knowledge.InteractionRule, product1, product2 string) types.InteractionWarning {
	return types.InteractionWarning{
		Severity:       string(rule.Severity),
		Product1:       product1,
		Product2:       product2,
		Description:    rule.Description,
		Recommendation: rule.Recommendation,
	}
}

func overallRisk(warnings []types.InteractionWarning) string {
	var critical, moderate bool
	for _, w := range warnings {
		switch knowledge.Severity(w.Severity) {
		case knowledge.SeverityCritical:
			critical = true
		case knowledge.SeverityModerate:
			moderate = true
		}
	}
	switch {
	case critical:
		return types.RiskHigh
	case moderate:
		return types.RiskModerate
	case len(warnings) > 0:
		return types.RiskLow
	default:
		return types.RiskNone
	}
}
