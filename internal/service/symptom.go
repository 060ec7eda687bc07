package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pageza/healthshop/backend/internal/knowledge"
	"github.com/pageza/healthshop/backend/internal/models"
	"github.com/pageza/healthshop/backend/internal/types"
)

const (
	symptomSearchLimit = 20
	chatProductLimit   = 12
	followUpLimit      = 3
	lifestyleTipLimit  = 4
)

// symptomMatch is the outcome of scanning free text against the symptom table.
type symptomMatch struct {
	identified []string
	tags       []string
}

// matchSymptoms scores each symptom category by the number of its patterns
// found in text. Categories are ranked by score, keeping table order on ties,
// and their tags unioned in that order. With no hit the raw text becomes the
// only tag. When dedupe is set a pattern is reported once even if several
// categories share it.
func matchSymptoms(kb *knowledge.Base, text string, dedupe bool) symptomMatch {
	lower := strings.ToLower(text)

	type scored struct {
		idx   int
		score int
	}
	var hits []scored
	identified := []string{}
	seen := make(map[string]struct{})
	for i, cat := range kb.SymptomCategories {
		score := 0
		for _, pattern := range cat.Patterns {
			if !strings.Contains(lower, pattern) {
				continue
			}
			score++
			if dedupe {
				if _, ok := seen[pattern]; ok {
					continue
				}
				seen[pattern] = struct{}{}
			}
			identified = append(identified, pattern)
		}
		if score > 0 {
			hits = append(hits, scored{i, score})
		}
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].score > hits[b].score })

	var tags []string
	tagSeen := make(map[string]struct{})
	for _, h := range hits {
		for _, tag := range kb.SymptomCategories[h.idx].Tags {
			if _, ok := tagSeen[tag]; ok {
				continue
			}
			tagSeen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		tags = []string{text}
	}
	return symptomMatch{identified: identified, tags: tags}
}

// productsForTags runs the tag searches in order, keeping the first
// occurrence of each product, until limit products are collected.
func productsForTags(ctx context.Context, catalog CatalogStore, tags []string, limit int) ([]*models.Product, error) {
	out := make([]*models.Product, 0, limit)
	seen := idSet(nil)
	for _, tag := range tags {
		matches, err := catalog.SearchByTag(ctx, tag)
		if err != nil {
			return nil, fmt.Errorf("search tag %q: %w", tag, err)
		}
		for _, p := range matches {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, p)
			if len(out) == limit {
				return out, nil
			}
		}
	}
	return out, nil
}

// assessSeverity returns the value of the first tier with a pattern in text.
func assessSeverity(kb *knowledge.Base, lower string) string {
	for _, tier := range kb.SeverityTiers {
		for _, pattern := range tier.Patterns {
			if strings.Contains(lower, pattern) {
				return tier.Value
			}
		}
	}
	return knowledge.SeverityDefault
}

// adviceFor collects the lines of every entry with a pattern in text,
// dropping duplicates and stopping at limit. Fallback is used when nothing
// matches.
func adviceFor(entries []knowledge.KeywordAdvice, fallback []string, lower string, limit int) []string {
	var lines []string
	for _, e := range entries {
		for _, pattern := range e.Patterns {
			if strings.Contains(lower, pattern) {
				lines = append(lines, e.Lines...)
				break
			}
		}
	}
	if len(lines) == 0 {
		lines = fallback
	}

	out := make([]string, 0, limit)
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
		if len(out) == limit {
			break
		}
	}
	return out
}

func chatMessage(symptoms []string, severity string, productCount int) string {
	if len(symptoms) == 0 {
		return "I couldn't identify specific symptoms from your description. " +
			"Could you try describing how you feel or what health concerns you have?"
	}

	var b strings.Builder
	b.WriteString("Based on your description, I've identified symptoms related to: ")
	b.WriteString(strings.Join(symptoms, ", "))
	b.WriteString(". ")
	switch severity {
	case knowledge.SeverityConsultDoctor:
		b.WriteString("\n\n⚠️ **Important:** Your symptoms may require professional medical attention. ")
		b.WriteString("Please consult a healthcare provider. The products below are supplementary and not a substitute for medical care.")
	case knowledge.SeverityChronic:
		b.WriteString("\nThese symptoms seem persistent. Consider consulting a healthcare provider if they don't improve.")
	}
	if productCount > 0 {
		fmt.Fprintf(&b, "\n\nI've found %d products that may help support your health.", productCount)
	}
	return b.String()
}

// SymptomSearch maps a free-text description to catalog tags and products.
func (s *RecommendationService) SymptomSearch(ctx context.Context, description string) (*types.SymptomSearch, error) {
	s.log.Info("symptom search", "length", len(description))

	match := matchSymptoms(s.kb, description, false)
	products, err := productsForTags(ctx, s.catalog, match.tags, symptomSearchLimit)
	if err != nil {
		return nil, err
	}
	return &types.SymptomSearch{
		SymptomDescription:  description,
		IdentifiedSymptoms:  match.identified,
		SuggestedCategories: match.tags,
		SuggestedProducts:   types.NewProductSummaries(products),
	}, nil
}

// Chat answers a wellness question with products, a severity assessment,
// follow-up questions and lifestyle tips.
func (s *RecommendationService) Chat(ctx context.Context, message string) (*types.ChatResponse, error) {
	s.log.Info("chat message", "length", len(message))

	lower := strings.ToLower(message)
	match := matchSymptoms(s.kb, message, true)
	products, err := productsForTags(ctx, s.catalog, match.tags, chatProductLimit)
	if err != nil {
		return nil, err
	}
	severity := assessSeverity(s.kb, lower)

	return &types.ChatResponse{
		Message:             chatMessage(match.identified, severity, len(products)),
		IdentifiedSymptoms:  match.identified,
		SuggestedCategories: match.tags,
		SuggestedProducts:   types.NewProductSummaries(products),
		FollowUpQuestions:   adviceFor(s.kb.FollowUps, s.kb.FallbackFollowUps, lower, followUpLimit),
		Severity:            severity,
		LifestyleTips:       adviceFor(s.kb.LifestyleTips, s.kb.FallbackLifestyle, lower, lifestyleTipLimit),
	}, nil
}
