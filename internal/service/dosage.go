package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pageza/healthshop/backend/internal/knowledge"
	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/models"
	"github.com/pageza/healthshop/backend/internal/textmatch"
	"github.com/pageza/healthshop/backend/internal/types"
)

const (
	noProfileDosageNote = "Complete your health profile for personalized dosage adjustments based on your age, weight, and health conditions."
	defaultDosageNote   = "Based on your profile, the standard recommended dosage should work well for you. Monitor how you feel and adjust timing if needed."
)

var genericDosage = knowledge.DosageEntry{
	Dosage:    "Follow label instructions",
	Timing:    "As directed",
	Frequency: "As directed on label",
	Tips: []string{
		"Always follow the manufacturer's recommended dosage",
		"Consult a healthcare provider for personalized advice",
		"Take with water unless directed otherwise",
	},
	Warnings: []string{"Do not exceed recommended dose without medical supervision"},
}

// DosageService produces dosage guidance for a product, adjusted to the
// caller's health profile when one exists
type DosageService struct {
	catalog  CatalogStore
	profiles ProfileStore
	kb       *knowledge.Base
	log      *logger.Logger
}

var _ IDosageService = (*DosageService)(nil)

// NewDosageService creates a new DosageService instance
func NewDosageService(catalog CatalogStore, profiles ProfileStore, kb *knowledge.Base, log *logger.Logger) *DosageService {
	return &DosageService{
		catalog:  catalog,
		profiles: profiles,
		kb:       kb,
		log:      log.With("service", "dosage"),
	}
}

// Calculate looks up dosage guidance for productID. userID is optional.
func (s *DosageService) Calculate(ctx context.Context, productID uuid.UUID, userID *uuid.UUID) (*types.Dosage, error) {
	product, err := s.catalog.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	entry := s.match(product)
	out := &types.Dosage{
		ProductName:       product.Name,
		RecommendedDosage: entry.Dosage,
		Timing:            entry.Timing,
		Frequency:         entry.Frequency,
		Tips:              append([]string(nil), entry.Tips...),
		Warnings:          append([]string(nil), entry.Warnings...),
		PersonalizedNote:  noProfileDosageNote,
	}

	if userID != nil {
		profile, err := s.profiles.ProfileForUser(ctx, *userID)
		if err != nil {
			return nil, fmt.Errorf("load profile: %w", err)
		}
		if profile != nil {
			out.PersonalizedNote = personalizedDosageNote(profile, product)
		}
	}
	return out, nil
}

// match returns the first dosage entry whose substance appears in the
// product's name, ingredients or tags.
func (s *DosageService) match(p *models.Product) knowledge.DosageEntry {
	text := textmatch.Searchable(p.Name, p.Ingredients, p.Tags)
	for _, d := range s.kb.Dosages {
		if strings.Contains(text, strings.ToLower(d.Substance)) {
			s.log.Debug("dosage entry matched", "product", p.Name, "substance", d.Substance)
			return d
		}
	}
	entry := genericDosage
	if strings.TrimSpace(p.Dosage) != "" {
		entry.Dosage = p.Dosage
	}
	return entry
}

func personalizedDosageNote(profile *models.HealthProfile, p *models.Product) string {
	var notes []string
	if profile.Age != nil {
		switch {
		case *profile.Age >= 65:
			notes = append(notes, "As a senior, you may benefit from higher Vitamin D and Calcium intake. Start with the lower end of the dosage range and increase gradually.")
		case *profile.Age < 25:
			notes = append(notes, "For younger adults, the standard recommended dose is typically sufficient.")
		}
	}
	if profile.Weight != nil && *profile.Weight > 90 {
		notes = append(notes, "At your body weight, you may need the higher end of the dosage range for optimal effect.")
	}

	conditions := strings.ToLower(profile.MedicalConditions)
	if strings.Contains(conditions, "diabetes") {
		notes = append(notes, "With diabetes, monitor blood sugar closely when starting new supplements.")
	}
	if strings.Contains(conditions, "hypertension") || strings.Contains(conditions, "blood pressure") {
		notes = append(notes, "Monitor blood pressure when adding new supplements to your routine.")
	}

	if allergies := profile.AllergyList(); len(allergies) > 0 && strings.TrimSpace(p.AllergenInfo) != "" {
		notes = append(notes, "⚠️ Check the allergen label carefully — you have listed allergies: "+strings.Join(allergies, ", "))
	}

	if len(notes) == 0 {
		return defaultDosageNote
	}
	return strings.Join(notes, " ")
}
