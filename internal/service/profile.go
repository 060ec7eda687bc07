package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/models"
	"github.com/pageza/healthshop/backend/internal/textmatch"
	"github.com/pageza/healthshop/backend/internal/types"
)

// HealthProfileService handles user health profile operations
type HealthProfileService struct {
	profiles ProfileStore
	log      *logger.Logger
}

// Ensure HealthProfileService implements IHealthProfileService
var _ IHealthProfileService = (*HealthProfileService)(nil)

// NewHealthProfileService creates a new HealthProfileService instance
func NewHealthProfileService(profiles ProfileStore, log *logger.Logger) *HealthProfileService {
	return &HealthProfileService{
		profiles: profiles,
		log:      log.With("service", "health_profile"),
	}
}

// Get retrieves a user's health profile. A user without one gets an empty
// profile rather than an error.
func (s *HealthProfileService) Get(ctx context.Context, userID uuid.UUID) (*types.HealthProfileRequest, error) {
	profile, err := s.profiles.ProfileForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return profileResponse(&models.HealthProfile{UserID: userID}), nil
	}
	return profileResponse(profile), nil
}

// Update replaces the user's health profile, creating it on first use.
func (s *HealthProfileService) Update(ctx context.Context, userID uuid.UUID, req *types.HealthProfileRequest) (*types.HealthProfileRequest, error) {
	if err := validateProfile(req); err != nil {
		return nil, err
	}

	profile, err := s.profiles.ProfileForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		profile = &models.HealthProfile{UserID: userID}
	}

	profile.Age = req.Age
	profile.Gender = strings.TrimSpace(req.Gender)
	profile.Height = req.Height
	profile.Weight = req.Weight
	profile.HealthGoals = textmatch.JoinList(req.HealthGoals)
	profile.Allergies = textmatch.JoinList(req.Allergies)
	profile.DietaryPreferences = textmatch.JoinList(req.DietaryPreferences)
	profile.MedicalConditions = textmatch.JoinList(req.MedicalConditions)
	profile.AgeGroup = ageGroupFor(req)

	if err := s.profiles.SaveProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	s.log.Info("health profile updated", "user_id", userID, "age_group", profile.AgeGroup)
	return profileResponse(profile), nil
}

func validateProfile(req *types.HealthProfileRequest) error {
	if req.Age != nil && *req.Age < 0 {
		return fmt.Errorf("%w: age must not be negative", ErrInvalidProfile)
	}
	if req.Height != nil && *req.Height < 0 {
		return fmt.Errorf("%w: height must not be negative", ErrInvalidProfile)
	}
	if req.Weight != nil && *req.Weight < 0 {
		return fmt.Errorf("%w: weight must not be negative", ErrInvalidProfile)
	}
	if req.AgeGroup != "" && !models.AgeGroup(strings.ToUpper(req.AgeGroup)).Valid() {
		return fmt.Errorf("%w: unknown age group %q", ErrInvalidProfile, req.AgeGroup)
	}
	return nil
}

// ageGroupFor prefers an explicit bracket and otherwise derives one from age.
func ageGroupFor(req *types.HealthProfileRequest) models.AgeGroup {
	if req.AgeGroup != "" {
		return models.AgeGroup(strings.ToUpper(req.AgeGroup))
	}
	if req.Age != nil {
		return models.DetermineAgeGroup(*req.Age)
	}
	return ""
}

func profileResponse(p *models.HealthProfile) *types.HealthProfileRequest {
	return &types.HealthProfileRequest{
		Age:                p.Age,
		Gender:             p.Gender,
		Height:             p.Height,
		Weight:             p.Weight,
		HealthGoals:        p.Goals(),
		Allergies:          p.AllergyList(),
		DietaryPreferences: p.DietaryList(),
		MedicalConditions:  p.ConditionList(),
		AgeGroup:           string(p.AgeGroup),
	}
}
