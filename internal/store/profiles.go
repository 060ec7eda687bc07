package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/models"
	"github.com/pageza/healthshop/backend/internal/service"
)

// ProfileStore persists health profiles, one per user.
type ProfileStore struct {
	db  *gorm.DB
	log *logger.Logger
}

var _ service.ProfileStore = (*ProfileStore)(nil)

// NewProfileStore creates a new ProfileStore instance
func NewProfileStore(db *gorm.DB, baseLog *logger.Logger) *ProfileStore {
	return &ProfileStore{db: db, log: baseLog.With("store", "profiles")}
}

func (s *ProfileStore) ProfileForUser(ctx context.Context, userID uuid.UUID) (*models.HealthProfile, error) {
	var profile models.HealthProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		s.log.Error("failed to load health profile", "user_id", userID, "error", err)
		return nil, err
	}
	return &profile, nil
}

// SaveProfile inserts a profile without an id and updates it otherwise.
func (s *ProfileStore) SaveProfile(ctx context.Context, profile *models.HealthProfile) error {
	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		s.log.Error("failed to save health profile", "user_id", profile.UserID, "error", err)
		return err
	}
	return nil
}
