package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/healthshop/backend/internal/textmatch"
)

// AgeGroup is the coarse age bracket used for popularity recommendations.
type AgeGroup string

const (
	AgeGroupTeen       AgeGroup = "TEEN"
	AgeGroupYoungAdult AgeGroup = "YOUNG_ADULT"
	AgeGroupAdult      AgeGroup = "ADULT"
	AgeGroupMiddleAged AgeGroup = "MIDDLE_AGED"
	AgeGroupSenior     AgeGroup = "SENIOR"
)

// Valid reports whether g is one of the known brackets.
func (g AgeGroup) Valid() bool {
	switch g {
	case AgeGroupTeen, AgeGroupYoungAdult, AgeGroupAdult, AgeGroupMiddleAged, AgeGroupSenior:
		return true
	}
	return false
}

// DetermineAgeGroup maps an age in years to its bracket.
func DetermineAgeGroup(age int) AgeGroup {
	switch {
	case age < 18:
		return AgeGroupTeen
	case age < 30:
		return AgeGroupYoungAdult
	case age < 45:
		return AgeGroupAdult
	case age < 60:
		return AgeGroupMiddleAged
	default:
		return AgeGroupSenior
	}
}

// HealthProfile holds a user's self-reported health data. Goals, allergies,
// dietary preferences and medical conditions are stored comma-joined with
// their order preserved.
type HealthProfile struct {
	ID                 uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID             uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Age                *int      `json:"age,omitempty"`
	Gender             string    `gorm:"size:32" json:"gender"`
	Height             *float64  `json:"height,omitempty"` // cm
	Weight             *float64  `json:"weight,omitempty"` // kg
	HealthGoals        string    `gorm:"type:text" json:"health_goals"`
	Allergies          string    `gorm:"type:text" json:"allergies"`
	DietaryPreferences string    `gorm:"type:text" json:"dietary_preferences"`
	MedicalConditions  string    `gorm:"type:text" json:"medical_conditions"`
	AgeGroup           AgeGroup  `gorm:"size:20" json:"age_group,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (HealthProfile) TableName() string {
	return "user_health_profiles"
}

func (p *HealthProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Goals and AllergyList are empty for a nil profile.
func (p *HealthProfile) Goals() []string {
	if p == nil {
		return []string{}
	}
	return textmatch.SplitList(p.HealthGoals)
}

func (p *HealthProfile) AllergyList() []string {
	if p == nil {
		return []string{}
	}
	return textmatch.SplitList(p.Allergies)
}

func (p *HealthProfile) DietaryList() []string {
	return textmatch.SplitList(p.DietaryPreferences)
}

func (p *HealthProfile) ConditionList() []string {
	return textmatch.SplitList(p.MedicalConditions)
}

// HasGoals is false for a nil profile.
func (p *HealthProfile) HasGoals() bool {
	return p != nil && len(p.Goals()) > 0
}
