package types

// HealthProfileRequest is both the update body and the read shape of a
// user's health profile.
type HealthProfileRequest struct {
	Age                *int     `json:"age"`
	Gender             string   `json:"gender"`
	Height             *float64 `json:"height"`
	Weight             *float64 `json:"weight"`
	HealthGoals        []string `json:"health_goals"`
	Allergies          []string `json:"allergies"`
	DietaryPreferences []string `json:"dietary_preferences"`
	MedicalConditions  []string `json:"medical_conditions"`
	AgeGroup           string   `json:"age_group,omitempty"`
}
