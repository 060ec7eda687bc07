package types

// Recommendations aggregates every recommendation strategy for one user.
type Recommendations struct {
	BasedOnGoals             []ProductSummary `json:"based_on_goals"`
	FrequentlyBoughtTogether []ProductSummary `json:"frequently_bought_together"`
	CustomersAlsoBought      []ProductSummary `json:"customers_also_bought"`
	PopularInYourAgeGroup    []ProductSummary `json:"popular_in_your_age_group"`
	Trending                 []ProductSummary `json:"trending"`
	Bundles                  []Bundle         `json:"bundled_products"`
	Seasonal                 []ProductSummary `json:"seasonal_recommendations"`
	SeasonName               string           `json:"season_name"`
}

type Bundle struct {
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	Products           []ProductSummary `json:"products"`
	TotalPrice         float64          `json:"total_price"`
	DiscountedPrice    float64          `json:"discounted_price"`
	DiscountPercentage int              `json:"discount_percentage"`
}

type SymptomSearchRequest struct {
	SymptomDescription string `json:"symptom_description" binding:"required"`
}

type SymptomSearch struct {
	SymptomDescription  string           `json:"symptom_description"`
	IdentifiedSymptoms  []string         `json:"identified_symptoms"`
	SuggestedCategories []string         `json:"suggested_categories"`
	SuggestedProducts   []ProductSummary `json:"suggested_products"`
}

// ChatMessage is a prior turn supplied by the client. History is accepted for
// display continuity and does not influence the answer.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message string        `json:"message" binding:"required"`
	History []ChatMessage `json:"history"`
}

type ChatResponse struct {
	Message             string           `json:"message"`
	IdentifiedSymptoms  []string         `json:"identified_symptoms"`
	SuggestedCategories []string         `json:"suggested_categories"`
	SuggestedProducts   []ProductSummary `json:"suggested_products"`
	FollowUpQuestions   []string         `json:"follow_up_questions"`
	Severity            string           `json:"severity"`
	LifestyleTips       []string         `json:"lifestyle_tips"`
}
