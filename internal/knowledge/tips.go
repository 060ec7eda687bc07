package knowledge

import "time"

// Tip categories.
const (
	TipNutrition = "nutrition"
	TipFitness   = "fitness"
	TipSleep     = "sleep"
	TipMental    = "mental"
)

// HealthTip is one entry of the daily tip pool.
type HealthTip struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func healthTips() []HealthTip {
	return []HealthTip{
		{"💧", "Stay Hydrated", "Drink at least 8 glasses of water daily. Proper hydration improves supplement absorption.", TipNutrition},
		{"🏃", "Move Daily", "Aim for 30 minutes of moderate exercise. Even a brisk walk boosts cardiovascular health.", TipFitness},
		{"😴", "Prioritize Sleep", "7-9 hours of quality sleep enhances recovery and supplement efficacy.", TipSleep},
		{"🧘", "Manage Stress", "Practice 10 minutes of meditation or deep breathing. Chronic stress depletes nutrients faster.", TipMental},
		{"🥗", "Eat the Rainbow", "Include colorful fruits and vegetables for diverse phytonutrients that supplements can't fully replicate.", TipNutrition},
		{"☀️", "Get Sunlight", "15-20 minutes of morning sunlight helps your body produce Vitamin D naturally.", TipNutrition},
		{"🦷", "Don't Forget Oral Health", "Oral health is linked to heart health. Brush twice daily and supplement with CoQ10.", TipNutrition},
		{"🫁", "Practice Deep Breathing", "5 minutes of deep breathing exercises reduce cortisol and improve oxygen delivery.", TipMental},
		{"🧠", "Challenge Your Brain", "Reading, puzzles, or learning something new keeps your brain sharp. Pair with omega-3 for best results.", TipMental},
		{"⏰", "Timing Matters", "Fat-soluble vitamins (A, D, E, K) absorb better with meals. Water-soluble vitamins work on empty stomach.", TipNutrition},
		{"🚶", "Take Breaks", "Stand and stretch every 60 minutes if sedentary. Movement improves circulation and joint health.", TipFitness},
		{"🌙", "Create a Sleep Routine", "Consistent bedtime, no screens 1 hour before bed. Magnesium and chamomile tea can help.", TipSleep},
		{"🥜", "Healthy Fats Are Key", "Avocado, nuts, and olive oil improve absorption of fat-soluble nutrients.", TipNutrition},
		{"💪", "Strength Training", "Resistance exercise 2-3x/week builds muscle and bone density. Pair with protein and calcium.", TipFitness},
		{"🍵", "Limit Caffeine After 2PM", "Late caffeine interferes with sleep quality and melatonin production.", TipSleep},
	}
}

// Season selects the seasonal recommendation tag for a range of months.
type Season struct {
	Months      []time.Month
	Tag         string
	DisplayName string
}

func seasons() []Season {
	return []Season{
		{[]time.Month{time.November, time.December, time.January, time.February}, "Immunity", "Winter Wellness ❄️"},
		{[]time.Month{time.March, time.April, time.May}, "Energy", "Spring Vitality 🌸"},
		{[]time.Month{time.June, time.July, time.August}, "Skin", "Summer Glow ☀️"},
		{[]time.Month{time.September, time.October}, "Sleep", "Autumn Balance 🍂"},
	}
}

// SeasonFor returns the season containing month. Every month is covered.
func (b *Base) SeasonFor(month time.Month) Season {
	for _, s := range b.Seasons {
		for _, m := range s.Months {
			if m == month {
				return s
			}
		}
	}
	return b.Seasons[len(b.Seasons)-1]
}
