package knowledge

// SymptomCategory maps a family of symptom keywords to catalog tags.
type SymptomCategory struct {
	Patterns []string
	Tags     []string
}

// KeywordTier assigns Value when any pattern is present. Tiers are checked in
// order and the first hit wins.
type KeywordTier struct {
	Patterns []string
	Value    string
}

// KeywordAdvice is a list of canned lines offered when any pattern is present.
type KeywordAdvice struct {
	Patterns []string
	Lines    []string
}

const (
	SeverityConsultDoctor = "consult-doctor"
	SeverityChronic       = "moderate"
	SeverityDefault       = "mild"
)

func symptomCategories() []SymptomCategory {
	return []SymptomCategory{
		{[]string{"tired", "fatigue", "exhausted", "low energy", "weakness"},
			[]string{"Iron", "B12", "Vitamin D", "Ashwagandha", "CoQ10", "Energy"}},
		{[]string{"cold", "flu", "sick", "fever", "infection"},
			[]string{"Vitamin C", "Zinc", "Elderberry", "Immunity", "Echinacea"}},
		{[]string{"stress", "anxiety", "nervous", "tension"},
			[]string{"Ashwagandha", "Magnesium", "L-Theanine", "Stress Relief", "Lavender"}},
		{[]string{"insomnia", "sleep", "can't sleep", "restless"},
			[]string{"Melatonin", "Magnesium", "Valerian", "Sleep Aid", "Chamomile"}},
		{[]string{"joint", "pain", "inflammation", "arthritis"},
			[]string{"Glucosamine", "Turmeric", "Omega-3", "Joint Support", "MSM"}},
		{[]string{"digestion", "bloating", "stomach", "gut", "constipation"},
			[]string{"Probiotic", "Fiber", "Digestive Enzyme", "Prebiotics", "Gut Health"}},
		{[]string{"skin", "acne", "dull", "dry skin", "aging"},
			[]string{"Collagen", "Vitamin E", "Biotin", "Hyaluronic", "Skin Care"}},
		{[]string{"hair", "hair loss", "thin hair", "brittle"},
			[]string{"Biotin", "Iron", "Zinc", "Hair Growth", "Keratin"}},
		{[]string{"weight", "overweight", "fat", "obesity"},
			[]string{"Green Tea", "Garcinia", "CLA", "Weight Loss", "Metabolism"}},
		{[]string{"diabetes", "blood sugar", "glucose"},
			[]string{"Chromium", "Berberine", "Cinnamon", "Diabetic Care", "Blood Sugar"}},
		{[]string{"heart", "blood pressure", "cholesterol", "cardiac"},
			[]string{"Omega-3", "CoQ10", "Garlic", "Heart Health", "Fish Oil"}},
		{[]string{"bone", "osteoporosis", "fracture", "weak bones"},
			[]string{"Calcium", "Vitamin D", "Magnesium", "Bone Health", "Vitamin K2"}},
		{[]string{"eye", "vision", "dry eyes", "blurry"},
			[]string{"Lutein", "Zeaxanthin", "Vitamin A", "Eye Health", "Bilberry"}},
		{[]string{"memory", "focus", "concentration", "brain fog"},
			[]string{"Omega-3", "Ginkgo", "Bacopa", "Brain Health", "Nootropic"}},
	}
}

// severityTiers is ordered by precedence: emergency keywords beat chronic ones.
func severityTiers() []KeywordTier {
	return []KeywordTier{
		{[]string{"severe", "unbearable", "extreme", "emergency", "chest pain", "breathing difficulty", "bleeding"}, SeverityConsultDoctor},
		{[]string{"persistent", "chronic", "recurring", "worsening", "weeks", "months"}, SeverityChronic},
	}
}

func followUps() []KeywordAdvice {
	return []KeywordAdvice{
		{[]string{"tired", "fatigue", "exhausted"}, []string{
			"How long have you been feeling tired?",
			"Do you also experience dizziness or shortness of breath?",
			"Have you had your iron or B12 levels checked recently?",
		}},
		{[]string{"stress", "anxiety", "nervous"}, []string{
			"Is the stress related to work, sleep, or general health?",
			"Do you also have trouble sleeping?",
			"Have you tried any relaxation techniques?",
		}},
		{[]string{"joint", "pain", "inflammation"}, []string{
			"Which joints are affected?",
			"Is the pain worse in the morning or after activity?",
			"Have you tried any anti-inflammatory supplements before?",
		}},
		{[]string{"sleep", "insomnia"}, []string{
			"Do you have trouble falling asleep or staying asleep?",
			"What time do you typically go to bed?",
			"Do you consume caffeine after 2pm?",
		}},
		{[]string{"digestion", "bloating", "stomach"}, []string{
			"Is bloating related to specific foods?",
			"How is your fiber and water intake?",
			"Have you tried probiotics before?",
		}},
	}
}

func lifestyleTips() []KeywordAdvice {
	return []KeywordAdvice{
		{[]string{"tired", "fatigue"}, []string{
			"Aim for 7-9 hours of quality sleep each night",
			"Stay hydrated — dehydration is a common cause of fatigue",
			"Include iron-rich foods like spinach, lentils, and red meat in your diet",
			"Exercise regularly — even 20 minutes of walking can boost energy",
		}},
		{[]string{"stress", "anxiety"}, []string{
			"Practice deep breathing exercises for 5-10 minutes daily",
			"Limit caffeine intake, especially after 2pm",
			"Try journaling or meditation to manage stress",
			"Ensure you're getting regular physical activity",
		}},
		{[]string{"sleep", "insomnia"}, []string{
			"Maintain a consistent sleep schedule",
			"Avoid screens 1 hour before bedtime",
			"Keep your bedroom cool, dark, and quiet",
			"Avoid heavy meals close to bedtime",
		}},
		{[]string{"joint", "pain"}, []string{
			"Gentle stretching and low-impact exercise can help",
			"Maintain a healthy weight to reduce joint stress",
			"Apply heat or cold therapy for acute pain",
			"Include anti-inflammatory foods like turmeric, ginger, and fatty fish",
		}},
		{[]string{"digestion", "bloating"}, []string{
			"Eat slowly and chew food thoroughly",
			"Increase dietary fiber gradually to avoid gas",
			"Stay well-hydrated throughout the day",
			"Consider an elimination diet to identify trigger foods",
		}},
	}
}

func fallbackFollowUps() []string {
	return []string{
		"Can you describe your symptoms in more detail?",
		"How long have you been experiencing this?",
		"Are you currently taking any medications?",
	}
}

func fallbackLifestyle() []string {
	return []string{
		"Stay hydrated and maintain a balanced diet",
		"Regular exercise supports overall health",
		"Consult a healthcare provider for persistent symptoms",
	}
}
