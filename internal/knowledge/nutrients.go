package knowledge

// NutrientEntry describes an essential nutrient tracked by the nutrition gap
// analysis.
type NutrientEntry struct {
	Name         string
	Description  string
	RelatedGoals []string
	Keywords     []string
}

func goalNutrients() []GoalNutrients {
	return []GoalNutrients{
		{"Heart Health", []string{"Omega-3", "CoQ10", "Magnesium", "Fiber", "Garlic"}},
		{"Immunity", []string{"Vitamin C", "Zinc", "Vitamin D", "Elderberry", "Echinacea"}},
		{"Fitness", []string{"Protein", "Creatine", "BCAAs", "Pre-Workout", "Electrolytes"}},
		{"Brain Health", []string{"Omega-3", "Ginkgo", "Bacopa", "B12", "Lion's Mane"}},
		{"Bone Health", []string{"Calcium", "Vitamin D", "Vitamin K2", "Magnesium", "Collagen"}},
		{"Weight Loss", []string{"Green Tea", "CLA", "Garcinia", "Fiber", "Protein"}},
		{"Energy", []string{"B12", "Iron", "CoQ10", "Ashwagandha", "Rhodiola"}},
		{"Sleep", []string{"Melatonin", "Magnesium", "Valerian", "L-Theanine", "Chamomile"}},
		{"Skin Health", []string{"Collagen", "Vitamin E", "Biotin", "Vitamin C", "Hyaluronic"}},
		{"Hair Health", []string{"Biotin", "Iron", "Zinc", "Keratin", "Folic Acid"}},
		{"Digestive Health", []string{"Probiotic", "Fiber", "Digestive Enzyme", "Prebiotics", "Glutamine"}},
		{"Joint Health", []string{"Glucosamine", "Turmeric", "Omega-3", "MSM", "Collagen"}},
		{"Diabetes Care", []string{"Chromium", "Berberine", "Cinnamon", "Alpha Lipoic", "Fiber"}},
		{"Eye Health", []string{"Lutein", "Zeaxanthin", "Vitamin A", "Omega-3", "Bilberry"}},
		{"Stress Relief", []string{"Ashwagandha", "Magnesium", "L-Theanine", "Rhodiola", "Lavender"}},
	}
}

func essentialNutrients() []NutrientEntry {
	return []NutrientEntry{
		{"Vitamin D", "bone health, immunity, mood", []string{"Bone Health", "Immunity", "Sleep"}, []string{"vitamin d"}},
		{"Omega-3", "heart, brain, and joint health", []string{"Heart Health", "Brain Health", "Joint Health"}, []string{"omega-3", "fish oil"}},
		{"Magnesium", "sleep, stress, muscle function", []string{"Sleep", "Stress Relief", "Fitness"}, []string{"magnesium"}},
		{"Iron", "energy and blood health", []string{"Energy", "Fitness"}, []string{"iron"}},
		{"Vitamin B12", "energy, nerves, and brain", []string{"Energy", "Brain Health"}, []string{"b12", "vitamin b"}},
		{"Probiotics", "digestive and immune health", []string{"Digestive Health", "Immunity"}, []string{"probiotic"}},
		{"Calcium", "bone strength and heart function", []string{"Bone Health", "Heart Health"}, []string{"calcium"}},
		{"Zinc", "immune function, skin, and wound healing", []string{"Immunity", "Skin Health"}, []string{"zinc"}},
		{"Vitamin C", "immunity and antioxidant protection", []string{"Immunity", "Skin Health"}, []string{"vitamin c"}},
		{"Collagen", "skin elasticity, joint support", []string{"Skin Health", "Joint Health"}, []string{"collagen"}},
	}
}

// SupplyDuration is the typical number of days one unit of a product
// matching Keyword lasts.
type SupplyDuration struct {
	Keyword string
	Days    int
}

func supplyDurations() []SupplyDuration {
	return []SupplyDuration{
		{"vitamin", 30},
		{"supplement", 30},
		{"probiotic", 30},
		{"protein", 20},
		{"pre-workout", 25},
		{"collagen", 30},
		{"omega", 30},
		{"fish oil", 30},
		{"calcium", 30},
		{"iron", 30},
		{"zinc", 30},
		{"magnesium", 30},
		{"melatonin", 45},
		{"multivitamin", 30},
	}
}
