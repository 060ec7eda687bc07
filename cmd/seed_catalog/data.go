package main

type productSeed struct {
	name        string
	category    string
	brand       string
	price       float64
	discount    float64
	description string
	ingredients string
	benefits    string
	tags        string
	goals       string
	ageGroups   string
	dietary     string
	allergens   string
	dosage      string
	rating      float64
	reviews     int
	purchases   int
	featured    bool
}

// userSeed orders list product names per order, oldest first.
type userSeed struct {
	username   string
	email      string
	age        int
	gender     string
	goals      string
	allergies  string
	conditions string
	orders     [][]string
}

var categories = []string{"Vitamins", "Minerals", "Omega & Fish Oils", "Herbal", "Digestive Health", "Sports Nutrition"}

var products = []productSeed{
	{
		name: "Vitamin D3 2000 IU", category: "Vitamins", brand: "SunWell", price: 14.99,
		description: "High potency vitamin D3 softgels.", ingredients: "Vitamin D3,Olive Oil",
		benefits: "Supports bone health and immunity", tags: "vitamin d,immunity,bone health",
		goals: "Immunity,Bone Health", ageGroups: "ADULT,MIDDLE_AGED,SENIOR", dietary: "Gluten Free",
		dosage: "1 softgel daily", rating: 4.7, reviews: 312, purchases: 940, featured: true,
	},
	{
		name: "Vitamin C 1000mg", category: "Vitamins", brand: "CitraPure", price: 11.49, discount: 9.99,
		description: "Buffered vitamin C with rose hips.", ingredients: "Vitamin C,Rose Hips",
		benefits: "Antioxidant support", tags: "vitamin c,immunity,antioxidant",
		goals: "Immunity,Skin Health", ageGroups: "YOUNG_ADULT,ADULT,MIDDLE_AGED,SENIOR", dietary: "Vegan",
		dosage: "1 tablet daily", rating: 4.5, reviews: 201, purchases: 720,
	},
	{
		name: "Vitamin B12 Methylcobalamin", category: "Vitamins", brand: "SunWell", price: 16.99,
		description: "Sublingual B12 for energy.", ingredients: "B12,Methylcobalamin",
		benefits: "Supports energy metabolism", tags: "b12,energy,vegan",
		goals: "Energy,Brain Health", ageGroups: "ADULT,MIDDLE_AGED,SENIOR", dietary: "Vegan",
		dosage: "1 lozenge daily", rating: 4.6, reviews: 158, purchases: 510,
	},
	{
		name: "Magnesium Glycinate", category: "Minerals", brand: "CalmCore", price: 19.99,
		description: "Gentle, highly absorbable magnesium.", ingredients: "Magnesium,Glycine",
		benefits: "Supports relaxation and sleep", tags: "magnesium,sleep,stress,relaxation",
		goals: "Better Sleep,Stress Relief", ageGroups: "YOUNG_ADULT,ADULT,MIDDLE_AGED,SENIOR", dietary: "Vegan,Gluten Free",
		dosage: "2 capsules before bed", rating: 4.8, reviews: 488, purchases: 1200, featured: true,
	},
	{
		name: "Zinc Picolinate 25mg", category: "Minerals", brand: "CalmCore", price: 8.99,
		description: "Zinc for immune defence.", ingredients: "Zinc",
		benefits: "Immune and skin support", tags: "zinc,immunity,skin",
		goals: "Immunity,Skin Health", ageGroups: "TEEN,YOUNG_ADULT,ADULT,MIDDLE_AGED", dietary: "Vegan",
		dosage: "1 capsule daily with food", rating: 4.4, reviews: 96, purchases: 380,
	},
	{
		name: "Iron Bisglycinate", category: "Minerals", brand: "SunWell", price: 12.49,
		description: "Non-constipating iron.", ingredients: "Iron,Vitamin C",
		benefits: "Supports healthy energy levels", tags: "iron,energy,fatigue",
		goals: "Energy", ageGroups: "TEEN,YOUNG_ADULT,ADULT", dietary: "Vegan",
		dosage: "1 capsule daily", rating: 4.3, reviews: 77, purchases: 260,
	},
	{
		name: "Calcium with Vitamin D", category: "Minerals", brand: "BoneGuard", price: 13.99,
		description: "Calcium citrate with D3.", ingredients: "Calcium,Vitamin D3",
		benefits: "Bone strength", tags: "calcium,bone health",
		goals: "Bone Health", ageGroups: "MIDDLE_AGED,SENIOR", dietary: "Gluten Free",
		dosage: "2 tablets daily", rating: 4.2, reviews: 64, purchases: 300,
	},
	{
		name: "Arctic Omega-3 Fish Oil", category: "Omega & Fish Oils", brand: "NordicSea", price: 29.99, discount: 24.99,
		description: "Triple strength EPA and DHA.", ingredients: "Fish Oil,Omega-3,EPA,DHA",
		benefits: "Heart and brain support", tags: "omega-3,heart health,brain,fish oil",
		goals: "Heart Health,Brain Health,Joint Health", ageGroups: "ADULT,MIDDLE_AGED,SENIOR",
		allergens: "Contains fish", dosage: "2 softgels daily with meals",
		rating: 4.7, reviews: 356, purchases: 1050, featured: true,
	},
	{
		name: "Vitamin K2 MK-7", category: "Vitamins", brand: "BoneGuard", price: 21.99,
		description: "Directs calcium to bones.", ingredients: "Vitamin K2,MK-7",
		benefits: "Bone and heart support", tags: "vitamin k2,bone health,heart health",
		goals: "Bone Health,Heart Health", ageGroups: "MIDDLE_AGED,SENIOR", dietary: "Vegan",
		dosage: "1 capsule daily", rating: 4.5, reviews: 58, purchases: 190,
	},
	{
		name: "Ashwagandha KSM-66", category: "Herbal", brand: "Verdant Roots", price: 22.99,
		description: "Adaptogen for stress resilience.", ingredients: "Ashwagandha",
		benefits: "Stress and energy support", tags: "ashwagandha,stress,adaptogen,energy",
		goals: "Stress Relief,Energy", ageGroups: "YOUNG_ADULT,ADULT,MIDDLE_AGED", dietary: "Vegan",
		dosage: "1 capsule twice daily", rating: 4.6, reviews: 244, purchases: 670,
	},
	{
		name: "Turmeric Curcumin with Black Pepper", category: "Herbal", brand: "Verdant Roots", price: 24.99,
		description: "Curcumin with piperine for absorption.", ingredients: "Turmeric,Curcumin,Black Pepper",
		benefits: "Joint comfort", tags: "turmeric,joint,inflammation",
		goals: "Joint Health", ageGroups: "ADULT,MIDDLE_AGED,SENIOR", dietary: "Vegan",
		dosage: "2 capsules daily", rating: 4.4, reviews: 189, purchases: 540,
	},
	{
		name: "Melatonin 3mg", category: "Herbal", brand: "CalmCore", price: 7.99,
		description: "Fast dissolve sleep aid.", ingredients: "Melatonin,Chamomile",
		benefits: "Supports falling asleep", tags: "melatonin,sleep aid,sleep",
		goals: "Better Sleep", ageGroups: "ADULT,MIDDLE_AGED,SENIOR", dietary: "Vegan",
		dosage: "1 tablet 30 minutes before bed", rating: 4.3, reviews: 402, purchases: 880,
	},
	{
		name: "Daily Probiotic 50 Billion", category: "Digestive Health", brand: "FloraMax", price: 34.99,
		description: "Ten strain shelf-stable probiotic.", ingredients: "Probiotic,Lactobacillus,Bifidobacterium",
		benefits: "Digestive and immune balance", tags: "probiotics,gut health,digestion,immunity",
		goals: "Gut Health,Immunity", ageGroups: "YOUNG_ADULT,ADULT,MIDDLE_AGED,SENIOR", dietary: "Dairy Free",
		dosage: "1 capsule daily", rating: 4.6, reviews: 275, purchases: 760, featured: true,
	},
	{
		name: "Whey Protein Isolate", category: "Sports Nutrition", brand: "IronForge", price: 49.99, discount: 44.99,
		description: "Unflavoured whey isolate.", ingredients: "Whey Protein,Sunflower Lecithin",
		benefits: "Muscle recovery", tags: "protein,muscle,recovery",
		goals: "Muscle Building,Weight Management", ageGroups: "TEEN,YOUNG_ADULT,ADULT",
		allergens: "Contains milk", dosage: "1 scoop after training", rating: 4.5, reviews: 530, purchases: 990,
	},
	{
		name: "Creatine Monohydrate", category: "Sports Nutrition", brand: "IronForge", price: 26.99,
		description: "Micronised creatine.", ingredients: "Creatine",
		benefits: "Strength and power", tags: "creatine,muscle,energy",
		goals: "Muscle Building,Energy", ageGroups: "TEEN,YOUNG_ADULT,ADULT", dietary: "Vegan",
		dosage: "5g daily", rating: 4.7, reviews: 610, purchases: 1100,
	},
}

var users = []userSeed{
	{
		username: "maya", email: "maya@example.com", age: 34, gender: "female",
		goals: "Better Sleep,Stress Relief", allergies: "Shellfish",
		orders: [][]string{
			{"Magnesium Glycinate", "Melatonin 3mg"},
			{"Ashwagandha KSM-66"},
			{"Magnesium Glycinate", "Vitamin D3 2000 IU"},
		},
	},
	{
		username: "george", email: "george@example.com", age: 67, gender: "male",
		goals: "Heart Health,Bone Health,Joint Health", conditions: "High Blood Pressure",
		orders: [][]string{
			{"Arctic Omega-3 Fish Oil", "Vitamin K2 MK-7"},
			{"Calcium with Vitamin D", "Turmeric Curcumin with Black Pepper"},
			{"Arctic Omega-3 Fish Oil"},
		},
	},
	{
		username: "leo", email: "leo@example.com", age: 22, gender: "male",
		goals: "Muscle Building,Energy", allergies: "Peanuts",
		orders: [][]string{
			{"Whey Protein Isolate", "Creatine Monohydrate"},
			{"Whey Protein Isolate", "Magnesium Glycinate"},
		},
	},
	{
		username: "newcomer", email: "newcomer@example.com", age: 41, gender: "female",
	},
}
