package knowledge

// DosageEntry is the reference dosing guidance for one substance.
type DosageEntry struct {
	Substance string
	Dosage    string
	Timing    string
	Frequency string
	Tips      []string
	Warnings  []string
}

func dosages() []DosageEntry {
	return []DosageEntry{
		{"Vitamin C", "500-1000mg", "Morning", "Once or twice daily",
			[]string{"Take with food to reduce stomach upset", "Pair with iron for better absorption"},
			[]string{"Very high doses (>2000mg) may cause digestive discomfort"}},
		{"Vitamin D", "1000-4000 IU", "Morning", "Once daily",
			[]string{"Take with a fatty meal for better absorption", "Get blood levels checked annually"},
			[]string{"Excessive intake can cause calcium buildup"}},
		{"Omega-3", "1000-2000mg", "With meals", "Once or twice daily",
			[]string{"Choose a product with both EPA and DHA", "Store in refrigerator to prevent oxidation"},
			[]string{"May thin blood at high doses"}},
		{"Magnesium", "200-400mg", "Evening", "Once daily",
			[]string{"Magnesium glycinate is best for sleep", "Magnesium citrate is best for constipation"},
			[]string{"Can cause loose stools at higher doses"}},
		{"Iron", "18-27mg", "Empty stomach", "Once daily",
			[]string{"Take with Vitamin C for 3x absorption", "Avoid taking with calcium, tea, or coffee"},
			[]string{"Can cause nausea on empty stomach — take with food if needed"}},
		{"Zinc", "15-30mg", "With food", "Once daily",
			[]string{"Zinc picolinate has best absorption", "Don't exceed 40mg daily long-term"},
			[]string{"Can cause nausea if taken without food", "Long-term use may deplete copper"}},
		{"Probiotic", "10-50 billion CFU", "Morning", "Once daily",
			[]string{"Take on empty stomach or with light meal", "Look for multi-strain formulas"},
			[]string{"May cause mild bloating initially"}},
		{"Melatonin", "0.5-5mg", "30 min before bed", "Once daily",
			[]string{"Start with lowest effective dose", "Use for short periods to reset sleep cycle"},
			[]string{"Can cause morning grogginess", "Not recommended for long-term daily use"}},
		{"Ashwagandha", "300-600mg", "Morning or evening", "Once or twice daily",
			[]string{"KSM-66 extract is clinically studied", "Takes 2-4 weeks for full effect"},
			[]string{"May interact with thyroid medications"}},
		{"Turmeric", "500-1000mg", "With meals", "Once or twice daily",
			[]string{"Look for products with piperine/black pepper extract", "Curcumin content matters more than total weight"},
			[]string{"May interact with blood thinners"}},
		{"Collagen", "5-15g", "Any time", "Once daily",
			[]string{"Type I & III for skin; Type II for joints", "Hydrolyzed peptides absorb best"},
			[]string{"Generally very safe with few side effects"}},
		{"B12", "500-1000mcg", "Morning", "Once daily",
			[]string{"Methylcobalamin is the active form", "Sublingual tablets may absorb better"},
			[]string{"Very safe — excess is excreted in urine"}},
		{"Biotin", "2500-5000mcg", "Any time", "Once daily",
			[]string{"Give it 3-6 months for hair/nail results", "Can interfere with lab tests — stop 72h before blood work"},
			[]string{"May cause breakouts in acne-prone individuals"}},
		{"CoQ10", "100-200mg", "With meals", "Once daily",
			[]string{"Ubiquinol form absorbs better than ubiquinone", "Take with fatty food"},
			[]string{"May lower blood pressure slightly"}},
		{"Glucosamine", "1500mg", "With food", "Once daily or split",
			[]string{"Pair with chondroitin for joint support", "Allow 6-8 weeks for noticeable results"},
			[]string{"Derived from shellfish — caution if allergic"}},
		{"Calcium", "500-600mg per dose", "With meals", "Twice daily",
			[]string{"Body absorbs max ~500mg at once — split doses", "Calcium citrate can be taken without food"},
			[]string{"Don't take with iron supplements at the same time"}},
	}
}
