package knowledge

import "strings"

// Severity grades a harmful interaction.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityModerate Severity = "moderate"
	SeverityMild     Severity = "mild"
)

// InteractionRule pairs two substances. Beneficial rules describe a helpful
// combination and have no severity or recommendation.
type InteractionRule struct {
	SubstanceA     string
	SubstanceB     string
	Severity       Severity
	Beneficial     bool
	Description    string
	Recommendation string
}

// Matches reports whether the rule fires for two lowercase texts, in either
// direction.
func (r InteractionRule) Matches(a, b string) bool {
	sa, sb := strings.ToLower(r.SubstanceA), strings.ToLower(r.SubstanceB)
	return (strings.Contains(a, sa) && strings.Contains(b, sb)) ||
		(strings.Contains(a, sb) && strings.Contains(b, sa))
}

func harmful(a, b string, sev Severity, desc, rec string) InteractionRule {
	return InteractionRule{SubstanceA: a, SubstanceB: b, Severity: sev, Description: desc, Recommendation: rec}
}

func beneficial(a, b, benefit string) InteractionRule {
	return InteractionRule{SubstanceA: a, SubstanceB: b, Beneficial: true, Description: benefit}
}

func interactionRules() []InteractionRule {
	return []InteractionRule{
		harmful("Vitamin K", "Warfarin", SeverityCritical,
			"Vitamin K can reduce the effectiveness of blood thinners like Warfarin",
			"Consult your doctor before combining. Maintain consistent Vitamin K intake."),
		harmful("St. John's Wort", "Antidepressant", SeverityCritical,
			"St. John's Wort can cause serotonin syndrome when combined with SSRIs/SNRIs",
			"Do NOT combine. Consult your psychiatrist immediately."),
		harmful("Ginkgo", "Blood Thinner", SeverityCritical,
			"Ginkgo Biloba has blood-thinning properties that amplify anticoagulant effects",
			"Avoid combination. Risk of excessive bleeding."),

		harmful("Calcium", "Iron", SeverityModerate,
			"Calcium can inhibit iron absorption when taken together",
			"Take calcium and iron supplements at different times of day (at least 2 hours apart)."),
		harmful("Zinc", "Copper", SeverityModerate,
			"High-dose zinc can deplete copper levels over time",
			"If taking zinc long-term, add a small copper supplement (2mg per 30mg zinc)."),
		harmful("Magnesium", "Antibiotics", SeverityModerate,
			"Magnesium can reduce absorption of certain antibiotics (tetracyclines, fluoroquinolones)",
			"Take magnesium 2-3 hours before or after antibiotics."),
		harmful("Fish Oil", "Blood Thinner", SeverityModerate,
			"Omega-3 fatty acids have mild blood-thinning effects",
			"Monitor for unusual bruising. Inform your doctor about fish oil use."),
		harmful("Vitamin E", "Blood Thinner", SeverityModerate,
			"High-dose Vitamin E may increase bleeding risk with anticoagulants",
			"Limit Vitamin E to recommended dose. Consult doctor if on blood thinners."),
		harmful("Turmeric", "Blood Thinner", SeverityModerate,
			"Curcumin in turmeric has anti-platelet properties",
			"Use caution if on anticoagulants. Consult your doctor."),
		harmful("Melatonin", "Blood Pressure Medication", SeverityModerate,
			"Melatonin may affect blood pressure regulation",
			"Monitor blood pressure closely. Take melatonin at bedtime only."),

		harmful("Vitamin C", "B12", SeverityMild,
			"High-dose Vitamin C may slightly reduce B12 absorption",
			"Take at different times if using high-dose Vitamin C (>1000mg)."),
		harmful("Green Tea", "Iron", SeverityMild,
			"Tannins in green tea can reduce iron absorption",
			"Drink green tea between meals rather than with iron-rich foods or supplements."),
		harmful("Fiber", "Medication", SeverityMild,
			"High fiber can slow absorption of various medications",
			"Take fiber supplements 1-2 hours away from medications."),

		beneficial("Vitamin D", "Calcium", "Vitamin D enhances calcium absorption — great combination for bone health"),
		beneficial("Vitamin C", "Iron", "Vitamin C significantly boosts iron absorption"),
		beneficial("Vitamin D", "Magnesium", "Magnesium is required for Vitamin D activation in the body"),
		beneficial("Turmeric", "Black Pepper", "Piperine in black pepper increases curcumin absorption by up to 2000%"),
		beneficial("Probiotics", "Prebiotics", "Prebiotics feed probiotics for enhanced gut health (synbiotic effect)"),
		beneficial("Omega-3", "Vitamin E", "Vitamin E helps prevent oxidation of omega-3 fatty acids"),
		beneficial("CoQ10", "Omega-3", "Fat-soluble CoQ10 is better absorbed when taken with omega-3"),
		beneficial("B12", "Folate", "B12 and folate work synergistically for red blood cell production"),
		beneficial("Zinc", "Vitamin C", "Both support immune function through complementary pathways"),
	}
}
