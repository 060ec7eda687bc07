// Package knowledge contains the static lookup tables consulted by the
// insights engine: goal nutrients, essential nutrients, interaction rules,
// symptom maps, supply durations, dosage entries and the daily tip pool.
//
// A Base is built once at startup with New and shared by pointer. Nothing in
// the engine writes to it after construction, so it is safe for concurrent
// readers without locking. Every table is an ordered slice because several
// operations depend on first-match or declaration-order tie-breaks.
package knowledge

import (
	"strings"
	"unicode/utf16"
)

// Base bundles every knowledge table.
type Base struct {
	GoalNutrients      []GoalNutrients
	Nutrients          []NutrientEntry
	DefaultNutrients   []string
	InteractionRules   []InteractionRule
	SymptomCategories  []SymptomCategory
	SeverityTiers      []KeywordTier
	FollowUps          []KeywordAdvice
	LifestyleTips      []KeywordAdvice
	FallbackFollowUps  []string
	FallbackLifestyle  []string
	SupplyDurations    []SupplyDuration
	Dosages            []DosageEntry
	Tips               []HealthTip
	Seasons            []Season
	UncoveredFulfilled []int
}

// New builds the knowledge base.
func New() *Base {
	return &Base{
		GoalNutrients:      goalNutrients(),
		Nutrients:          essentialNutrients(),
		DefaultNutrients:   []string{"Vitamin D", "Omega-3", "Magnesium", "Vitamin C", "Probiotics"},
		InteractionRules:   interactionRules(),
		SymptomCategories:  symptomCategories(),
		SeverityTiers:      severityTiers(),
		FollowUps:          followUps(),
		LifestyleTips:      lifestyleTips(),
		FallbackFollowUps:  fallbackFollowUps(),
		FallbackLifestyle:  fallbackLifestyle(),
		SupplyDurations:    supplyDurations(),
		Dosages:            dosages(),
		Tips:               healthTips(),
		Seasons:            seasons(),
		UncoveredFulfilled: []int{10, 22, 35, 8, 18, 28, 42, 12, 25, 30},
	}
}

// GoalNutrients maps a health goal to the nutrients that support it.
type GoalNutrients struct {
	Goal      string
	Nutrients []string
}

// NutrientsForGoal returns the nutrients for goal, matched case-insensitively
// on the trimmed goal name. Unknown goals yield nil.
func (b *Base) NutrientsForGoal(goal string) []string {
	goal = strings.TrimSpace(goal)
	for _, g := range b.GoalNutrients {
		if strings.EqualFold(g.Goal, goal) {
			return g.Nutrients
		}
	}
	return nil
}

// Nutrient returns the essential nutrient entry with the given name.
func (b *Base) Nutrient(name string) (NutrientEntry, bool) {
	for _, n := range b.Nutrients {
		if n.Name == name {
			return n, true
		}
	}
	return NutrientEntry{}, false
}

// NameVariance is a deterministic pseudo-random value in [0,100) derived from
// a nutrient name. It only spreads covered nutrients across display buckets;
// it does not measure intake and carries no clinical meaning.
//
// The value is |h| mod 100 where h is the 32-bit polynomial string hash
// (h = 31*h + c over UTF-16 code units), which keeps existing dashboards
// stable.
func NameVariance(name string) int {
	var h int32
	for _, c := range utf16.Encode([]rune(name)) {
		h = 31*h + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v % 100)
}
