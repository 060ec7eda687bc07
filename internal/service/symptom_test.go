package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/healthshop/backend/internal/knowledge"
	th "github.com/pageza/healthshop/backend/internal/testhelpers"
)

func TestMatchSymptomsRanksByHits(t *testing.T) {
	m := matchSymptoms(knowledge.New(), "I feel tired and can't sleep", false)

	assert.Equal(t, []string{
		"Melatonin", "Magnesium", "Valerian", "Sleep Aid", "Chamomile",
		"Iron", "B12", "Vitamin D", "Ashwagandha", "CoQ10", "Energy",
	}, m.tags)
	assert.Equal(t, []string{"tired", "sleep", "can't sleep"}, m.identified)
}

func TestMatchSymptomsFallsBackToRawText(t *testing.T) {
	m := matchSymptoms(knowledge.New(), "purple elbows", false)
	assert.Empty(t, m.identified)
	assert.Equal(t, []string{"purple elbows"}, m.tags)
}

func TestMatchSymptomsDedupe(t *testing.T) {
	kb := knowledge.New()
	text := "stress and hair loss"
	plain := matchSymptoms(kb, text, false)
	deduped := matchSymptoms(kb, text, true)
	assert.Equal(t, []string{"stress", "hair", "hair loss"}, plain.identified)
	assert.Equal(t, plain.identified, deduped.identified)
	assert.Equal(t, plain.tags, deduped.tags)
	// hair has two hits, so its tags lead
	assert.Equal(t, "Biotin", plain.tags[0])
}

func TestSymptomSearch(t *testing.T) {
	melatonin := th.NewProduct("Melatonin 5mg", 6)
	magnesium := th.NewProduct("Magnesium Glycinate", 12)
	magnesium.Tags = "sleep aid,relaxation"
	iron := th.NewProduct("Gentle Iron", 9)
	unrelated := th.NewProduct("Whey Protein", 40)

	svc := newRecommendationService(th.NewFakeCatalog(iron, unrelated, magnesium, melatonin), th.NewFakeOrders(), th.NewFakeProfiles())
	res, err := svc.SymptomSearch(context.Background(), "I feel tired and can't sleep")
	require.NoError(t, err)

	assert.Equal(t, "I feel tired and can't sleep", res.SymptomDescription)
	ids := summaryIDs(res.SuggestedProducts)
	require.Len(t, ids, 3)
	// tag order decides: Melatonin, then Magnesium, then Iron
	assert.Equal(t, melatonin.ID, ids[0])
	assert.Equal(t, magnesium.ID, ids[1])
	assert.Equal(t, iron.ID, ids[2])
}

func TestChatSeverityAndAdvice(t *testing.T) {
	svc := newRecommendationService(th.NewFakeCatalog(), th.NewFakeOrders(), th.NewFakeProfiles())

	res, err := svc.Chat(context.Background(), "Severe joint pain for weeks")
	require.NoError(t, err)
	assert.Equal(t, knowledge.SeverityConsultDoctor, res.Severity)
	assert.Equal(t, []string{"joint", "pain"}, res.IdentifiedSymptoms)
	assert.Equal(t, []string{
		"Which joints are affected?",
		"Is the pain worse in the morning or after activity?",
		"Have you tried any anti-inflammatory supplements before?",
	}, res.FollowUpQuestions)
	assert.Len(t, res.LifestyleTips, 4)
	assert.True(t, strings.HasPrefix(res.Message, "Based on your description, I've identified symptoms related to: joint, pain."))
	assert.Contains(t, res.Message, "Please consult a healthcare provider.")
	assert.NotContains(t, res.Message, "I've found")

	res, err = svc.Chat(context.Background(), "recurring stomach bloating")
	require.NoError(t, err)
	assert.Equal(t, knowledge.SeverityChronic, res.Severity)
	assert.Contains(t, res.Message, "These symptoms seem persistent.")
}

func TestChatUnidentified(t *testing.T) {
	svc := newRecommendationService(th.NewFakeCatalog(), th.NewFakeOrders(), th.NewFakeProfiles())

	res, err := svc.Chat(context.Background(), "hello there")
	require.NoError(t, err)
	assert.Equal(t, knowledge.SeverityDefault, res.Severity)
	assert.Empty(t, res.IdentifiedSymptoms)
	assert.Equal(t, knowledge.New().FallbackFollowUps, res.FollowUpQuestions)
	assert.Equal(t, knowledge.New().FallbackLifestyle, res.LifestyleTips)
	assert.True(t, strings.HasPrefix(res.Message, "I couldn't identify specific symptoms"))
}

func TestChatCapsProducts(t *testing.T) {
	catalog := th.NewFakeCatalog()
	for i := 0; i < 20; i++ {
		p := th.NewProduct("Energy Blend", 10)
		p.Slug = p.ID.String()
		catalog.Products = append(catalog.Products, p)
	}
	svc := newRecommendationService(catalog, th.NewFakeOrders(), th.NewFakeProfiles())

	res, err := svc.Chat(context.Background(), "always tired")
	require.NoError(t, err)
	assert.Len(t, res.SuggestedProducts, chatProductLimit)
	assert.Contains(t, res.Message, "I've found 12 products")

	search, err := svc.SymptomSearch(context.Background(), "always tired")
	require.NoError(t, err)
	assert.Len(t, search.SuggestedProducts, 20)
}
