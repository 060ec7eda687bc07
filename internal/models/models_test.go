package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	require.NoError(t, db.AutoMigrate(&User{}, &Category{}, &Product{}, &HealthProfile{}, &Order{}, &OrderItem{}))
	return db
}

func TestProductSearchText(t *testing.T) {
	p := &Product{
		Name:        "Vitamin D3",
		Ingredients: "Cholecalciferol",
		Tags:        "Immunity,Bones",
		HealthGoals: "Bone Health",
		Description: "Daily Sunshine",
	}
	first := p.SearchText()
	assert.Equal(t, "vitamin d3 cholecalciferol immunity,bones bone health", first)
	assert.Equal(t, first, p.SearchText())
	assert.Equal(t, "vitamin d3 cholecalciferol immunity,bones daily sunshine", p.SearchTextWithDescription())
	assert.NotContains(t, p.SearchTextWithDescription(), "bone health")

	empty := &Product{Name: "Zinc"}
	assert.Equal(t, "zinc   ", empty.SearchText())
}

func TestProductPricing(t *testing.T) {
	p := &Product{Price: 20}
	assert.False(t, p.HasDiscount())
	assert.Equal(t, 20.0, p.EffectivePrice())

	d := 15.5
	p.DiscountPrice = &d
	assert.True(t, p.HasDiscount())
	assert.Equal(t, 15.5, p.EffectivePrice())
}

func TestProductContainsAllergen(t *testing.T) {
	p := &Product{AllergenInfo: "Contains Soy,Contains Dairy"}
	assert.True(t, p.ContainsAllergen([]string{"Gluten", "dairy"}))
	assert.False(t, p.ContainsAllergen([]string{"Gluten"}))
	assert.False(t, p.ContainsAllergen(nil))

	none := &Product{Ingredients: "soy lecithin"}
	assert.False(t, none.ContainsAllergen([]string{"soy"}))
}

func TestDetermineAgeGroup(t *testing.T) {
	cases := []struct {
		age  int
		want AgeGroup
	}{
		{12, AgeGroupTeen},
		{17, AgeGroupTeen},
		{18, AgeGroupYoungAdult},
		{29, AgeGroupYoungAdult},
		{30, AgeGroupAdult},
		{44, AgeGroupAdult},
		{45, AgeGroupMiddleAged},
		{59, AgeGroupMiddleAged},
		{60, AgeGroupSenior},
		{90, AgeGroupSenior},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetermineAgeGroup(tc.age), "age %d", tc.age)
	}
	assert.True(t, AgeGroupSenior.Valid())
	assert.False(t, AgeGroup("ELDER").Valid())
}

func TestHealthProfileLists(t *testing.T) {
	var nilProfile *HealthProfile
	assert.False(t, nilProfile.HasGoals())

	p := &HealthProfile{HealthGoals: "Sleep, Energy,", Allergies: ""}
	assert.True(t, p.HasGoals())
	assert.Equal(t, []string{"Sleep", "Energy"}, p.Goals())
	assert.Empty(t, p.AllergyList())
}

func TestBeforeCreateAssignsIDs(t *testing.T) {
	db := setupTestDB(t)

	cat := &Category{Name: "Vitamins", Slug: "vitamins", Active: true}
	require.NoError(t, db.Create(cat).Error)
	assert.NotEqual(t, uuid.Nil, cat.ID)

	product := &Product{Name: "Vitamin C", Slug: "vitamin-c", Price: 9.99, CategoryID: &cat.ID, Active: true}
	require.NoError(t, db.Create(product).Error)
	assert.NotEqual(t, uuid.Nil, product.ID)

	order := &Order{UserID: uuid.New(), TotalAmount: 9.99, Items: []OrderItem{{ProductID: product.ID, Quantity: 1, UnitPrice: 9.99}}}
	require.NoError(t, db.Create(order).Error)
	assert.NotEqual(t, uuid.Nil, order.Items[0].ID)
	assert.Equal(t, order.ID, order.Items[0].OrderID)

	var loaded Product
	require.NoError(t, db.Preload("Category").First(&loaded, "id = ?", product.ID).Error)
	assert.Equal(t, "Vitamins", loaded.CategoryName())
}
