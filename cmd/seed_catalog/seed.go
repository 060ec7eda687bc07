package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/models"
)

type summary struct {
	Categories int
	Products   int
	Users      int
	Orders     int
	// UserIDs maps username to id for every seeded user, new or existing.
	UserIDs map[string]uuid.UUID
}

// seed inserts the demo catalog and shoppers. Rows that already exist (by
// slug or email) are left alone, so running it twice is harmless.
func seed(ctx context.Context, db *gorm.DB, now time.Time, log *logger.Logger) (*summary, error) {
	sum := &summary{UserIDs: make(map[string]uuid.UUID, len(users))}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cats, err := seedCategories(tx, now, sum)
		if err != nil {
			return err
		}
		byName, err := seedProducts(tx, cats, now, sum, log)
		if err != nil {
			return err
		}
		return seedUsers(tx, byName, now, sum, log)
	})
	if err != nil {
		return nil, err
	}
	return sum, nil
}

func seedCategories(tx *gorm.DB, now time.Time, sum *summary) (map[string]*models.Category, error) {
	out := make(map[string]*models.Category, len(categories))
	for _, name := range categories {
		c := &models.Category{Name: name, Slug: slugify(name), Active: true, CreatedAt: now}
		res := tx.Where("slug = ?", c.Slug).FirstOrCreate(c)
		if res.Error != nil {
			return nil, fmt.Errorf("create category %s: %w", name, res.Error)
		}
		sum.Categories += int(res.RowsAffected)
		out[name] = c
	}
	return out, nil
}

func seedProducts(tx *gorm.DB, cats map[string]*models.Category, now time.Time, sum *summary, log *logger.Logger) (map[string]*models.Product, error) {
	out := make(map[string]*models.Product, len(products))
	for i, ps := range products {
		p := &models.Product{
			Name:              ps.name,
			Slug:              slugify(ps.name),
			Description:       ps.description,
			Ingredients:       ps.ingredients,
			Benefits:          ps.benefits,
			Price:             ps.price,
			Brand:             ps.brand,
			Tags:              ps.tags,
			HealthGoals:       ps.goals,
			SuitableAgeGroups: ps.ageGroups,
			DietaryInfo:       ps.dietary,
			AllergenInfo:      ps.allergens,
			Dosage:            ps.dosage,
			AverageRating:     ps.rating,
			ReviewCount:       ps.reviews,
			PurchaseCount:     ps.purchases,
			Featured:          ps.featured,
			Active:            true,
			// spaced out so "new arrivals" has a stable order
			CreatedAt: now.Add(-time.Duration(len(products)-i) * 24 * time.Hour),
		}
		if ps.discount > 0 {
			d := ps.discount
			p.DiscountPrice = &d
		}
		if c, ok := cats[ps.category]; ok {
			p.CategoryID = &c.ID
		}

		res := tx.Omit("Category").Where("slug = ?", p.Slug).FirstOrCreate(p)
		if res.Error != nil {
			return nil, fmt.Errorf("create product %s: %w", ps.name, res.Error)
		}
		if res.RowsAffected > 0 {
			sum.Products++
			log.Debug("created product", "name", p.Name)
		}
		out[ps.name] = p
	}
	return out, nil
}

func seedUsers(tx *gorm.DB, byName map[string]*models.Product, now time.Time, sum *summary, log *logger.Logger) error {
	for _, us := range users {
		var existing models.User
		err := tx.Where("email = ?", us.email).Limit(1).Find(&existing).Error
		if err != nil {
			return fmt.Errorf("look up user %s: %w", us.email, err)
		}
		if existing.ID != uuid.Nil {
			log.Info("user already exists, skipping", "email", us.email)
			sum.UserIDs[us.username] = existing.ID
			continue
		}

		u := &models.User{Username: us.username, Email: us.email, CreatedAt: now, UpdatedAt: now}
		if err := tx.Create(u).Error; err != nil {
			return fmt.Errorf("create user %s: %w", us.email, err)
		}
		sum.Users++
		sum.UserIDs[us.username] = u.ID

		age := us.age
		profile := &models.HealthProfile{
			UserID:            u.ID,
			Age:               &age,
			Gender:            us.gender,
			HealthGoals:       us.goals,
			Allergies:         us.allergies,
			MedicalConditions: us.conditions,
			AgeGroup:          models.DetermineAgeGroup(age),
		}
		if err := tx.Create(profile).Error; err != nil {
			return fmt.Errorf("create profile for %s: %w", us.email, err)
		}

		for i, names := range us.orders {
			// one order every 30 days, ending a week ago
			placed := now.AddDate(0, 0, -7-30*(len(us.orders)-1-i))
			o := &models.Order{UserID: u.ID, CreatedAt: placed, UpdatedAt: placed}
			for _, name := range names {
				p, ok := byName[name]
				if !ok {
					return fmt.Errorf("order for %s references unknown product %q", us.email, name)
				}
				o.Items = append(o.Items, models.OrderItem{ProductID: p.ID, Quantity: 1, UnitPrice: p.EffectivePrice()})
				o.TotalAmount += p.EffectivePrice()
			}
			if err := tx.Omit("Items.Product").Create(o).Error; err != nil {
				return fmt.Errorf("create order for %s: %w", us.email, err)
			}
			sum.Orders++
		}
		log.Info("created demo user", "username", us.username, "orders", len(us.orders))
	}
	return nil
}

func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
