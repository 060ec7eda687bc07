package store

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/models"
	"github.com/pageza/healthshop/backend/internal/service"
)

const (
	// catalogOrder keeps searches in catalog insertion order.
	catalogOrder    = "products.created_at ASC, products.id ASC"
	popularityOrder = "products.purchase_count DESC, products.id ASC"
	newestOrder     = "products.created_at DESC, products.id ASC"
)

// CatalogStore reads active products with their category preloaded.
type CatalogStore struct {
	db  *gorm.DB
	log *logger.Logger
}

var _ service.CatalogStore = (*CatalogStore)(nil)

// NewCatalogStore creates a new CatalogStore instance
func NewCatalogStore(db *gorm.DB, baseLog *logger.Logger) *CatalogStore {
	return &CatalogStore{db: db, log: baseLog.With("store", "catalog")}
}

func (s *CatalogStore) active(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&models.Product{}).
		Preload("Category").
		Where("products.active = ?", true)
}

// FindByID returns (nil, nil) for unknown or inactive products.
func (s *CatalogStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	err := s.active(ctx).Where("products.id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		s.log.Error("failed to load product", "product_id", id, "error", err)
		return nil, err
	}
	return &p, nil
}

// SearchByTag matches the keyword against tags, health goals, name and
// ingredients, case-insensitively.
func (s *CatalogStore) SearchByTag(ctx context.Context, tag string) ([]*models.Product, error) {
	pattern := likePattern(tag)
	return s.list(s.active(ctx).
		Where("LOWER(products.tags) LIKE ? ESCAPE '\\' OR LOWER(products.health_goals) LIKE ? ESCAPE '\\' OR "+
			"LOWER(products.name) LIKE ? ESCAPE '\\' OR LOWER(products.ingredients) LIKE ? ESCAPE '\\'",
			pattern, pattern, pattern, pattern).
		Order(catalogOrder), "search_by_tag")
}

func (s *CatalogStore) SearchByHealthGoal(ctx context.Context, goal string) ([]*models.Product, error) {
	return s.list(s.active(ctx).
		Where("LOWER(products.health_goals) LIKE ? ESCAPE '\\'", likePattern(goal)).
		Order(catalogOrder), "search_by_health_goal")
}

func (s *CatalogStore) ListFeatured(ctx context.Context) ([]*models.Product, error) {
	return s.list(s.active(ctx).
		Where("products.featured = ?", true).
		Order(catalogOrder), "list_featured")
}

func (s *CatalogStore) ListTrending(ctx context.Context, limit int) ([]*models.Product, error) {
	return s.list(limited(s.active(ctx).Order(popularityOrder), limit), "list_trending")
}

func (s *CatalogStore) ListNewArrivals(ctx context.Context, limit int) ([]*models.Product, error) {
	return s.list(limited(s.active(ctx).Order(newestOrder), limit), "list_new_arrivals")
}

func (s *CatalogStore) ListPopularByAgeGroup(ctx context.Context, ageGroup string, limit int) ([]*models.Product, error) {
	q := s.active(ctx).
		Where("products.suitable_age_groups LIKE ?", "%"+ageGroup+"%").
		Order(popularityOrder)
	return s.list(limited(q, limit), "list_popular_by_age_group")
}

func (s *CatalogStore) FindAll(ctx context.Context) ([]*models.Product, error) {
	return s.list(s.active(ctx).Order(catalogOrder), "find_all")
}

func (s *CatalogStore) list(q *gorm.DB, op string) ([]*models.Product, error) {
	products := []*models.Product{}
	if err := q.Find(&products).Error; err != nil {
		s.log.Error("catalog query failed", "op", op, "error", err)
		return nil, err
	}
	return products, nil
}

func limited(q *gorm.DB, limit int) *gorm.DB {
	if limit > 0 {
		return q.Limit(limit)
	}
	return q
}

// likePattern lowercases the keyword and escapes LIKE wildcards.
func likePattern(keyword string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(keyword)) + "%"
}
