package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/models"
	"github.com/pageza/healthshop/backend/internal/service"
)

// OrderStore reads purchase history.
type OrderStore struct {
	db  *gorm.DB
	log *logger.Logger
}

var _ service.OrderStore = (*OrderStore)(nil)

// NewOrderStore creates a new OrderStore instance
func NewOrderStore(db *gorm.DB, baseLog *logger.Logger) *OrderStore {
	return &OrderStore{db: db, log: baseLog.With("store", "orders")}
}

func (s *OrderStore) OrdersForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Order, error) {
	orders := []*models.Order{}
	q := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC, id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&orders).Error; err != nil {
		s.log.Error("failed to load orders", "user_id", userID, "error", err)
		return nil, err
	}
	return orders, nil
}

// PurchasedProductIDs lists the product of every order line the user ever
// placed, oldest order first. Repeat purchases appear once per line.
func (s *OrderStore) PurchasedProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	err := s.db.WithContext(ctx).
		Table("order_items").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ?", userID).
		Order("orders.created_at ASC, order_items.id ASC").
		Pluck("order_items.product_id", &ids).Error
	if err != nil {
		s.log.Error("failed to load purchased products", "user_id", userID, "error", err)
		return nil, err
	}
	return ids, nil
}

// UsersWithOverlappingPurchases finds other users who bought any of
// productIDs, earliest buyer first.
func (s *OrderStore) UsersWithOverlappingPurchases(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID) ([]uuid.UUID, error) {
	users := []uuid.UUID{}
	if len(productIDs) == 0 {
		return users, nil
	}
	err := s.db.WithContext(ctx).
		Table("orders").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Where("orders.user_id <> ? AND order_items.product_id IN ?", userID, productIDs).
		Group("orders.user_id").
		Order("MIN(orders.created_at) ASC, orders.user_id ASC").
		Pluck("orders.user_id", &users).Error
	if err != nil {
		s.log.Error("failed to load similar users", "user_id", userID, "error", err)
		return nil, err
	}
	return users, nil
}

func (s *OrderStore) CoPurchasedProductIDs(ctx context.Context, productID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	err := s.db.WithContext(ctx).
		Table("order_items AS anchor").
		Joins("JOIN order_items AS other ON other.order_id = anchor.order_id AND other.product_id <> anchor.product_id").
		Where("anchor.product_id = ?", productID).
		Group("other.product_id").
		Order("COUNT(*) DESC, other.product_id ASC").
		Pluck("other.product_id", &ids).Error
	if err != nil {
		s.log.Error("failed to load co-purchased products", "product_id", productID, "error", err)
		return nil, err
	}
	return ids, nil
}
