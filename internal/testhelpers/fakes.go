package testhelpers

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/healthshop/backend/internal/models"
)

// FakeCatalog is an in-memory catalog. Inactive products are invisible to
// every method, FindByID included. Searches return products in insertion
// order; listings that rank do so with a stable sort over that order.
type FakeCatalog struct {
	Products []*models.Product
	Err      error
}

// NewFakeCatalog creates a catalog holding products.
func NewFakeCatalog(products ...*models.Product) *FakeCatalog {
	return &FakeCatalog{Products: products}
}

func (c *FakeCatalog) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	for _, p := range c.Products {
		if p.ID == id && p.Active {
			return p, nil
		}
	}
	return nil, nil
}

func (c *FakeCatalog) SearchByTag(ctx context.Context, tag string) ([]*models.Product, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	needle := strings.ToLower(tag)
	return c.filter(func(p *models.Product) bool {
		return strings.Contains(strings.ToLower(p.Tags), needle) ||
			strings.Contains(strings.ToLower(p.HealthGoals), needle) ||
			strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Ingredients), needle)
	}), nil
}

func (c *FakeCatalog) SearchByHealthGoal(ctx context.Context, goal string) ([]*models.Product, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	needle := strings.ToLower(goal)
	return c.filter(func(p *models.Product) bool {
		return strings.Contains(strings.ToLower(p.HealthGoals), needle)
	}), nil
}

func (c *FakeCatalog) ListFeatured(ctx context.Context) ([]*models.Product, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.filter(func(p *models.Product) bool { return p.Featured }), nil
}

func (c *FakeCatalog) ListTrending(ctx context.Context, limit int) ([]*models.Product, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	out := c.filter(func(*models.Product) bool { return true })
	sort.SliceStable(out, func(i, j int) bool { return out[i].PurchaseCount > out[j].PurchaseCount })
	return capProducts(out, limit), nil
}

func (c *FakeCatalog) ListNewArrivals(ctx context.Context, limit int) ([]*models.Product, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	out := c.filter(func(*models.Product) bool { return true })
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return capProducts(out, limit), nil
}

func (c *FakeCatalog) ListPopularByAgeGroup(ctx context.Context, ageGroup string, limit int) ([]*models.Product, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	out := c.filter(func(p *models.Product) bool {
		return strings.Contains(p.SuitableAgeGroups, ageGroup)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].PurchaseCount > out[j].PurchaseCount })
	return capProducts(out, limit), nil
}

func (c *FakeCatalog) FindAll(ctx context.Context) ([]*models.Product, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.filter(func(*models.Product) bool { return true }), nil
}

func (c *FakeCatalog) filter(keep func(*models.Product) bool) []*models.Product {
	out := []*models.Product{}
	for _, p := range c.Products {
		if p.Active && keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func capProducts(products []*models.Product, limit int) []*models.Product {
	if limit > 0 && len(products) > limit {
		return products[:limit]
	}
	return products
}

// FakeOrders is an in-memory order history.
type FakeOrders struct {
	Orders []*models.Order
	Err    error
}

// NewFakeOrders creates an order store holding orders.
func NewFakeOrders(orders ...*models.Order) *FakeOrders {
	return &FakeOrders{Orders: orders}
}

func (o *FakeOrders) OrdersForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Order, error) {
	if o.Err != nil {
		return nil, o.Err
	}
	var out []*models.Order
	for _, ord := range o.Orders {
		if ord.UserID == userID {
			out = append(out, ord)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (o *FakeOrders) PurchasedProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if o.Err != nil {
		return nil, o.Err
	}
	return o.purchased(userID), nil
}

func (o *FakeOrders) purchased(userID uuid.UUID) []uuid.UUID {
	var mine []*models.Order
	for _, ord := range o.Orders {
		if ord.UserID == userID {
			mine = append(mine, ord)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool { return mine[i].CreatedAt.Before(mine[j].CreatedAt) })
	out := []uuid.UUID{}
	for _, ord := range mine {
		for _, it := range ord.Items {
			out = append(out, it.ProductID)
		}
	}
	return out
}

func (o *FakeOrders) UsersWithOverlappingPurchases(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID) ([]uuid.UUID, error) {
	if o.Err != nil {
		return nil, o.Err
	}
	wanted := make(map[uuid.UUID]struct{}, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = struct{}{}
	}
	seen := make(map[uuid.UUID]struct{})
	out := []uuid.UUID{}
	for _, ord := range o.Orders {
		if ord.UserID == userID {
			continue
		}
		if _, ok := seen[ord.UserID]; ok {
			continue
		}
		for _, it := range ord.Items {
			if _, ok := wanted[it.ProductID]; ok {
				seen[ord.UserID] = struct{}{}
				out = append(out, ord.UserID)
				break
			}
		}
	}
	return out, nil
}

func (o *FakeOrders) CoPurchasedProductIDs(ctx context.Context, productID uuid.UUID) ([]uuid.UUID, error) {
	if o.Err != nil {
		return nil, o.Err
	}
	counts := make(map[uuid.UUID]int)
	var order []uuid.UUID
	for _, ord := range o.Orders {
		if !orderContains(ord, productID) {
			continue
		}
		for _, it := range ord.Items {
			if it.ProductID == productID {
				continue
			}
			if _, ok := counts[it.ProductID]; !ok {
				order = append(order, it.ProductID)
			}
			counts[it.ProductID]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if order == nil {
		return []uuid.UUID{}, nil
	}
	return order, nil
}

func orderContains(o *models.Order, productID uuid.UUID) bool {
	for _, it := range o.Items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// FakeProfiles is an in-memory profile store safe for concurrent use.
type FakeProfiles struct {
	mu       sync.Mutex
	Profiles map[uuid.UUID]*models.HealthProfile
	Err      error
}

// NewFakeProfiles creates a profile store holding profiles keyed by user.
func NewFakeProfiles(profiles ...*models.HealthProfile) *FakeProfiles {
	f := &FakeProfiles{Profiles: make(map[uuid.UUID]*models.HealthProfile)}
	for _, p := range profiles {
		f.Profiles[p.UserID] = p
	}
	return f
}

func (f *FakeProfiles) ProfileForUser(ctx context.Context, userID uuid.UUID) (*models.HealthProfile, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Profiles[userID], nil
}

func (f *FakeProfiles) SaveProfile(ctx context.Context, profile *models.HealthProfile) error {
	if f.Err != nil {
		return f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	f.Profiles[profile.UserID] = profile
	return nil
}

// NewProduct returns an active product with a fresh id.
func NewProduct(name string, price float64) *models.Product {
	return &models.Product{
		ID:        uuid.New(),
		Name:      name,
		Slug:      strings.ReplaceAll(strings.ToLower(name), " ", "-"),
		Price:     price,
		Active:    true,
		CreatedAt: time.Now(),
	}
}

// NewCategory returns a category with a fresh id.
func NewCategory(name string) *models.Category {
	return &models.Category{
		ID:     uuid.New(),
		Name:   name,
		Slug:   strings.ReplaceAll(strings.ToLower(name), " ", "-"),
		Active: true,
	}
}

// InCategory assigns c to every product.
func InCategory(c *models.Category, products ...*models.Product) {
	for _, p := range products {
		p.Category = c
		p.CategoryID = &c.ID
	}
}

// NewOrder builds an order for userID placed at createdAt, one unit of each
// product, totalled at effective prices.
func NewOrder(userID uuid.UUID, createdAt time.Time, products ...*models.Product) *models.Order {
	o := &models.Order{ID: uuid.New(), UserID: userID, CreatedAt: createdAt, UpdatedAt: createdAt}
	for _, p := range products {
		o.Items = append(o.Items, models.OrderItem{
			ID:        uuid.New(),
			OrderID:   o.ID,
			ProductID: p.ID,
			Quantity:  1,
			UnitPrice: p.EffectivePrice(),
		})
		o.TotalAmount += p.EffectivePrice()
	}
	return o
}

// NewHealthProfile returns a profile for userID with the given goals.
func NewHealthProfile(userID uuid.UUID, goals ...string) *models.HealthProfile {
	return &models.HealthProfile{
		ID:          uuid.New(),
		UserID:      userID,
		HealthGoals: strings.Join(goals, ","),
	}
}

// MemoryCache is a map-backed cache storing JSON like the redis cache does.
type MemoryCache struct {
	mu      sync.Mutex
	Entries map[string][]byte
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{Entries: make(map[string][]byte)}
}

func (m *MemoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	data, ok := m.Entries[key]
	m.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (m *MemoryCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries[key] = data
	return nil
}

func (m *MemoryCache) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.Entries, k)
	}
	return nil
}

// Has reports whether key is cached.
func (m *MemoryCache) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Entries[key]
	return ok
}
