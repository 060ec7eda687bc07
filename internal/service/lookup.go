package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pageza/healthshop/backend/internal/models"
)

// lookupConcurrency bounds parallel catalog lookups per request.
const lookupConcurrency = 8

// resolveProducts loads ids concurrently. The result is index-aligned with
// ids and unknown ids leave a nil slot, so callers iterate in input order.
// Repeated ids are fetched once and share a pointer.
func resolveProducts(ctx context.Context, catalog CatalogStore, ids []uuid.UUID) ([]*models.Product, error) {
	unique := uniqueIDs(ids)
	found := make([]*models.Product, len(unique))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupConcurrency)
	for i, id := range unique {
		i, id := i, id
		g.Go(func() error {
			p, err := catalog.FindByID(gctx, id)
			if err != nil {
				return fmt.Errorf("find product %s: %w", id, err)
			}
			found[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*models.Product, len(unique))
	for i, id := range unique {
		byID[id] = found[i]
	}
	out := make([]*models.Product, len(ids))
	for i, id := range ids {
		out[i] = byID[id]
	}
	return out, nil
}

// resolveExisting is resolveProducts with unknown ids dropped.
func resolveExisting(ctx context.Context, catalog CatalogStore, ids []uuid.UUID) ([]*models.Product, error) {
	resolved, err := resolveProducts(ctx, catalog, ids)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Product, 0, len(resolved))
	for _, p := range resolved {
		if p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func idSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func limitProducts(products []*models.Product, n int) []*models.Product {
	if len(products) > n {
		return products[:n]
	}
	return products
}

// roundCents rounds a currency amount half away from zero to two decimals.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
