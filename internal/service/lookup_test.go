package service

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/healthshop/backend/internal/models"
	th "github.com/pageza/healthshop/backend/internal/testhelpers"
)

type countingCatalog struct {
	*th.FakeCatalog
	lookups atomic.Int32
}

func (c *countingCatalog) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	c.lookups.Add(1)
	return c.FakeCatalog.FindByID(ctx, id)
}

func TestResolveProductsExpandsRepeats(t *testing.T) {
	a, b := th.NewProduct("A", 1), th.NewProduct("B", 1)
	catalog := &countingCatalog{FakeCatalog: th.NewFakeCatalog(a, b)}
	missing := uuid.New()

	got, err := resolveProducts(context.Background(), catalog, []uuid.UUID{a.ID, b.ID, a.ID, missing, a.ID})
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Same(t, a, got[0])
	assert.Same(t, b, got[1])
	assert.Same(t, a, got[2])
	assert.Nil(t, got[3])
	assert.Same(t, a, got[4])
	assert.Equal(t, int32(3), catalog.lookups.Load())

	existing, err := resolveExisting(context.Background(), catalog, []uuid.UUID{a.ID, missing, a.ID})
	require.NoError(t, err)
	assert.Equal(t, []*models.Product{a, a}, existing)
}
