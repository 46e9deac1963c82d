package persistence

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/inventory"
	"github.com/shopadmin/backend/internal/domain/shared"
)

func setupInventoryTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&catalog.Category{}, &catalog.Product{}, &catalog.ProductImage{}, &inventory.InventoryItem{})
	require.NoError(t, err)

	return db
}

func seedInventoryItem(t *testing.T, repo *GormInventoryRepository, quantity, threshold int) *inventory.InventoryItem {
	t.Helper()
	item, err := inventory.NewInventoryItem(uuid.New(), quantity, threshold)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), item))
	return item
}

func TestGormInventoryRepository_FindByProductID(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewGormInventoryRepository(db)
	ctx := context.Background()

	item := seedInventoryItem(t, repo, 12, 5)

	t.Run("finds the stock record", func(t *testing.T) {
		found, err := repo.FindByProductID(ctx, item.ProductID)
		require.NoError(t, err)
		assert.Equal(t, 12, found.Quantity)
	})

	t.Run("returns not found for untracked product", func(t *testing.T) {
		_, err := repo.FindByProductID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormInventoryRepository_FindByProductIDs(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewGormInventoryRepository(db)
	ctx := context.Background()

	a := seedInventoryItem(t, repo, 3, 0)
	b := seedInventoryItem(t, repo, 7, 0)

	t.Run("untracked ids are simply absent", func(t *testing.T) {
		items, err := repo.FindByProductIDs(ctx, []uuid.UUID{a.ProductID, b.ProductID, uuid.New()})
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		items, err := repo.FindByProductIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestGormInventoryRepository_FindPage(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewGormInventoryRepository(db)
	ctx := context.Background()

	for i := 1; i <= 8; i++ {
		seedInventoryItem(t, repo, i, 4)
	}

	t.Run("filters low-stock rows", func(t *testing.T) {
		q := shared.ListQuery{Page: 1, Limit: shared.LimitAll}
		q.Predicate = q.Predicate.AndCompare("quantity", shared.CompareLTE, 4)
		items, total, err := repo.FindPage(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		for _, it := range items {
			assert.True(t, it.IsLowStock())
		}
	})

	t.Run("sorts by quantity", func(t *testing.T) {
		q := shared.ListQuery{SortBy: "quantity", SortOrder: "desc", Page: 1, Limit: 3}
		items, total, err := repo.FindPage(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(8), total)
		require.Len(t, items, 3)
		assert.Equal(t, 8, items[0].Quantity)
		assert.Equal(t, 6, items[2].Quantity)
	})
}

func TestGormTransactionScope_Execute(t *testing.T) {
	db := setupInventoryTestDB(t)
	scope := NewGormTransactionScope(db)
	repo := NewGormInventoryRepository(db)
	ctx := context.Background()

	items := make([]*inventory.InventoryItem, 3)
	for i := range items {
		items[i] = seedInventoryItem(t, repo, 10, 0)
	}

	t.Run("commits when every write succeeds", func(t *testing.T) {
		err := scope.Execute(ctx, func(repos inventory.TxRepositories) error {
			for i, item := range items {
				fresh, err := repos.Inventory().FindByProductID(ctx, item.ProductID)
				if err != nil {
					return err
				}
				if err := fresh.SetQuantity(100 + i); err != nil {
					return err
				}
				if err := repos.Inventory().Save(ctx, fresh); err != nil {
					return err
				}
			}
			return nil
		})
		require.NoError(t, err)

		for i, item := range items {
			found, err := repo.FindByProductID(ctx, item.ProductID)
			require.NoError(t, err)
			assert.Equal(t, 100+i, found.Quantity)
		}
	})

	t.Run("rolls back every write when one fails", func(t *testing.T) {
		err := scope.Execute(ctx, func(repos inventory.TxRepositories) error {
			fresh, err := repos.Inventory().FindByProductID(ctx, items[0].ProductID)
			if err != nil {
				return err
			}
			if err := fresh.SetQuantity(999); err != nil {
				return err
			}
			if err := repos.Inventory().Save(ctx, fresh); err != nil {
				return err
			}
			// Second product is untracked, the whole batch must fail.
			_, err = repos.Inventory().FindByProductID(ctx, uuid.New())
			return fmt.Errorf("updating stock: %w", err)
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		found, err := repo.FindByProductID(ctx, items[0].ProductID)
		require.NoError(t, err)
		assert.Equal(t, 100, found.Quantity, "first update must not survive the rollback")
	})

	t.Run("exposes product repository inside the transaction", func(t *testing.T) {
		err := scope.Execute(ctx, func(repos inventory.TxRepositories) error {
			_, err := repos.Products().FindByID(ctx, uuid.New())
			return err
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
