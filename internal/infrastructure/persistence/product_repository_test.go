package persistence

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/shared"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&catalog.Category{}, &catalog.Product{}, &catalog.ProductImage{})
	require.NoError(t, err)

	return db
}

func seedProduct(t *testing.T, repo *GormProductRepository, sku, title string, price int64, active bool) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(sku, title, decimal.NewFromInt(price))
	require.NoError(t, err)
	if !active {
		p.Deactivate()
	}
	require.NoError(t, repo.Save(context.Background(), p))
	return p
}

func TestGormProductRepository_SaveAndFindByID(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	t.Run("round-trips a product with images", func(t *testing.T) {
		p, err := catalog.NewProduct("hoodie-01", "Zip Hoodie", decimal.NewFromInt(59))
		require.NoError(t, err)
		p.ReplaceImages([]catalog.ProductImage{
			{URL: "https://cdn.example.com/b.jpg", SortOrder: 5},
			{URL: "https://cdn.example.com/a.jpg", SortOrder: 1, IsMain: true},
		})
		require.NoError(t, repo.Save(ctx, p))

		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "HOODIE-01", found.SKU)
		require.Len(t, found.Images, 2)
		assert.Equal(t, "https://cdn.example.com/a.jpg", found.Images[0].URL)
		main := found.MainImage()
		require.NotNil(t, main)
		assert.Equal(t, "https://cdn.example.com/a.jpg", main.URL)
	})

	t.Run("replacing images removes stale rows", func(t *testing.T) {
		p, err := catalog.NewProduct("hoodie-02", "Pullover Hoodie", decimal.NewFromInt(49))
		require.NoError(t, err)
		p.ReplaceImages([]catalog.ProductImage{
			{URL: "https://cdn.example.com/old-1.jpg"},
			{URL: "https://cdn.example.com/old-2.jpg"},
		})
		require.NoError(t, repo.Save(ctx, p))

		p.ReplaceImages([]catalog.ProductImage{
			{URL: "https://cdn.example.com/new.jpg", IsMain: true},
		})
		require.NoError(t, repo.Save(ctx, p))

		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, found.Images, 1)
		assert.Equal(t, "https://cdn.example.com/new.jpg", found.Images[0].URL)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepository_ExistsBySKU(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	seedProduct(t, repo, "TEE-100", "Basic Tee", 19, true)

	exists, err := repo.ExistsBySKU(ctx, "tee-100")
	require.NoError(t, err)
	assert.True(t, exists, "SKU lookup should be case-insensitive")

	exists, err = repo.ExistsBySKU(ctx, "TEE-999")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormProductRepository_FindPage(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	for i := 1; i <= 25; i++ {
		seedProduct(t, repo, fmt.Sprintf("SKU-%03d", i), fmt.Sprintf("Widget %03d", i), int64(i), i%5 != 0)
	}

	t.Run("pages partition the result set", func(t *testing.T) {
		seen := map[string]bool{}
		for page := 1; page <= 3; page++ {
			q := shared.ListQuery{SortBy: "sku", SortOrder: "asc", Page: page, Limit: 10}
			items, total, err := repo.FindPage(ctx, q)
			require.NoError(t, err)
			assert.Equal(t, int64(25), total)
			for _, it := range items {
				assert.False(t, seen[it.SKU], "product %s appeared on two pages", it.SKU)
				seen[it.SKU] = true
			}
		}
		assert.Len(t, seen, 25)
	})

	t.Run("fetch-all sentinel returns every row", func(t *testing.T) {
		q := shared.ListQuery{Page: 1, Limit: shared.LimitAll}
		items, total, err := repo.FindPage(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(25), total)
		assert.Len(t, items, 25)
	})

	t.Run("filters by active flag", func(t *testing.T) {
		q := shared.ListQuery{Page: 1, Limit: shared.LimitAll}
		q.Predicate = q.Predicate.AndEq("is_active", false)
		items, total, err := repo.FindPage(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		for _, it := range items {
			assert.False(t, it.IsActive)
		}
	})

	t.Run("filters by price range", func(t *testing.T) {
		q := shared.ListQuery{Page: 1, Limit: shared.LimitAll}
		q.Predicate = q.Predicate.
			AndCompare("price", shared.CompareGTE, decimal.NewFromInt(10)).
			AndCompare("price", shared.CompareLTE, decimal.NewFromInt(20))
		_, total, err := repo.FindPage(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(11), total)
	})

	t.Run("search matches case-insensitively across fields", func(t *testing.T) {
		q := shared.ListQuery{Page: 1, Limit: shared.LimitAll}
		q.Predicate = q.Predicate.AndSearch("wIdGeT 00", "title", "sku", "brand")
		_, total, err := repo.FindPage(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(9), total)
	})

	t.Run("unknown sort key falls back to default ordering", func(t *testing.T) {
		q := shared.ListQuery{SortBy: "password; DROP TABLE products", Page: 1, Limit: 5}
		items, _, err := repo.FindPage(ctx, q)
		require.NoError(t, err)
		assert.Len(t, items, 5)
	})

	t.Run("page past the end is empty but keeps the total", func(t *testing.T) {
		q := shared.ListQuery{Page: 99, Limit: 10}
		items, total, err := repo.FindPage(ctx, q)
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Equal(t, int64(25), total)
	})
}

func TestGormProductRepository_SearchWildcardLiterals(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	seedProduct(t, repo, "PLAIN-1", "Plain Widget", 10, true)
	seedProduct(t, repo, "BOX-100", "100 Count Box", 10, true)
	seedProduct(t, repo, "SHIRT-1", "100% Cotton Shirt", 10, true)
	seedProduct(t, repo, "TAG-1", "under_score label", 10, true)

	t.Run("percent matches only the literal substring", func(t *testing.T) {
		q := shared.ListQuery{Page: 1, Limit: shared.LimitAll}
		q.Predicate = q.Predicate.AndSearch("100%", "title")
		items, total, err := repo.FindPage(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, "100% Cotton Shirt", items[0].Title)
	})

	t.Run("underscore matches only the literal substring", func(t *testing.T) {
		q := shared.ListQuery{Page: 1, Limit: shared.LimitAll}
		q.Predicate = q.Predicate.AndSearch("under_score", "title")
		items, total, err := repo.FindPage(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, "under_score label", items[0].Title)
	})

	t.Run("bare wildcard term matches nothing instead of everything", func(t *testing.T) {
		q := shared.ListQuery{Page: 1, Limit: shared.LimitAll}
		q.Predicate = q.Predicate.AndSearch("%", "title")
		_, total, err := repo.FindPage(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total, "only the title containing a literal percent sign")
	})
}

func TestGormProductRepository_DeleteBatch(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	a := seedProduct(t, repo, "DEL-1", "Doomed A", 10, true)
	b := seedProduct(t, repo, "DEL-2", "Doomed B", 10, true)

	t.Run("rolls back when any id is unknown", func(t *testing.T) {
		err := repo.DeleteBatch(ctx, []uuid.UUID{a.ID, uuid.New()})
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = repo.FindByID(ctx, a.ID)
		assert.NoError(t, err, "no product should be deleted when the batch fails")
	})

	t.Run("tolerates duplicate ids in the batch", func(t *testing.T) {
		require.NoError(t, repo.DeleteBatch(ctx, []uuid.UUID{a.ID, a.ID}))

		_, err := repo.FindByID(ctx, a.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		_, err = repo.FindByID(ctx, b.ID)
		assert.NoError(t, err, "the unlisted product must survive")
	})

	t.Run("deletes every listed product", func(t *testing.T) {
		require.NoError(t, repo.DeleteBatch(ctx, []uuid.UUID{b.ID}))

		_, err := repo.FindByID(ctx, a.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		_, err = repo.FindByID(ctx, b.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepository_CountByCategory(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	catRepo := NewGormCategoryRepository(db)
	ctx := context.Background()

	cat, err := catalog.NewCategory("apparel", "Apparel")
	require.NoError(t, err)
	require.NoError(t, catRepo.Save(ctx, cat))

	p := seedProduct(t, repo, "CAT-1", "Categorized", 15, true)
	p.SetCategory(&cat.ID)
	require.NoError(t, repo.Save(ctx, p))
	seedProduct(t, repo, "CAT-2", "Uncategorized", 15, true)

	count, err := repo.CountByCategory(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
