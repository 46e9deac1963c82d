package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/inventory"
)

// GormTransactionScope executes units of work inside a single database
// transaction, handing the callback repositories bound to that transaction.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GORM transaction scope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn atomically. Any error returned by fn rolls everything back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos inventory.TxRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txRepositories{tx: tx})
	})
}

type txRepositories struct {
	tx *gorm.DB
}

func (r *txRepositories) Inventory() inventory.Repository {
	return NewGormInventoryRepository(r.tx)
}

func (r *txRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

var _ inventory.TransactionScope = (*GormTransactionScope)(nil)
