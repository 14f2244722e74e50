package service

import (
	"fmt"
	"io"
	"testing"

	"agrostock-backend/internal/model"
	"agrostock-backend/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	actorAdmin   = Actor{ID: "u1", Name: "Admin Bosun", Role: model.RoleAdmin}
	actorManager = Actor{ID: "u2", Name: "Manager Sarah", Role: model.RoleStoreManager}
	actorKeeper  = Actor{ID: "u3", Name: "StoreKeeper John", Role: model.RoleStoreKeeper}
	actorAuditor = Actor{ID: "u4", Name: "Auditor Mike", Role: model.RoleAuditor}
)

type testEnv struct {
	db        *gorm.DB
	store     *Store
	catalog   Catalog
	audit     AuditService
	products  repository.ProductRepository
	entries   repository.StockEntryRepository
	sales     repository.SaleRepository
	auditRepo repository.AuditLogRepository
	users     repository.UserRepository
	inventory InventoryService
	selling   SalesService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Product{}, &model.StockEntry{}, &model.Sale{},
		&model.AuditLog{}, &model.Supplier{}, &model.Warehouse{}, &model.User{},
	))

	log := logrus.New()
	log.SetOutput(io.Discard)

	env := &testEnv{
		db:        db,
		store:     NewStore(db),
		products:  repository.NewProductRepo(db),
		entries:   repository.NewStockEntryRepo(db),
		sales:     repository.NewSaleRepo(db),
		auditRepo: repository.NewAuditLogRepo(db),
		users:     repository.NewUserRepo(db),
	}
	env.catalog = NewCatalog(env.products)
	env.audit = NewAuditService(env.auditRepo)
	env.inventory = NewInventoryService(env.store, env.entries, env.catalog, env.audit, nil, nil, log)
	env.selling = NewSalesService(env.store, env.sales, env.catalog, env.audit, nil, nil, log)

	return env
}

func (e *testEnv) createProduct(t *testing.T, name string, stock, threshold int) *model.Product {
	t.Helper()
	p := &model.Product{Name: name, Category: "Cereals", Unit: "kg", CurrentStock: stock, LowStockThreshold: threshold}
	require.NoError(t, e.products.Create(p))
	return p
}

func (e *testEnv) createEntry(t *testing.T, productID uuid.UUID, qty int, batch string, status model.StockStatus) *model.StockEntry {
	t.Helper()
	entry := &model.StockEntry{
		ProductID:   productID,
		Quantity:    qty,
		BatchNumber: batch,
		ReceivedBy:  "StoreKeeper John",
		Status:      status,
	}
	require.NoError(t, e.entries.Create(entry))
	return entry
}

func (e *testEnv) productStock(t *testing.T, id uuid.UUID) int {
	t.Helper()
	p, err := e.products.FindByID(id)
	require.NoError(t, err)
	return p.CurrentStock
}

func (e *testEnv) auditCount(t *testing.T) int64 {
	t.Helper()
	n, err := e.auditRepo.Count()
	require.NoError(t, err)
	return n
}
