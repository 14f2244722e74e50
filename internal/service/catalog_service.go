package service

import (
	"errors"
	"fmt"

	"agrostock-backend/internal/model"
	"agrostock-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Catalog is the authoritative store of product stock levels. AdjustStock is
// the single choke point for stock changes: both the intake-approval path and
// the sale path route through it, and nothing else writes current_stock.
type Catalog interface {
	AdjustStock(tx *gorm.DB, productID uuid.UUID, delta int) (int, error)
	IsLowStock(productID uuid.UUID) (bool, error)
	GetProduct(productID uuid.UUID) (*model.Product, error)
	GetProductTx(tx *gorm.DB, productID uuid.UUID) (*model.Product, error)
	GetAllProducts() ([]model.Product, error)
}

type catalog struct {
	productRepo repository.ProductRepository
}

func NewCatalog(productRepo repository.ProductRepository) Catalog {
	return &catalog{productRepo: productRepo}
}

// AdjustStock applies a signed stock delta and returns the new level. A
// negative delta that would push stock below zero fails with
// ErrInsufficientStock before anything is written, which keeps the
// non-negative invariant enforced in exactly one place.
func (c *catalog) AdjustStock(tx *gorm.DB, productID uuid.UUID, delta int) (int, error) {
	product, err := c.productRepo.FindByIDTx(tx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("product %s: %w", productID, ErrNotFound)
		}
		return 0, err
	}

	newStock := product.CurrentStock + delta
	if newStock < 0 {
		return 0, fmt.Errorf("product %s has %d units: %w", product.Name, product.CurrentStock, ErrInsufficientStock)
	}

	if err := c.productRepo.UpdateStock(tx, productID, newStock); err != nil {
		return 0, err
	}
	return newStock, nil
}

func (c *catalog) IsLowStock(productID uuid.UUID) (bool, error) {
	product, err := c.GetProduct(productID)
	if err != nil {
		return false, err
	}
	return product.IsLowStock(), nil
}

func (c *catalog) GetProduct(productID uuid.UUID) (*model.Product, error) {
	product, err := c.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

// GetProductTx reads through the caller's transaction handle. Reads inside
// a mutation must use this: the pool holds a single connection, so a read
// on the base handle from within a transaction would wait on itself.
func (c *catalog) GetProductTx(tx *gorm.DB, productID uuid.UUID) (*model.Product, error) {
	product, err := c.productRepo.FindByIDTx(tx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

func (c *catalog) GetAllProducts() ([]model.Product, error) {
	return c.productRepo.FindAll()
}
