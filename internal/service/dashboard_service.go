package service

import (
	"agrostock-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardStats is the overview card feed for the management dashboard.
type DashboardStats struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	LowStockCount    int64           `json:"low_stock_count"`
	PendingApprovals int64           `json:"pending_approvals"`
	ActiveSuppliers  int64           `json:"active_suppliers"`
}

// StockLevel feeds the stock-level chart.
type StockLevel struct {
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

type DashboardService interface {
	GetStats() (*DashboardStats, error)
	GetStockLevels(limit int) ([]StockLevel, error)
}

type dashboardService struct {
	productRepo  repository.ProductRepository
	entryRepo    repository.StockEntryRepository
	saleRepo     repository.SaleRepository
	supplierRepo repository.SupplierRepository
}

func NewDashboardService(
	productRepo repository.ProductRepository,
	entryRepo repository.StockEntryRepository,
	saleRepo repository.SaleRepository,
	supplierRepo repository.SupplierRepository,
) DashboardService {
	return &dashboardService{
		productRepo:  productRepo,
		entryRepo:    entryRepo,
		saleRepo:     saleRepo,
		supplierRepo: supplierRepo,
	}
}

func (s *dashboardService) GetStats() (*DashboardStats, error) {
	revenue, err := s.saleRepo.TotalRevenue()
	if err != nil {
		return nil, err
	}
	lowStock, err := s.productRepo.CountLowStock()
	if err != nil {
		return nil, err
	}
	pending, err := s.entryRepo.CountPending()
	if err != nil {
		return nil, err
	}
	suppliers, err := s.supplierRepo.Count()
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalRevenue:     revenue,
		LowStockCount:    lowStock,
		PendingApprovals: pending,
		ActiveSuppliers:  suppliers,
	}, nil
}

func (s *dashboardService) GetStockLevels(limit int) ([]StockLevel, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 5
	}
	if len(products) > limit {
		products = products[:limit]
	}

	levels := make([]StockLevel, 0, len(products))
	for _, p := range products {
		levels = append(levels, StockLevel{Name: p.Name, Stock: p.CurrentStock})
	}
	return levels, nil
}
