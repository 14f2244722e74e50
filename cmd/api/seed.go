package main

import (
	"time"

	"agrostock-backend/internal/model"
	"agrostock-backend/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// seedDemoData loads the demo dataset so the dashboard is usable the moment
// the process starts. State is in-memory only, so this runs on every boot.
func seedDemoData(db *gorm.DB, log *logrus.Logger) {
	userRepo := repository.NewUserRepo(db)

	users := []struct {
		email    string
		name     string
		role     model.Role
		password string
	}{
		{"bosun@agrostock.example", "Admin Bosun", model.RoleAdmin, "admin123"},
		{"sarah@agrostock.example", "Manager Sarah", model.RoleStoreManager, "manager123"},
		{"john@agrostock.example", "StoreKeeper John", model.RoleStoreKeeper, "keeper123"},
		{"mike@agrostock.example", "Auditor Mike", model.RoleAuditor, "auditor123"},
	}
	for _, u := range users {
		user := &model.User{
			Email:    u.email,
			FullName: u.name,
			Role:     u.role,
			IsActive: true,
		}
		if err := user.SetPassword(u.password); err != nil {
			log.WithError(err).WithField("email", u.email).Warn("failed to hash seed password")
			continue
		}
		if err := userRepo.Create(user); err != nil {
			log.WithError(err).WithField("email", u.email).Warn("failed to seed user")
		}
	}

	products := []model.Product{
		{Name: "Maize Seeds", Category: "Cereals", Unit: "kg", CurrentStock: 1250, LowStockThreshold: 500},
		{Name: "NPK Fertilizer", Category: "Chemicals", Unit: "Bags", CurrentStock: 45, LowStockThreshold: 100},
		{Name: "Cocoa Beans", Category: "Cash Crop", Unit: "Tons", CurrentStock: 12, LowStockThreshold: 5},
		{Name: "Cassava Stems", Category: "Tubers", Unit: "Bundles", CurrentStock: 800, LowStockThreshold: 200},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			log.WithError(err).Warn("failed to seed product")
		}
	}
	maize, npk := products[0], products[1]

	suppliers := []model.Supplier{
		{Name: "GreenEarth Agro", Contact: "+234 801 234 5678", Category: "Seeds"},
		{Name: "Global Chemicals Ltd", Contact: "+234 902 333 4444", Category: "Fertilizers"},
	}
	for i := range suppliers {
		if err := db.Create(&suppliers[i]).Error; err != nil {
			log.WithError(err).Warn("failed to seed supplier")
		}
	}

	warehouses := []model.Warehouse{
		{Name: "Main Warehouse A", Location: "Lagos"},
		{Name: "Silo Complex B", Location: "Ibadan"},
	}
	for i := range warehouses {
		if err := db.Create(&warehouses[i]).Error; err != nil {
			log.WithError(err).Warn("failed to seed warehouse")
		}
	}

	maizeExpiry := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	npkExpiry := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	entries := []model.StockEntry{
		{
			ProductID:   maize.ID,
			SupplierID:  suppliers[0].ID,
			WarehouseID: warehouses[0].ID,
			Quantity:    1000,
			Weight:      1000,
			BatchNumber: "BT-001",
			ExpiryDate:  &maizeExpiry,
			ReceivedBy:  "StoreKeeper John",
			Status:      model.StockApproved,
		},
		{
			ProductID:   npk.ID,
			SupplierID:  suppliers[1].ID,
			WarehouseID: warehouses[1].ID,
			Quantity:    50,
			Weight:      2500,
			BatchNumber: "F-NPK-99",
			ExpiryDate:  &npkExpiry,
			ReceivedBy:  "StoreKeeper John",
			Status:      model.StockPending,
		},
	}
	for i := range entries {
		if err := db.Create(&entries[i]).Error; err != nil {
			log.WithError(err).Warn("failed to seed stock entry")
		}
	}

	unitPrice := decimal.NewFromInt(500)
	sale := model.Sale{
		ProductID:     maize.ID,
		Quantity:      50,
		UnitPrice:     unitPrice,
		TotalAmount:   unitPrice.Mul(decimal.NewFromInt(50)),
		CustomerName:  "Abeokuta Farms Co.",
		CustomerPhone: "08122334455",
		ProcessedBy:   "StoreKeeper John",
	}
	if err := db.Create(&sale).Error; err != nil {
		log.WithError(err).Warn("failed to seed sale")
	}

	auditLogs := []model.AuditLog{
		{
			UserName: "Admin Bosun",
			Action:   model.ActionUserLogin,
			Details:  "Admin logged into the system from IP 192.168.1.1",
			Severity: model.SeverityInfo,
		},
		{
			UserName: "Manager Sarah",
			Action:   model.ActionStockAdjustment,
			Details:  "Authorized manual adjustment of Maize Seeds stock (-5kg wastage)",
			Severity: model.SeverityWarning,
		},
	}
	for i := range auditLogs {
		if err := db.Create(&auditLogs[i]).Error; err != nil {
			log.WithError(err).Warn("failed to seed audit log")
		}
	}

	log.Info("demo dataset seeded")
}
