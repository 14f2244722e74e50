package handler

import (
	"agrostock-backend/internal/model"
	"agrostock-backend/internal/repository"
	"agrostock-backend/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// SupplierHandler serves the static reference data: suppliers and
// warehouses. These are never touched by the ledger core.
type SupplierHandler struct {
	supplierRepo  repository.SupplierRepository
	warehouseRepo repository.WarehouseRepository
}

func NewSupplierHandler(supplierRepo repository.SupplierRepository, warehouseRepo repository.WarehouseRepository) *SupplierHandler {
	return &SupplierHandler{supplierRepo: supplierRepo, warehouseRepo: warehouseRepo}
}

func (h *SupplierHandler) GetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.supplierRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(suppliers)
}

func (h *SupplierHandler) CreateSupplier(c *fiber.Ctx) error {
	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&supplier); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + errs[0].FailedField})
	}

	if err := h.supplierRepo.Create(&supplier); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create supplier"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Supplier registered", "data": supplier})
}

func (h *SupplierHandler) GetWarehouses(c *fiber.Ctx) error {
	warehouses, err := h.warehouseRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(warehouses)
}
