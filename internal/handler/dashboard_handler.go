package handler

import (
	"strconv"

	"agrostock-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
	insight *service.InsightService
}

func NewDashboardHandler(s service.DashboardService, insight *service.InsightService) *DashboardHandler {
	return &DashboardHandler{service: s, insight: insight}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(stats)
}

func (h *DashboardHandler) GetStockLevels(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "5"))

	levels, err := h.service.GetStockLevels(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(levels)
}

// GetSummary returns the latest AI business summary. The value degrades to
// a fixed offline message when the analyst is unreachable, never an error.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"summary": h.insight.Summary()})
}
