package handler

import (
	"agrostock-backend/internal/model"
	"agrostock-backend/internal/repository"
	"agrostock-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuditHandler struct {
	service service.AuditService
}

func NewAuditHandler(s service.AuditService) *AuditHandler {
	return &AuditHandler{service: s}
}

// GetAuditLogs serves the read-only trail, most-recent-first. Supports
// ?severity=WARNING and ?q=free-text filters.
func (h *AuditHandler) GetAuditLogs(c *fiber.Ctx) error {
	filter := repository.AuditFilter{
		Severity: model.Severity(c.Query("severity")),
		Search:   c.Query("q"),
	}

	logs, err := h.service.List(filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(logs)
}
