package service

import (
	"agrostock-backend/internal/model"
	"agrostock-backend/internal/repository"

	"gorm.io/gorm"
)

// AuditService is the append-only trail of system actions. Append runs
// inside the caller's transaction so a rolled-back operation leaves no
// entry behind; the read surface never mutates anything.
type AuditService interface {
	Append(tx *gorm.DB, actor Actor, action, details string, severity model.Severity) error
	List(filter repository.AuditFilter) ([]model.AuditLog, error)
}

type auditService struct {
	auditRepo repository.AuditLogRepository
}

func NewAuditService(auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

func (s *auditService) Append(tx *gorm.DB, actor Actor, action, details string, severity model.Severity) error {
	entry := &model.AuditLog{
		UserID:   actor.ID,
		UserName: actor.Name,
		Action:   action,
		Details:  details,
		Severity: severity,
	}
	return s.auditRepo.Append(tx, entry)
}

func (s *auditService) List(filter repository.AuditFilter) ([]model.AuditLog, error) {
	return s.auditRepo.List(filter)
}
