package repository

import (
	"agrostock-backend/internal/model"

	"gorm.io/gorm"
)

// AuditFilter narrows the read-only audit query surface. Zero values mean
// "no filtering".
type AuditFilter struct {
	Severity model.Severity
	Search   string
}

type AuditLogRepository interface {
	Append(tx *gorm.DB, entry *model.AuditLog) error
	List(filter AuditFilter) ([]model.AuditLog, error)
	Count() (int64, error)
}

type auditLogRepo struct {
	db *gorm.DB
}

func NewAuditLogRepo(db *gorm.DB) AuditLogRepository {
	return &auditLogRepo{db}
}

// Append inserts one entry through the supplied handle. There is no update
// or delete path anywhere in this repository: the trail is append-only.
func (r *auditLogRepo) Append(tx *gorm.DB, entry *model.AuditLog) error {
	return tx.Create(entry).Error
}

// List returns entries most-recent-first, ordered by the insertion sequence
// rather than wall-clock so rapid successive actions never reorder.
func (r *auditLogRepo) List(filter AuditFilter) ([]model.AuditLog, error) {
	q := r.db.Model(&model.AuditLog{})

	if filter.Severity != "" {
		q = q.Where("severity = ?", filter.Severity)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("details LIKE ? OR action LIKE ? OR user_name LIKE ?", like, like, like)
	}

	var logs []model.AuditLog
	err := q.Order("seq DESC").Find(&logs).Error
	return logs, err
}

func (r *auditLogRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.AuditLog{}).Count(&count).Error
	return count, err
}
