package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Severity string

const (
	SeverityInfo     Severity = "INFO"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

const (
	ActionUserLogin       = "USER_LOGIN"
	ActionStockApproval   = "STOCK_APPROVAL"
	ActionStockRejection  = "STOCK_REJECTION"
	ActionNewSale         = "NEW_SALE"
	ActionStockAdjustment = "STOCK_ADJUSTMENT"
)

// AuditLog is one append-only record of a state-changing action. Entries are
// never updated or deleted. Seq is a monotonic insertion counter so ordering
// stays unambiguous even when two entries share a timestamp.
type AuditLog struct {
	Seq       uint64    `gorm:"primaryKey;autoIncrement" json:"seq"`
	ID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"id"`
	UserID    string    `gorm:"type:varchar(255)" json:"user_id"`
	UserName  string    `gorm:"type:varchar(255)" json:"user_name"`
	Action    string    `gorm:"type:varchar(50);not null" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	Severity  Severity  `gorm:"type:varchar(10);not null;default:'INFO'" json:"severity"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}

func (l *AuditLog) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Timestamp.IsZero() {
		l.Timestamp = time.Now()
	}
	return
}
