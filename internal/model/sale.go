package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is an immutable record of a completed sales transaction. Amounts use
// decimal arithmetic so currency values never pick up binary-float drift.
type Sale struct {
	BaseModel
	ProductID     uuid.UUID       `gorm:"type:uuid;not null" json:"product_id" validate:"uuid_required"`
	Product       *Product        `json:"product,omitempty" validate:"-"`
	Quantity      int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"unit_price"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"total_amount"` // Snapshot quantity * unit price
	CustomerName  string          `gorm:"type:varchar(255);not null" json:"customer_name" validate:"required"`
	CustomerPhone string          `gorm:"type:varchar(30)" json:"customer_phone"`
	ProcessedBy   string          `gorm:"type:varchar(255)" json:"processed_by"`
}
