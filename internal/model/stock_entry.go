package model

import (
	"time"

	"github.com/google/uuid"
)

type StockStatus string

const (
	StockPending  StockStatus = "PENDING"
	StockApproved StockStatus = "APPROVED"
	StockRejected StockStatus = "REJECTED"
)

// Terminal reports whether the status can no longer change.
func (s StockStatus) Terminal() bool {
	return s == StockApproved || s == StockRejected
}

// StockEntry is an incoming batch of goods awaiting approval before it
// counts toward sellable stock. Status moves PENDING -> APPROVED or
// PENDING -> REJECTED exactly once.
type StockEntry struct {
	BaseModel
	ProductID   uuid.UUID   `gorm:"type:uuid;not null" json:"product_id" validate:"uuid_required"`
	Product     *Product    `json:"product,omitempty" validate:"-"`
	SupplierID  uuid.UUID   `gorm:"type:uuid" json:"supplier_id"`
	WarehouseID uuid.UUID   `gorm:"type:uuid" json:"warehouse_id"`
	Quantity    int         `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Weight      float64     `json:"weight"`
	BatchNumber string      `gorm:"type:varchar(50);not null" json:"batch_number" validate:"required"`
	ExpiryDate  *time.Time  `json:"expiry_date,omitempty"`
	ReceivedBy  string      `gorm:"type:varchar(255)" json:"received_by"`
	Status      StockStatus `gorm:"type:varchar(10);not null;default:'PENDING'" json:"status"`
}
