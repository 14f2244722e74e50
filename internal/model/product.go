package model

type Product struct {
	BaseModel
	Name              string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Category          string `gorm:"type:varchar(100)" json:"category"`
	Unit              string `gorm:"type:varchar(20)" json:"unit"`
	CurrentStock      int    `gorm:"default:0" json:"current_stock" validate:"gte=0"`
	LowStockThreshold int    `gorm:"default:0" json:"low_stock_threshold" validate:"gte=0"`
}

// IsLowStock reports whether the product is at or below its reorder threshold.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.LowStockThreshold
}
