package model

type Supplier struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Contact  string `gorm:"type:varchar(50)" json:"contact"`
	Category string `gorm:"type:varchar(100)" json:"category"`
}

type Warehouse struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Location string `gorm:"type:varchar(255)" json:"location"`
}
