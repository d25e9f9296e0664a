package models

// Market — table markets. Vendors belong to exactly one market.
type Market struct {
	Base
	Name string `gorm:"not null" json:"name"`
}
