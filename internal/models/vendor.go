package models

// Vendor — table vendors. Owned by exactly one user, belongs to
// exactly one market. Never mutated by this service.
type Vendor struct {
	Base
	Name     string  `gorm:"not null" json:"name"`
	UserID   string  `gorm:"uniqueIndex;not null" json:"userId"`
	MarketID string  `gorm:"index;not null" json:"marketId"`
	Market   *Market `gorm:"foreignKey:MarketID" json:"market,omitempty"`
}
