package models

import "github.com/lib/pq"

// Product — table products. Image is always a fully-resolved media-host
// URL, never raw bytes or a data URI. VendorID is fixed at creation.
type Product struct {
	Base
	Name        string         `gorm:"not null" json:"name"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	Image       string         `gorm:"not null" json:"image"`
	VendorID    string         `gorm:"index;not null" json:"vendorId"`
	Vendor      *Vendor        `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
}
