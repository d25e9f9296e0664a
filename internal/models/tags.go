package models

import "strings"

// Tag — enumerated product category
type Tag string

const (
	TagProduce   Tag = "PRODUCE"
	TagDairy     Tag = "DAIRY"
	TagMeat      Tag = "MEAT"
	TagBakery    Tag = "BAKERY"
	TagBeverages Tag = "BEVERAGES"
	TagCrafts    Tag = "CRAFTS"
	TagOther     Tag = "OTHER"
)

var knownTags = map[Tag]bool{
	TagProduce:   true,
	TagDairy:     true,
	TagMeat:      true,
	TagBakery:    true,
	TagBeverages: true,
	TagCrafts:    true,
	TagOther:     true,
}

// NormalizeTag maps form input to a category. Empty or unknown values
// fall back to OTHER.
func NormalizeTag(s string) Tag {
	t := Tag(strings.ToUpper(strings.TrimSpace(s)))
	if knownTags[t] {
		return t
	}
	return TagOther
}
