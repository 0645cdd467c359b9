package catalog

import "time"

// Product mirrors the catalog document stored in MongoDB. Prices are kept as
// stored (major units); consumers snapshot them into fixed-point amounts.
type Product struct {
	ID          string    `bson:"_id,omitempty" json:"_id"`
	Name        string    `bson:"name" json:"name"`
	Type        string    `bson:"type" json:"type"`
	Price       float64   `bson:"price" json:"price"`
	Description string    `bson:"description" json:"description"`
	ChipInfo    string    `bson:"chip_info" json:"chipInfo"`
	Image       string    `bson:"image" json:"image"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// Types lists the product categories the storefront sells.
var Types = []string{"iPhone", "iPad", "Mac", "Airpods", "Watch"}

// ValidType reports whether t is a known category.
func ValidType(t string) bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}
