// Package entity contains the core business objects of the project.
package entity

// Category represents the fixed set of marketplace product categories.
type Category string

const (
	// CategoryElectronics covers phones, computers and accessories.
	CategoryElectronics Category = "electronics"
	// CategoryFashion covers clothing, shoes and accessories.
	CategoryFashion Category = "fashion"
	// CategoryHome covers furniture and household goods.
	CategoryHome Category = "home"
	// CategoryBeauty covers cosmetics and personal care.
	CategoryBeauty Category = "beauty"
	// CategorySports covers sporting goods and outdoor equipment.
	CategorySports Category = "sports"
	// CategoryBooks covers books and printed media.
	CategoryBooks Category = "books"
	// CategoryToys covers toys and games.
	CategoryToys Category = "toys"
	// CategoryOther is the catch-all category.
	CategoryOther Category = "other"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a member of the fixed set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryElectronics, CategoryFashion, CategoryHome, CategoryBeauty,
		CategorySports, CategoryBooks, CategoryToys, CategoryOther:
		return true
	default:
		return false
	}
}
