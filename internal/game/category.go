package game

// Category is one topic from the fixed set offered to the user.
type Category string

// The fixed category set. The picker presents these in this order.
const (
	CategoryEverydayLife  Category = "Everyday Life"
	CategorySuperpowers   Category = "Superpowers"
	CategoryFoodDrink     Category = "Food & Drink"
	CategoryTravel        Category = "Travel & Adventure"
	CategoryTechnology    Category = "Technology"
	CategoryHypotheticals Category = "Hypotheticals"
	CategoryPopCulture    Category = "Pop Culture"
	CategoryWorkCareer    Category = "Work & Career"
	CategoryAnimals       Category = "Animals"
)

// DefaultCategory is the category selected on first launch.
const DefaultCategory = CategoryEverydayLife

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryEverydayLife,
		CategorySuperpowers,
		CategoryFoodDrink,
		CategoryTravel,
		CategoryTechnology,
		CategoryHypotheticals,
		CategoryPopCulture,
		CategoryWorkCareer,
		CategoryAnimals,
	}
}

// Valid reports whether c is a member of the fixed category set.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}
