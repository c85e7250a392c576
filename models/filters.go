package models

// Default price range, applied even when the caller supplies no explicit
// bounds. Every other criterion is skipped when unset.
const (
	DefaultMinPrice float64 = 0
	DefaultMaxPrice float64 = 1000
)

// FilterCriteria is the full set of user-selected narrowing conditions
// applied to the product list. All active predicates are conjunctive.
type FilterCriteria struct {
	Category     string   `json:"category"`
	Subcategory  string   `json:"subcategory"`
	MinPrice     *float64 `json:"min_price"`
	MaxPrice     *float64 `json:"max_price"`
	MinDiscount  *int     `json:"min_discount"`
	MinRating    *float64 `json:"min_rating"`
	FreeShipping bool     `json:"free_shipping"`
	Returnable   bool     `json:"returnable"`
	Query        string   `json:"q"` // case-insensitive, matched against title and subcategory
}

// PriceRange resolves the effective inclusive [min, max] bounds
func (f FilterCriteria) PriceRange() (float64, float64) {
	min, max := DefaultMinPrice, DefaultMaxPrice
	if f.MinPrice != nil {
		min = *f.MinPrice
	}
	if f.MaxPrice != nil {
		max = *f.MaxPrice
	}
	return min, max
}
