package models

// Product is a catalog entry. The catalog is loaded from a static JSON
// resource at startup and never mutated.
type Product struct {
	ID                  int      `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	DetailedDescription string   `json:"detailedDescription"`
	Image               string   `json:"image"`
	Category            string   `json:"category"`
	Sizes               []string `json:"sizes"`
	OriginalPrice       int      `json:"originalPrice"`
	SalePrice           int      `json:"salePrice"`
}

// HasSize reports whether size is one of the product's listed sizes.
// Products with no size list accept only the empty size.
func (p *Product) HasSize(size string) bool {
	if len(p.Sizes) == 0 {
		return size == ""
	}
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
