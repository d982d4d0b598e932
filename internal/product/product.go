package product

// Category is the catalog section a product is listed under.
type Category string

const (
	CategoryMen         Category = "Men"
	CategoryWomen       Category = "Women"
	CategoryAccessories Category = "Accessories"
	CategoryLimited     Category = "Limited"
)

// AllowedCategories contains the catalog sections in the order the shop filter bar shows them.
var AllowedCategories = []Category{
	CategoryMen,
	CategoryWomen,
	CategoryAccessories,
	CategoryLimited,
}

// Valid reports whether c is one of the known catalog sections.
func (c Category) Valid() bool {
	for _, a := range AllowedCategories {
		if c == a {
			return true
		}
	}
	return false
}

// Spec is a single label/value row of a product's technical sheet.
type Spec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Product is a catalog entry. JSON tags follow the camelCase convention used by the storefront.
type Product struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	Category        Category `json:"category"`
	Description     string   `json:"description"`
	Images          []string `json:"images"`
	Sizes           []string `json:"sizes"`
	Colors          []string `json:"colors"`
	Stock           int      `json:"stock"`
	Featured        bool     `json:"featured,omitempty"`
	BestSeller      bool     `json:"bestSeller,omitempty"`
	Specs           []Spec   `json:"specs,omitempty"`
	Slug            string   `json:"slug,omitempty"`
	MetaTitle       string   `json:"metaTitle,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty"`
}

// Clone returns a copy of p that shares no slices with it.
func (p Product) Clone() Product {
	out := p
	out.Images = append([]string(nil), p.Images...)
	out.Sizes = append([]string(nil), p.Sizes...)
	out.Colors = append([]string(nil), p.Colors...)
	if p.Specs != nil {
		out.Specs = append([]Spec(nil), p.Specs...)
	}
	return out
}
