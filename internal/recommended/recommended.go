package recommended

// Rail is one of the home page product strips.
type Rail string

const (
	RailFeatured    Rail = "featured"
	RailBestSellers Rail = "bestsellers"
)

// RecommendedItem is the card shown on a home page rail.
type RecommendedItem struct {
	ProductID  string  `json:"productID"`
	ProductImg string  `json:"productImg,omitempty"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Category   string  `json:"category"`
	Slug       string  `json:"slug,omitempty"`
}
