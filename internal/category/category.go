package category

// CategoryItem is one entry of the shop filter bar.
type CategoryItem struct {
	CategoryName string `json:"categoryName"`
	Count        int    `json:"count"`
}

// All is the pseudo-category that disables filtering.
const All = "All"
