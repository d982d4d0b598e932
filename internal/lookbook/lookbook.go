package lookbook

// GalleryItem is a tile of the home page style gallery.
type GalleryItem struct {
	ID    int    `json:"id"`
	Img   string `json:"img"`
	Label string `json:"label"`
}

// PortfolioItem is an image of the portfolio grid.
type PortfolioItem struct {
	ID  int    `json:"id"`
	Img string `json:"img"`
}

func unsplash(id string, w string) string {
	return "https://images.unsplash.com/" + id + "?auto=format&fit=crop&q=80&w=" + w
}

func SeedGallery() []GalleryItem {
	return []GalleryItem{
		{ID: 1, Img: unsplash("photo-1617137968427-85924c800a22", "800"), Label: "Structured Minimalism"},
		{ID: 2, Img: unsplash("photo-1506794778202-cad84cf45f1d", "800"), Label: "Urban Utility"},
		{ID: 3, Img: unsplash("photo-1519085360753-af0119f7cbe7", "1200"), Label: "Prism Avant-Garde"},
		{ID: 4, Img: unsplash("photo-1488161628813-04466f872be2", "800"), Label: "Cyber-Knit Essentials"},
		{ID: 5, Img: unsplash("photo-1534030347209-467a5b0ad3e6", "800"), Label: "Architectural Suiting"},
	}
}

func SeedPortfolio() []PortfolioItem {
	ids := []string{
		"photo-1539109136881-3be0616acf4b",
		"photo-1492707892479-7bc8d5a4ee93",
		"photo-1529139572166-70845eb9f208",
		"photo-1485230895905-ec40ba36b9bc",
		"photo-1509631179647-0177331693ae",
		"photo-1520975954732-35dd22299614",
		"photo-1469334031218-e382a71b716b",
		"photo-1512436991641-6745cdb1723f",
	}
	out := make([]PortfolioItem, 0, len(ids))
	for i, id := range ids {
		out = append(out, PortfolioItem{ID: i + 1, Img: unsplash(id, "600")})
	}
	return out
}
