package journal

// Post is a journal article. Date is a calendar day in YYYY-MM-DD form.
type Post struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Excerpt         string `json:"excerpt"`
	Content         string `json:"content"`
	Author          string `json:"author"`
	Date            string `json:"date"`
	Image           string `json:"image"`
	Slug            string `json:"slug,omitempty"`
	Category        string `json:"category,omitempty"`
	Subtitle        string `json:"subtitle,omitempty"`
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
}

const coverImage = "https://images.unsplash.com/photo-1483985988355-763728e1935b?auto=format&fit=crop&q=80&w=1200"

func Seed() []Post {
	return []Post{
		{
			ID:      "b1",
			Title:   "The Evolution of Streetwear in 2026",
			Excerpt: "Exploring how luxury brands are embracing industrial aesthetics and high-performance textiles.",
			Content: "Streetwear has transcended its origins to become the core language of luxury...",
			Author:  "Prism Editorial",
			Date:    "2026-05-20",
			Image:   coverImage,
			Slug:    "evolution-of-streetwear-2026",
		},
	}
}
