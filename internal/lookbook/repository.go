package lookbook

// Repository provides the editorial image lists. They are read-only for the
// lifetime of the process.
type Repository interface {
	Gallery(limit int) []GalleryItem
	Portfolio(limit int) []PortfolioItem
}

type InMemoryRepository struct {
	gallery   []GalleryItem
	portfolio []PortfolioItem
}

func NewInMemoryRepository(gallery []GalleryItem, portfolio []PortfolioItem) *InMemoryRepository {
	return &InMemoryRepository{
		gallery:   append([]GalleryItem(nil), gallery...),
		portfolio: append([]PortfolioItem(nil), portfolio...),
	}
}

func (r *InMemoryRepository) Gallery(limit int) []GalleryItem {
	return append([]GalleryItem{}, head(r.gallery, limit)...)
}

func (r *InMemoryRepository) Portfolio(limit int) []PortfolioItem {
	return append([]PortfolioItem{}, head(r.portfolio, limit)...)
}

func head[T any](s []T, limit int) []T {
	if limit > 0 && limit < len(s) {
		return s[:limit]
	}
	return s
}
