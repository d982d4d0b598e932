package settings

import "maps"

type FontFamily string

const (
	FontInter  FontFamily = "Inter"
	FontOswald FontFamily = "Oswald"
	FontSerif  FontFamily = "Serif"
)

func (f FontFamily) Valid() bool {
	switch f {
	case FontInter, FontOswald, FontSerif:
		return true
	}
	return false
}

type NavItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Page  string `json:"page"`
}

// SiteSettings is the storefront's single configuration aggregate.
type SiteSettings struct {
	BrandName      string     `json:"brandName"`
	LogoImage      string     `json:"logoImage"`
	UseImageLogo   bool       `json:"useImageLogo"`
	PrimaryColor   string     `json:"primaryColor"`
	AccentColor    string     `json:"accentColor"`
	FontFamily     FontFamily `json:"fontFamily"`
	SEOTitle       string     `json:"seoTitle"`
	SEODescription string     `json:"seoDescription"`

	ShowHero        bool `json:"showHero"`
	ShowCategories  bool `json:"showCategories"`
	ShowBestsellers bool `json:"showBestsellers"`
	ShowAbout       bool `json:"showAbout"`
	ShowReviews     bool `json:"showReviews"`
	ShowBookingCTA  bool `json:"showBookingCTA"`

	HeroHeading         string `json:"heroHeading"`
	HeroSubheading      string `json:"heroSubheading"`
	HeroBackgroundImage string `json:"heroBackgroundImage"`
	AboutHeading        string `json:"aboutHeading"`
	AboutContent        string `json:"aboutContent"`

	NavItems    []NavItem         `json:"navItems"`
	SocialLinks map[string]string `json:"socialLinks"`
}

func (s SiteSettings) Clone() SiteSettings {
	out := s
	out.NavItems = append([]NavItem(nil), s.NavItems...)
	out.SocialLinks = maps.Clone(s.SocialLinks)
	return out
}

func Default() SiteSettings {
	return SiteSettings{
		BrandName:           "PRISM STYLES INC.",
		PrimaryColor:        "#000000",
		AccentColor:         "#7928ca",
		FontFamily:          FontInter,
		SEOTitle:            "PRISM STYLES INC. | Premium Streetwear & Ready-to-Wear",
		SEODescription:      "Shop high-end architectural fashion and urban streetwear from PRISM STYLES INC. Worldwide express shipping.",
		ShowHero:            true,
		ShowCategories:      true,
		ShowBestsellers:     true,
		ShowAbout:           true,
		ShowReviews:         true,
		ShowBookingCTA:      true,
		HeroHeading:         "BEYOND THE SPECTRUM.",
		HeroSubheading:      "Architectural aesthetics meets urban utility. Discover the latest limited-edition drop featuring technical knitwear and industrial silhouettes.",
		HeroBackgroundImage: "https://images.unsplash.com/photo-1524504388940-b1c1722653e1?auto=format&fit=crop&q=80&w=1920",
		AboutHeading:        "REDEFINING THE MODERN SILHOUETTE.",
		AboutContent:        "PRISM STYLES INC. was born from a desire to bridge the gap between high-fashion structural integrity and the raw energy of urban streetwear. Every piece is an exercise in technical precision.",
		NavItems: []NavItem{
			{ID: "1", Label: "Home", Page: "home"},
			{ID: "2", Label: "Shop", Page: "shop"},
			{ID: "3", Label: "Portfolio", Page: "portfolio"},
			{ID: "4", Label: "Bookings", Page: "booking"},
		},
		SocialLinks: map[string]string{
			"facebook":  "https://facebook.com/prismstyles",
			"instagram": "https://instagram.com/prismstyles",
			"twitter":   "https://twitter.com/prismstyles",
		},
	}
}
