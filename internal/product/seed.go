package product

const placeholderImage = "https://images.unsplash.com/photo-1503342217505-b0a15ec3261c?auto=format&fit=crop&q=80&w=800"

func unsplash(id string) []string {
	return []string{"https://images.unsplash.com/" + id + "?auto=format&fit=crop&q=80&w=800"}
}

// Seed returns the demo catalog a fresh session starts with.
func Seed() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Oversized Prism Tee",
			Price:       85,
			Category:    CategoryMen,
			Description: "Ultra-heavyweight 300GSM cotton tee with a signature prism gradient back print. Engineered for a structural oversized drape.",
			Images:      unsplash("photo-1521572163474-6864f9cf17ab"),
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Midnight Black", "Slate Grey"},
			Stock:       50,
			Featured:    true,
			BestSeller:  true,
			Specs: []Spec{
				{Label: "Weight", Value: "300GSM"},
				{Label: "Fabric", Value: "100% cotton"},
			},
			Slug: "oversized-prism-tee",
		},
		{
			ID:          "2",
			Name:        "Cyber-Knit Hoody",
			Price:       195,
			Category:    CategoryWomen,
			Description: "Technical double-knit hoodie featuring high-visibility prism accents and integrated thumb loops.",
			Images:      unsplash("photo-1515886657613-9f3515b0c78f"),
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Prism White", "Onyx"},
			Stock:       25,
			Featured:    true,
			Slug:        "cyber-knit-hoody",
		},
		{
			ID:          "3",
			Name:        "Technical Shell Parka",
			Price:       450,
			Category:    CategoryMen,
			Description: "Water-resistant 3-layer GORE-TEX alternative shell. Features 8-pocket modular storage and taped internal seams.",
			Images:      unsplash("photo-1591047139829-d91aecb6caea"),
			Sizes:       []string{"M", "L", "XL"},
			Colors:      []string{"Stealth Black", "Olive Drab"},
			Stock:       12,
			Featured:    true,
			Specs: []Spec{
				{Label: "Shell", Value: "3-layer laminate"},
				{Label: "Pockets", Value: "8 modular"},
			},
			Slug: "technical-shell-parka",
		},
		{
			ID:          "4",
			Name:        "Pleated Industrial Trousers",
			Price:       210,
			Category:    CategoryMen,
			Description: "High-waisted architectural trousers with permanent pleating and reinforced nylon knee panels.",
			Images:      unsplash("photo-1624378439575-d8705ad7ae80"),
			Sizes:       []string{"30", "32", "34", "36"},
			Colors:      []string{"Midnight Black", "Slate"},
			Stock:       30,
			BestSeller:  true,
			Slug:        "pleated-industrial-trousers",
		},
		{
			ID:          "5",
			Name:        "Asymmetric Knit Vest",
			Price:       135,
			Category:    CategoryWomen,
			Description: "Deconstructed knitwear crafted from ultra-soft Merino wool. Features raw edges and asymmetric layering potential.",
			Images:      unsplash("photo-1583743814966-8936f5b7be1a"),
			Sizes:       []string{"S", "M", "L"},
			Colors:      []string{"Onyx", "Bone"},
			Stock:       18,
			Slug:        "asymmetric-knit-vest",
		},
		{
			ID:          "6",
			Name:        "Prism Stealth Watch v2",
			Price:       295,
			Category:    CategoryAccessories,
			Description: "Sandblasted steel case with a matte sapphire face. Minimalist aesthetic with a high-torque Japanese movement.",
			Images:      unsplash("photo-1524592094714-0f0654e20314"),
			Sizes:       []string{"One Size"},
			Colors:      []string{"Matte Black"},
			Stock:       8,
			Featured:    true,
			Slug:        "prism-stealth-watch",
		},
		{
			ID:          "7",
			Name:        "Industrial Utility Belt",
			Price:       65,
			Category:    CategoryAccessories,
			Description: "Quick-release Cobra-style buckle with high-tensile nylon webbing. Laser-etched logo detailing.",
			Images:      unsplash("photo-1624222247344-550fbadfd08d"),
			Sizes:       []string{"One Size"},
			Colors:      []string{"Black", "Safety Orange"},
			Stock:       45,
			BestSeller:  true,
			Slug:        "industrial-utility-belt",
		},
		{
			ID:          "8",
			Name:        "Spectrum 01 Sneakers",
			Price:       320,
			Category:    CategoryLimited,
			Description: "Hybrid performance-fashion footwear. Features iridescent 3M panels and a custom-molded EVA midsole.",
			Images:      unsplash("photo-1552346154-21d32810aba3"),
			Sizes:       []string{"8", "9", "10", "11", "12"},
			Colors:      []string{"Iridescent/Black"},
			Stock:       5,
			Featured:    true,
			Slug:        "limited-spectrum-sneakers",
		},
		{
			ID:          "9",
			Name:        "Structural Maxi Coat",
			Price:       580,
			Category:    CategoryWomen,
			Description: "Floor-length heavy wool coat with aggressive shoulder structure and concealed magnetic closures.",
			Images:      unsplash("photo-1539533018447-63fcce2678e3"),
			Sizes:       []string{"XS", "S", "M"},
			Colors:      []string{"Charcoal", "Midnight"},
			Stock:       7,
			Featured:    true,
			Slug:        "structural-maxi-coat",
		},
		{
			ID:          "10",
			Name:        "Reflective Crossbody",
			Price:       110,
			Category:    CategoryAccessories,
			Description: "A compact tactical bag built from 1000D Cordura with fully reflective paneling for night-cycle utility.",
			Images:      unsplash("photo-1548036328-c9fa89d128fa"),
			Sizes:       []string{"One Size"},
			Colors:      []string{"Reflective Silver", "Tactical Black"},
			Stock:       22,
			Slug:        "reflective-crossbody-bag",
		},
		{
			ID:          "11",
			Name:        "Monolith Cargo Pant",
			Price:       240,
			Category:    CategoryMen,
			Description: "Triple-stitched 12-pocket cargo pants. Features adjustable hem drawstrings and water-repellent coating.",
			Images:      unsplash("photo-1594932224828-b4b059b6f684"),
			Sizes:       []string{"30", "32", "34", "36"},
			Colors:      []string{"Graphite", "Desert"},
			Stock:       15,
			Slug:        "monolith-cargo-pant",
		},
		{
			ID:          "12",
			Name:        "Obsidian Trench",
			Price:       620,
			Category:    CategoryWomen,
			Description: "The ultimate city coat. Constructed from a high-density poly-silk blend that holds a dramatic silhouette.",
			Images:      unsplash("photo-1525507119028-ed4c629a60a3"),
			Sizes:       []string{"S", "M", "L"},
			Colors:      []string{"Obsidian Black"},
			Stock:       10,
			Featured:    true,
			Slug:        "obsidian-trench",
		},
		{
			ID:          "13",
			Name:        "Logo Beanie",
			Price:       45,
			Category:    CategoryAccessories,
			Description: "Recycled acrylic knit beanie. Thick gauge for maximum shape retention. Embroidered 3D prism logo.",
			Images:      unsplash("photo-1576871337622-98d48d1cf531"),
			Sizes:       []string{"One Size"},
			Colors:      []string{"Black", "Grey", "Electric Blue"},
			Stock:       100,
			Slug:        "prism-logo-beanie",
		},
		{
			ID:          "14",
			Name:        "Cyber Utility Vest",
			Price:       280,
			Category:    CategoryMen,
			Description: "Tactical layering piece with a built-in hydration compartment and MOLLE-compatible attachment points.",
			Images:      unsplash("photo-1605518216938-7c31b7b14ad0"),
			Sizes:       []string{"M", "L"},
			Colors:      []string{"Stealth Black"},
			Stock:       6,
			Slug:        "cyber-utility-vest",
		},
		{
			ID:          "15",
			Name:        "Acid-Wash Prism Denim",
			Price:       310,
			Category:    CategoryWomen,
			Description: "Custom-distressed 14oz Japanese denim with a subtle iridescent prism-dye finish on the seams.",
			Images:      unsplash("photo-1541099649105-f69ad21f3246"),
			Sizes:       []string{"24", "26", "28"},
			Colors:      []string{"Prism Acid"},
			Stock:       14,
			Slug:        "prism-denim",
		},
	}
}
