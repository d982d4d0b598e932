package stylist

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/wichananm65/prism-styles-backend/internal/product"
)

// ProductContext lists every product on its own line as
// "<name> ($<price>) - <category>: <description>".
func ProductContext(products []product.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("%s ($%s) - %s: %s", p.Name, formatPrice(p.Price), p.Category, p.Description))
	}
	return strings.Join(lines, "\n")
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SystemInstruction builds the persona prompt sent with every text request.
func SystemInstruction(brandName, productContext string) string {
	return fmt.Sprintf(`You are the "Prism AI Stylist" for the high-end fashion brand %s.
Your personality: Professional, avant-garde, helpful, and sophisticated.
Your goal: Help customers find the perfect outfits and explain the architectural philosophy of the brand.

Current Inventory:
%s

Guidelines:
- Suggest specific products from the inventory above when relevant.
- Talk about structural minimalism, urban utility, and the "Prism aesthetic".
- Keep responses concise but stylish.
- Whenever you propose a visual outfit concept, end your reply with exactly one tag of the form
  [GENERATE_IMAGE: <short visual description of the outfit and setting>]
  and nothing after it. Do not emit the tag otherwise.`, brandName, productContext)
}

var directivePattern = regexp.MustCompile(`(?s)\[GENERATE_IMAGE:\s*(.*?)\s*\]`)

// ParseDirective splits a model reply into the text to display and the image
// description of its first [GENERATE_IMAGE: ...] tag. Every tag is removed from
// the display text. ok is false when the reply carries no tag with a description.
func ParseDirective(reply string) (display string, description string, ok bool) {
	m := directivePattern.FindStringSubmatch(reply)
	display = strings.TrimSpace(directivePattern.ReplaceAllString(reply, ""))
	if m == nil || m[1] == "" {
		return display, "", false
	}
	return display, m[1], true
}

// ImagePrompt wraps an outfit description in the lookbook photography brief.
func ImagePrompt(description string) string {
	return "Cinematic high-fashion editorial photograph for the PRISM STYLES lookbook. " +
		description +
		". Shot on a medium-format camera, dramatic directional lighting, architectural backdrop, " +
		"muted palette with a subtle iridescent prism accent, sharp fabric detail, full-body framing."
}
