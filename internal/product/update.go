package product

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

var (
	ErrUnknownField = errors.New("unknown product field")
	ErrInvalidValue = errors.New("invalid product field value")
)

// Update is a single-field edit of a product. The set of implementations is closed:
// only the Set* types in this package satisfy it.
type Update interface {
	apply(p *Product)
	validate() error
}

type (
	SetName            string
	SetPrice           float64
	SetCategory        Category
	SetDescription     string
	SetImages          []string
	SetSizes           []string
	SetColors          []string
	SetStock           int
	SetFeatured        bool
	SetBestSeller      bool
	SetSpecs           []Spec
	SetSlug            string
	SetMetaTitle       string
	SetMetaDescription string
)

func (u SetName) apply(p *Product)            { p.Name = string(u) }
func (u SetPrice) apply(p *Product)           { p.Price = float64(u) }
func (u SetCategory) apply(p *Product)        { p.Category = Category(u) }
func (u SetDescription) apply(p *Product)     { p.Description = string(u) }
func (u SetImages) apply(p *Product)          { p.Images = append([]string(nil), u...) }
func (u SetSizes) apply(p *Product)           { p.Sizes = append([]string(nil), u...) }
func (u SetColors) apply(p *Product)          { p.Colors = append([]string(nil), u...) }
func (u SetStock) apply(p *Product)           { p.Stock = int(u) }
func (u SetFeatured) apply(p *Product)        { p.Featured = bool(u) }
func (u SetBestSeller) apply(p *Product)      { p.BestSeller = bool(u) }
func (u SetSpecs) apply(p *Product)           { p.Specs = append([]Spec(nil), u...) }
func (u SetSlug) apply(p *Product)            { p.Slug = string(u) }
func (u SetMetaTitle) apply(p *Product)       { p.MetaTitle = string(u) }
func (u SetMetaDescription) apply(p *Product) { p.MetaDescription = string(u) }

func (u SetName) validate() error            { return nil }
func (u SetDescription) validate() error     { return nil }
func (u SetFeatured) validate() error        { return nil }
func (u SetBestSeller) validate() error      { return nil }
func (u SetSpecs) validate() error           { return nil }
func (u SetSlug) validate() error            { return nil }
func (u SetMetaTitle) validate() error       { return nil }
func (u SetMetaDescription) validate() error { return nil }

func (u SetPrice) validate() error {
	if u < 0 {
		return fmt.Errorf("%w: price must be >= 0", ErrInvalidValue)
	}
	return nil
}

func (u SetStock) validate() error {
	if u < 0 {
		return fmt.Errorf("%w: stock must be >= 0", ErrInvalidValue)
	}
	return nil
}

func (u SetCategory) validate() error {
	if !Category(u).Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidValue, string(u))
	}
	return nil
}

func (u SetImages) validate() error { return nonEmpty("images", u) }
func (u SetSizes) validate() error  { return nonEmpty("sizes", u) }
func (u SetColors) validate() error { return nonEmpty("colors", u) }

func nonEmpty(field string, values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidValue, field)
	}
	return nil
}

// ParseUpdate turns an admin key/value edit into a typed Update. Only the product's
// own fields are accepted; the value must decode into that field's type.
func ParseUpdate(field string, value []byte) (Update, error) {
	var (
		u   Update
		err error
	)
	switch field {
	case "name":
		u, err = decode[SetName](value)
	case "price":
		u, err = decode[SetPrice](value)
	case "category":
		u, err = decode[SetCategory](value)
	case "description":
		u, err = decode[SetDescription](value)
	case "images":
		u, err = decode[SetImages](value)
	case "sizes":
		u, err = decode[SetSizes](value)
	case "colors":
		u, err = decode[SetColors](value)
	case "stock":
		u, err = decode[SetStock](value)
	case "featured":
		u, err = decode[SetFeatured](value)
	case "bestSeller":
		u, err = decode[SetBestSeller](value)
	case "specs":
		u, err = decode[SetSpecs](value)
	case "slug":
		u, err = decode[SetSlug](value)
	case "metaTitle":
		u, err = decode[SetMetaTitle](value)
	case "metaDescription":
		u, err = decode[SetMetaDescription](value)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if err != nil {
		return nil, err
	}
	if err := u.validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func decode[T Update](value []byte) (Update, error) {
	var v T
	if err := json.Unmarshal(value, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return v, nil
}
