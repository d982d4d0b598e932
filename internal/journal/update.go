package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

var (
	ErrUnknownField = errors.New("unknown post field")
	ErrInvalidValue = errors.New("invalid post field value")
)

// Update is a single-field edit of a post.
type Update interface {
	apply(p *Post)
	validate() error
}

type (
	SetTitle           string
	SetExcerpt         string
	SetContent         string
	SetAuthor          string
	SetDate            string
	SetImage           string
	SetSlug            string
	SetCategory        string
	SetSubtitle        string
	SetMetaTitle       string
	SetMetaDescription string
)

func (u SetTitle) apply(p *Post)           { p.Title = string(u) }
func (u SetExcerpt) apply(p *Post)         { p.Excerpt = string(u) }
func (u SetContent) apply(p *Post)         { p.Content = string(u) }
func (u SetAuthor) apply(p *Post)          { p.Author = string(u) }
func (u SetDate) apply(p *Post)            { p.Date = string(u) }
func (u SetImage) apply(p *Post)           { p.Image = string(u) }
func (u SetSlug) apply(p *Post)            { p.Slug = string(u) }
func (u SetCategory) apply(p *Post)        { p.Category = string(u) }
func (u SetSubtitle) apply(p *Post)        { p.Subtitle = string(u) }
func (u SetMetaTitle) apply(p *Post)       { p.MetaTitle = string(u) }
func (u SetMetaDescription) apply(p *Post) { p.MetaDescription = string(u) }

func (SetTitle) validate() error           { return nil }
func (SetExcerpt) validate() error         { return nil }
func (SetContent) validate() error         { return nil }
func (SetAuthor) validate() error          { return nil }
func (SetImage) validate() error           { return nil }
func (SetSlug) validate() error            { return nil }
func (SetCategory) validate() error        { return nil }
func (SetSubtitle) validate() error        { return nil }
func (SetMetaTitle) validate() error       { return nil }
func (SetMetaDescription) validate() error { return nil }

func (u SetDate) validate() error {
	if _, err := time.Parse(time.DateOnly, string(u)); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidValue)
	}
	return nil
}

// ParseUpdate maps a field name and its JSON value to an Update. Every post
// field is a string.
func ParseUpdate(field string, value []byte) (Update, error) {
	mk := setterFor(field)
	if mk == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	u := mk(s)
	if err := u.validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func setterFor(field string) func(string) Update {
	switch field {
	case "title":
		return func(s string) Update { return SetTitle(s) }
	case "excerpt":
		return func(s string) Update { return SetExcerpt(s) }
	case "content":
		return func(s string) Update { return SetContent(s) }
	case "author":
		return func(s string) Update { return SetAuthor(s) }
	case "date":
		return func(s string) Update { return SetDate(s) }
	case "image":
		return func(s string) Update { return SetImage(s) }
	case "slug":
		return func(s string) Update { return SetSlug(s) }
	case "category":
		return func(s string) Update { return SetCategory(s) }
	case "subtitle":
		return func(s string) Update { return SetSubtitle(s) }
	case "metaTitle":
		return func(s string) Update { return SetMetaTitle(s) }
	case "metaDescription":
		return func(s string) Update { return SetMetaDescription(s) }
	}
	return nil
}
