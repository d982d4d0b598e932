package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUpdate(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr error
		check   func(t *testing.T, p Product)
	}{
		{name: "price", field: "price", value: `99.9`, check: func(t *testing.T, p Product) { assert.Equal(t, 99.9, p.Price) }},
		{name: "category", field: "category", value: `"Limited"`, check: func(t *testing.T, p Product) { assert.Equal(t, CategoryLimited, p.Category) }},
		{name: "images", field: "images", value: `["a.jpg","b.jpg"]`, check: func(t *testing.T, p Product) { assert.Equal(t, []string{"a.jpg", "b.jpg"}, p.Images) }},
		{name: "specs", field: "specs", value: `[{"label":"Fit","value":"Boxy"}]`, check: func(t *testing.T, p Product) {
			assert.Equal(t, []Spec{{Label: "Fit", Value: "Boxy"}}, p.Specs)
		}},
		{name: "bestSeller", field: "bestSeller", value: `true`, check: func(t *testing.T, p Product) { assert.True(t, p.BestSeller) }},
		{name: "unknown field", field: "id", value: `"7"`, wantErr: ErrUnknownField},
		{name: "negative price", field: "price", value: `-1`, wantErr: ErrInvalidValue},
		{name: "negative stock", field: "stock", value: `-5`, wantErr: ErrInvalidValue},
		{name: "category outside enum", field: "category", value: `"Kids"`, wantErr: ErrInvalidValue},
		{name: "empty sizes", field: "sizes", value: `[]`, wantErr: ErrInvalidValue},
		{name: "wrong type", field: "price", value: `"cheap"`, wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ParseUpdate(tt.field, []byte(tt.value))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			p := Seed()[0]
			u.apply(&p)
			tt.check(t, p)
		})
	}
}
