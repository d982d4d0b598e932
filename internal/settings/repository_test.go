package settings

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsCopy(t *testing.T) {
	r := NewInMemoryRepository(Default())

	s := r.Get()
	s.NavItems[0].Label = "Changed"
	s.SocialLinks["tiktok"] = "https://tiktok.com/@prism"

	got := r.Get()
	assert.Equal(t, "Home", got.NavItems[0].Label)
	assert.NotContains(t, got.SocialLinks, "tiktok")
}

func TestReplaceIsWholesale(t *testing.T) {
	r := NewInMemoryRepository(Default())

	next := Default()
	next.BrandName = "PRISM LAB"
	next.ShowReviews = false
	next.NavItems = next.NavItems[:1]
	require.NoError(t, r.Replace(next))

	assert.Equal(t, next, r.Get())
}

func TestReplaceRejectsUnknownFont(t *testing.T) {
	r := NewInMemoryRepository(Default())

	bad := Default()
	bad.FontFamily = "Comic Sans"
	assert.ErrorIs(t, r.Replace(bad), ErrInvalidSettings)
	assert.Equal(t, FontInter, r.Get().FontFamily)
}

func TestPutSettings(t *testing.T) {
	r := NewInMemoryRepository(Default())
	app := fiber.New()
	h := NewHandler(r)
	h.RegisterPublicRoutes(app)
	h.RegisterAdminRoutes(app)

	req := httptest.NewRequest("PUT", "/api/v1/admin/settings", strings.NewReader(`{"brandName":"NEW","fontFamily":"Oswald","showHero":false}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	got := r.Get()
	if got.BrandName != "NEW" || got.FontFamily != FontOswald || got.ShowAbout {
		t.Fatalf("settings were not replaced wholesale: %+v", got)
	}
}
