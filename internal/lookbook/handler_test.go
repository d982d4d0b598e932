package lookbook

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestLookbookRoutes(t *testing.T) {
	app := fiber.New()
	NewHandler(NewInMemoryRepository(SeedGallery(), SeedPortfolio())).RegisterPublicRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/lookbook/gallery?limit=2", nil))
	if err != nil {
		t.Fatalf("gallery request failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	body := string(b)
	if !strings.Contains(body, "Urban Utility") || strings.Contains(body, "Prism Avant-Garde") {
		t.Fatalf("unexpected gallery body: %s", body)
	}

	res, err = app.Test(httptest.NewRequest("GET", "/api/v1/lookbook/portfolio", nil))
	if err != nil {
		t.Fatalf("portfolio request failed: %v", err)
	}
	b, _ = io.ReadAll(res.Body)
	if n := strings.Count(string(b), `"img"`); n != 8 {
		t.Fatalf("expected 8 portfolio images, got %d", n)
	}
}
