package cart

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/prism-styles-backend/internal/product"
)

func makeAppWithCartHandler() (*fiber.App, *Service) {
	products := product.NewService(product.NewInMemoryRepository(product.Seed()))
	svc := NewService(NewInMemoryRepository(), products)
	app := fiber.New()
	NewHandler(svc).RegisterPublicRoutes(app)
	return app, svc
}

func TestCartRoutes_Basic(t *testing.T) {
	app, svc := makeAppWithCartHandler()

	// ensure routes registered
	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Path] = true
		}
	}
	if !routes["/api/v1/cart"] || !routes["/api/v1/cart/items"] {
		t.Fatalf("expected cart routes to be registered")
	}

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/api/v1/cart", strings.NewReader(`{"productId":"1","size":"M","color":"Midnight Black"}`))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if res.StatusCode != 200 {
			t.Fatalf("expected 200, got %d", res.StatusCode)
		}
	}
	req := httptest.NewRequest("POST", "/api/v1/cart", strings.NewReader(`{"productId":"4"}`))
	req.Header.Set("Content-Type", "application/json")
	if _, err := app.Test(req); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/cart", nil))
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	body := string(b)
	if !strings.Contains(body, `"subtotal":380`) || !strings.Contains(body, `"shipping":0`) || !strings.Contains(body, `"total":380`) {
		t.Fatalf("unexpected totals: %s", body)
	}
	if !strings.Contains(body, `"key":"1-M-Midnight Black"`) {
		t.Fatalf("expected rendered line key, got %s", body)
	}

	// default variant is the product's first size and color
	items := svc.Items()
	if len(items) != 2 || items[1].SelectedSize != "30" || items[1].SelectedColor != "Midnight Black" {
		t.Fatalf("unexpected default variant: %+v", items)
	}
}

func TestCartUpdateQuantityClamps(t *testing.T) {
	app, svc := makeAppWithCartHandler()
	if _, err := svc.AddToCart("1", "S", "Slate Grey"); err != nil {
		t.Fatalf("seed add failed: %v", err)
	}

	req := httptest.NewRequest("PATCH", "/api/v1/cart", strings.NewReader(`{"productId":"1","size":"S","color":"Slate Grey","quantity":-3}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("patch failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if q := svc.Items()[0].Quantity; q != 1 {
		t.Fatalf("expected quantity clamped to 1, got %d", q)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	app, _ := makeAppWithCartHandler()

	req := httptest.NewRequest("POST", "/api/v1/cart", strings.NewReader(`{"productId":"999"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestCartClear(t *testing.T) {
	app, svc := makeAppWithCartHandler()
	_, _ = svc.AddToCart("2", "", "")

	res, err := app.Test(httptest.NewRequest("DELETE", "/api/v1/cart", nil))
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if res.StatusCode != 200 || len(svc.Items()) != 0 {
		t.Fatalf("expected empty cart after clear")
	}
}
