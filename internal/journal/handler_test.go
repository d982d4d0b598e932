package journal

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newTestApp() *fiber.App {
	h := NewHandler(NewService(NewInMemoryRepository(Seed())))
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	h.RegisterAdminRoutes(app)
	return app
}

func TestGetPostBySlug(t *testing.T) {
	app := newTestApp()

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/journal/evolution-of-streetwear-2026", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "The Evolution of Streetwear in 2026") {
		t.Fatalf("unexpected body: %s", string(b))
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/journal/missing", nil))
	if res.StatusCode != 404 {
		t.Fatalf("expected 404 for unknown slug, got %d", res.StatusCode)
	}
}

func TestPatchPostRejectsBadDate(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("PATCH", "/api/v1/admin/journal/b1", strings.NewReader(`{"field":"date","value":"20 May"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestPatchPostTitle(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("PATCH", "/api/v1/admin/journal/b1", strings.NewReader(`{"field":"title","value":"Chrome Season"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	body := string(b)
	if res.StatusCode != 200 || !strings.Contains(body, `"updated":true`) || !strings.Contains(body, "Chrome Season") {
		t.Fatalf("unexpected response %d: %s", res.StatusCode, body)
	}
}

func TestCreateAndDeletePost(t *testing.T) {
	app := newTestApp()

	res, err := app.Test(httptest.NewRequest("POST", "/api/v1/admin/journal", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	res, _ = app.Test(httptest.NewRequest("DELETE", "/api/v1/admin/journal/b1", nil))
	b, _ := io.ReadAll(res.Body)
	body := string(b)
	if !strings.Contains(body, `"deleted":true`) || strings.Contains(body, "Evolution of Streetwear") {
		t.Fatalf("expected b1 removed: %s", body)
	}
}
