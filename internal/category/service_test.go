package category

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/wichananm65/prism-styles-backend/internal/product"
)

func TestServiceListCountsSeedCatalog(t *testing.T) {
	svc := NewService(product.NewService(product.NewInMemoryRepository(product.Seed())))

	items := svc.List(0)

	assert.Equal(t, []CategoryItem{
		{CategoryName: "All", Count: 15},
		{CategoryName: "Men", Count: 5},
		{CategoryName: "Women", Count: 5},
		{CategoryName: "Accessories", Count: 4},
		{CategoryName: "Limited", Count: 1},
	}, items)
}

func TestGetCategoriesLimit(t *testing.T) {
	svc := NewService(product.NewService(product.NewInMemoryRepository(product.Seed())))
	app := fiber.New()
	NewHandler(svc).RegisterPublicRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/categories?limit=2", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	body := string(b)
	if !strings.Contains(body, `"categoryName":"Men"`) || strings.Contains(body, "Women") {
		t.Fatalf("unexpected body for limit=2: %s", body)
	}
}
