package server

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/wichananm65/prism-styles-backend/internal/booking"
	"github.com/wichananm65/prism-styles-backend/internal/cart"
	"github.com/wichananm65/prism-styles-backend/internal/category"
	"github.com/wichananm65/prism-styles-backend/internal/journal"
	"github.com/wichananm65/prism-styles-backend/internal/lookbook"
	"github.com/wichananm65/prism-styles-backend/internal/order"
	"github.com/wichananm65/prism-styles-backend/internal/product"
	"github.com/wichananm65/prism-styles-backend/internal/recommended"
	"github.com/wichananm65/prism-styles-backend/internal/settings"
	"github.com/wichananm65/prism-styles-backend/internal/store"
	"github.com/wichananm65/prism-styles-backend/internal/stylist"
	"github.com/wichananm65/prism-styles-backend/internal/wishlist"
)

type Options struct {
	CORSAllowOrigins string
	// RequestLog enables the per-request access log.
	RequestLog bool
}

// New assembles the HTTP API over one Store.
func New(s *store.Store, conv *stylist.Conversation, forms booking.Submitter, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "prism-styles",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	if opts.RequestLog {
		app.Use(logger.New(logger.Config{
			Format: "[http] ${time} ${status} ${method} ${path} ${latency}\n",
		}))
	}
	setupCORS(app, opts.CORSAllowOrigins)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// rails before product routes so /products/featured is not read as an id
	recommended.NewHandler(s.Recommended).RegisterPublicRoutes(app)
	category.NewHandler(s.Categories).RegisterPublicRoutes(app)

	productHandler := product.NewHandler(s.Products)
	productHandler.RegisterPublicRoutes(app)

	cart.NewHandler(s.Cart).RegisterPublicRoutes(app)
	wishlist.NewHandler(s.Wishlist).RegisterPublicRoutes(app)

	orderHandler := order.NewHandler(s.Orders, s.Checkout, s.Products)
	orderHandler.RegisterPublicRoutes(app)

	booking.NewHandler(forms, s.Settings).RegisterPublicRoutes(app)

	journalHandler := journal.NewHandler(s.Journal)
	journalHandler.RegisterPublicRoutes(app)

	settingsHandler := settings.NewHandler(s.Settings)
	settingsHandler.RegisterPublicRoutes(app)

	lookbook.NewHandler(s.Lookbook).RegisterPublicRoutes(app)
	stylist.NewHandler(conv).RegisterPublicRoutes(app)

	// admin console; authentication is out of scope
	productHandler.RegisterAdminRoutes(app)
	orderHandler.RegisterAdminRoutes(app)
	journalHandler.RegisterAdminRoutes(app)
	settingsHandler.RegisterAdminRoutes(app)

	return app
}

func setupCORS(app *fiber.App, origins string) {
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"message": err.Error()})
}
