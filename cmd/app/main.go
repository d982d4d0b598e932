package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/wichananm65/prism-styles-backend/internal/config"
	"github.com/wichananm65/prism-styles-backend/internal/forms"
	"github.com/wichananm65/prism-styles-backend/internal/server"
	"github.com/wichananm65/prism-styles-backend/internal/store"
	"github.com/wichananm65/prism-styles-backend/internal/stylist"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gateway := forms.NewGateway(cfg.FormsEndpoint, cfg.FormsTimeout)
	st := store.New(store.DefaultSeed(), gateway)

	// a nil generator makes the stylist answer with its maintenance message
	var gen stylist.Generator
	if cfg.GeminiAPIKey == "" {
		log.Printf("[stylist] GEMINI_API_KEY is not set, stylist runs in fallback mode")
	} else {
		g, err := stylist.NewGeminiGenerator(ctx, stylist.GeminiConfig{
			APIKey:      cfg.GeminiAPIKey,
			TextModel:   cfg.StylistTextModel,
			ImageModel:  cfg.StylistImageModel,
			AspectRatio: cfg.StylistAspectRatio,
			Temperature: cfg.StylistTemperature,
		})
		if err != nil {
			log.Printf("[stylist] could not create gemini client: %v", err)
		} else {
			gen = g
		}
	}
	conv := stylist.NewConversation(gen, st.Products, st.Settings, stylist.WithImageTimeout(cfg.StylistImageTimeout))

	app := server.New(st, conv, gateway, server.Options{
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		RequestLog:       true,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("[http] listening on %s", cfg.Addr)
		return app.Listen(cfg.Addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Printf("[http] shutting down")
		return app.ShutdownWithTimeout(cfg.ShutdownTimeout)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("[http] %v", err)
	}
}
