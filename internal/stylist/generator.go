package stylist

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

var (
	ErrNoImage = errors.New("response carried no inline image")
)

// Generator is the hosted generative service the stylist talks to.
type Generator interface {
	GenerateText(ctx context.Context, systemInstruction, message string) (string, error)
	// GenerateImage returns the rendered image as a data URI.
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

type GeminiConfig struct {
	APIKey      string
	TextModel   string
	ImageModel  string
	AspectRatio string
	Temperature float32
}

// GeminiGenerator implements Generator on the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	cfg    GeminiConfig
}

func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("stylist: create genai client: %w", err)
	}
	return &GeminiGenerator{client: client, cfg: cfg}, nil
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, systemInstruction, message string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.TextModel, genai.Text(message), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(g.cfg.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("stylist: generate text: %w", err)
	}
	return resp.Text(), nil
}

func (g *GeminiGenerator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.ImageModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{AspectRatio: g.cfg.AspectRatio},
	})
	if err != nil {
		return "", fmt.Errorf("stylist: generate image: %w", err)
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return DataURI(part.InlineData.Data), nil
			}
		}
	}
	return "", ErrNoImage
}

// DataURI encodes raw image bytes as a PNG data URI.
func DataURI(data []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
}
