package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr             string
	CORSAllowOrigins string
	ShutdownTimeout  time.Duration

	FormsEndpoint string
	FormsTimeout  time.Duration

	GeminiAPIKey        string
	StylistTextModel    string
	StylistImageModel   string
	StylistAspectRatio  string
	StylistTemperature  float32
	StylistImageTimeout time.Duration
}

// Load reads .env when present, then the environment. Missing values fall back to
// defaults; an empty GEMINI_API_KEY leaves the stylist without an upstream.
func Load() Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("[config] could not load .env: %v", err)
		}
	}

	apiKey := getEnv("GEMINI_API_KEY", "")
	if apiKey == "" {
		apiKey = getEnv("API_KEY", "")
	}

	return Config{
		Addr:             getEnv("PRISM_ADDR", ":8080"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		ShutdownTimeout:  getSeconds("SHUTDOWN_TIMEOUT_SECONDS", 10),

		FormsEndpoint: getEnv("FORMS_ENDPOINT", "https://formspree.io/f/mojjvrgb"),
		FormsTimeout:  getSeconds("FORMS_TIMEOUT_SECONDS", 10),

		GeminiAPIKey:        apiKey,
		StylistTextModel:    getEnv("STYLIST_TEXT_MODEL", "gemini-3-flash-preview"),
		StylistImageModel:   getEnv("STYLIST_IMAGE_MODEL", "gemini-2.5-flash-image"),
		StylistAspectRatio:  getEnv("STYLIST_IMAGE_ASPECT_RATIO", "3:4"),
		StylistTemperature:  0.7,
		StylistImageTimeout: getSeconds("STYLIST_IMAGE_TIMEOUT_SECONDS", 60),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getSeconds(key string, fallback int) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(fallback) * time.Second
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[config] %s=%q is not a positive number of seconds, using %d", key, v, fallback)
		return time.Duration(fallback) * time.Second
	}
	return time.Duration(n) * time.Second
}
