package config

import (
	"errors"
	"os"
	"strings"
)

type Config struct {
	Port           string
	MongoURI       string
	DBName         string
	AllowedOrigins []string
	Production     bool
}

// defaultOrigins covers the usual local dev servers when FRONTEND_URL is not
// set.
var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"http://localhost:3000",
	"http://localhost:5175",
}

// Load reads the server configuration from the environment. MONGODB_URI is
// the only required variable; the caller exits when Load fails.
func Load() (*Config, error) {
	uri := strings.TrimSpace(os.Getenv("MONGODB_URI"))
	if uri == "" {
		return nil, errors.New("MONGODB_URI is not set (set it in .env or the environment)")
	}
	origins := defaultOrigins
	if v := getEnv("FRONTEND_URL", ""); v != "" {
		origins = splitOrigins(v)
	}
	return &Config{
		Port:           getEnv("PORT", "5000"),
		MongoURI:       uri,
		DBName:         getEnv("MONGODB_DB", "smartlibrary"),
		AllowedOrigins: origins,
		Production:     getEnv("ENV", "development") == "production",
	}, nil
}

// APIBaseURL is the endpoint the client layer talks to. Read separately from
// Load because the CLI needs it without any server-side settings.
func APIBaseURL() string {
	return getEnv("SMARTLIB_API_URL", "http://localhost:5000/api")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitOrigins(v string) []string {
	var origins []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
