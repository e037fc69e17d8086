// Package config loads server-level configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config aggregates the runtime settings read once at startup.
// Database settings are read by the db package itself (see platform/db).
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// FrontendOrigin is the origin allowed by the CORS policy.
	FrontendOrigin string

	// FirebaseCredentials is the path to the Firebase service account JSON.
	// When empty and JWTSecret is set, the server falls back to local HS256
	// token verification (development only).
	FirebaseCredentials string

	// JWTSecret signs/verifies locally minted development tokens.
	JWTSecret string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:                getEnv("PORT", "8080"),
		FrontendOrigin:      getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
