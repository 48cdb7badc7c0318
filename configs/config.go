package configs

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config is everything the server reads from the environment.
type Config struct {
	Port     string
	Env      string
	LogLevel string

	MongoURI string
	DBName   string

	JWTSecret string

	AIFormURL    string
	AIFormAPIKey string

	FrontendOrigins string
}

// Load reads an optional .env file and then the environment. MONGO_URI,
// DB_NAME and JWT_SECRET have no sane defaults and must be set.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "3000"),
		Env:             getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		MongoURI:        os.Getenv("MONGO_URI"),
		DBName:          os.Getenv("DB_NAME"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AIFormURL:       getEnv("AI_FORM_URL", ""),
		AIFormAPIKey:    getEnv("AI_FORM_API_KEY", ""),
		FrontendOrigins: getEnv("FRONTEND_ORIGINS", "http://localhost:5173"),
	}

	if cfg.MongoURI == "" || cfg.DBName == "" {
		return nil, errors.New("MONGO_URI and DB_NAME must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
