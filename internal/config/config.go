package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort      string
	BackendAPIURL string // URL base del backend REST de CaffeFlux
	CORSOrigins   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] Sin archivo .env, se usan las variables de entorno del proceso")
	}

	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		BackendAPIURL: getEnv("BACKEND_API_URL", ""),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
	}

	if cfg.BackendAPIURL == "" {
		log.Fatal("[FATAL] BACKEND_API_URL no está definida. El mostrador no puede operar sin el backend de CaffeFlux.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS usa el valor por defecto, define tu dominio en producción.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
