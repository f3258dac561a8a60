package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// App holds the process configuration. Defaults reproduce the constants
// the service shipped with before they were externalized.
type App struct {
	Port            string `env:"API_PORT" envDefault:"4000"`
	DBConnectionURL string `env:"DB_CONNECTION_URL,required"`
	JWTSecret       string `env:"JWT_SECRET,required"`
	CORSOrigin      string `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`
	UploadsDir      string `env:"UPLOADS_DIR" envDefault:"uploads"`
	BcryptCost      int    `env:"BCRYPT_COST" envDefault:"10"`
}

func NewApp() (App, error) {
	var cfg App
	if err := env.Parse(&cfg); err != nil {
		return App{}, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}
