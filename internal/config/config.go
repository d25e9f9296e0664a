package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the server needs at startup. Media-host
// credentials live here rather than in package-level state so the
// uploader can be constructed explicitly in main.
type Config struct {
	Port          string `envconfig:"APP_PORT" default:"8080"`
	DatabaseDSN   string `envconfig:"DB_DSN" required:"true"`
	SessionSecret string `envconfig:"SESSION_SECRET" default:"dev_fallback_secret"`

	CloudinaryCloudName string `envconfig:"CLOUDINARY_CLOUD_NAME" required:"true"`
	CloudinaryAPIKey    string `envconfig:"CLOUDINARY_API_KEY" required:"true"`
	CloudinaryAPISecret string `envconfig:"CLOUDINARY_API_SECRET" required:"true"`
	UploadFolder        string `envconfig:"UPLOAD_FOLDER" default:"products"`
}

// Load reads .env (also from parent dirs, for running out of cmd/server)
// and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
