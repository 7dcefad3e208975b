package config

import "os"

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
type Config struct {
	JWTSecret        string
	ShopName         string
	ShopDomain       string
	PlatformEndpoint string
	PlatformToken    string
	SendGridAPIKey   string
	AlertFromEmail   string
	GeminiAPIKey     string
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// LoadFromEnv fills AppConfig from environment variables.
func LoadFromEnv() {
	AppConfig = Config{
		JWTSecret:        os.Getenv("JWT_SECRET"),
		ShopName:         os.Getenv("SHOP_NAME"),
		ShopDomain:       os.Getenv("SHOP_DOMAIN"),
		PlatformEndpoint: os.Getenv("PLATFORM_GRAPHQL_ENDPOINT"),
		PlatformToken:    os.Getenv("PLATFORM_ACCESS_TOKEN"),
		SendGridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
		AlertFromEmail:   os.Getenv("ALERT_FROM_EMAIL"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
	}
}
