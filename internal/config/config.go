package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Auth      AuthConfig
	Storage   StorageConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Render    RenderConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type AuthConfig struct {
	JWTSecret     string
	ExpiryHours   time.Duration
	AdminPassword string // bcrypt hash; plaintext is accepted in development only
}

type StorageConfig struct {
	UploadPath       string
	UploadMaxSize    int64
	DefaultLogo      string
	DefaultSignature string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// RenderConfig carries per-deployment presentation settings: font mode,
// currency glyph handling, optional overlay and QR features.
type RenderConfig struct {
	FontMode        string // "proportional" or "monospaced"
	NairaGlyph      bool   // print the naira sign instead of ASCII "N"
	UnicodeFontPath string // TTF with the naira glyph, required when NairaGlyph is set
	UnicodeFontBold string
	SecondaryMark   string // extra watermark layer text, empty disables
	QRCode          bool   // append a verification QR to each document
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "nextride-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("ADMIN_PASSWORD", "admin")
	viper.SetDefault("STORAGE_UPLOAD_PATH", "./storage/uploads")
	viper.SetDefault("UPLOAD_MAX_SIZE", 10485760)
	viper.SetDefault("STORAGE_DEFAULT_LOGO", "./storage/assets/logo.png")
	viper.SetDefault("STORAGE_DEFAULT_SIGNATURE", "./storage/assets/signature.png")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("RENDER_FONT_MODE", "proportional")
	viper.SetDefault("RENDER_NAIRA_GLYPH", false)
	viper.SetDefault("RENDER_UNICODE_FONT", "")
	viper.SetDefault("RENDER_UNICODE_FONT_BOLD", "")
	viper.SetDefault("RENDER_SECONDARY_MARK", "")
	viper.SetDefault("RENDER_QR_CODE", false)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Auth: AuthConfig{
			JWTSecret:     viper.GetString("JWT_SECRET"),
			ExpiryHours:   time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			AdminPassword: viper.GetString("ADMIN_PASSWORD"),
		},
		Storage: StorageConfig{
			UploadPath:       viper.GetString("STORAGE_UPLOAD_PATH"),
			UploadMaxSize:    viper.GetInt64("UPLOAD_MAX_SIZE"),
			DefaultLogo:      viper.GetString("STORAGE_DEFAULT_LOGO"),
			DefaultSignature: viper.GetString("STORAGE_DEFAULT_SIGNATURE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Render: RenderConfig{
			FontMode:        viper.GetString("RENDER_FONT_MODE"),
			NairaGlyph:      viper.GetBool("RENDER_NAIRA_GLYPH"),
			UnicodeFontPath: viper.GetString("RENDER_UNICODE_FONT"),
			UnicodeFontBold: viper.GetString("RENDER_UNICODE_FONT_BOLD"),
			SecondaryMark:   viper.GetString("RENDER_SECONDARY_MARK"),
			QRCode:          viper.GetBool("RENDER_QR_CODE"),
		},
	}
}
