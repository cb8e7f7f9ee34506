package config

import "github.com/spf13/viper"

// Config groups the application settings, read from the environment via Viper.
type Config struct {
	HTTPAddr      string
	DatabaseURL   string
	RedisAddr     string
	JWTSecret     string
	QRDir         string
	AdminUser     string
	AdminPassword string
}

// Load reads configuration from the environment, applying defaults suitable
// for local development. DATABASE_URL has no default: the process refuses to
// guess where the store lives.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("JWT_SECRET", "super-secret-key") // override in prod
	v.SetDefault("QR_DIR", "static/qrcodes")
	v.SetDefault("ADMIN_USER", "admin")
	v.SetDefault("ADMIN_PASSWORD", "admin123")

	cfg := Config{
		HTTPAddr:      v.GetString("HTTP_ADDR"),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		QRDir:         v.GetString("QR_DIR"),
		AdminUser:     v.GetString("ADMIN_USER"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
	}
	return cfg, nil
}
