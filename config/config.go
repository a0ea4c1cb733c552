package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB    int    `mapstructure:"REDIS_CACHE_DB"`
	RedisJobQueueDB int    `mapstructure:"REDIS_JOB_QUEUE_DB"`

	// Google Places reviews sync.
	GoogleAPIKey       string `mapstructure:"GOOGLE_API_KEY"`
	GooglePlaceID      string `mapstructure:"GOOGLE_PLACE_ID"`
	ReviewSyncSchedule string `mapstructure:"REVIEW_SYNC_SCHEDULE"`

	// Admin panel credential. The password is stored as a bcrypt hash.
	AdminUsername     string `mapstructure:"ADMIN_USERNAME"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`

	// EmailJS relay for lead notifications.
	EmailJSEndpoint          string `mapstructure:"EMAILJS_ENDPOINT"`
	EmailJSServiceID         string `mapstructure:"EMAILJS_SERVICE_ID"`
	EmailJSUserID            string `mapstructure:"EMAILJS_USER_ID"`
	EmailJSSaleTemplate      string `mapstructure:"EMAILJS_SALE_TEMPLATE"`
	EmailJSValuationTemplate string `mapstructure:"EMAILJS_VALUATION_TEMPLATE"`
	EmailJSContactTemplate   string `mapstructure:"EMAILJS_CONTACT_TEMPLATE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_JOB_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "webimmo")
	viper.SetDefault("GOOGLE_API_KEY", "")
	viper.SetDefault("GOOGLE_PLACE_ID", "")
	viper.SetDefault("REVIEW_SYNC_SCHEDULE", "@every 24h")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("EMAILJS_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
