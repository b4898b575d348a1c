package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Data     DataConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Upload   UploadConfig
	Products ProductsConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	AppEnv string
	Port   string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// DataConfig locates the directory holding the JSON collection files.
type DataConfig struct {
	Dir string
}

type JWTConfig struct {
	SecretKey    string
	AccessTTLSec int
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

type UploadConfig struct {
	Dir         string
	BaseURL     string
	MaxFileSize int64
	MaxFiles    int
}

type ProductsConfig struct {
	// StrictPaymentMethods rejects unknown payment-method ids on
	// create/update instead of accepting them and dropping them at read time.
	StrictPaymentMethods bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

func LoadEnv() *Config {
	// Basic config loading
	// In a real scenario, use structured config loader like viper or koanf
	return &Config{
		Server: ServerConfig{
			AppEnv: getEnv("APP_ENV", "dev"),
			Port:   getEnv("HTTP_PORT", ":3000"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Data: DataConfig{
			Dir: getEnv("DATA_DIR", "data"),
		},
		JWT: JWTConfig{
			SecretKey:    getEnv("JWT_SECRET_KEY", "your-secret-key-change-this-in-prod"),
			AccessTTLSec: getEnvInt("JWT_ACCESS_TTL_SECONDS", 86400),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", true),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Upload: UploadConfig{
			Dir:         getEnv("UPLOAD_DIR", "uploads"),
			BaseURL:     getEnv("UPLOAD_BASE_URL", "http://localhost:3000"),
			MaxFileSize: getEnvInt64("UPLOAD_MAX_FILE_SIZE", 5*1024*1024),
			MaxFiles:    getEnvInt("UPLOAD_MAX_FILES", 10),
		},
		Products: ProductsConfig{
			StrictPaymentMethods: getEnvBool("PRODUCTS_STRICT_PAYMENT_METHODS", true),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{
				"http://localhost:3001",
				"http://127.0.0.1:3001",
			}),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.Split(value, ",")
	}
	return fallback
}
