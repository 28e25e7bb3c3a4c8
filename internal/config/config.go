package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	AWS         AWSConfig
	Import      ImportConfig
	Auth        AuthConfig
}

// AWSConfig holds the names of the managed resources the service talks to
type AWSConfig struct {
	Region           string
	ProductTableName string
	StockTableName   string
	ImportBucket     string
	QueueURL         string
	TopicARN         string
}

// ImportConfig holds CSV import pipeline configuration
type ImportConfig struct {
	UploadPrefix  string
	ParsedPrefix  string
	PresignExpiry time.Duration
	MaxBatchSize  int
}

// AuthConfig holds basic-auth credential configuration
type AuthConfig struct {
	// Credentials maps usernames to passwords, parsed from
	// AUTH_CREDENTIALS ("user=pass,user2=pass2").
	Credentials map[string]string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Set up Viper
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("PRODUCT_TABLE_NAME", "products")
	viper.SetDefault("STOCK_TABLE_NAME", "stocks")
	viper.SetDefault("IMPORT_BUCKET", "imports")
	viper.SetDefault("UPLOAD_PREFIX", "uploaded/")
	viper.SetDefault("PARSED_PREFIX", "parsed/")
	viper.SetDefault("PRESIGN_EXPIRY_SECONDS", 60)
	viper.SetDefault("IMPORT_MAX_BATCH_SIZE", 5)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		AWS: AWSConfig{
			Region:           viper.GetString("AWS_REGION"),
			ProductTableName: viper.GetString("PRODUCT_TABLE_NAME"),
			StockTableName:   viper.GetString("STOCK_TABLE_NAME"),
			ImportBucket:     viper.GetString("IMPORT_BUCKET"),
			QueueURL:         viper.GetString("SQS_QUEUE_URL"),
			TopicARN:         viper.GetString("CREATE_PRODUCT_TOPIC_ARN"),
		},
		Import: ImportConfig{
			UploadPrefix:  viper.GetString("UPLOAD_PREFIX"),
			ParsedPrefix:  viper.GetString("PARSED_PREFIX"),
			PresignExpiry: time.Duration(viper.GetInt("PRESIGN_EXPIRY_SECONDS")) * time.Second,
			MaxBatchSize:  viper.GetInt("IMPORT_MAX_BATCH_SIZE"),
		},
		Auth: AuthConfig{
			Credentials: parseCredentials(viper.GetString("AUTH_CREDENTIALS")),
		},
	}

	return config, nil
}

// parseCredentials parses "user=pass,user2=pass2" into a credential table
func parseCredentials(raw string) map[string]string {
	creds := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, pass, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			continue
		}
		creds[name] = pass
	}
	return creds
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
