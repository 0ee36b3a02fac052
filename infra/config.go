package infra

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerName         string
	ServerPort         string
	Environment        string
	SignatureToken     string
	TokenTTL           time.Duration
	RedisUrl           string
	AwsAccessKeyID     string
	AwsSecretAccessKey string
	AwsRegion          string
	AwsBucketName      string
	LogLevel           string
	Verbose            bool
}

func NewConfig() Config {
	if os.Getenv("ENVIRONMENT") == "" {
		// .env is optional in local runs, the process environment wins anyway
		_ = godotenv.Load(".env")
	}

	return Config{
		ServerName:         getEnv("SERVER_NAME", "tambua-api"),
		ServerPort:         getEnv("SERVER_PORT", ":8080"),
		Environment:        getEnv("ENVIRONMENT", "local"),
		SignatureToken:     os.Getenv("SIGNATURE_STRING"),
		TokenTTL:           getDuration("TOKEN_TTL", 12*time.Hour),
		RedisUrl:           os.Getenv("REDIS_URL"),
		AwsAccessKeyID:     os.Getenv("AWS_ACCESS_KEY"),
		AwsSecretAccessKey: os.Getenv("AWS_SECRET_KEY"),
		AwsRegion:          os.Getenv("AWS_REGION"),
		AwsBucketName:      os.Getenv("AWS_BUCKET_NAME"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Verbose:            os.Getenv("VERBOSE") != "",
	}
}

// S3Enabled reports whether every AWS setting needed for photo uploads is present.
func (c Config) S3Enabled() bool {
	return c.AwsAccessKeyID != "" && c.AwsSecretAccessKey != "" && c.AwsRegion != "" && c.AwsBucketName != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
