// Package config handles configuration for the pixelprompt Lambda functions,
// including defaults, an optional .env file, and environment variables.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings shared by the three Lambda functions.
//
// Fields:
//   - AWSRegion: region for the S3 and DynamoDB clients.
//   - Bucket: name of the bucket that receives direct uploads.
//   - TableName: DynamoDB table holding image metadata records.
//   - OpenAIAPIKey / OpenAIModel: vision-language classifier settings.
//   - S3AccessKey / S3SecretKey / S3BaseEndpoint: optional static credentials
//     and endpoint for an S3-compatible backend (MinIO in local runs). When
//     empty the default AWS credential chain is used.
//   - UploadURLTTL / ReadURLTTL: presigned URL lifetimes.
//   - MaxUploadBytes: upload size cap enforced before presigning.
type Config struct {
	AWSRegion      string
	Bucket         string
	TableName      string
	OpenAIAPIKey   string
	OpenAIModel    string
	S3AccessKey    string
	S3SecretKey    string
	S3BaseEndpoint string
	UploadURLTTL   time.Duration
	ReadURLTTL     time.Duration
	MaxUploadBytes int64
}

// LoadDefaults populates Config with development defaults. Credentials and
// resource names must be overridden through the environment.
func (c *Config) LoadDefaults() {
	c.AWSRegion = "us-east-1"
	c.OpenAIModel = "gpt-4o-mini"
	c.UploadURLTTL = 5 * time.Minute
	c.ReadURLTTL = 1 * time.Hour
	c.MaxUploadBytes = 2 * 1024 * 1024
}

// LoadConfig builds a Config by applying defaults and then overlaying values
// from an optional .env file and the process environment. Missing resource
// names are not an error here; clients validate them lazily at first use.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	_ = godotenv.Load()
	parseEnv(cfg)
	return cfg
}

func parseEnv(c *Config) {
	setString(&c.AWSRegion, "AWS_REGION")
	setString(&c.Bucket, "BUCKET_NAME")
	setString(&c.TableName, "TABLE_NAME")
	setString(&c.OpenAIAPIKey, "OPENAI_API_KEY")
	setString(&c.OpenAIModel, "OPENAI_MODEL")
	setString(&c.S3AccessKey, "S3_ACCESS_KEY")
	setString(&c.S3SecretKey, "S3_SECRET_KEY")
	setString(&c.S3BaseEndpoint, "S3_BASE_ENDPOINT")
	setDuration(&c.UploadURLTTL, "UPLOAD_URL_TTL")
	setDuration(&c.ReadURLTTL, "READ_URL_TTL")
	setInt64(&c.MaxUploadBytes, "MAX_UPLOAD_BYTES")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

func setInt64(dst *int64, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}
