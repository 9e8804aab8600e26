package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort        string
	AppEnv         string
	LogLevel       string
	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables
	SeedPets       bool
	S3BucketName   string
	SNSRegion      string
	SMSEnabled     bool
	SMTPHost       string
	SMTPPort       string
	SMTPFrom       string
	SMTPUsername   string
	SMTPPassword   string
	RedisURL       string
	PetsCacheTTL   time.Duration
	NATSURL        string

	JWTSecret       string
	RefreshSecret   string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	CookieSecure    bool

	AllowedOrigins  []string // CORS allowed origins
	MeetingTimezone string   // IANA name; empty means the process local zone
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Users    string
	Meetings string
	Pets     string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort:        getEnv("APP_PORT", "3000"),
		AppEnv:         getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Users:    getEnv("DYNAMO_TABLE_USERS", "users"),
			Meetings: getEnv("DYNAMO_TABLE_MEETINGS", "meetings"),
			Pets:     getEnv("DYNAMO_TABLE_PETS", "pets"),
		},
		SeedPets:     getEnvBool("SEED_PETS", false),
		S3BucketName: getEnv("S3_BUCKET_NAME", "pet-images"),
		SNSRegion:    getEnv("SNS_REGION", "us-east-1"),
		SMSEnabled:   getEnvBool("SMS_ENABLED", false),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@example.com"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		RedisURL:     getEnv("REDIS_URL", ""),
		PetsCacheTTL: getEnvDuration("PETS_CACHE_TTL", 5*time.Minute),
		NATSURL:      getEnv("NATS_URL", ""),

		JWTSecret:       getEnv("JWT_SECRET", ""),
		RefreshSecret:   getEnv("REFRESH_SECRET", ""),
		AccessTokenTTL:  getEnvDuration("ACCESS_TOKEN_TTL", 24*time.Hour),
		RefreshTokenTTL: getEnvDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		CookieSecure:    getEnvBool("COOKIE_SECURE", false),

		AllowedOrigins:  splitList(getEnv("CORS_ORIGIN", "http://localhost:3000")),
		MeetingTimezone: getEnv("MEETING_TIMEZONE", ""),
	}
}

// Validate reports configuration that would make the server unusable.
func (c *Config) Validate() error {
	if c.JWTSecret == "" || c.RefreshSecret == "" {
		return errors.New("JWT_SECRET and REFRESH_SECRET must be set")
	}
	if c.JWTSecret == c.RefreshSecret {
		return errors.New("JWT_SECRET and REFRESH_SECRET must differ")
	}
	if _, err := c.MeetingLocation(); err != nil {
		return err
	}
	return nil
}

// MeetingLocation resolves the zone meeting dates and times are interpreted in.
func (c *Config) MeetingLocation() (*time.Location, error) {
	if c.MeetingTimezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.MeetingTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid MEETING_TIMEZONE %q: %w", c.MeetingTimezone, err)
	}
	return loc, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
