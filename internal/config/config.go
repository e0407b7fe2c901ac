package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds runtime configuration. Values come from the environment,
// optionally layered over config/portal.yaml.
type Config struct {
	DatabaseURL       string
	JWTSecret         string
	JWTIssuer         string
	AccessTTLSeconds  int64
	RefreshTTLSeconds int64
	CorsOrigins       []string
	Port              string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers []string
	KafkaTopic   string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	TrustedProxies []string

	OutboxSize             int
	DeliveryTimeoutSeconds int

	HelpRateLimit         int
	HelpRateWindowSeconds int

	StatsSampleSeconds int
	MetricsDiskPath    string
	PendingPageSize    int
}

func Load() Config {
	v, err := newViper("portal")
	if err != nil {
		panic("config: " + err.Error())
	}
	return fromViper(v)
}

func newViper(filename string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")
	v.AutomaticEnv()

	v.SetDefault("JWT_ISSUER", "clubportal")
	v.SetDefault("ACCESS_TTL_SECONDS", 14400)
	v.SetDefault("REFRESH_TTL_SECONDS", 1209600)
	v.SetDefault("PORT", "8080")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("KAFKA_TOPIC", "club.lifecycle")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("OUTBOX_SIZE", 256)
	v.SetDefault("DELIVERY_TIMEOUT_SECONDS", 10)
	v.SetDefault("HELP_RATE_LIMIT", 5)
	v.SetDefault("HELP_RATE_WINDOW_SECONDS", 3600)
	v.SetDefault("STATS_SAMPLE_INTERVAL", 60)
	v.SetDefault("METRICS_DISK_PATH", "/")
	v.SetDefault("PENDING_PAGE_SIZE", 5)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return v, nil
}

func fromViper(v *viper.Viper) Config {
	return Config{
		DatabaseURL:            mustString(v, "DATABASE_URL"),
		JWTSecret:              mustString(v, "JWT_SECRET"),
		JWTIssuer:              strings.TrimSpace(v.GetString("JWT_ISSUER")),
		AccessTTLSeconds:       v.GetInt64("ACCESS_TTL_SECONDS"),
		RefreshTTLSeconds:      v.GetInt64("REFRESH_TTL_SECONDS"),
		CorsOrigins:            parseCSV(v.GetString("CORS_ORIGINS")),
		Port:                   strings.TrimSpace(v.GetString("PORT")),
		RedisAddr:              strings.TrimSpace(v.GetString("REDIS_ADDR")),
		RedisPassword:          v.GetString("REDIS_PASSWORD"),
		RedisDB:                v.GetInt("REDIS_DB"),
		KafkaBrokers:           parseCSV(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:             strings.TrimSpace(v.GetString("KAFKA_TOPIC")),
		SMTPHost:               strings.TrimSpace(v.GetString("SMTP_HOST")),
		SMTPPort:               v.GetInt("SMTP_PORT"),
		SMTPUsername:           v.GetString("SMTP_USERNAME"),
		SMTPPassword:           v.GetString("SMTP_PASSWORD"),
		SMTPFrom:               strings.TrimSpace(v.GetString("SMTP_FROM")),
		TrustedProxies:         parseCSV(v.GetString("TRUSTED_PROXIES")),
		OutboxSize:             positive(v.GetInt("OUTBOX_SIZE"), 256),
		DeliveryTimeoutSeconds: positive(v.GetInt("DELIVERY_TIMEOUT_SECONDS"), 10),
		HelpRateLimit:          v.GetInt("HELP_RATE_LIMIT"),
		HelpRateWindowSeconds:  v.GetInt("HELP_RATE_WINDOW_SECONDS"),
		StatsSampleSeconds:     positive(v.GetInt("STATS_SAMPLE_INTERVAL"), 60),
		MetricsDiskPath:        strings.TrimSpace(v.GetString("METRICS_DISK_PATH")),
		PendingPageSize:        positive(v.GetInt("PENDING_PAGE_SIZE"), 5),
	}
}

func mustString(v *viper.Viper, key string) string {
	value := strings.TrimSpace(v.GetString(key))
	if value == "" {
		panic("missing env var: " + key)
	}
	return value
}

func positive(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
