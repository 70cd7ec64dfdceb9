package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	CCPayment      CCPayment      `validate:"required"`
	CompaniesHouse CompaniesHouse `validate:"required"`

	Orders Orders `validate:"required"`

	Cache Cache `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

// CCPayment configures the outbound crypto payment processor client.
type CCPayment struct {
	BaseURL    string `validate:"required,url"`
	APIKey     string `validate:"required"`
	MerchantID string `validate:"required"`

	// CallbackURL is where the processor delivers payment webhooks.
	CallbackURL string `validate:"omitempty,url"`
	// WebhookSecret signs callbacks; empty disables signature verification.
	WebhookSecret string

	Timeout time.Duration `validate:"gt=0"`
}

// CompaniesHouse configures the outbound company registry client.
type CompaniesHouse struct {
	BaseURL string `validate:"required,url"`
	APIKey  string `validate:"required"`

	Timeout time.Duration `validate:"gt=0"`
}

// Orders holds workflow timing and the registration retry policy.
type Orders struct {
	// ExpiryWindow is how long a pending order waits for payment before the
	// sweep marks it expired.
	ExpiryWindow time.Duration `validate:"gt=0"`
	// ReconcileGrace is how long an order may sit in paid before the sweep
	// re-invokes registration.
	ReconcileGrace time.Duration `validate:"gt=0"`
	SweepInterval  time.Duration `validate:"gt=0"`
	SweepBatchSize int           `validate:"gte=1"`

	RegistrationMaxAttempts  int           `validate:"gte=1"`
	RegistrationInitialDelay time.Duration `validate:"gt=0"`
	RegistrationMaxDelay     time.Duration `validate:"gt=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "registration-service"),
			Topic:   env("KAFKA_TOPIC", "payment-events"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "registrations"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		CCPayment: CCPayment{
			BaseURL:       env("CCPAYMENT_BASE_URL", "https://api.ccpayment.com"),
			APIKey:        env("CCPAYMENT_API_KEY", ""),
			MerchantID:    env("CCPAYMENT_MERCHANT_ID", ""),
			CallbackURL:   env("PAYMENT_WEBHOOK_URL", ""),
			WebhookSecret: env("CCPAYMENT_WEBHOOK_SECRET", ""),
			Timeout:       envDuration("CCPAYMENT_TIMEOUT", 30*time.Second),
		},

		CompaniesHouse: CompaniesHouse{
			BaseURL: env("COMPANIES_HOUSE_BASE_URL", "https://api.company-information.service.gov.uk"),
			APIKey:  env("COMPANIES_HOUSE_API_KEY", ""),
			Timeout: envDuration("COMPANIES_HOUSE_TIMEOUT", 30*time.Second),
		},

		Orders: Orders{
			ExpiryWindow:   envDuration("ORDER_EXPIRY_WINDOW", 2*time.Hour),
			ReconcileGrace: envDuration("ORDER_RECONCILE_GRACE", 5*time.Minute),
			SweepInterval:  envDuration("ORDER_SWEEP_INTERVAL", time.Minute),
			SweepBatchSize: envInt("ORDER_SWEEP_BATCH_SIZE", 100),

			RegistrationMaxAttempts:  envInt("REGISTRATION_MAX_ATTEMPTS", 4),
			RegistrationInitialDelay: envDuration("REGISTRATION_INITIAL_DELAY", 500*time.Millisecond),
			RegistrationMaxDelay:     envDuration("REGISTRATION_MAX_DELAY", 10*time.Second),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 5*time.Minute),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if len(fallback) == 0 {
		return ""
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
