package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrEmptyEnvironmentVariable = errors.New("empty environment variable")
	ErrInvalidPlanCatalog       = errors.New("invalid plan catalog")
)

// Config holds all application configuration
type Config struct {
	Env      string
	Database DatabaseConfig
	Auth     AuthConfig
	Services ServicesConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Throttle ThrottleConfig
	Plans    map[string]Plan
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings. URL wins over the discrete fields.
type DatabaseConfig struct {
	URL             string
	Host            string
	Username        string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret      string
	InternalAPIKey string
}

// ServicesConfig holds external service credentials. An empty credential disables the integration.
type ServicesConfig struct {
	ResendAPIKey       string
	DefaultEmailSender string
	SupportInboxEmail  string

	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioWhatsAppFrom string
	// PublicBaseURL is the externally visible origin used to rebuild webhook URLs for signature checks.
	PublicBaseURL string

	SumitBaseURL       string
	SumitCompanyID     string
	SumitAPIKey        string
	SumitWebhookSecret string

	TurnstileSecretKey string
	WebAppURI          string
}

// RedisConfig holds the connection used by the throttle and the job queue.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns host:port
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// KafkaConfig holds domain event publishing configuration
type KafkaConfig struct {
	Brokers string
	Topic   string
}

// Enabled reports whether any broker is configured.
func (c KafkaConfig) Enabled() bool {
	return strings.TrimSpace(c.Brokers) != ""
}

// BrokerList splits the comma separated broker string.
func (c KafkaConfig) BrokerList() []string {
	var out []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// ThrottleConfig is the per-contact sliding window applied to public support endpoints.
type ThrottleConfig struct {
	Limit  int
	Window time.Duration
}

// Plan is one entry of the billing catalog.
type Plan struct {
	Code        string
	AmountMinor int64
	Currency    string
	TrialDays   int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port        int
	AutoMigrate bool
}

const defaultPlans = "basic_monthly:3900:USD:14,pro_monthly:7900:USD:14"

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg := &Config{Env: getEnvWithDefault("GO_ENV", "development")}

	var err error
	if err = loadDatabase(&cfg.Database); err != nil {
		return nil, err
	}

	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	cfg.Auth.InternalAPIKey = os.Getenv("INTERNAL_API_KEY")

	cfg.Services = ServicesConfig{
		ResendAPIKey:       os.Getenv("RESEND_API_KEY"),
		DefaultEmailSender: getEnvWithDefault("DEFAULT_EMAIL_SENDER_ADDRESS", "Spectra <hello@spectra-ci.com>"),
		SupportInboxEmail:  os.Getenv("SUPPORT_INBOX_EMAIL"),
		TwilioAccountSID:   os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:    os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppFrom: os.Getenv("TWILIO_WHATSAPP_FROM"),
		PublicBaseURL:      strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/"),
		SumitBaseURL:       getEnvWithDefault("SUMIT_BASE_URL", "https://api.sumit.co.il"),
		SumitCompanyID:     os.Getenv("SUMIT_COMPANY_ID"),
		SumitAPIKey:        os.Getenv("SUMIT_API_KEY"),
		SumitWebhookSecret: os.Getenv("SUMIT_WEBHOOK_SECRET"),
		TurnstileSecretKey: os.Getenv("TURNSTILE_SECRET_KEY"),
		WebAppURI:          getEnvWithDefault("WEBAPP_URI", "http://localhost:5173"),
	}

	cfg.Redis.Host = os.Getenv("REDIS_HOST")
	cfg.Redis.Enabled = cfg.Redis.Host != ""
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = getIntEnv("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getIntEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}

	cfg.Kafka.Brokers = os.Getenv("KAFKA_BROKERS")
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "spectra-domain-events")

	if cfg.Throttle.Limit, err = getIntEnv("CONTACT_THROTTLE_LIMIT", 5); err != nil {
		return nil, err
	}
	if cfg.Throttle.Window, err = getDurationEnv("CONTACT_THROTTLE_WINDOW", 10*time.Minute); err != nil {
		return nil, err
	}

	if cfg.Plans, err = ParsePlans(getEnvWithDefault("BILLING_PLANS", defaultPlans)); err != nil {
		return nil, err
	}

	if cfg.Server.Port, err = getIntEnv("SERVER_PORT", 8080); err != nil {
		return nil, err
	}
	cfg.Server.AutoMigrate = os.Getenv("AUTO_MIGRATE") == "true"

	return cfg, nil
}

// LoadDatabase reads only the database settings, for tools that never serve HTTP.
func LoadDatabase() (DatabaseConfig, error) {
	var db DatabaseConfig
	if err := loadEnvFile(); err != nil {
		return db, err
	}
	err := loadDatabase(&db)
	return db, err
}

// loadEnvFile loads env.local in non-production environments.
func loadEnvFile() error {
	if os.Getenv("GO_ENV") == "production" {
		return nil
	}
	if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env.local: %w", err)
	}
	return nil
}

func loadDatabase(db *DatabaseConfig) error {
	var err error
	db.URL = os.Getenv("DATABASE_URL")
	if db.URL == "" {
		if db.Host, err = requireEnv("DB_HOST"); err != nil {
			return err
		}
		if db.Username, err = requireEnv("DB_USERNAME"); err != nil {
			return err
		}
		if db.Password, err = requireEnv("DB_PASSWORD"); err != nil {
			return err
		}
		if db.Name, err = requireEnv("DB_NAME"); err != nil {
			return err
		}
	}
	if db.MaxOpenConns, err = getIntEnv("DB_MAX_OPEN_CONNS", 20); err != nil {
		return err
	}
	if db.MaxIdleConns, err = getIntEnv("DB_MAX_IDLE_CONNS", 5); err != nil {
		return err
	}
	if db.ConnMaxLifetime, err = getDurationEnv("DB_CONN_MAX_LIFETIME", 30*time.Minute); err != nil {
		return err
	}
	return nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// IsProduction reports whether GO_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ParsePlans reads a catalog of the form "code:amount_minor:currency:trial_days,...".
func ParsePlans(raw string) (map[string]Plan, error) {
	plans := make(map[string]Plan)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 4 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPlanCatalog, entry)
		}
		amount, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil || amount < 0 {
			return nil, fmt.Errorf("%w: bad amount in %q", ErrInvalidPlanCatalog, entry)
		}
		trialDays, err := strconv.Atoi(parts[3])
		if err != nil || trialDays < 0 {
			return nil, fmt.Errorf("%w: bad trial days in %q", ErrInvalidPlanCatalog, entry)
		}
		plans[parts[0]] = Plan{
			Code:        parts[0],
			AmountMinor: amount,
			Currency:    strings.ToUpper(parts[2]),
			TrialDays:   trialDays,
		}
	}
	if len(plans) == 0 {
		return nil, fmt.Errorf("%w: no plans", ErrInvalidPlanCatalog)
	}
	return plans, nil
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return n, nil
}

func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return d, nil
}
