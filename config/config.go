package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig           `envconfig:"APP"`
	HttpServer    HttpServerConfig    `envconfig:"HTTP"`
	Database      DatabaseConfig      `envconfig:"DB"`
	Redis         RedisConfig         `envconfig:"REDIS"`
	HttpClient    HttpClientConfig    `envconfig:"HTTP_CLIENT"`
	MessageStream MessageStreamConfig `envconfig:"AMQP"`
	Payment       PaymentConfig       `envconfig:"STRIPE"`
	Auth          AuthConfig          `envconfig:"AUTH"`
	Booking       BookingConfig       `envconfig:"BOOKING"`
	Scheduler     SchedulerConfig     `envconfig:"SCHEDULER"`
}

type AppConfig struct {
	Name       string `envconfig:"NAME" default:"cyber-lane-reservations"`
	Env        string `envconfig:"ENV" default:"development"`
	PrivateKey string `envconfig:"PRIVATE_KEY" required:"true"`
}

type HttpServerConfig struct {
	Port            string        `envconfig:"PORT" default:"9000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"HOST" required:"true"`
	Port            string        `envconfig:"PORT" default:"5432"`
	User            string        `envconfig:"USER" required:"true"`
	Password        string        `envconfig:"PASSWORD" required:"true"`
	Name            string        `envconfig:"NAME" required:"true"`
	SSLMode         string        `envconfig:"SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"30m"`
}

type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

type HttpClientConfig struct {
	// threshold, consecutive or error_rate
	Type       string        `envconfig:"TYPE" default:"consecutive"`
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"10s"`
	Threshold  int64         `envconfig:"THRESHOLD" default:"5"`
	Rate       float64       `envconfig:"RATE" default:"0.5"`
	MinSamples int64         `envconfig:"MIN_SAMPLES" default:"10"`
}

type MessageStreamConfig struct {
	Host       string `envconfig:"HOST" default:"localhost"`
	Port       string `envconfig:"PORT" default:"5672"`
	Username   string `envconfig:"USERNAME" default:"guest"`
	Password   string `envconfig:"PASSWORD" default:"guest"`
	MaxRetries int    `envconfig:"MAX_RETRIES" default:"3"`
}

type PaymentConfig struct {
	SecretKey     string `envconfig:"SECRET_KEY" required:"true"`
	WebhookSecret string `envconfig:"WEBHOOK_SECRET"`
	BaseURL       string `envconfig:"BASE_URL" default:"https://api.stripe.com"`
	Currency      string `envconfig:"CURRENCY" default:"inr"`
	// DefaultOrigin is used for redirect urls when the request carries no Origin header
	DefaultOrigin    string        `envconfig:"DEFAULT_ORIGIN" default:"http://localhost:3000"`
	WebhookTolerance time.Duration `envconfig:"WEBHOOK_TOLERANCE" default:"5m"`
}

type AuthConfig struct {
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
	Audience  string `envconfig:"AUDIENCE" default:"authenticated"`
}

type BookingConfig struct {
	SlotFirst         string        `envconfig:"SLOT_FIRST" default:"04:30 PM"`
	SlotLast          string        `envconfig:"SLOT_LAST" default:"08:00 PM"`
	SlotStep          time.Duration `envconfig:"SLOT_STEP" default:"30m"`
	HoldTTL           time.Duration `envconfig:"HOLD_TTL" default:"31m"`
	PaymentCheckDelay time.Duration `envconfig:"PAYMENT_CHECK_DELAY" default:"35m"`
	PayLaterEnabled   bool          `envconfig:"PAY_LATER_ENABLED" default:"false"`
	DraftTTL          time.Duration `envconfig:"DRAFT_TTL" default:"2h"`
	LockExpiry        time.Duration `envconfig:"LOCK_EXPIRY" default:"30s"`
	LockTries         int           `envconfig:"LOCK_TRIES" default:"16"`
}

// Stripe only accepts a checkout expires_at between 30 minutes and 24 hours after it
// creates the session, and the expiry is stamped before the request goes out.
const (
	MinHoldTTL = 31 * time.Minute
	MaxHoldTTL = 23 * time.Hour

	lockMargin = 5 * time.Second
)

// CheckoutHoldTTL is HoldTTL clamped to what the payment provider accepts.
func (b BookingConfig) CheckoutHoldTTL() time.Duration {
	switch {
	case b.HoldTTL < MinHoldTTL:
		return MinHoldTTL
	case b.HoldTTL > MaxHoldTTL:
		return MaxHoldTTL
	default:
		return b.HoldTTL
	}
}

type SchedulerConfig struct {
	Concurrency    int    `envconfig:"CONCURRENCY" default:"10"`
	MonitoringPort string `envconfig:"MONITORING_PORT" default:"8080"`
}

func InitConfig() *Config {
	// .env is optional
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("error load config: %v", err)
	}
	cfg.normalize()

	return &cfg
}

// normalize keeps the booking timings consistent with each other. The slot lock
// must outlive both payment provider calls made while it is held, and the late
// payment check must run after the checkout session has expired.
func (c *Config) normalize() {
	c.Booking.HoldTTL = c.Booking.CheckoutHoldTTL()

	if minLock := 2*c.HttpClient.Timeout + lockMargin; c.Booking.LockExpiry < minLock {
		c.Booking.LockExpiry = minLock
	}

	if c.Booking.PaymentCheckDelay <= c.Booking.HoldTTL {
		c.Booking.PaymentCheckDelay = c.Booking.HoldTTL + 5*time.Minute
	}
}
