package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets)
// - default: Values common across all environments (timeouts, demo venue data)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Booking BookingConfig
	Venue   VenueConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type BookingConfig struct {
	// PaymentHoldTTL bounds how long a booking may sit unpaid before the
	// sweeper releases its slot. Zero disables expiry entirely.
	PaymentHoldTTL      time.Duration `envconfig:"BOOKING_PAYMENT_HOLD_TTL" default:"0"`
	ExpirySweepInterval time.Duration `envconfig:"BOOKING_EXPIRY_SWEEP_INTERVAL" default:"1m"`
}

type VenueConfig struct {
	TenantName string  `envconfig:"VENUE_TENANT_NAME" default:"NeoSports Arena"`
	Currency   string  `envconfig:"VENUE_CURRENCY" default:"USD"`
	Lat        float64 `envconfig:"VENUE_LAT" default:"34.0522"`
	Lng        float64 `envconfig:"VENUE_LNG" default:"-118.2437"`
	Address    string  `envconfig:"VENUE_ADDRESS" default:"123 Sport Ave, Tech City"`
}

func LoadConfig() (Config, error) {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		Log: LogConfig{
			Level:          "error",
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Venue: VenueConfig{
			TenantName: "Test Arena",
			Currency:   "USD",
			Lat:        34.0522,
			Lng:        -118.2437,
			Address:    "123 Sport Ave, Tech City",
		},
	}
}
