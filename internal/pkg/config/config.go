package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, calendar credentials)
// - default: Values common across all environments (timezone, timeout, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Calendar CalendarConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Guayaquil"`
	// MigrationsDir is resolved relative to the working directory.
	MigrationsDir string `envconfig:"DB_MIGRATIONS_DIR" default:"migrations"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Guayaquil"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
}

// CalendarConfig holds the Google Calendar collaborator settings. Events are
// written with a fixed civil-time offset so that "19:00" on the form means
// 19:00 at the restaurant, regardless of server timezone.
type CalendarConfig struct {
	CredentialsFile string        `envconfig:"GOOGLE_CREDENTIALS_FILE" default:""`
	ClientEmail     string        `envconfig:"GOOGLE_CLIENT_EMAIL" default:""`
	PrivateKey      string        `envconfig:"GOOGLE_PRIVATE_KEY" default:""`
	CalendarID      string        `envconfig:"GOOGLE_CALENDAR_ID" default:""`
	TimeZoneName    string        `envconfig:"CALENDAR_TIMEZONE" default:"America/Guayaquil"`
	TimeZoneOffset  int           `envconfig:"CALENDAR_TIMEZONE_OFFSET" default:"-18000"` // seconds east of UTC
	RequestTimeout  time.Duration `envconfig:"CALENDAR_REQUEST_TIMEOUT" default:"10s"`
}

// Enabled reports whether calendar mirroring is configured at all. Without
// credentials the service still takes reservations, it just never syncs.
func (c *CalendarConfig) Enabled() bool {
	return c.CalendarID != "" && (c.CredentialsFile != "" || (c.ClientEmail != "" && c.PrivateKey != ""))
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
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
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:          "localhost",
			Port:          "15433", // Test DB port
			User:          "test",
			Password:      "test",
			DBName:        "test_db",
			SSLMode:       "disable",
			TimeZone:      "America/Guayaquil",
			MigrationsDir: "migrations",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Guayaquil",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -18000,
		},
		Calendar: CalendarConfig{
			TimeZoneName:   "America/Guayaquil",
			TimeZoneOffset: -18000,
			RequestTimeout: 10 * time.Second,
		},
	}
}
