package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	MembersAPI MembersAPIConfig
	Screens    ScreensConfig
	Email      EmailConfig
	Security   SecurityConfig
	Seed       SeedConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

// DatabaseConfig describes the optional seed database. An empty Driver
// disables it and the built-in seed data is served instead.
type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type MembersAPIConfig struct {
	BaseURL          string
	Timeout          time.Duration
	FailureThreshold int
	ResetTimeout     time.Duration
}

type ScreensConfig struct {
	MembersPageSize   int
	EventsPageSize    int
	FinancePageSize   int
	AttendeesPageSize int
	SearchDebounce    time.Duration
	SettingsAutosave  time.Duration
	IdleTimeout       time.Duration
	SweepInterval     time.Duration
}

type EmailConfig struct {
	ResendAPIKey   string
	From           string
	SimulatedDelay time.Duration
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

type SeedConfig struct {
	GeneratedCount int
	FakerSeed      int64
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", "")),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "church_user"),
			Password:        getEnv("DB_PASSWORD", "church_password"),
			Name:            getEnv("DB_NAME", "churchconnect"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "churchconnect.db"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		MembersAPI: MembersAPIConfig{
			BaseURL:          strings.TrimRight(getEnv("MEMBERS_API_BASE_URL", "http://127.0.0.1:8000"), "/"),
			Timeout:          getDurationEnv("MEMBERS_API_TIMEOUT", 10*time.Second),
			FailureThreshold: getIntEnv("MEMBERS_API_FAILURE_THRESHOLD", 5),
			ResetTimeout:     getDurationEnv("MEMBERS_API_RESET_TIMEOUT", 30*time.Second),
		},
		Screens: ScreensConfig{
			MembersPageSize:   getIntEnv("MEMBERS_PAGE_SIZE", 6),
			EventsPageSize:    getIntEnv("EVENTS_PAGE_SIZE", 12),
			FinancePageSize:   getIntEnv("FINANCE_PAGE_SIZE", 20),
			AttendeesPageSize: getIntEnv("ATTENDEES_PAGE_SIZE", 20),
			SearchDebounce:    getDurationEnv("SEARCH_DEBOUNCE", 300*time.Millisecond),
			SettingsAutosave:  getDurationEnv("SETTINGS_AUTOSAVE_DELAY", time.Second),
			IdleTimeout:       getDurationEnv("SESSION_IDLE_TIMEOUT", 30*time.Minute),
			SweepInterval:     getDurationEnv("SESSION_SWEEP_INTERVAL", time.Minute),
		},
		Email: EmailConfig{
			ResendAPIKey:   os.Getenv("RESEND_API_KEY"),
			From:           getEnv("EMAIL_FROM", "ChurchConnect <info@churchconnect.org>"),
			SimulatedDelay: getDurationEnv("EMAIL_SIMULATED_DELAY", 2*time.Second),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Seed: SeedConfig{
			GeneratedCount: getIntEnv("SEED_GENERATED_COUNT", 0),
			FakerSeed:      int64(getIntEnv("SEED_FAKER_SEED", 0)),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if config.Database.Driver == "" {
		log.Println("INFO: DB_DRIVER not set, serving built-in seed data for events and transactions")
	}
	if config.Email.ResendAPIKey == "" {
		log.Println("INFO: RESEND_API_KEY not set, bulk email uses the logging sender")
	}

	return config
}

func (c *DatabaseConfig) Enabled() bool {
	return c.Driver != ""
}

func (c *DatabaseConfig) DSN() string {
	if c.Driver == "sqlite" {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// AutoMigrateEnabled reports whether SQL migrations should run at startup.
func AutoMigrateEnabled() bool {
	return getBoolEnv("AUTO_MIGRATE", false)
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins)")
		} else {
			log.Println("INFO: CORS_ALLOW_ORIGINS not set, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
