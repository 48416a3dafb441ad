package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Late deduction strategies. Both exist in production rule sets; which one
// is charged is a deployment decision, not a code path.
const (
	LatePolicyPerMinute     = "per-minute"
	LatePolicyPerOccurrence = "per-occurrence"
)

type Config struct {
	Addr        string
	DatabaseURL string
	Environment string

	WorkStartTime      string
	WorkEndTime        string
	GracePeriodMinutes int
	LunchBreakMinutes  int

	WorkDaysPerMonth  int
	WorkMinutesPerDay int
	UnitsPerMonth     int

	LatePolicy     string
	GrossProration bool

	BatchWorkers    int
	EmployeeTimeout time.Duration
	RunMigrations   bool
	MetricsEnabled  bool
}

func Load() Config {
	return Config{
		Addr:        getEnv("APP_ADDR", ":8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Environment: getEnv("APP_ENV", "development"),

		WorkStartTime:      getEnv("WORK_START_TIME", "08:00"),
		WorkEndTime:        getEnv("WORK_END_TIME", "17:00"),
		GracePeriodMinutes: getEnvInt("GRACE_PERIOD_MINUTES", 10),
		LunchBreakMinutes:  getEnvInt("LUNCH_BREAK_MINUTES", 60),

		WorkDaysPerMonth:  getEnvInt("WORK_DAYS_PER_MONTH", 22),
		WorkMinutesPerDay: getEnvInt("WORK_MINUTES_PER_DAY", 480),
		UnitsPerMonth:     getEnvInt("UNITS_PER_MONTH", 24),

		LatePolicy:     getEnv("LATE_POLICY", LatePolicyPerMinute),
		GrossProration: getEnvBool("GROSS_PRORATION", false),

		BatchWorkers:    getEnvInt("BATCH_WORKERS", 4),
		EmployeeTimeout: getEnvDuration("EMPLOYEE_TIMEOUT", 30*time.Second),
		RunMigrations:   getEnvBool("RUN_MIGRATIONS", true),
		MetricsEnabled:  getEnvBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if _, err := time.Parse("15:04", c.WorkStartTime); err != nil {
		return fmt.Errorf("WORK_START_TIME must be HH:MM: %w", err)
	}
	if _, err := time.Parse("15:04", c.WorkEndTime); err != nil {
		return fmt.Errorf("WORK_END_TIME must be HH:MM: %w", err)
	}
	if c.GracePeriodMinutes < 0 {
		return fmt.Errorf("GRACE_PERIOD_MINUTES must not be negative")
	}
	if c.LunchBreakMinutes < 0 {
		return fmt.Errorf("LUNCH_BREAK_MINUTES must not be negative")
	}
	if c.WorkDaysPerMonth <= 0 || c.WorkMinutesPerDay <= 0 || c.UnitsPerMonth <= 0 {
		return fmt.Errorf("rate divisors must be positive")
	}
	if c.LatePolicy != LatePolicyPerMinute && c.LatePolicy != LatePolicyPerOccurrence {
		return fmt.Errorf("LATE_POLICY must be %q or %q", LatePolicyPerMinute, LatePolicyPerOccurrence)
	}
	if c.BatchWorkers <= 0 {
		return fmt.Errorf("BATCH_WORKERS must be positive")
	}
	if c.EmployeeTimeout <= 0 {
		return fmt.Errorf("EMPLOYEE_TIMEOUT must be positive")
	}
	return nil
}
