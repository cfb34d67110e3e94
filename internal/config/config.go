package config

import (
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAirportsDataURL = "https://raw.githubusercontent.com/mwgg/Airports/master/airports.json"
	DefaultDuffelBaseURL   = "https://api.duffel.com"
	DefaultDuffelVersion   = "v2"
)

type Config struct {
	Port string
	Env  string

	DuffelAPIKey  string
	DuffelVersion string
	DuffelBaseURL string

	// BookingBaseURL overrides the checkout redirect target; empty means same-origin /checkout.
	BookingBaseURL string

	AirportsDataURL string
	AirportsTTL     time.Duration

	CacheEnabled  bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisTTL      time.Duration

	RateLimitRPS float64

	SupabaseURL     string
	SupabaseAnonKey string
}

// Load reads an optional .env file, then the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("APP_ENV", "development"),

		DuffelAPIKey:  firstEnv("DUFFEL_KEY", "DUFFEL_API_KEY", "DUFFEL_TOKEN"),
		DuffelVersion: getEnv("DUFFEL_VERSION", DefaultDuffelVersion),
		DuffelBaseURL: strings.TrimRight(getEnv("DUFFEL_BASE_URL", DefaultDuffelBaseURL), "/"),

		BookingBaseURL: strings.TrimSpace(firstEnv("BOOKING_BASE_URL", "NEXT_PUBLIC_BOOKING_BASE")),

		AirportsDataURL: getEnv("AIRPORTS_DATA_URL", DefaultAirportsDataURL),
		AirportsTTL:     getEnvDuration("AIRPORTS_TTL", 24*time.Hour),

		CacheEnabled:  getEnvBool("CACHE_ENABLED", false),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisTTL:      getEnvDuration("REDIS_TTL", 5*time.Minute),

		RateLimitRPS: getEnvFloat("RATE_LIMIT_RPS", 20),

		SupabaseURL:     firstEnv("SUPABASE_URL", "NEXT_PUBLIC_SUPABASE_URL"),
		SupabaseAnonKey: firstEnv("SUPABASE_ANON_KEY", "NEXT_PUBLIC_SUPABASE_ANON_KEY"),
	}
}

// LiveSuggestions reports whether place suggestions go to Duffel.
func (c Config) LiveSuggestions() bool {
	return c.DuffelAPIKey != ""
}

// RateLimitBurst is the inbound burst size: the per-second rate rounded up,
// at least one so fractional rates still admit requests.
func (c Config) RateLimitBurst() int {
	return max(1, int(math.Ceil(c.RateLimitRPS)))
}

// AuthConfigured reports whether the UI should show its sign-in controls.
func (c Config) AuthConfigured() bool {
	return c.SupabaseURL != "" && c.SupabaseAnonKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvFloat ignores values that are not positive numbers.
func getEnvFloat(key string, defaultValue float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || math.IsNaN(f) || f <= 0 {
		return defaultValue
	}
	return f
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
