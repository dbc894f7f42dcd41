package configs

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	AppURL      string
	PublicDir   string
	SchoolName  string
	LogTimeZone string

	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration

	CookieSecure bool
	CorsOrigins  []string

	TxWatchdog           time.Duration
	SlowQueryThreshold   time.Duration
	BlacklistCleanupSpec string

	SeedAdminEmail    string
	SeedAdminPassword string
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") != "" {
		log.Println("[INFO] Running in Railway, using system ENV")
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Println("[WARN] .env file not found, using system ENV")
		return
	}
	log.Println("[INFO] .env file loaded")
}

func Load() Config {
	port := GetEnv("PORT", "3000")
	cfg := Config{
		Port:        port,
		DatabaseURL: databaseURL(),
		AppURL:      GetEnv("APP_URL", "http://localhost:"+port),
		PublicDir:   GetEnv("PUBLIC_DIR", "./public"),
		SchoolName:  GetEnv("SCHOOL_NAME", "Assurance Remedial School"),
		LogTimeZone: GetEnv("LOG_TIMEZONE", "Local"),

		JWTSecret: GetEnv("JWT_SECRET"),
		JWTIssuer: GetEnv("JWT_ISSUER", "assurance-school"),
		TokenTTL:  getenvDuration("TOKEN_TTL", 24*time.Hour),

		CookieSecure: getenvBool("COOKIE_SECURE", false),
		CorsOrigins:  splitList(GetEnv("CORS_ORIGINS", "http://localhost:3000")),

		TxWatchdog:           getenvDuration("DB_TX_WATCHDOG", 5*time.Second),
		SlowQueryThreshold:   getenvDuration("DB_SLOW_QUERY", 200*time.Millisecond),
		BlacklistCleanupSpec: GetEnv("BLACKLIST_CLEANUP_SPEC", "@daily"),

		SeedAdminEmail:    GetEnv("SEED_ADMIN_EMAIL"),
		SeedAdminPassword: GetEnv("SEED_ADMIN_PASSWORD"),
	}

	if cfg.JWTSecret == "" {
		log.Println("[ERROR] JWT_SECRET is not set")
	} else {
		log.Println("[INFO] JWT_SECRET loaded")
	}
	return cfg
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL or DB_HOST/DB_NAME must be set")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	return nil
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// databaseURL prefers DATABASE_URL and falls back to the DB_* parts.
func databaseURL() string {
	if v := GetEnv("DATABASE_URL"); v != "" {
		return v
	}
	host := GetEnv("DB_HOST")
	name := GetEnv("DB_NAME")
	if host == "" || name == "" {
		return ""
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(GetEnv("DB_USER", "postgres"), GetEnv("DB_PASSWORD")),
		Host:   host + ":" + GetEnv("DB_PORT", "5432"),
		Path:   "/" + name,
	}
	q := u.Query()
	q.Set("sslmode", GetEnv("DB_SSLMODE", "disable"))
	q.Set("application_name", "assurance")
	u.RawQuery = q.Encode()
	return u.String()
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	if val := os.Getenv(key + "_SECONDS"); val != "" {
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
