package configs

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config dibangun sekali di main lalu dioper ke siapa pun yang butuh.
type Config struct {
	AppEnv string
	Port   string

	DBDriver string

	MongoURI string
	MongoDB  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret    string
	JWTExpiresIn time.Duration

	CorsOrigins []string

	AdminEmail    string
	AdminPassword string
	AdminName     string
	AdminSetupKey string

	AuthStrictRole bool
	DBHealthCron   string
	RunSeeds       bool
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// PostgresDSN menyusun DSN dengan statement_timeout supaya query tidak menggantung.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=quizku&options=-c statement_timeout=3000",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() (*Config, error) {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARN] .env tidak ditemukan, memakai ENV dari sistem")
		} else {
			log.Println("[INFO] .env file berhasil dimuat")
		}
	} else {
		log.Println("[INFO] Running in Railway, memakai ENV dari sistem")
	}
	return FromEnv()
}

// FromEnv membaca konfigurasi dari environment proses yang sudah ada.
func FromEnv() (*Config, error) {
	cfg := &Config{
		AppEnv:   GetEnv("APP_ENV", "development"),
		Port:     GetEnv("PORT", "5000"),
		DBDriver: strings.ToLower(GetEnv("DB_DRIVER", DriverMongo)),

		MongoURI: GetEnv("MONGODB_URI"),
		MongoDB:  GetEnv("MONGODB_DB", "quizku"),

		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBUser:     GetEnv("DB_USER"),
		DBPassword: GetEnv("DB_PASSWORD"),
		DBName:     GetEnv("DB_NAME", "quizku"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "disable"),

		JWTSecret: strings.TrimSpace(GetEnv("JWT_SECRET")),

		CorsOrigins: splitCSV(GetEnv("CORS_ORIGIN", "http://localhost:3000")),

		AdminEmail:    strings.TrimSpace(GetEnv("ADMIN_EMAIL")),
		AdminPassword: GetEnv("ADMIN_PASSWORD"),
		AdminName:     GetEnv("ADMIN_NAME", "Admin"),
		AdminSetupKey: GetEnv("ADMIN_SETUP_KEY"),

		AuthStrictRole: parseBool(GetEnv("AUTH_STRICT_ROLE"), false),
		DBHealthCron:   GetEnv("DB_HEALTH_CRON", "@every 30s"),
		RunSeeds:       parseBool(GetEnv("RUN_SEEDS"), false),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing env var: JWT_SECRET")
	}

	exp, err := ParseExpiry(GetEnv("JWT_EXPIRES_IN", "7d"))
	if err != nil {
		return nil, fmt.Errorf("JWT_EXPIRES_IN: %w", err)
	}
	cfg.JWTExpiresIn = exp

	switch cfg.DBDriver {
	case DriverMongo:
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("missing env var: MONGODB_URI")
		}
	case DriverPostgres:
		if cfg.DBUser == "" {
			return nil, fmt.Errorf("missing env var: DB_USER")
		}
	default:
		return nil, fmt.Errorf("DB_DRIVER tidak dikenal: %q", cfg.DBDriver)
	}

	log.Printf("[INFO] Config loaded: env=%s driver=%s port=%s", cfg.AppEnv, cfg.DBDriver, cfg.Port)
	return cfg, nil
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// ParseExpiry menerima "7d", "12h", "30m" (durasi Go) atau angka detik.
func ParseExpiry(s string) (time.Duration, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n <= 0 {
			return 0, fmt.Errorf("duration must be positive")
		}
		return time.Duration(n) * time.Second, nil
	}
	if strings.HasSuffix(s, "d") {
		n, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid day duration %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive")
	}
	return d, nil
}

func splitCSV(s string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBool(s string, def bool) bool {
	if s == "" {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return b
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger(production bool) gormLogger.Interface {
	level := gormLogger.Info
	if production {
		level = gormLogger.Warn
	}
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *l
	cp.LogLevel = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
