package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/yungbote/nutriplan-backend/internal/data/db"
	"github.com/yungbote/nutriplan-backend/internal/observability"
	"github.com/yungbote/nutriplan-backend/internal/platform/envutil"
	"github.com/yungbote/nutriplan-backend/internal/platform/logger"
)

type Config struct {
	Port            string
	DB              db.Config
	AutoMigrate     bool
	ListFanout      int
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
	Otel            observability.OtelConfig
}

// LoadConfig reads the optional dotenv file named by ENV_FILE, then the
// process environment. Variables already set in the environment win.
func LoadConfig(log *logger.Logger) Config {
	envFile := envutil.String("ENV_FILE", "database.env")
	if err := godotenv.Load(envFile); err != nil {
		if !os.IsNotExist(err) && log != nil {
			log.Warn("env file not loaded", "path", envFile, "error", err)
		}
	} else if log != nil {
		log.Info("Loaded env file", "path", envFile)
	}

	port := strings.TrimPrefix(envutil.String("PORT", "8080"), ":")
	cfg := Config{
		Port: port,
		DB: db.Config{
			Driver:          envutil.String("DB_DRIVER", db.DriverPostgres),
			DatabaseURL:     envutil.String("DATABASE_URL", ""),
			SQLitePath:      envutil.String("SQLITE_PATH", "nutriplan.db"),
			MaxOpenConns:    envutil.Int("DB_MAX_OPEN_CONNS", 5),
			MaxIdleConns:    envutil.Int("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: time.Duration(envutil.Int("DB_CONN_MAX_LIFETIME_SECONDS", 300)) * time.Second,
			SlowThreshold:   time.Duration(envutil.Int("DB_SLOW_QUERY_MS", 200)) * time.Millisecond,
		},
		AutoMigrate:     envutil.Bool("DB_AUTO_MIGRATE", true),
		ListFanout:      envutil.Int("LIST_FANOUT", 4),
		AllowedOrigins:  envutil.List("CORS_ALLOWED_ORIGINS", nil),
		ShutdownTimeout: time.Duration(envutil.Int("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		Otel:            observability.OtelConfigFromEnv(),
	}
	if cfg.ListFanout < 1 {
		cfg.ListFanout = 1
	}
	if log != nil {
		log.Info("Config loaded",
			"port", cfg.Port,
			"db_driver", cfg.DB.Driver,
			"database_url", cfg.DB.DatabaseURL,
			"list_fanout", cfg.ListFanout,
			"metrics_enabled", observability.Enabled(),
			"otel_enabled", cfg.Otel.Enabled,
		)
	}
	return cfg
}
