package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the connection parameters read once at process start.
type Config struct {
	Driver      string
	DSN         string
	DBName      string
	LogLevel    string
	Port        string
	CORSOrigins []string
}

// Overrides take precedence over the environment, usually from command-line
// flags. Empty fields are ignored.
type Overrides struct {
	Driver string
	DSN    string
}

// Load reads envFile (".env" when empty) if present, then the environment.
// A missing file is not an error: the environment alone may configure
// everything.
func Load(envFile string, o Overrides) (*Config, error) {
	if envFile == "" {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFile); err != nil {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}
	return FromEnv(o)
}

func FromEnv(o Overrides) (*Config, error) {
	driver := strings.TrimSpace(o.Driver)
	if driver == "" {
		driver = envOrDefault("DB_DRIVER", DriverMySQL)
	}
	cfg := &Config{
		Driver:      strings.ToLower(driver),
		LogLevel:    strings.ToLower(envOrDefault("LOG_LEVEL", "warn")),
		Port:        envOrDefault("PORT", "8080"),
		CORSOrigins: parseList(os.Getenv("CORS_ORIGINS"), "*"),
	}
	if dsn := strings.TrimSpace(o.DSN); dsn != "" {
		switch cfg.Driver {
		case DriverMySQL, DriverPostgres, DriverSQLite:
		default:
			return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
		}
		cfg.DSN = dsn
		return cfg, nil
	}
	dsn, dbName, err := resolveDSN(cfg.Driver)
	if err != nil {
		return nil, err
	}
	cfg.DSN = dsn
	cfg.DBName = dbName
	return cfg, nil
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func parseList(raw, def string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return []string{def}
	}
	return out
}

func resolveDSN(driver string) (string, string, error) {
	switch driver {
	case DriverMySQL:
		return resolveMySQLDSN()
	case DriverPostgres:
		return resolvePostgresDSN()
	case DriverSQLite:
		path := envOrDefault("SQLITE_PATH", "hotel.db")
		return sqliteDSN(path), path, nil
	default:
		return "", "", fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

func mysqlDSNFromURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}

	port := u.Port()
	if port == "" {
		port = "3306"
	}
	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", "", fmt.Errorf("mysql url missing database name")
	}

	cfg := mysqlConfig(u.User.Username(), "", u.Hostname()+":"+port, dbName)
	cfg.Passwd, _ = u.User.Password()
	for key, values := range u.Query() {
		if len(values) > 0 {
			cfg.Params[key] = values[0]
		}
	}
	return cfg.FormatDSN(), dbName, nil
}

func mysqlConfig(user, pass, addr, dbName string) *mysql.Config {
	cfg := mysql.NewConfig()
	cfg.User = user
	cfg.Passwd = pass
	cfg.Net = "tcp"
	cfg.Addr = addr
	cfg.DBName = dbName
	cfg.ParseTime = true
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg
}

func resolveMySQLDSN() (string, string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, strings.TrimSpace(os.Getenv("DB_NAME")), nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := strings.TrimSpace(os.Getenv("DB_PASS"))
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_db")

	return mysqlConfig(user, pass, host+":"+port, dbName).FormatDSN(), dbName, nil
}

func resolvePostgresDSN() (string, string, error) {
	if raw := strings.TrimSpace(os.Getenv("DATABASE_URL")); raw != "" {
		dbName := ""
		if u, err := url.Parse(raw); err == nil {
			dbName = strings.TrimPrefix(u.Path, "/")
		}
		return raw, dbName, nil
	}

	user := envOrDefault("DB_USER", "postgres")
	pass := strings.TrimSpace(os.Getenv("DB_PASS"))
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "5432")
	dbName := envOrDefault("DB_NAME", "hotel_db")
	sslMode := envOrDefault("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, pass, dbName, port, sslMode,
	)
	return dsn, dbName, nil
}

// sqliteDSN turns a file path into a DSN with foreign keys enforced.
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}
