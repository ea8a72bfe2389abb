package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type Postgres struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string `mapstructure:"sslmode"`
	// DSN, если задан, важнее отдельных полей.
	DSN string
	// Migrate применяет миграции при старте.
	Migrate bool
}

// ConnString builds a postgres URL from the discrete fields unless DSN is set.
func (p Postgres) ConnString() string {
	if p.DSN != "" {
		return p.DSN
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.User, p.Password),
		Host:   net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
		Path:   "/" + p.Database,
	}
	if p.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {p.SSLMode}}.Encode()
	}
	return u.String()
}

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Postgres Postgres `mapstructure:"postgres"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Report struct {
		Title     string
		Theme     string
		Threshold int
		Highlight float64
	} `mapstructure:"report"`

	Telegram struct {
		Token       string
		AdminChatID int64 `mapstructure:"admin_chat_id"`
	} `mapstructure:"telegram"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "prod")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.database", "sport")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.dsn", "")
	v.SetDefault("postgres.migrate", true)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("report.title", "Sport Inventory Analytics")
	v.SetDefault("report.theme", "dusk")
	v.SetDefault("report.threshold", 100)
	v.SetDefault("report.highlight", 150.0)
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.admin_chat_id", 0)
}

// Load reads the YAML file at path; APP_* variables (and a local .env) override it.
// An empty path means defaults plus environment only.
func Load(path string) (Config, error) {
	if err := gotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.HTTP.Addr == "":
		return errors.New("http.addr must be provided")
	case c.Postgres.DSN == "" && c.Postgres.Host == "":
		return errors.New("postgres.host or postgres.dsn must be provided")
	case c.Postgres.DSN == "" && c.Postgres.Database == "":
		return errors.New("postgres.database must be provided")
	case c.Report.Threshold < 0:
		return errors.New("report.threshold must not be negative")
	}
	return nil
}
