package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"github.com/Spok95/stone-inventory/internal/domain/money"
	"github.com/Spok95/stone-inventory/internal/domain/samples"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Storage struct {
		Driver string
	} `mapstructure:"storage"`

	Postgres struct {
		DSN string
	} `mapstructure:"postgres"`

	Mongo struct {
		URI      string
		Database string
	} `mapstructure:"mongo"`

	Telegram struct {
		Token       string
		PollTimeout time.Duration `mapstructure:"poll_timeout"`
	} `mapstructure:"telegram"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Inventory struct {
		Currency        string
		SampleUnderflow string `mapstructure:"sample_underflow"`
	} `mapstructure:"inventory"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("app.env", "prod")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("storage.driver", DriverPostgres)
	v.SetDefault("postgres.dsn", "")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "inventory")
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.poll_timeout", 30*time.Second)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("inventory.currency", money.USD)
	v.SetDefault("inventory.sample_underflow", string(samples.UnderflowAllow))
}

// Load reads path, then .env from the working directory, then APP_* variables (APP_POSTGRES_DSN).
func Load(path string) (Config, error) {
	if err := gotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	defaults(v)
	v.SetConfigFile(path)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.ReadInConfig(); err != nil {
		return c, err
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Postgres.DSN == "" {
			return errors.New("postgres.dsn is required for the postgres driver")
		}
	case DriverMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" {
			return errors.New("mongo.uri and mongo.database are required for the mongo driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	if _, err := money.ParseCurrency(c.Inventory.Currency); err != nil {
		return fmt.Errorf("inventory.currency: %w", err)
	}
	if _, err := samples.ParseUnderflowPolicy(c.Inventory.SampleUnderflow); err != nil {
		return fmt.Errorf("inventory.sample_underflow: %w", err)
	}
	return nil
}
