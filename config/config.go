package config

import (
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"careeriq/models"
	"careeriq/storage"
)

const (
	envPrefix       = "CAREERIQ"
	defaultFileName = "careeriq"
)

// Config holds all application configuration.
type Config struct {
	Sources  []storage.Source `mapstructure:"-"`
	Loader   LoaderConfig     `mapstructure:"loader"`
	Output   OutputConfig     `mapstructure:"output"`
	Export   ExportConfig     `mapstructure:"export"`
	Skills   SkillsConfig     `mapstructure:"skills"`
	Postgres PostgresConfig   `mapstructure:"postgres"`
	Twilio   TwilioConfig     `mapstructure:"twilio"`
}

type LoaderConfig struct {
	Workers int `mapstructure:"workers"`
}

type OutputConfig struct {
	// Canonical is where the canonical master CSV is written after cleaning. Empty disables it.
	Canonical string `mapstructure:"canonical"`
}

type ExportConfig struct {
	Columns []string `mapstructure:"columns"`
	Path    string   `mapstructure:"path"`
}

type SkillsConfig struct {
	Top    int `mapstructure:"top"`
	Advice int `mapstructure:"advice"`
}

type PostgresConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Host       string `mapstructure:"host"`
	Port       string `mapstructure:"port"`
	User       string `mapstructure:"user"`
	Password   string `mapstructure:"password"`
	DB         string `mapstructure:"db"`
	SSLMode    string `mapstructure:"sslmode"`
	MaxRetries int    `mapstructure:"max-retries"`
}

type TwilioConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	AccountSID    string        `mapstructure:"account-sid"`
	AuthToken     string        `mapstructure:"auth-token"`
	AuthTokenFile string        `mapstructure:"auth-token-file"`
	From          string        `mapstructure:"from"`
	To            string        `mapstructure:"to"`
	MaxRetries    int           `mapstructure:"max-retries"`
	MinInterval   time.Duration `mapstructure:"min-interval"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sources", []string{"data/jobs_master.csv"})
	v.SetDefault("loader.workers", 4)
	v.SetDefault("output.canonical", "")
	v.SetDefault("export.columns", []string{})
	v.SetDefault("export.path", "")
	v.SetDefault("skills.top", 10)
	v.SetDefault("skills.advice", 3)

	v.SetDefault("postgres.enabled", false)
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "careeriq")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db", "careeriq")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max-retries", 3)

	v.SetDefault("twilio.enabled", false)
	v.SetDefault("twilio.account-sid", "")
	v.SetDefault("twilio.auth-token", "")
	v.SetDefault("twilio.auth-token-file", "")
	v.SetDefault("twilio.from", "")
	v.SetDefault("twilio.to", "")
	v.SetDefault("twilio.max-retries", 3)
	v.SetDefault("twilio.min-interval", time.Second)
}

// Load reads .env (when present), an optional YAML config file and CAREERIQ_* environment
// variables. An explicit path must exist; otherwise careeriq.yaml in the working directory is
// used if found.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "config: load .env")
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for key, env := range map[string]string{
		"twilio.account-sid":     "TWILIO_ACCOUNT_SID",
		"twilio.auth-token":      "TWILIO_AUTH_TOKEN",
		"twilio.auth-token-file": "TWILIO_AUTH_TOKEN_FILE",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errors.Wrapf(err, "config: bind %s", env)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %q", path)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(defaultFileName)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "config: read careeriq.yaml")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: decode")
	}

	sources, err := parseSources(v.Get("sources"))
	if err != nil {
		return nil, err
	}
	cfg.Sources = sources

	return &cfg, nil
}

// parseSources accepts a comma separated string, a list of "path[:profile]" strings, or a list
// of {path, profile} maps.
func parseSources(raw any) ([]storage.Source, error) {
	var sources []storage.Source
	add := func(s string) {
		if strings.TrimSpace(s) != "" {
			sources = append(sources, storage.ParseSource(s))
		}
	}

	switch val := raw.(type) {
	case nil:
	case string:
		for _, part := range strings.Split(val, ",") {
			add(part)
		}
	case []string:
		for _, s := range val {
			add(s)
		}
	case []any:
		for i, item := range val {
			switch it := item.(type) {
			case string:
				add(it)
			case map[string]any:
				path, _ := it["path"].(string)
				profile, _ := it["profile"].(string)
				if strings.TrimSpace(path) == "" {
					return nil, errors.Newf("config: sources[%d] has no path", i)
				}
				if profile == "" {
					profile = storage.DefaultProfile
				}
				sources = append(sources, storage.Source{Path: path, Profile: strings.ToLower(profile)})
			default:
				return nil, errors.Newf("config: sources[%d] has unsupported type %T", i, item)
			}
		}
	default:
		return nil, errors.Newf("config: sources has unsupported type %T", raw)
	}
	return sources, nil
}

// Validate checks the settings that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return errors.New("config: no sources configured")
	}
	for _, src := range c.Sources {
		if _, err := storage.LookupProfile(src.Profile); err != nil {
			return errors.Wrapf(err, "config: source %q", src.Path)
		}
	}

	if _, err := c.ExportColumns(); err != nil {
		return errors.Wrap(err, "config: export.columns")
	}

	if c.Skills.Top < 1 {
		return errors.Newf("config: skills.top must be positive, got %d", c.Skills.Top)
	}
	if c.Skills.Advice < 1 {
		return errors.Newf("config: skills.advice must be positive, got %d", c.Skills.Advice)
	}

	if c.Twilio.Enabled {
		switch {
		case c.Twilio.AccountSID == "":
			return errors.New("config: twilio.account-sid is required when twilio is enabled")
		case c.Twilio.From == "":
			return errors.New("config: twilio.from is required when twilio is enabled")
		case c.Twilio.To == "":
			return errors.New("config: twilio.to is required when twilio is enabled")
		case c.Twilio.AuthToken == "" && c.Twilio.AuthTokenFile == "":
			return errors.New("config: twilio.auth-token or twilio.auth-token-file is required when twilio is enabled")
		}
	}
	return nil
}

// ExportColumns resolves the configured export labels.
func (c *Config) ExportColumns() ([]models.ExportColumn, error) {
	return models.ParseExportColumns(c.Export.Columns)
}

// ResolveAuthToken loads the Twilio auth token, preferring the token file.
func (t TwilioConfig) ResolveAuthToken() (string, error) {
	return LoadSecret(SecretSource{
		Name:  "twilio auth token",
		Value: t.AuthToken,
		File:  t.AuthTokenFile,
	})
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	p := c.Postgres
	return "host=" + p.Host +
		" port=" + p.Port +
		" user=" + p.User +
		" password=" + p.Password +
		" dbname=" + p.DB +
		" sslmode=" + p.SSLMode
}
