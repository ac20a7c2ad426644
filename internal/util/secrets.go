package util

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Secrets struct {
	Db       DbSecrets       `mapstructure:"db"`
	Supabase SupabaseSecrets `mapstructure:"supabase"`
	Probe    ProbeSecrets    `mapstructure:"probe"`
	Report   ReportSecrets   `mapstructure:"report"`
	Api      ApiSecrets      `mapstructure:"api"`
}

type DbSecrets struct {
	Host      string `mapstructure:"host"`
	User      string `mapstructure:"user"`
	Port      string `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	EnableSsl bool   `mapstructure:"enableSsl"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

type SupabaseSecrets struct {
	Url     string `mapstructure:"url"`
	AnonKey string `mapstructure:"anonKey"`
	// legacy HS256 signing secret; ES256 projects verify through JWKS instead
	JwtSecret string `mapstructure:"jwtSecret"`
}

const (
	ProbeBackendPostgres = "postgres"
	ProbeBackendSupabase = "supabase"
)

type ProbeSecrets struct {
	Backend string        `mapstructure:"backend"`
	Table   string        `mapstructure:"table"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type ReportSecrets struct {
	DefaultID string `mapstructure:"defaultId"`
}

type ApiSecrets struct {
	Port      int    `mapstructure:"port"`
	LoginPath string `mapstructure:"loginPath"`
}

// LoadSecrets picks the secrets file from SROI_ENV. Any key can be
// overridden from the environment, e.g. SROI_DB_HOST or SROI_PROBE_BACKEND.
func LoadSecrets() (*Secrets, error) {
	secretsFile := "/go/src/app/secrets.json"
	switch strings.ToLower(os.Getenv("SROI_ENV")) {
	case "dev":
		secretsFile = "secrets-dev.json"
	case "test":
		secretsFile = "secrets-test.json"
	}

	return LoadSecretsFromFile(secretsFile)
}

func LoadSecretsFromFile(secretsFile string) (*Secrets, error) {
	v := viper.New()
	v.SetEnvPrefix("SROI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(secretsFile)
	v.SetConfigType("json")
	v.AutomaticEnv()

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.database", "postgres")
	v.SetDefault("db.enableSsl", false)
	v.SetDefault("supabase.url", "")
	v.SetDefault("supabase.anonKey", "")
	v.SetDefault("supabase.jwtSecret", "")
	v.SetDefault("probe.backend", ProbeBackendPostgres)
	v.SetDefault("probe.table", "test_connection")
	v.SetDefault("probe.timeout", "5s")
	v.SetDefault("report.defaultId", "00000000-2025-0001-0001-000000000001")
	v.SetDefault("api.port", 3009)
	v.SetDefault("api.loginPath", "/login")

	// lambda deploys run off env vars only, so a missing file is fine
	if _, err := os.Stat(secretsFile); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read %s: %w", secretsFile, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not open %s: %w", secretsFile, err)
	}

	secrets := Secrets{}
	if err := v.Unmarshal(&secrets); err != nil {
		return nil, fmt.Errorf("failed to decode secrets: %w", err)
	}

	switch secrets.Probe.Backend {
	case ProbeBackendPostgres, ProbeBackendSupabase:
	default:
		return nil, fmt.Errorf("unknown probe backend %q", secrets.Probe.Backend)
	}
	if secrets.Probe.Backend == ProbeBackendSupabase && secrets.Supabase.Url == "" {
		return nil, fmt.Errorf("supabase probe backend requires supabase.url")
	}

	return &secrets, nil
}
