package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath = "."

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultSQLitePath        = "rentledger.db"
	defaultSQLiteBusyTimeout = 5 * time.Second
	defaultAckDeadline       = 10 * time.Second
	defaultBufferSize        = 16
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Store StoreConfig `json:"store" yaml:"store"`

	// ChangeFeed tunes the in-process notifications that drive reactive queries
	ChangeFeed ChangeFeedConfig `json:"changeFeed" yaml:"changeFeed"`

	Summary SummaryConfig `json:"summary" yaml:"summary"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig selects the relational engine backing the four ledger tables.
type StoreConfig struct {
	// Driver is either "sqlite" (local file, the default) or "postgres"
	Driver string `json:"driver" yaml:"driver"`

	SQLite SQLiteConfig `json:"sqlite" yaml:"sqlite"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`
}

type SQLiteConfig struct {
	Path        string        `json:"path" yaml:"path"`
	BusyTimeout time.Duration `json:"busyTimeout" yaml:"busyTimeout"`
}

type ChangeFeedConfig struct {
	// AckDeadline is how long an unacknowledged change event waits before redelivery
	AckDeadline time.Duration `json:"ackDeadline" yaml:"ackDeadline"`

	// BufferSize is the per-observer snapshot channel capacity
	BufferSize int `json:"bufferSize" yaml:"bufferSize"`
}

type SummaryConfig struct {
	DefaultToCurrentYear bool `json:"defaultToCurrentYear" yaml:"defaultToCurrentYear"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Env overrides keep the YAML casing: STORE_SQLITE_BUSYTIMEOUT -> store.sqlite.busyTimeout
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	if cfg.Store.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Store.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() error {
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	switch cfg.Store.Driver {
	case "":
		cfg.Store.Driver = DriverSQLite
	case DriverSQLite, DriverPostgres:
	default:
		return errors.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}

	if cfg.Store.Driver == DriverPostgres && cfg.Store.Postgres == nil {
		return errors.New("store.postgres must be set when store.driver is postgres")
	}

	if strings.TrimSpace(cfg.Store.SQLite.Path) == "" {
		cfg.Store.SQLite.Path = defaultSQLitePath
	}
	if cfg.Store.SQLite.BusyTimeout <= 0 {
		cfg.Store.SQLite.BusyTimeout = defaultSQLiteBusyTimeout
	}
	if cfg.ChangeFeed.AckDeadline <= 0 {
		cfg.ChangeFeed.AckDeadline = defaultAckDeadline
	}
	if cfg.ChangeFeed.BufferSize <= 0 {
		cfg.ChangeFeed.BufferSize = defaultBufferSize
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the read replicas from POSTGRES_REPLICAS_{index}_{field}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
