package config

import (
	"fmt"
	"net/url"
	"os"
	"runtime"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

const (
	LogLevelDebug = "DEBUG"
	LogLevelInfo  = "INFO"
	LogLevelWarn  = "WARN"
	LogLevelError = "ERROR"
)

type Settings struct {
	FirebaseProjectID    string `mapstructure:"firebase_project_id"`
	FirebasePrivateKey   string `mapstructure:"firebase_private_key"`
	FirebaseClientEmail  string `mapstructure:"firebase_client_email"`
	FirestoreDatabaseURL string `mapstructure:"firestore_database_url"`

	MaxGraphNodes int `mapstructure:"max_graph_nodes"`
	MaxGraphEdges int `mapstructure:"max_graph_edges"`
	GraphCacheTTL int `mapstructure:"graph_cache_ttl"`

	CausalConfidenceThreshold float64 `mapstructure:"causal_confidence_threshold"`
	CorrelationThreshold      float64 `mapstructure:"correlation_threshold"`
	DiscoveryBatchSize        int     `mapstructure:"discovery_batch_size"`

	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`

	MaxWorkers int    `mapstructure:"max_workers"`
	RedisURL   string `mapstructure:"redis_url"`
}

// binding maps a viper key to its environment variable, default value and
// required flag. The schema below is the single source of truth for which
// variables the process consumes.
type binding struct {
	key      string
	env      string
	def      any
	required bool
}

func schema() []binding {
	return []binding{
		{key: "firebase_project_id", env: "FIREBASE_PROJECT_ID", required: true},
		{key: "firebase_private_key", env: "FIREBASE_PRIVATE_KEY", required: true},
		{key: "firebase_client_email", env: "FIREBASE_CLIENT_EMAIL", required: true},
		{key: "firestore_database_url", env: "FIRESTORE_DATABASE_URL", def: "https://firestore.googleapis.com"},
		{key: "max_graph_nodes", env: "MAX_GRAPH_NODES", def: 1000000},
		{key: "max_graph_edges", env: "MAX_GRAPH_EDGES", def: 5000000},
		{key: "graph_cache_ttl", env: "GRAPH_CACHE_TTL", def: 300},
		{key: "causal_confidence_threshold", env: "CAUSAL_CONFIDENCE_THRESHOLD", def: 0.8},
		{key: "correlation_threshold", env: "CORRELATION_THRESHOLD", def: 0.7},
		{key: "discovery_batch_size", env: "DISCOVERY_BATCH_SIZE", def: 1000},
		{key: "log_level", env: "LOG_LEVEL", def: LogLevelInfo},
		{key: "log_file", env: "LOG_FILE", def: "acdih_synaptic.log"},
		{key: "max_workers", env: "MAX_WORKERS", def: defaultMaxWorkers()},
		{key: "redis_url", env: "REDIS_URL", def: "redis://localhost:6379/0"},
	}
}

func defaultMaxWorkers() int {
	n := runtime.NumCPU()
	if n < 4 {
		n = 4
	}
	return n
}

// Load reads the environment (plus an optional .env file), applies defaults
// from the schema and returns a validated Settings. The first absent required
// variable aborts the load.
func Load(opts ...Option) (*Settings, error) {
	o := newOptions(opts)

	if o.envFile != "" {
		if err := gotenv.Load(o.envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", o.envFile, err)
		}
	} else {
		// Same behavior as dotenv: a missing .env in the working directory
		// is not an error.
		if err := gotenv.Load(); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	v := viper.New()
	for _, b := range schema() {
		if err := v.BindEnv(b.key, b.env); err != nil {
			return nil, err
		}
		if b.def != nil {
			v.SetDefault(b.key, b.def)
		}
	}

	for key, value := range o.overrides {
		v.Set(key, value)
	}

	for _, b := range schema() {
		if b.required && !v.IsSet(b.key) {
			return nil, fmt.Errorf("%w: %s", ErrMissingRequiredValue, b.env)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *Settings) Validate() error {
	err := validation.ValidateStruct(s,
		validation.Field(&s.FirestoreDatabaseURL, validation.Required, is.URL),
		validation.Field(&s.MaxGraphNodes, validation.Required, validation.Min(1)),
		validation.Field(&s.MaxGraphEdges, validation.Required, validation.Min(1)),
		validation.Field(&s.GraphCacheTTL, validation.Min(0)),
		validation.Field(&s.CausalConfidenceThreshold, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&s.CorrelationThreshold, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&s.DiscoveryBatchSize, validation.Required, validation.Min(1)),
		validation.Field(&s.LogLevel, validation.Required, validation.By(validateLogLevel)),
		validation.Field(&s.MaxWorkers, validation.Required, validation.Min(1)),
		validation.Field(&s.RedisURL, validation.Required, validation.By(validateRedisURL)),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrOutOfRangeValue, err)
	}
	return nil
}

func validateLogLevel(value interface{}) error {
	level, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	switch strings.ToUpper(level) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	default:
		return validation.NewError("validation_invalid_log_level", "must be one of DEBUG, INFO, WARN, ERROR")
	}
}

func validateRedisURL(value interface{}) error {
	raw, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return validation.NewError("validation_invalid_url", "must be a valid URL")
	}

	if u.Scheme != "redis" && u.Scheme != "rediss" {
		return validation.NewError("validation_invalid_scheme", "URL must use redis or rediss scheme")
	}

	if u.Host == "" {
		return validation.NewError("validation_missing_host", "URL must have a host")
	}

	return nil
}
