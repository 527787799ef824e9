package config

// Option adjusts how the environment is read. Overrides exist as a test seam:
// they outrank both environment variables and schema defaults.
type Option func(*options)

type options struct {
	envFile   string
	overrides map[string]string
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithEnvFile loads the given dotenv file before reading the environment.
// Unlike the implicit ./.env lookup, a missing explicit file is an error.
func WithEnvFile(path string) Option {
	return func(o *options) {
		o.envFile = path
	}
}

// WithOverrides forces individual settings by schema key (e.g. "max_workers"),
// bypassing the environment entirely for those keys.
func WithOverrides(values map[string]string) Option {
	return func(o *options) {
		if o.overrides == nil {
			o.overrides = make(map[string]string, len(values))
		}
		for k, v := range values {
			o.overrides[k] = v
		}
	}
}
