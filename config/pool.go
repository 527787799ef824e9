package config

// PoolConfig describes the Redis connection pool derived from Settings.
type PoolConfig struct {
	URL             string
	DecodeResponses bool
	MaxConnections  int
}

// RedisPool derives the pool sizing from the worker count. Pure computation,
// no I/O; deterministic for a given Settings.
func (s *Settings) RedisPool() PoolConfig {
	return PoolConfig{
		URL:             s.RedisURL,
		DecodeResponses: true,
		MaxConnections:  s.MaxWorkers * 2,
	}
}
