package config

import "sync"

// Manager serves a single validated view of process configuration and
// credentials. The first accessor call runs load-and-validate exactly once;
// every later call returns the memoized result without re-reading the
// environment. A failed load is memoized too: retrying cannot fix a missing
// variable without external intervention.
type Manager struct {
	opts []Option

	once     sync.Once
	settings *Settings
	creds    *Credentials
	err      error
}

// New returns a Manager that will load configuration lazily on first access.
// Nothing is read from the environment until an accessor is called.
func New(opts ...Option) *Manager {
	return &Manager{opts: opts}
}

func (m *Manager) load() {
	m.once.Do(func() {
		s, err := Load(m.opts...)
		if err != nil {
			m.err = err
			return
		}

		c, err := NewCredentials(s)
		if err != nil {
			m.err = err
			return
		}

		m.settings = s
		m.creds = c
	})
}

// Settings returns the cached Settings, loading and validating on first call.
func (m *Manager) Settings() (*Settings, error) {
	m.load()
	return m.settings, m.err
}

// Credentials returns the cached Credentials derived from Settings.
func (m *Manager) Credentials() (*Credentials, error) {
	m.load()
	return m.creds, m.err
}

// RedisPool returns the pool configuration derived from the cached Settings.
func (m *Manager) RedisPool() (PoolConfig, error) {
	m.load()
	if m.err != nil {
		return PoolConfig{}, m.err
	}
	return m.settings.RedisPool(), nil
}
