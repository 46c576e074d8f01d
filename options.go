package nxncube

import "github.com/sirupsen/logrus"

// Option configures Cube and Face behavior.
type Option func(*config)

type config struct {
	logger logrus.FieldLogger
}

func defaultConfig() *config {
	return &config{
		logger: logrus.StandardLogger(),
	}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger sets the logger used to report rejected turns and
// out-of-range lookups. A nil logger keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
