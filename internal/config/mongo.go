package config

import "time"

// Mongo configures the document store connection. URL is optional on purpose:
// without it the service still starts and reports the store as unavailable.
type Mongo struct {
	URL            string        `env:"DATABASE_URL"`
	DB             string        `env:"DATABASE_NAME" envDefault:"mebella"`
	ConnectTimeout time.Duration `env:"DATABASE_CONNECT_TIMEOUT" envDefault:"5s"`
}
