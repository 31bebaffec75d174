package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	Backend  Backend  `envPrefix:"BACKEND_"`
	Checkout Checkout `envPrefix:"CHECKOUT_"`
	Store    Store    `envPrefix:"STORE_"`
}

// Backend is the remote storefront API this service calls for
// address lookup, order creation and cart cleanup.
type Backend struct {
	BaseURL string        `env:"BASE_URL"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

type Checkout struct {
	// CommitTimeout bounds the create-order + cart-cleanup sequence.
	CommitTimeout time.Duration `env:"COMMIT_TIMEOUT" envDefault:"1500ms"`
}

type Store struct {
	SqlitePath string `env:"SQLITE_PATH" envDefault:"checkout.db"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
