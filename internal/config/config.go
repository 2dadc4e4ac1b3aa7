package config

import (
	"net"
	"net/url"
	"strconv"
	"time"
)

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

type Config struct {
	Env      string `env:"ENV" env-required:"true" yaml:"env"`
	HTTP     HTTPConfig
	Postgres PostgresConfig
}

type HTTPConfig struct {
	Host              string        `env:"HTTP_HOST" env-default:"0.0.0.0" yaml:"host"`
	Port              string        `env:"HTTP_PORT" env-default:"3000" yaml:"port"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"5s" yaml:"read_header_timeout"`
	// RequestTimeout bounds every request, including its store call.
	RequestTimeout  time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"request_timeout"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s" yaml:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host           string        `env:"POSTGRES_HOST" env-required:"true" yaml:"host"`
	Port           int           `env:"POSTGRES_PORT" env-default:"5432" yaml:"port"`
	Username       string        `env:"POSTGRES_USERNAME" env-required:"true" yaml:"username"`
	Password       string        `env:"POSTGRES_PASSWORD" env-required:"true" yaml:"password"`
	Database       string        `env:"POSTGRES_DATABASE" env-required:"true" yaml:"database"`
	SSLMode        string        `env:"POSTGRES_SSL_MODE" env-default:"disable" yaml:"ssl_mode"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s" yaml:"connect_timeout"`
	PingTimeout    time.Duration `env:"POSTGRES_PING_TIMEOUT" env-default:"10s" yaml:"ping_timeout"`
	// MaxConns of zero keeps the pgxpool default.
	MaxConns int32 `env:"POSTGRES_MAX_CONNS" env-default:"0" yaml:"max_conns"`
}

// ConnString builds a postgres:// URL suitable for pgxpool.ParseConfig.
func (c PostgresConfig) ConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Username, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Database,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}
