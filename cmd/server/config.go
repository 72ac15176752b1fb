package main

import (
	"github.com/dmitrymomot/uigen/pkg/cookie"
	"github.com/dmitrymomot/uigen/pkg/environment"
	"github.com/dmitrymomot/uigen/pkg/httpserver"
	"github.com/dmitrymomot/uigen/pkg/pg"
	"github.com/dmitrymomot/uigen/pkg/session"
)

type Config struct {
	AppName     string `env:"APP_NAME" envDefault:"uigen"`
	Env         string `env:"APP_ENV" envDefault:"development"`
	BcryptCost  int    `env:"BCRYPT_COST" envDefault:"12"`
	MetricsPath string `env:"METRICS_PATH" envDefault:"/metrics"`

	Session session.Config
	Cookie  cookie.Config
	HTTP    httpserver.Config
	DB      pg.Config
}

func (c *Config) Environment() environment.Environment {
	return environment.Parse(c.Env)
}

// Validate runs after loading. It derives the production flag for the
// session config before validating it.
func (c *Config) Validate() error {
	c.Session.Production = c.Environment().IsProduction()
	if err := c.Session.Validate(); err != nil {
		return err
	}
	return c.HTTP.Validate()
}
