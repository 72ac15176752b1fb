package cookie

// Config holds cookie manager configuration
type Config struct {
	Path   string `env:"COOKIE_PATH" envDefault:"/"`
	Domain string `env:"COOKIE_DOMAIN" envDefault:""`
}

// NewFromConfig creates a new Manager from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := make([]Option, 0, 2+len(opts))

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
