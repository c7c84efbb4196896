package configs

// Config holds all configuration for the pipeline commands.
type Config struct {
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Report    ReportConfig    `mapstructure:"report" validate:"required"`
	Generator GeneratorConfig `mapstructure:"generator" validate:"required"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// ServerConfig holds report-viewer server configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// ReportConfig holds the report defaults used by the serve command and as
// fallbacks for the batch commands.
type ReportConfig struct {
	KPIPath   string  `mapstructure:"kpi_path" validate:"required"`
	RootDir   string  `mapstructure:"root_dir" validate:"required"`
	UmbralP90 float64 `mapstructure:"umbral_p90"` // ms; any float is accepted
}

// GeneratorConfig holds synthetic data generator configuration.
type GeneratorConfig struct {
	Days int `mapstructure:"days" validate:"required,min=1"` // trailing window for timestamps
}

// MetricsConfig holds metrics delivery configuration.
// An empty gateway URL disables pushing.
type MetricsConfig struct {
	PushGatewayURL string `mapstructure:"push_gateway_url"`
}
