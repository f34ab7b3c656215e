package infrastructure

// Server holds the listening port and the route variant to serve
type Server struct {
	Port    int    `mapstructure:"port"`
	Variant string `mapstructure:"variant"` // one of "all", "api", "test"
}

// Logging holds the logger settings
type Logging struct {
	Level string `mapstructure:"level"`
}

// Config holds the overall configuration
type Config struct {
	Server  Server  `mapstructure:"server"`
	Logging Logging `mapstructure:"logging"`
}
