package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is an optional shared key protecting the admin API.
	// When empty, admin routes rely on session authentication alone.
	ApiKey string `mapstructure:"api_key" default:""`
}
