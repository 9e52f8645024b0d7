package database

// Config holds configuration for the remote content database connection.
type Config struct {
	// Host is the database host. Empty means the remote store is not configured.
	Host string `mapstructure:"host" default:""`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"questzone"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name holding the content tables.
	Name string `mapstructure:"name" default:""`
	// TimeoutSeconds is the connection and I/O timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// IsConfigured reports whether the remote content tables are reachable in principle.
// With an unconfigured database the site runs permanently on bundled fallback content.
func (c Config) IsConfigured() bool {
	return c.Host != "" && c.Name != ""
}
