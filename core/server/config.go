package server

// Config holds configuration for the dashboard server process.
type Config struct {
	// Port is the TCP port the dashboard listens on.
	Port string `mapstructure:"port" default:"8000"`
	// Address is the interface the dashboard binds to.
	Address string `mapstructure:"address" default:"0.0.0.0"`
	// App is the entry script of the dashboard, relative to the deployment root.
	App string `mapstructure:"app" default:"src/dashboard_interactive.py"`
}
