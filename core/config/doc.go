// Package config provides configuration management for the launcher.
//
// It utilizes Viper for loading configuration from environment variables and
// a .env file at the deployment root.
//
// # Configuration Structure
//
// The Config struct is the central repository for all launcher settings,
// divided into subsections:
//   - Server: dashboard process settings (port, bind address, entry script)
//   - Python: environment settings (deployment root, manifest, interpreter)
//   - Log: logging level and format
//
// The dashboard port is special-cased: hosting platforms usually inject it
// as a bare PORT variable, so server.port is bound to both SERVER_PORT and
// PORT, defaulting to 8000.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
