// Package server describes the dashboard server process that the launcher
// hands off to.
//
// It does not implement an HTTP server. The dashboard toolkit (streamlit)
// owns the listening socket and the UI rendering; this package only knows
// how that process must be started: which entry script, which port and
// address, and the fixed set of server options every deployment uses.
//
// # Configuration
//
// Port and Address come from the environment (PORT, SERVER_ADDRESS). The
// headless, CORS, XSRF and telemetry options are constants of the
// deployment and cannot be overridden.
//
// # Usage
//
//	args := cfg.Server.Args()
//	// args => ["-m", "streamlit", "run", "src/dashboard_interactive.py", ...]
package server
