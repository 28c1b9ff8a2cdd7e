package server

// Toolkit is the module entry point used to start the dashboard
// (python -m streamlit run ...).
const Toolkit = "streamlit"

// Options the dashboard is always started with. The deployment runs headless
// in a container behind the platform's proxy, which terminates TLS and owns
// origin checks, so CORS/XSRF enforcement and telemetry stay off. These are
// deliberately not configurable.
var fixedOptions = []string{
	"--server.headless=true",
	"--server.enableCORS=false",
	"--server.enableXsrfProtection=false",
	"--browser.gatherUsageStats=false",
}

// Args builds the argument vector for launching the dashboard through the
// toolkit's module entry point. The interpreter binary itself is chosen by
// the caller.
func (c Config) Args() []string {
	args := []string{
		"-m", Toolkit, "run", c.App,
		"--server.port=" + c.Port,
		"--server.address=" + c.Address,
	}
	return append(args, fixedOptions...)
}
