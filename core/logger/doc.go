// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) with console or JSON encoding.
//
// # Launch Correlation
//
// Every bootstrap attempt is tagged with a launch id. The WithLaunchID helper
// attaches it to the logger so that the platform log stream can be filtered
// down to a single launch, which matters because the last line printed before
// a failure is what localizes the failing step.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithLaunchID(log, id)
//	log.Info("Installing dependencies")
package logger
