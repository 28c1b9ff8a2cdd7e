// Package bootstrap implements the launcher's core sequence: bring the
// dashboard from "not running" to "serving".
//
// The sequence is a single ordered list of fallible steps, each a hard gate
// for the next:
//
//  1. Resolve the deployment root (fatal if missing).
//  2. Upgrade the package installer (fatal; skippable via config).
//  3. Parse the manifest and install the declared dependencies (fatal; a
//     missing manifest fails before any installer subprocess starts).
//  4. Probe the toolkit version (diagnostic only).
//  5. Extend PYTHONPATH with the deployment root and exec into the server.
//
// The failure policy is fail-fast with no retry and no partial rollback:
// every fatal error surfaces as a non-zero process exit, and the banner
// printed before the failing step localizes it in the platform logs. The
// final step replaces the launcher's process image, so the server's exit
// code becomes the launcher's and supervision stays with the platform.
package bootstrap
