// Package pyenv wraps the operations the launcher performs against the
// deployment's Python environment: upgrading the package installer,
// installing the declared dependency set, probing the dashboard toolkit and
// computing the module search path for the server process.
//
// Each operation shells out through core/runner, so the package carries no
// process mechanics of its own and is fully mockable in tests.
package pyenv
