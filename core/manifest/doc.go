// Package manifest parses pip requirement files (requirements.txt).
//
// The manifest is the only input that describes the dependency set of the
// dashboard: an ordered list of package specifiers, one per line, with
// standard version-constraint syntax. It is read once per launch and never
// written.
//
// The parser covers the subset of the requirement syntax the deployments
// actually use: names, extras, comma-separated version clauses, trailing
// comments and environment markers. Installer option lines (-r, --index-url)
// are carried through unparsed; resolution itself belongs to pip.
package manifest
