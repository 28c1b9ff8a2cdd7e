package runner

import "strings"

// mergeEnv overlays extra onto base, keep-last per key. execve hands the
// environment block to the child verbatim and libc getenv returns the first
// match, so a key in extra has to displace the inherited entry rather than
// shadow it from the back of the slice.
func mergeEnv(base, extra []string) []string {
	override := make(map[string]bool, len(extra))
	for _, kv := range extra {
		if i := strings.Index(kv, "="); i >= 0 {
			override[kv[:i]] = true
		}
	}

	merged := make([]string, 0, len(base)+len(extra))
	for _, kv := range base {
		if i := strings.Index(kv, "="); i >= 0 && override[kv[:i]] {
			continue
		}
		merged = append(merged, kv)
	}
	return append(merged, extra...)
}
