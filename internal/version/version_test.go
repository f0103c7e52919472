package version

import "testing"

func TestDefaults(t *testing.T) {
	// Without ldflags every variable starts out as "unknown".
	for name, v := range map[string]string{
		"Version":   Version,
		"BuildTime": BuildTime,
		"GitCommit": GitCommit,
	} {
		if v == "" {
			t.Errorf("%s must never be empty", name)
		}
	}
}
