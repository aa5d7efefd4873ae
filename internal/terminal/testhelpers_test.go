package terminal

import (
	"testing"
)

// setupCleanEnv clears every CI indicator and then sets only the given variables,
// so that tests do not depend on the environment they run in.
func setupCleanEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	for _, v := range ciEnvVars {
		if value, specified := envVars[v]; specified {
			t.Setenv(v, value)
		} else {
			t.Setenv(v, "") // Empty is treated as unset
		}
	}
}
