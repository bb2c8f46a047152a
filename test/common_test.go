package test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/fabkit-dev/fabkit/internal/telemetry"
	"github.com/fabkit-dev/fabkit/update"
)

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI runs the built binary in an isolated home with telemetry off and
// an editor that cannot be found.
func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()

	home := t.TempDir()
	cmd := exec.Command(CLIPath, args...)
	cmd.Dir = home
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"USERPROFILE="+home,
		telemetry.DisabledEnvVar+"=true",
		"FABKIT_EDITOR=fabkit-e2e-missing-editor",
		update.DisabledEnvVar+"=1",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	t.Logf("fabkit %v\nstdout:\n%s\nstderr:\n%s", args, stdout.String(), stderr.String())
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func projectDir(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}
