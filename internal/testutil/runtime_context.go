package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/fabkit-dev/fabkit/internal/runtime"
	"github.com/fabkit-dev/fabkit/internal/settings"
)

// NewRuntimeContext returns a context with settings attached, isolated from
// the user's home directory and any .env file.
func NewRuntimeContext(t *testing.T) *runtime.Context {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	v.Set(settings.Flags.CliEnvFile.Name, filepath.Join(t.TempDir(), "missing.env"))

	ctx := runtime.NewContext(NewTestLogger(), v)
	if err := ctx.AttachSettings(); err != nil {
		t.Fatalf("failed to attach settings: %v", err)
	}
	return ctx
}
