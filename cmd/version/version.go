package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/fabkit-dev/fabkit/internal/runtime"
)

// Default placeholder value
var Version = "development"

func New(runtimeContext *runtime.Context) *cobra.Command {
	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the fabkit version",
		Long:  "This command prints the current version of fabkit",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "fabkit", Version)
			if !IsRelease(Version) {
				runtimeContext.Logger.Debug().Msgf("%s is not a release build", Version)
			}
			return nil
		},
	}

	return versionCmd
}

// IsRelease reports whether v is a semantic version, with or without a
// leading "v".
func IsRelease(v string) bool {
	_, err := semver.NewVersion(v)
	return err == nil
}
