package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/fabkit-dev/fabkit/internal/constants"
)

// Config names (YAML keys, also reachable as FABKIT_<NAME> env vars)
const (
	SkipInstallSettingName  = "skip-install"
	EditorSettingName       = "editor"
	TelemetryURLSettingName = "telemetry-url"
)

type Flag struct {
	Name  string
	Short string
}

type flagNames struct {
	CliEnvFile   Flag
	Config       Flag
	Verbose      Flag
	SkipInstall  Flag
	Editor       Flag
	ContractType Flag
	MspID        Flag
	Language     Flag
	Chaincode    Flag
	Asset        Flag
	Destination  Flag
	Open         Flag
}

var Flags = flagNames{
	CliEnvFile:   Flag{"env", "e"},
	Config:       Flag{"config", "c"},
	Verbose:      Flag{"verbose", "v"},
	SkipInstall:  Flag{SkipInstallSettingName, ""},
	Editor:       Flag{EditorSettingName, ""},
	ContractType: Flag{"contract-type", "t"},
	MspID:        Flag{"msp-id", ""},
	Language:     Flag{"language", "l"},
	Chaincode:    Flag{"chaincode", ""},
	Asset:        Flag{"asset", "a"},
	Destination:  Flag{"destination", "d"},
	Open:         Flag{"open", "o"},
}

// DefaultConfigPath is ~/.fabkit/config.yaml, or "" when there is no home
// directory.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, constants.DefaultConfigDirName, constants.DefaultConfigFileName)
}

// LoadConfigFile merges the YAML config file into v. An explicitly given
// file must exist; the default one is optional.
func LoadConfigFile(v *viper.Viper, explicitPath string) (string, error) {
	path := explicitPath
	if path == "" {
		path = DefaultConfigPath()
		if path == "" {
			return "", nil
		}
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.MergeInConfig(); err != nil {
		return "", fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return path, nil
}
