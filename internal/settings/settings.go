package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/fabkit-dev/fabkit/internal/constants"
)

const loadEnvErrorMessage = "Not able to load configuration from .env file, skipping this optional step.\n" +
	"Note that if .env location is not provided via CLI flag, the nearest .env file in the current working directory or its parents is used."

// Settings holds the user's configuration, resolved from flags, FABKIT_*
// environment variables, the .env file and the config file, in that order.
type Settings struct {
	SkipInstall  bool
	Editor       string
	TelemetryURL string
	ConfigFile   string
}

// New initializes and loads settings from the `.env` file, the config file
// and the system environment.
func New(logger *zerolog.Logger, v *viper.Viper) (*Settings, error) {
	envPath := v.GetString(Flags.CliEnvFile.Name)

	if err := LoadEnv(envPath); err != nil {
		// .env file is optional, so we log it as a debug message
		logger.Debug().Err(err).Msg(loadEnvErrorMessage)
	}

	BindEnv(v)
	v.SetDefault(EditorSettingName, constants.DefaultEditor)

	configFile, err := LoadConfigFile(v, v.GetString(Flags.Config.Name))
	if err != nil {
		return nil, err
	}
	if configFile != "" {
		logger.Debug().Msgf("Loaded config file %s", configFile)
	}

	return &Settings{
		SkipInstall:  v.GetBool(SkipInstallSettingName),
		Editor:       v.GetString(EditorSettingName),
		TelemetryURL: v.GetString(TelemetryURLSettingName),
		ConfigFile:   configFile,
	}, nil
}

// BindEnv maps every setting to FABKIT_<SETTING_NAME>.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

func LoadEnv(envPath string) error {
	if envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading file from %s: %w", envPath, err)
			}
			return nil
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("error getting working directory: %w", err)
	}

	foundEnvPath, err := findEnvFile(cwd, constants.DefaultEnvFileName)
	if err != nil {
		return fmt.Errorf("error loading environment: %w", err)
	}

	if err := godotenv.Load(foundEnvPath); err != nil {
		return fmt.Errorf("error loading file from %s: %w", foundEnvPath, err)
	}
	return nil
}

func findEnvFile(startDir, fileName string) (string, error) {
	dir := startDir

	for {
		filePath := filepath.Join(dir, fileName)

		if info, err := os.Stat(filePath); err == nil && !info.IsDir() {
			return filePath, nil
		}

		parentDir := filepath.Dir(dir)
		if parentDir == dir {
			break // Reached the root directory.
		}
		dir = parentDir
	}
	return "", fmt.Errorf("file %s not found in any parent directory starting from %s", fileName, startDir)
}
