package constants

const (
	// Config
	DefaultConfigDirName  = ".fabkit"
	DefaultConfigFileName = "config.yaml"
	DefaultEnvFileName    = ".env"
	EnvPrefix             = "FABKIT"

	// Default Values
	DefaultEditor = "code"
)
