package constants

const (
	AppName        = `sift`
	Version        = `0.1.0`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.sift/`
	EnvPrefix      = `SIFT`

	DefaultNotesFile = `notes`
	DefaultLogFile   = `sift.log`
	// LogDisabled as log_file turns logging off.
	LogDisabled = `-`

	DefaultGlamourStyle = `auto`
	DefaultWordWrap     = 80
)
