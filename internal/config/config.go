package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/sift/internal/constants"
	"github.com/Paintersrp/sift/internal/pathutil"
)

type Config struct {
	NotesFile    string `yaml:"notes_file"    json:"notes_file"`
	LogFile      string `yaml:"log_file"      json:"log_file"`
	Markdown     bool   `yaml:"markdown"      json:"markdown"`
	GlamourStyle string `yaml:"glamour_style" json:"glamour_style"`
	WordWrap     int    `yaml:"word_wrap"     json:"word_wrap"`

	home string `yaml:"-"`
}

const (
	keyNotesFile    = "notes_file"
	keyLogFile      = "log_file"
	keyMarkdown     = "markdown"
	keyGlamourStyle = "glamour_style"
	keyWordWrap     = "word_wrap"
)

// Keys lists every recognised configuration key.
var Keys = []string{keyNotesFile, keyLogFile, keyMarkdown, keyGlamourStyle, keyWordWrap}

var ValidGlamourStyles = map[string]bool{
	"auto":    true,
	"dark":    true,
	"light":   true,
	"dracula": true,
	"notty":   true,
}

func validStyleList() string {
	names := make([]string, 0, len(ValidGlamourStyles))
	for name := range ValidGlamourStyles {
		names = append(names, fmt.Sprintf("'%s'", name))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// Default returns the configuration used when the file sets nothing.
func Default(home string) *Config {
	dir := filepath.Join(home, constants.ConfigDir)
	return &Config{
		NotesFile:    filepath.Join(dir, constants.DefaultNotesFile),
		LogFile:      filepath.Join(dir, constants.DefaultLogFile),
		GlamourStyle: constants.DefaultGlamourStyle,
		WordWrap:     constants.DefaultWordWrap,
		home:         home,
	}
}

// Load reads the config file under home. Keys missing from the file keep
// their defaults.
func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default(home)
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, &ConfigError{Path: path, msg: err.Error()}
		}
	}
	cfg.home = home

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyViper overlays any key viper knows about, such as SIFT_NOTES_FILE
// from the environment, onto cfg.
func (cfg *Config) ApplyViper(v *viper.Viper) {
	if v == nil {
		return
	}
	if v.IsSet(keyNotesFile) {
		cfg.NotesFile = v.GetString(keyNotesFile)
	}
	if v.IsSet(keyLogFile) {
		cfg.LogFile = v.GetString(keyLogFile)
	}
	if v.IsSet(keyMarkdown) {
		cfg.Markdown = v.GetBool(keyMarkdown)
	}
	if v.IsSet(keyGlamourStyle) {
		cfg.GlamourStyle = v.GetString(keyGlamourStyle)
	}
	if v.IsSet(keyWordWrap) {
		cfg.WordWrap = v.GetInt(keyWordWrap)
	}
}

func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.NotesFile) == "" {
		return &ConfigError{Path: cfg.GetConfigPath(), msg: fmt.Sprintf("%q must not be empty", keyNotesFile)}
	}
	if _, ok := ValidGlamourStyles[cfg.GlamourStyle]; !ok {
		return &ConfigError{
			Path: cfg.GetConfigPath(),
			msg:  fmt.Sprintf("invalid glamour style: %q. Please choose from %s.", cfg.GlamourStyle, validStyleList()),
		}
	}
	if cfg.WordWrap < 0 {
		return &ConfigError{Path: cfg.GetConfigPath(), msg: fmt.Sprintf("%q must not be negative, got %d", keyWordWrap, cfg.WordWrap)}
	}
	return nil
}

// SetNotesFile overrides the notes file, typically from the command line.
func (cfg *Config) SetNotesFile(path string) {
	if strings.TrimSpace(path) != "" {
		cfg.NotesFile = path
	}
}

// NotesPath returns the notes file with "~" expanded. Relative paths are
// resolved against the working directory.
func (cfg *Config) NotesPath() string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return pathutil.Resolve(cfg.NotesFile, cfg.home, wd)
}

// LogPath returns the expanded log file, or "" when logging is disabled.
func (cfg *Config) LogPath() string {
	if cfg.LogFile == "" || cfg.LogFile == constants.LogDisabled {
		return ""
	}
	return pathutil.ExpandHome(cfg.LogFile, cfg.home)
}

func (cfg *Config) GetConfigPath() string {
	home := cfg.home
	if home == "" {
		var err error
		if home, err = os.UserHomeDir(); err != nil {
			return ""
		}
	}
	return GetConfigPath(home)
}

func (cfg *Config) Save() error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	configPath := cfg.GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}
