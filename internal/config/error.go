package config

import "fmt"

// ConfigError reports an unusable configuration file.
type ConfigError struct {
	Path string
	msg  string
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return "invalid config: " + e.msg
	}
	return fmt.Sprintf("invalid config %s: %s", e.Path, e.msg)
}
