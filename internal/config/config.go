// Package config loads the switchboard configuration file.
//
// Configuration is optional: every field has a default, the CLI flags
// override file values, and a missing file at the default location is
// treated as "use defaults". Values support ${VAR} and ${VAR:-default}
// environment expansion, and paths may start with ~.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no --config flag is given.
const DefaultPath = "switchboard.yaml"

// Config is the root configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Transport selects how the MCP server is exposed: stdio or sse.
	Transport string `yaml:"transport"`

	Store StoreConfig `yaml:"store"`
	SSE   SSEConfig   `yaml:"sse"`
	Files FilesConfig `yaml:"files"`
}

// StoreConfig locates the CRM database.
type StoreConfig struct {
	// Path is the SQLite database file, created on first start.
	Path string `yaml:"path"`
}

// SSEConfig applies only when Transport is "sse".
type SSEConfig struct {
	Port int `yaml:"port"`

	// BaseURL is advertised to SSE clients for the message endpoint.
	// Empty means http://localhost:<port>.
	BaseURL string `yaml:"base_url"`

	// Metrics exposes Prometheus counters under /metrics.
	Metrics bool `yaml:"metrics"`
}

// FilesConfig tunes the filesystem tools.
type FilesConfig struct {
	// Root, when set, is prepended to relative paths passed to the file
	// tools. Empty leaves paths untouched.
	Root string `yaml:"root"`
}

// Defaults returns the configuration used when no file exists.
func Defaults() *Config {
	return &Config{
		LogLevel:  "info",
		Transport: "stdio",
		Store:     StoreConfig{Path: "crm.db"},
		SSE:       SSEConfig{Port: 8080, Metrics: true},
	}
}

// Load reads the file at path on top of Defaults. The file must exist;
// callers decide whether a missing default-location file is an error.
func Load(path string) (*Config, error) {
	expanded, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	data = []byte(ExpandEnvVars(string(data)))

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Store.Path, err = expandPath(cfg.Store.Path); err != nil {
		return nil, err
	}
	if cfg.Files.Root, err = expandPath(cfg.Files.Root); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate collects every problem instead of stopping at the first, so
// an operator can fix the file in one pass.
func (c *Config) Validate() error {
	var problems []string

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, "log_level must be one of: debug, info, warn, error")
	}

	switch c.Transport {
	case "stdio", "sse":
	default:
		problems = append(problems, "transport must be one of: stdio, sse")
	}

	if c.Store.Path == "" {
		problems = append(problems, "store.path must not be empty")
	}
	if c.SSE.Port < 1 || c.SSE.Port > 65535 {
		problems = append(problems, "sse.port must be between 1 and 65535")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}

// envVarPattern matches ${VAR} and ${VAR:-default}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-(.*?))?\}`)

// ExpandEnvVars replaces ${VAR} with the variable's value. The
// ${VAR:-default} form falls back to default when VAR is unset or
// empty; a plain ${VAR} that resolves to nothing is left untouched so
// the problem stays visible in the parsed value.
func ExpandEnvVars(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name, fallback := groups[1], groups[2]

		if val, ok := os.LookupEnv(name); ok && val != "" {
			return val
		}
		if fallback != "" {
			return fallback
		}
		return match
	})
}

// expandPath resolves a leading ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
