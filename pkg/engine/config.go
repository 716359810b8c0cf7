package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied by Config.withDefaults.
const (
	defaultModel             = "mistral:7b"
	defaultToolServerCommand = "funtools"
)

// Config is the top-level agent configuration.
type Config struct {
	// Model is the Ollama model name.
	Model string `yaml:"model"`
	// OllamaHost overrides the daemon address. Empty falls back to the
	// OLLAMA_HOST environment variable, then the daemon default.
	OllamaHost string `yaml:"ollama_host"`
	// MaxSteps caps decision evaluations per turn. Zero keeps the default.
	MaxSteps   int              `yaml:"max_steps"`
	ToolServer ToolServerConfig `yaml:"tool_server"`
}

// ToolServerConfig describes how to spawn the MCP tool host.
type ToolServerConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// LoadConfig reads a YAML file and returns a Config with defaults applied.
// Environment variables referenced as ${VAR} or $VAR in the YAML are expanded
// before parsing, so secrets can live in the environment (e.g. loaded from a
// .env file) rather than in the config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("engine: load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("engine: parse config: %w", err)
	}

	return cfg.withDefaults(), nil
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

// withDefaults fills in zero-value fields.
func (c Config) withDefaults() Config {
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.ToolServer.Command == "" {
		c.ToolServer.Command = defaultToolServerCommand
	}
	return c
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("engine: config: model is required")
	}
	if c.ToolServer.Command == "" {
		return fmt.Errorf("engine: config: tool_server command is required")
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("engine: config: max_steps must not be negative")
	}
	return nil
}
