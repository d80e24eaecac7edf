package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "CLIPDASH_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig   `toml:"general" yaml:"general"`
	Buffers   BuffersConfig   `toml:"buffers" yaml:"buffers"`
	Behaviour BehaviourConfig `toml:"behaviour" yaml:"behaviour"`
	Tools     ToolsConfig     `toml:"tools" yaml:"tools"`
	Hotkey    HotkeyConfig    `toml:"hotkey" yaml:"hotkey"`
	Logging   LoggingConfig   `toml:"logging" yaml:"logging"`

	// Path is the file the configuration was loaded from, empty for defaults
	Path string `toml:"-" yaml:"-"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	// LineSeparator splits the clipboard into lines: "lf", "crlf" or a literal
	LineSeparator string   `toml:"line_separator" yaml:"line_separator"`
	StatusTimeout Duration `toml:"status_timeout" yaml:"status_timeout"`
}

// BuffersConfig holds buffer list settings
type BuffersConfig struct {
	CropLength         int      `toml:"crop_length" yaml:"crop_length"`
	WordsForFileNaming int      `toml:"words_for_file_naming" yaml:"words_for_file_naming"`
	InitialClips       []string `toml:"initial_clips" yaml:"initial_clips"`
	SaveDir            string   `toml:"save_dir" yaml:"save_dir"`
}

// BehaviourConfig holds the dashboard toggles
type BehaviourConfig struct {
	StoreOnFocus         bool `toml:"store_on_focus" yaml:"store_on_focus"`
	RetrieveOnFocus      bool `toml:"retrieve_on_focus" yaml:"retrieve_on_focus"`
	VariableSubstitution bool `toml:"variable_substitution" yaml:"variable_substitution"`
}

// ToolsConfig names the external programs and their temp files
type ToolsConfig struct {
	ViewApp         string `toml:"view_app" yaml:"view_app"`
	DiffApp         string `toml:"diff_app" yaml:"diff_app"`
	OpenApp         string `toml:"open_app" yaml:"open_app"`
	ViewTempPrefix  string `toml:"view_temp_prefix" yaml:"view_temp_prefix"`
	DiffTempPrefixA string `toml:"diff_temp_prefix_a" yaml:"diff_temp_prefix_a"`
	DiffTempPrefixB string `toml:"diff_temp_prefix_b" yaml:"diff_temp_prefix_b"`
	TempExt         string `toml:"temp_ext" yaml:"temp_ext"`
}

// HotkeyConfig holds the optional global store hotkey
type HotkeyConfig struct {
	Enabled   bool     `toml:"enabled" yaml:"enabled"`
	Modifiers []string `toml:"modifiers" yaml:"modifiers"`
	Key       string   `toml:"key" yaml:"key"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	File   string `toml:"file" yaml:"file"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()
	cfg.Path = path

	return &cfg, nil
}

// LoadFromEnv loads the file named by CLIPDASH_CONFIG, or the first file
// found in the default locations. Without any file the defaults are used.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// DefaultPaths lists the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	paths := []string{"./clipdash.toml", "./clipdash.yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths,
			filepath.Join(dir, "clipdash", "config.toml"),
			filepath.Join(dir, "clipdash", "config.yaml"),
		)
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LineSeparator == "" {
		c.General.LineSeparator = defaultLineSeparator()
	}
	if c.General.StatusTimeout.Duration == 0 {
		c.General.StatusTimeout.Duration = 5 * time.Second
	}

	// Buffers
	if c.Buffers.CropLength <= 0 {
		c.Buffers.CropLength = 70
	}
	if c.Buffers.WordsForFileNaming <= 0 {
		c.Buffers.WordsForFileNaming = 4
	}
	if c.Buffers.InitialClips == nil {
		c.Buffers.InitialClips = []string{"abc", "def", "ghijklmnop", "q", "rstuv", "wxyz"}
	}
	if c.Buffers.SaveDir == "" {
		c.Buffers.SaveDir = "."
	}

	// Tools
	if c.Tools.ViewApp == "" {
		c.Tools.ViewApp = defaultViewApp()
	}
	if c.Tools.DiffApp == "" {
		c.Tools.DiffApp = "meld"
	}
	if c.Tools.ViewTempPrefix == "" {
		c.Tools.ViewTempPrefix = "ClipDashboard_notepad_"
	}
	if c.Tools.DiffTempPrefixA == "" {
		c.Tools.DiffTempPrefixA = "ClipDashboard_buffA_"
	}
	if c.Tools.DiffTempPrefixB == "" {
		c.Tools.DiffTempPrefixB = "ClipDashboard_buffB_"
	}
	if c.Tools.TempExt == "" {
		c.Tools.TempExt = ".txt"
	}

	// Hotkey
	if len(c.Hotkey.Modifiers) == 0 {
		c.Hotkey.Modifiers = []string{"ctrl", "shift"}
	}
	if c.Hotkey.Key == "" {
		c.Hotkey.Key = "c"
	}

	// Logging
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.File == "" {
		c.Logging.File = defaultLogFile()
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.Buffers.SaveDir = os.ExpandEnv(c.Buffers.SaveDir)
	c.Logging.File = os.ExpandEnv(c.Logging.File)
	c.Tools.ViewApp = os.ExpandEnv(c.Tools.ViewApp)
	c.Tools.DiffApp = os.ExpandEnv(c.Tools.DiffApp)
	c.Tools.OpenApp = os.ExpandEnv(c.Tools.OpenApp)
}

// LineSep resolves the configured line separator
func (c *Config) LineSep() string {
	switch strings.ToLower(c.General.LineSeparator) {
	case "lf":
		return "\n"
	case "crlf":
		return "\r\n"
	case "":
		return defaultLineSeparator()
	default:
		return c.General.LineSeparator
	}
}

func defaultLineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

func defaultViewApp() string {
	switch runtime.GOOS {
	case "windows":
		return "notepad"
	case "darwin":
		return "open"
	default:
		if editor := os.Getenv("VISUAL"); editor != "" {
			return editor
		}
		return "xdg-open"
	}
}

func defaultLogFile() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "clipdash", "clipdash.log")
}
