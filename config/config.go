// Package config is the configuration service of promptflow. It loads and
// saves config.json, the file the desktop application also reads, and
// exposes the storage override path to the document store.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/viper"

	"github.com/jpl-au/promptflow"
)

// FileName is the name of the configuration file.
const FileName = "config.json"

// EnvPrefix prefixes environment overrides, e.g. PROMPTFLOW_STORAGE_PATH.
const EnvPrefix = "PROMPTFLOW"

// FormatMarkdown is the only supported storage format.
const FormatMarkdown = "markdown"

// Config mirrors config.json. Keys are camelCase on disk.
type Config struct {
	UI                  UIConfig      `json:"ui" mapstructure:"ui"`
	Storage             StorageConfig `json:"storage" mapstructure:"storage"`
	OnboardingCompleted bool          `json:"onboardingCompleted" mapstructure:"onboardingCompleted"`
}

type UIConfig struct {
	Hotkey         string `json:"hotkey" mapstructure:"hotkey"`
	CloseAfterCopy bool   `json:"closeAfterCopy" mapstructure:"closeAfterCopy"`
	Theme          string `json:"theme" mapstructure:"theme"`
	Language       string `json:"language" mapstructure:"language"`
}

type StorageConfig struct {
	Path   string `json:"path" mapstructure:"path"` // empty selects the default root
	Format string `json:"format" mapstructure:"format"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Hotkey:         "CommandOrControl+Shift+P",
			CloseAfterCopy: true,
			Theme:          "dark",
			Language:       "zh-CN",
		},
		Storage: StorageConfig{
			Format: FormatMarkdown,
		},
	}
}

// StoragePath implements promptflow.StorageConfig.
func (c *Config) StoragePath() string {
	return c.Storage.Path
}

var _ promptflow.StorageConfig = (*Config)(nil)

// DefaultPath returns the config.json location inside the default root.
func DefaultPath() (string, error) {
	root, err := promptflow.DefaultRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, FileName), nil
}

// Load reads the configuration at path on top of Default. A missing file
// yields the defaults. Environment variables with EnvPrefix override file
// values. A file that is not valid JSON fails with promptflow.ErrParse.
//
// The result describes the effective configuration for this process and
// must not be passed to Save; use LoadFile for a read-modify-write.
func Load(path string) (*Config, error) {
	return load(path, true)
}

// LoadFile is Load without environment overrides: exactly what is stored
// at path, on top of Default.
func LoadFile(path string) (*Config, error) {
	return load(path, false)
}

func load(path string, env bool) (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("json")
	setDefaults(v, cfg)

	if env {
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("%w: read %s: %w", promptflow.ErrIO, path, err)
		case !json.Valid(data):
			return nil, fmt.Errorf("%w: %s: not valid JSON", promptflow.ErrParse, path)
		default:
			if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", promptflow.ErrParse, path, err)
			}
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", promptflow.ErrParse, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys that
// are absent from the file.
func setDefaults(v *viper.Viper, cfg *Config) {
	for _, k := range Keys() {
		val, _ := cfg.Get(k)
		v.SetDefault(k, val)
	}
}

// Validate checks the fields the store depends on.
func (c *Config) Validate() error {
	if c.Storage.Format == "" {
		c.Storage.Format = FormatMarkdown
	}
	if c.Storage.Format != FormatMarkdown {
		return fmt.Errorf("%w: config: unsupported storage.format %q (must be %s)",
			promptflow.ErrValidation, c.Storage.Format, FormatMarkdown)
	}
	return nil
}

// Save writes cfg to path as indented JSON. Keys already in the file that
// Config does not model (the desktop application's api and polish sections,
// for instance) are kept. The file is written to a temp file first and
// renamed into place.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: mkdir %s: %w", promptflow.ErrIO, filepath.Dir(path), err)
	}

	data, err := encode(path, cfg)
	if err != nil {
		return fmt.Errorf("%w: encode config: %w", promptflow.ErrIO, err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: write %s: %w", promptflow.ErrIO, tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: rename %s: %w", promptflow.ErrIO, path, err)
	}
	return nil
}

// encode marshals cfg merged over the object currently stored at path. An
// unreadable or non-object file is replaced outright.
func encode(path string, cfg *Config) ([]byte, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var ours map[string]any
	if err := json.Unmarshal(raw, &ours); err != nil {
		return nil, err
	}

	var existing map[string]any
	if data, err := os.ReadFile(path); err == nil {
		if json.Unmarshal(data, &existing) != nil {
			existing = nil
		}
	}
	return json.MarshalIndent(merge(existing, ours), "", "  ")
}

// merge overlays src onto dst, recursing into nested objects.
func merge(dst, src map[string]any) map[string]any {
	if dst == nil {
		return src
	}
	for k, v := range src {
		sub, ok := v.(map[string]any)
		if old, isMap := dst[k].(map[string]any); ok && isMap {
			dst[k] = merge(old, sub)
			continue
		}
		dst[k] = v
	}
	return dst
}

// Keys returns the dotted keys accepted by Get and Set.
func Keys() []string {
	return []string{
		"ui.hotkey",
		"ui.closeAfterCopy",
		"ui.theme",
		"ui.language",
		"storage.path",
		"storage.format",
		"onboardingCompleted",
	}
}

// Get returns the value of a dotted key as a string.
func (c *Config) Get(key string) (string, error) {
	switch canonical(key) {
	case "ui.hotkey":
		return c.UI.Hotkey, nil
	case "ui.closeAfterCopy":
		return strconv.FormatBool(c.UI.CloseAfterCopy), nil
	case "ui.theme":
		return c.UI.Theme, nil
	case "ui.language":
		return c.UI.Language, nil
	case "storage.path":
		return c.Storage.Path, nil
	case "storage.format":
		return c.Storage.Format, nil
	case "onboardingCompleted":
		return strconv.FormatBool(c.OnboardingCompleted), nil
	}
	return "", unknownKey(key)
}

// Set assigns a dotted key from its string form. Boolean keys accept the
// values strconv.ParseBool accepts.
func (c *Config) Set(key, value string) error {
	k := canonical(key)
	switch k {
	case "ui.closeAfterCopy", "onboardingCompleted":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: config: %s wants true or false, got %q", promptflow.ErrValidation, k, value)
		}
		if k == "onboardingCompleted" {
			c.OnboardingCompleted = b
		} else {
			c.UI.CloseAfterCopy = b
		}
		return nil
	case "ui.hotkey":
		c.UI.Hotkey = value
	case "ui.theme":
		c.UI.Theme = value
	case "ui.language":
		c.UI.Language = value
	case "storage.path":
		c.Storage.Path = strings.TrimSpace(value)
	case "storage.format":
		c.Storage.Format = value
		return c.Validate()
	default:
		return unknownKey(key)
	}
	return nil
}

// canonical matches key case-insensitively against Keys, the way viper
// treats keys.
func canonical(key string) string {
	i := slices.IndexFunc(Keys(), func(k string) bool { return strings.EqualFold(k, key) })
	if i < 0 {
		return key
	}
	return Keys()[i]
}

func unknownKey(key string) error {
	return fmt.Errorf("%w: config: unknown key %q", promptflow.ErrValidation, key)
}
