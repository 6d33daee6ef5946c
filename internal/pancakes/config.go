package pancakes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack/constants"
)

const (
	configFileName = "pancakes"
	configFileType = "toml"

	// Config keys.
	cfgKeyLogLevel           = "log_level"
	cfgKeyLogPath            = "log_path"
	cfgKeyLocale             = "locale"
	cfgKeyStoreDriver        = "store.driver"
	cfgKeyStorePath          = "store.path"
	cfgKeyStoreKey           = "store.key"
	cfgKeyWindowWidth        = "window.width"
	cfgKeyWindowHeight       = "window.height"
	cfgKeyWindowBorderless   = "window.borderless"
	cfgKeyTransitionStyle    = "transition.style"
	cfgKeyTransitionDuration = "transition.duration"
	cfgKeyTransitionEasing   = "transition.easing"
	cfgKeyInputDevice        = "input.device"
	cfgKeyThemeAccent        = "theme.accent"
)

// Store drivers.
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)

// Transition styles.
const (
	StyleSlide = "slide"
	StyleFade  = "fade"
	StyleNone  = "none"
)

var (
	ErrInvalidDriver   = errors.New("invalid store driver")
	ErrEmptyStoreKey   = errors.New("store key is empty")
	ErrInvalidStyle    = errors.New("invalid transition style")
	ErrInvalidDuration = errors.New("transition duration is negative")
)

// Config is the demo configuration.
type Config struct {
	LogLevel   string           `mapstructure:"log_level"`
	LogPath    string           `mapstructure:"log_path"`
	Locale     string           `mapstructure:"locale"`
	Store      StoreConfig      `mapstructure:"store"`
	Window     WindowConfig     `mapstructure:"window"`
	Transition TransitionConfig `mapstructure:"transition"`
	Input      InputConfig      `mapstructure:"input"`
	Theme      ThemeConfig      `mapstructure:"theme"`
}

type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	// Path is the database or TOML file. Empty means a file under the
	// user config directory.
	Path string `mapstructure:"path"`
	Key  string `mapstructure:"key"`
}

type WindowConfig struct {
	Width      int32 `mapstructure:"width"`
	Height     int32 `mapstructure:"height"`
	Borderless bool  `mapstructure:"borderless"`
}

type TransitionConfig struct {
	Style    string        `mapstructure:"style"`
	Duration time.Duration `mapstructure:"duration"`
	Easing   string        `mapstructure:"easing"`
}

type InputConfig struct {
	// Device is an evdev path such as /dev/input/event0. Empty disables
	// hardware buttons; the keyboard always works.
	Device string `mapstructure:"device"`
}

type ThemeConfig struct {
	// Accent replaces the theme accent color, as 0xRRGGBB. Zero keeps the default.
	Accent uint32 `mapstructure:"accent"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetDefault(cfgKeyLogPath, "")
	v.SetDefault(cfgKeyLocale, "en")
	v.SetDefault(cfgKeyStoreDriver, DriverSQLite)
	v.SetDefault(cfgKeyStorePath, "")
	v.SetDefault(cfgKeyStoreKey, constants.DefaultStateKey)
	v.SetDefault(cfgKeyWindowWidth, 1024)
	v.SetDefault(cfgKeyWindowHeight, 768)
	v.SetDefault(cfgKeyWindowBorderless, false)
	v.SetDefault(cfgKeyTransitionStyle, StyleSlide)
	v.SetDefault(cfgKeyTransitionDuration, constants.DefaultTransitionDuration)
	v.SetDefault(cfgKeyTransitionEasing, "out-cubic")
	v.SetDefault(cfgKeyInputDevice, "")
	v.SetDefault(cfgKeyThemeAccent, 0)
}

// LoadConfig reads configuration with viper. An explicit path must exist.
// Without one, pancakes.toml is looked up in the working directory and then
// in the user config directory, and a missing file is not an error.
// PANCAKES_* environment variables override file values, e.g.
// PANCAKES_STORE_DRIVER=memory.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, configFileName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values viper cannot check by type alone.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverSQLite, DriverFile, DriverMemory:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDriver, c.Store.Driver)
	}
	if c.Store.Key == "" {
		return ErrEmptyStoreKey
	}

	switch c.Transition.Style {
	case StyleSlide, StyleFade, StyleNone:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStyle, c.Transition.Style)
	}
	if c.Transition.Duration < 0 {
		return ErrInvalidDuration
	}
	return nil
}
