// Package config is used to load the configuration file
package config

import (
	"fmt"
	"strings"

	"github.com/blacktop/wslcam/internal/utils"
	"github.com/blacktop/wslcam/pkg/photo"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Keys of the configuration values.
const (
	KeyAllowInstallations  = "allow-installations"
	KeyOutputFormat        = "output-format"
	KeyDeleteAfterTransfer = "delete-after-transfer"
	KeyKnownNames          = "known-names"
	KeyDistro              = "distro"
	KeyDestination         = "destination"
	KeyNotify              = "notify"
	KeyPreserveTimes       = "preserve-times"
	KeyAutoOrient          = "auto-orient"
	KeyJPEGQuality         = "jpeg-quality"
)

// DefaultKnownNames are device name fragments of cameras gphoto2 can talk to.
var DefaultKnownNames = []string{
	"USB DIGITAL STILL CAMERA",
}

// Config is the configuration struct
type Config struct {
	// AllowInstallations installs gphoto2 in the guest when it is missing.
	AllowInstallations bool `mapstructure:"allow-installations"`
	// OutputFormat is the extension photos are converted to.
	OutputFormat string `mapstructure:"output-format"`
	// DeleteAfterTransfer deletes the photos from the camera once converted.
	DeleteAfterTransfer bool `mapstructure:"delete-after-transfer"`
	// KnownNames are matched against the DEVICE column to find the camera.
	KnownNames []string `mapstructure:"known-names"`
	// Distro is the WSL distribution to use; empty is the default one.
	Distro string `mapstructure:"distro"`
	// Destination skips the destination prompt when set.
	Destination string `mapstructure:"destination"`

	Notify        bool `mapstructure:"notify"`
	PreserveTimes bool `mapstructure:"preserve-times"`
	AutoOrient    bool `mapstructure:"auto-orient"`
	JPEGQuality   int  `mapstructure:"jpeg-quality"`
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAllowInstallations, true)
	v.SetDefault(KeyOutputFormat, "png")
	v.SetDefault(KeyDeleteAfterTransfer, false)
	v.SetDefault(KeyKnownNames, DefaultKnownNames)
	v.SetDefault(KeyDistro, "")
	v.SetDefault(KeyDestination, "")
	v.SetDefault(KeyNotify, false)
	v.SetDefault(KeyPreserveTimes, false)
	v.SetDefault(KeyAutoOrient, false)
	v.SetDefault(KeyJPEGQuality, photo.DefaultQuality)
}

func (c *Config) verify() error {
	c.OutputFormat = photo.NormalizeFormat(c.OutputFormat)
	if !photo.Supported(c.OutputFormat) {
		return fmt.Errorf("unsupported output format %q (supported: jpg, png, gif, tif, bmp)", c.OutputFormat)
	}

	var names []string
	for _, name := range c.KnownNames {
		names = append(names, strings.TrimSpace(name))
	}
	c.KnownNames = utils.Unique(names)
	if len(c.KnownNames) == 0 {
		return fmt.Errorf("at least one known camera name is required")
	}

	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality must be between 1 and 100, got %d", c.JPEGQuality)
	}

	return nil
}

// PhotoOptions returns the conversion options described by the config.
func (c *Config) PhotoOptions() photo.Options {
	return photo.Options{
		Format:        c.OutputFormat,
		Quality:       c.JPEGQuality,
		AutoOrient:    c.AutoOrient,
		PreserveTimes: c.PreserveTimes,
	}
}

// LoadConfig loads the configuration from the global viper instance
func LoadConfig() (*Config, error) {
	return Load(viper.GetViper())
}

// Load loads the configuration from v
func Load(v *viper.Viper) (*Config, error) {
	var c Config

	// known-names arrives as "a,b" from env vars and flags
	if err := v.Unmarshal(&c, viper.DecodeHook(mapstructure.StringToSliceHookFunc(","))); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %v", err)
	}

	if err := c.verify(); err != nil {
		return nil, fmt.Errorf("config: failed to verify: %v", err)
	}

	return &c, nil
}
