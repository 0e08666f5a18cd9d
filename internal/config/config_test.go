package config

import (
	"reflect"
	"testing"

	"github.com/spf13/viper"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(newViper(nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !c.AllowInstallations {
		t.Error("AllowInstallations should default to true")
	}
	if c.OutputFormat != "png" {
		t.Errorf("OutputFormat = %q, want png", c.OutputFormat)
	}
	if c.DeleteAfterTransfer {
		t.Error("DeleteAfterTransfer should default to false")
	}
	if !reflect.DeepEqual(c.KnownNames, DefaultKnownNames) {
		t.Errorf("KnownNames = %v, want %v", c.KnownNames, DefaultKnownNames)
	}
	if c.JPEGQuality != 95 {
		t.Errorf("JPEGQuality = %d, want 95", c.JPEGQuality)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]any
		check   func(t *testing.T, c *Config)
		wantErr bool
	}{
		{
			name:   "format is normalized",
			values: map[string]any{KeyOutputFormat: ".JPG"},
			check: func(t *testing.T, c *Config) {
				if c.OutputFormat != "jpg" {
					t.Errorf("OutputFormat = %q, want jpg", c.OutputFormat)
				}
			},
		},
		{
			name:    "unsupported format",
			values:  map[string]any{KeyOutputFormat: "heic"},
			wantErr: true,
		},
		{
			name:   "comma separated names",
			values: map[string]any{KeyKnownNames: "Canon, Nikon,Canon"},
			check: func(t *testing.T, c *Config) {
				if want := []string{"Canon", "Nikon"}; !reflect.DeepEqual(c.KnownNames, want) {
					t.Errorf("KnownNames = %v, want %v", c.KnownNames, want)
				}
			},
		},
		{
			name:    "no names",
			values:  map[string]any{KeyKnownNames: []string{" ", ""}},
			wantErr: true,
		},
		{
			name:    "bad quality",
			values:  map[string]any{KeyJPEGQuality: 0},
			wantErr: true,
		},
		{
			name: "flags",
			values: map[string]any{
				KeyAllowInstallations:  false,
				KeyDeleteAfterTransfer: true,
				KeyDistro:              "Ubuntu",
			},
			check: func(t *testing.T, c *Config) {
				if c.AllowInstallations || !c.DeleteAfterTransfer || c.Distro != "Ubuntu" {
					t.Errorf("unexpected config %#v", c)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(newViper(tt.values))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, c)
			}
		})
	}
}

func TestPhotoOptions(t *testing.T) {
	c := &Config{OutputFormat: "jpg", JPEGQuality: 80, AutoOrient: true}
	opts := c.PhotoOptions()
	if opts.Format != "jpg" || opts.Quality != 80 || !opts.AutoOrient || opts.PreserveTimes {
		t.Errorf("PhotoOptions() = %#v", opts)
	}
}
