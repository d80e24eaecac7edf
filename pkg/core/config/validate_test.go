package config

import (
	"strings"
	"testing"
	"time"

	cderror "github.com/msto63/clipdash/foundation/core/error"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"negative timeout", func(c *Config) { c.General.StatusTimeout.Duration = -time.Second }, "general.status_timeout"},
		{"temp ext without dot", func(c *Config) { c.Tools.TempExt = "txt" }, "tools.temp_ext"},
		{"blank diff app", func(c *Config) { c.Tools.DiffApp = " " }, "tools.diff_app"},
		{"unknown modifier ignored when disabled", func(c *Config) { c.Hotkey.Modifiers = []string{"hyper"} }, ""},
		{"unknown modifier", func(c *Config) {
			c.Hotkey.Enabled = true
			c.Hotkey.Modifiers = []string{"ctrl", "hyper"}
		}, "hotkey.modifiers"},
		{"zero crop length", func(c *Config) { c.Buffers.CropLength = 0 }, "buffers.crop_length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v; want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil; want error about %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v; want mention of %s", err, tt.wantErr)
			}
			if !cderror.HasCode(err, cderror.CodeConfigError) {
				t.Errorf("Validate() code = %v; want %v", cderror.GetCode(err), cderror.CodeConfigError)
			}
		})
	}
}
