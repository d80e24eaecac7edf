package config

import (
	cderror "github.com/msto63/clipdash/foundation/core/error"
	"github.com/msto63/clipdash/foundation/core/validation"
)

var (
	logLevels       = []string{"trace", "debug", "info", "warn", "warning", "error"}
	logFormats      = []string{"json", "text"}
	hotkeyModifiers = []string{"ctrl", "shift", "alt", "super"}
)

// Validate checks the values applyDefaults cannot repair
func (c *Config) Validate() error {
	chain := validation.NewValidatorChain("config").
		AddFunc(func(v interface{}) validation.ValidationResult {
			cfg := v.(*Config)
			return validation.Combine(
				validation.Positive("buffers.crop_length", cfg.Buffers.CropLength),
				validation.Positive("buffers.words_for_file_naming", cfg.Buffers.WordsForFileNaming),
				validation.NotNegative("general.status_timeout", int64(cfg.General.StatusTimeout.Duration)),
			)
		}).
		AddFunc(func(v interface{}) validation.ValidationResult {
			cfg := v.(*Config)
			return validation.Combine(
				validation.Required("tools.view_app", cfg.Tools.ViewApp),
				validation.Required("tools.diff_app", cfg.Tools.DiffApp),
				validation.Prefix("tools.temp_ext", cfg.Tools.TempExt, "."),
			)
		}).
		AddFunc(func(v interface{}) validation.ValidationResult {
			cfg := v.(*Config)
			return validation.Combine(
				validation.OneOf("logging.level", cfg.Logging.Level, logLevels...),
				validation.OneOf("logging.format", cfg.Logging.Format, logFormats...),
			)
		}).
		AddFunc(func(v interface{}) validation.ValidationResult {
			cfg := v.(*Config)
			if !cfg.Hotkey.Enabled {
				return validation.NewValidationResult()
			}
			results := []validation.ValidationResult{validation.Required("hotkey.key", cfg.Hotkey.Key)}
			for _, m := range cfg.Hotkey.Modifiers {
				results = append(results, validation.OneOf("hotkey.modifiers", m, hotkeyModifiers...))
			}
			return validation.Combine(results...)
		})

	return chain.Validate(c).ToError(cderror.CodeConfigError, "config.validate")
}
