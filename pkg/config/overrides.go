package config

import (
	"github.com/spf13/viper"
)

// Viper keys understood by ApplyOverrides. The CLI binds its persistent flags
// to these keys and viper adds MOONIFY_* environment variables.
const (
	KeyLatitude  = "lat"
	KeyLongitude = "lon"
	KeyTimezone  = "tz"
	KeyDebug     = "debug"
	KeyLogFile   = "log-file"
	KeyStep      = "step"
)

// ApplyOverrides copies every key that is explicitly set in v (flag or
// environment) over the file configuration.
func ApplyOverrides(cfg *ConfigData, v *viper.Viper) {
	if v == nil {
		return
	}
	if v.IsSet(KeyLatitude) {
		cfg.Location.Latitude = v.GetFloat64(KeyLatitude)
	}
	if v.IsSet(KeyLongitude) {
		cfg.Location.Longitude = v.GetFloat64(KeyLongitude)
	}
	if v.IsSet(KeyTimezone) {
		cfg.Location.Timezone = v.GetString(KeyTimezone)
	}
	if v.IsSet(KeyDebug) {
		cfg.Logging.Debug = v.GetBool(KeyDebug)
	}
	if v.IsSet(KeyLogFile) {
		cfg.Logging.File = v.GetString(KeyLogFile)
	}
	if v.IsSet(KeyStep) {
		cfg.Sampling.StepMinutes = v.GetInt(KeyStep)
	}
}

// Load reads provider, applies v's overrides and validates the result.
func Load(provider ConfigProvider, v *viper.Viper) (*ConfigData, error) {
	cfg, err := provider.LoadConfig()
	if err != nil {
		return nil, err
	}
	ApplyOverrides(cfg, v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
