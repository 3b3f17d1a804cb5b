package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// LoadFromFile reads a TOML configuration file, unmarshals it into a
// StackConfig, runs struct-tag validation, then the domain-specific
// Validate() pass, and returns the resulting SharedConfig. Any failure is
// returned as an error; the caller (cmd/tetra-bluestation) is responsible
// for treating it as fatal at startup (spec.md §6, §7).
func LoadFromFile(path string) (SharedConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.SetDefault("stack_mode", string(ModeBs))
	v.SetDefault("phy_io.backend", string(PhyUndefined))
	v.SetDefault("cell.freq_band", DefaultCfgCellInfo().FreqBand)
	v.SetDefault("cell.main_carrier", DefaultCfgCellInfo().MainCarrier)
	v.SetDefault("cell.registration", true)
	v.SetDefault("cell.deregistration", true)

	if err := v.ReadInConfig(); err != nil {
		return SharedConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg StackConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return SharedConfig{}, fmt.Errorf("unmarshalling config %s: %w", path, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return SharedConfig{}, fmt.Errorf("validating config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return SharedConfig{}, fmt.Errorf("invalid stack configuration in %s: %w", path, err)
	}

	return NewSharedConfig(cfg), nil
}
