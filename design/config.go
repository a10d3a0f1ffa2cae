// This file contains all the code that directly uses the viper package.
package design

import "github.com/spf13/viper"

// EmitterConfig holds the tunable defaults the emitter and builder
// methods fall back to when a caller doesn't specify them explicitly:
// the default literal width/signedness used by Sig(int), the indent
// unit used by new Snippets, and whether Switch blocks default to the
// parallel_case/full_case synthesis pragmas.
type EmitterConfig struct {
	DefaultLiteralWidth  int
	DefaultLiteralSigned bool
	IndentUnit           string
	SwitchParallelCase   bool
	SwitchFullCase       bool
}

func defaultEmitterConfig() EmitterConfig {
	return EmitterConfig{
		DefaultLiteralWidth:  32,
		DefaultLiteralSigned: true,
		IndentUnit:           "  ",
		SwitchParallelCase:   false,
		SwitchFullCase:       false,
	}
}

// LoadEmitterConfig reads a TOML-formatted emitter configuration from a
// file called "chipgo" (without extension), looked up first in the
// current directory and then in configDirs, under the "emitter" key. It
// returns the default configuration, unmodified, if no config file is
// found.
func LoadEmitterConfig(configDirs ...string) (EmitterConfig, error) {
	cfg := defaultEmitterConfig()

	v := viper.New()
	v.SetConfigName("chipgo")
	v.AddConfigPath(".")
	for _, dir := range configDirs {
		v.AddConfigPath(dir)
	}
	v.SetDefault("emitter.defaultliteralwidth", cfg.DefaultLiteralWidth)
	v.SetDefault("emitter.defaultliteralsigned", cfg.DefaultLiteralSigned)
	v.SetDefault("emitter.indentunit", cfg.IndentUnit)
	v.SetDefault("emitter.switchparallelcase", cfg.SwitchParallelCase)
	v.SetDefault("emitter.switchfullcase", cfg.SwitchFullCase)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			return cfg, nil
		}
		return cfg, err
	}

	if err := v.UnmarshalKey("emitter", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
