package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"forumcfg/internal/structures"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("output.format", "json")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)

	v.BindEnv("logger.level", "FORUMCFG_LOG_LEVEL")
	v.BindEnv("forum.sudo", "FORUMCFG_SUDO")
	v.BindEnv("input.path", "FORUMCFG_INPUT")
	v.BindEnv("output.path", "FORUMCFG_OUTPUT")
	v.BindEnv("output.format", "FORUMCFG_OUTPUT_FORMAT")
	v.BindEnv("metrics.enabled", "FORUMCFG_METRICS_ENABLED")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	applyFlags(&conf, flags)

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "ForumConfigAdapter"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode
	if conf.Debug {
		conf.Logger.Level = "debug"
	}

	return &conf, nil
}

func applyFlags(conf *structures.Config, flags *structures.CliFlags) {
	if flags.Sudo != "" {
		conf.Forum.Sudo = flags.Sudo
	}
	if flags.Input != "" {
		conf.Input.Path = flags.Input
	}
	if flags.Output != "" {
		conf.Output.Path = flags.Output
	}
	if flags.Format != "" {
		conf.Output.Format = flags.Format
	}
}
