package providers

import (
	"fmt"
	"path/filepath"
	"strings"
	"wellsync/internal/structures"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	v := viper.New()
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("ini")

	v.SetDefault("logger.level", "info")

	v.BindEnv("logger.level", "WELLSYNC_LOG_LEVEL")
	v.BindEnv("logger.file", "WELLSYNC_LOG_FILE")
	v.BindEnv("general.sync_interval", "WELLSYNC_SYNC_INTERVAL")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "WellSync"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
