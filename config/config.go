// Package config wires viper to lifo's defaults, environment and toml file.
package config

import (
	"errors"
	"strings"

	"github.com/lifo-cli/lifo/constant"
	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps configuration keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and environment bindings, then reads lifo.toml if present.
func Setup() error {
	viper.SetConfigName(constant.Lifo)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Lifo)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}
