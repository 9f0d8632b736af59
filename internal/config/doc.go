// Package config resolves the triegraph CLI's runtime configuration from
// layered sources (flags, environment, YAML file, builtin defaults) via
// Viper.
package config
