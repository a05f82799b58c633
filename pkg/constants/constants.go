// Package constants holds application-wide naming constants shared between
// config loading and the CLI.
package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"
	EnvPrefix    = "JUNIPER"

	ServiceName = "juniper_backend"
)
