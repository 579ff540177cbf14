// Package config loads client settings from environment variables and an
// optional configuration file.
package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/dan-strohschein/linkar-go/client"
	"github.com/dan-strohschein/linkar-go/format"
	"github.com/dan-strohschein/linkar-go/protocol"
)

const (
	DefaultEnvPrefix = "LINKAR"

	DefaultHost      = "127.0.0.1"
	DefaultPort      = 11300
	DefaultLogLevel  = "INFO"
	DefaultTransport = "dump"
	DefaultProfile   = "default"
)

var DefaultConfig = Config{
	Host:      DefaultHost,
	Port:      DefaultPort,
	LogLevel:  DefaultLogLevel,
	Format:    format.XML,
	Transport: DefaultTransport,
	Profile:   DefaultProfile,
}

type Config struct {
	Host       string `json:"host,omitempty"        mapstructure:"host"`
	EntryPoint string `json:"entry_point,omitempty" mapstructure:"entry_point"`
	Port       int    `json:"port,omitempty"        mapstructure:"port"`
	Username   string `json:"username,omitempty"    mapstructure:"username"`
	Password   string `json:"-"                     mapstructure:"password"`
	Language   string `json:"language,omitempty"    mapstructure:"language"`
	FreeText   string `json:"free_text,omitempty"   mapstructure:"free_text"`

	// ReceiveTimeout in seconds applied to every call, 0 waits indefinitely.
	ReceiveTimeout int           `json:"receive_timeout,omitempty" mapstructure:"receive_timeout"`
	Format         format.Format `json:"format"                    mapstructure:"format"`
	CustomVars     string        `json:"custom_vars,omitempty"     mapstructure:"custom_vars"`

	LogLevel    string `json:"log_level,omitempty"     mapstructure:"log_level"`
	MaxInFlight int    `json:"max_in_flight,omitempty" mapstructure:"max_in_flight"`

	// Transport names a registered transport.
	Transport string `json:"transport,omitempty" mapstructure:"transport"`

	// Profile selects the keychain entry holding the password.
	Profile string `json:"profile,omitempty" mapstructure:"profile"`
}

var keys = []string{
	"host", "entry_point", "port", "username", "password", "language", "free_text",
	"receive_timeout", "format", "custom_vars", "log_level", "max_in_flight",
	"transport", "profile",
}

// Load reads configuration from the environment and, when path is not
// empty, from that file. Environment variables win over the file.
func Load(path string) (*Config, error) {
	return LoadFs(afero.NewOsFs(), path)
}

// LoadFs is Load reading the file from fs.
func LoadFs(fs afero.Fs, path string) (*Config, error) {
	v := viper.NewWithOptions(
		viper.KeyDelimiter("."),
		viper.EnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_")),
	)
	v.SetFs(fs)

	v.SetEnvPrefix(DefaultEnvPrefix)
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	v.SetDefault("host", DefaultConfig.Host)
	v.SetDefault("port", DefaultConfig.Port)
	v.SetDefault("log_level", DefaultConfig.LogLevel)
	v.SetDefault("format", DefaultConfig.Format.String())
	v.SetDefault("transport", DefaultConfig.Transport)
	v.SetDefault("profile", DefaultConfig.Profile)
	v.SetDefault("receive_timeout", 0)
	v.SetDefault("max_in_flight", 0)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	// Load configuration into struct
	decodeHooks := mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)

	config := &Config{}
	if err := v.Unmarshal(config, viper.DecodeHook(decodeHooks)); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return config, nil
}

// Credential builds the credential described by the configuration.
func (c *Config) Credential() protocol.Credential {
	cred := protocol.NewCredential(c.Host, c.EntryPoint, c.Port, c.Username, c.Password)
	cred.Language = c.Language
	cred.FreeText = c.FreeText
	return cred
}

// ClientOptions returns client options for this configuration. A nil
// logger gets the default logger at LogLevel.
func (c *Config) ClientOptions(logger client.Logger) client.ClientOptions {
	opts := client.DefaultOptions()
	opts.LogLevel = c.LogLevel
	opts.MaxInFlight = c.MaxInFlight
	opts.Logger = logger
	return opts
}
