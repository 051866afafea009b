package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// ErrMissingToken is returned when no Discord bot token is configured.
var ErrMissingToken = errors.New("missing DISCORD_TOKEN")

const (
	DefaultConfigName = "craftbot"
	envPrefix         = "CRAFTBOT"
)

type DiscordConfig struct {
	Token         string `mapstructure:"token"`
	GuildID       string `mapstructure:"guild_id"`
	ApplicationID string `mapstructure:"application_id"`
}

type DockerConfig struct {
	Host        string        `mapstructure:"host"`
	Timeout     time.Duration `mapstructure:"timeout"`
	StopTimeout time.Duration `mapstructure:"stop_timeout"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type BotConfig struct {
	Discord DiscordConfig `mapstructure:"discord"`
	Docker  DockerConfig  `mapstructure:"docker"`
	Logging LoggingConfig `mapstructure:"logging"`
	HTTP    HTTPConfig    `mapstructure:"http"`
}

// Load reads the optional TOML config file and the environment. The file is looked up as
// <configName>.toml in configPath and the working directory; a missing file is not an error.
func Load(configName string, configPath string) (BotConfig, error) {
	var cfg BotConfig

	v := viper.New()
	if configName == "" {
		configName = DefaultConfigName
	}
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	v.SetConfigName(configName)
	v.SetConfigType("toml")

	v.SetDefault("docker.timeout", 30*time.Second)
	v.SetDefault("docker.stop_timeout", time.Duration(0))
	v.SetDefault("logging.level", "info")
	v.SetDefault("discord.guild_id", "")
	v.SetDefault("discord.application_id", "")
	v.SetDefault("docker.host", "")
	v.SetDefault("http.addr", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// well-known variables are read without the prefix
	for key, env := range map[string]string{
		"discord.token": "DISCORD_TOKEN",
		"logging.level": "LOG_LEVEL",
		"docker.host":   "DOCKER_HOST",
	} {
		if err := v.BindEnv(key, envPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return cfg, errors.Wrapf(err, "bind %s", env)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, errors.Wrap(err, "read config file")
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the settings the bot cannot start without.
func (c BotConfig) Validate() error {
	if strings.TrimSpace(c.Discord.Token) == "" {
		return ErrMissingToken
	}
	if c.Docker.Timeout <= 0 {
		return errors.Errorf("docker.timeout must be positive, got %s", c.Docker.Timeout)
	}
	if c.Docker.StopTimeout < 0 {
		return errors.Errorf("docker.stop_timeout must not be negative, got %s", c.Docker.StopTimeout)
	}
	if c.Docker.StopTimeout >= c.Docker.Timeout {
		return errors.Errorf("docker.timeout (%s) must exceed docker.stop_timeout (%s)", c.Docker.Timeout, c.Docker.StopTimeout)
	}
	return nil
}
