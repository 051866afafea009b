package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := Load("does-not-exist", t.TempDir())
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "secret")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CRAFTBOT_DOCKER_TIMEOUT", "45s")
	t.Setenv("CRAFTBOT_DISCORD_GUILD_ID", "1234")

	cfg, err := Load("does-not-exist", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Discord.Token)
	assert.Equal(t, "1234", cfg.Discord.GuildID)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 45*time.Second, cfg.Docker.Timeout)
	assert.Zero(t, cfg.Docker.StopTimeout)
	assert.Empty(t, cfg.HTTP.Addr)
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DOCKER_HOST", "")
	t.Setenv("LOG_LEVEL", "")
	dir := t.TempDir()
	content := `
[discord]
token = "from-file"

[docker]
host = "unix:///run/user/1000/docker.sock"
stop_timeout = "20s"

[http]
addr = ":9090"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bot.toml"), []byte(content), 0o600))

	cfg, err := Load("bot", dir)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Discord.Token)
	assert.Equal(t, "unix:///run/user/1000/docker.sock", cfg.Docker.Host)
	assert.Equal(t, 20*time.Second, cfg.Docker.StopTimeout)
	assert.Equal(t, 30*time.Second, cfg.Docker.Timeout)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bot.toml"), []byte("[discord]\ntoken = \"from-file\"\n"), 0o600))
	t.Setenv("DISCORD_TOKEN", "from-env")

	cfg, err := Load("bot", dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Discord.Token)
}

func TestValidate(t *testing.T) {
	valid := BotConfig{
		Discord: DiscordConfig{Token: "t"},
		Docker:  DockerConfig{Timeout: time.Second},
	}
	assert.NoError(t, valid.Validate())

	blank := valid
	blank.Discord.Token = "   "
	assert.ErrorIs(t, blank.Validate(), ErrMissingToken)

	noTimeout := valid
	noTimeout.Docker.Timeout = 0
	assert.Error(t, noTimeout.Validate())

	slowStop := valid
	slowStop.Docker.StopTimeout = 2 * time.Second
	assert.Error(t, slowStop.Validate())
}
