package internal

import (
	"os"
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	for _, key := range []string{"CHAT_SERVER_HOST", "CHAT_HTTP_TIMEOUT", "LOG_LEVEL", "CHAT_COLOURS", "CHAT_CENSORED_WORDS", "CHAT_CENSOR_CHARACTER"} {
		// Setenv restores the original value once the test is done
		t.Setenv(key, "")
		req.NoError(os.Unsetenv(key))
	}

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)

	req.NoError(err)
	req.NoError(config.Validate())
	req.Equal("http://localhost:8080", config.ServerHost)
	req.Equal(10*time.Second, config.HTTPTimeout)
	req.Equal("INFO", config.LogLevel)
	req.True(config.Colours)
	req.Empty(config.CensoredWordList())
}

func TestConfig_From_Environment(t *testing.T) {
	req := require.New(t)
	t.Setenv("CHAT_SERVER_HOST", "http://chat.example.com:9000")
	t.Setenv("CHAT_HTTP_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CHAT_COLOURS", "false")
	t.Setenv("CHAT_CENSORED_WORDS", " badger, snake,,badger ")
	t.Setenv("CHAT_CENSOR_CHARACTER", "#")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)

	req.NoError(err)
	req.NoError(config.Validate())
	req.Equal("http://chat.example.com:9000", config.ServerHost)
	req.Equal(2*time.Second, config.HTTPTimeout)
	req.False(config.Colours)
	req.Equal([]string{"badger", "snake"}, config.CensoredWordList())
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{ServerHost: "http://localhost:8080", HTTPTimeout: time.Second, LogLevel: "INFO", CensorCharacter: "*"}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "Host is not a URL", mutate: func(c *Config) { c.ServerHost = "localhost" }},
		{name: "Zero timeout", mutate: func(c *Config) { c.HTTPTimeout = 0 }},
		{name: "Censor character too long", mutate: func(c *Config) { c.CensorCharacter = "**" }},
		{name: "Censor character empty", mutate: func(c *Config) { c.CensorCharacter = "" }},
	}

	require.NoError(t, valid.Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid
			tt.mutate(&config)
			require.Error(t, config.Validate())
		})
	}
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)

	r, err := CharacterRune("€")
	req.NoError(err)
	req.Equal('€', r)

	_, err = CharacterRune("ab")
	req.Error(err)
}
