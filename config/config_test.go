package config_test

import (
	"chainlearn/config"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigTokenTTL(t *testing.T) {
	t.Setenv("TOKEN_TTL_HOURS", "6")
	config.LoadConfig()
	require.Equal(t, 6, config.AppConfig.TokenTTLHours)
}

func TestLoadConfigTokenTTLDefault(t *testing.T) {
	t.Setenv("TOKEN_TTL_HOURS", "")
	config.LoadConfig()
	require.Equal(t, 24, config.AppConfig.TokenTTLHours)
}

func TestLoadConfigTokenTTLInvalid(t *testing.T) {
	t.Setenv("TOKEN_TTL_HOURS", "six")
	config.LoadConfig()
	require.Equal(t, 24, config.AppConfig.TokenTTLHours)
}
