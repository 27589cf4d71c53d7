package app

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestCreateApp(t *testing.T) {
	t.Setenv("TOKENS", "test-token-123")
	t.Setenv("TELEGRAM_ENABLE_BOT", "false")

	// Validate fx dependency graph
	require.NoError(t, fx.ValidateApp(CreateApp()))
}
