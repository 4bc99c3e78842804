package env_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arctize/dnfy/env"
)

func TestNewGoEnv(t *testing.T) {
	t.Run("production", func(t *testing.T) {
		t.Setenv("GO_MODE", "production")

		goEnv, err := env.NewGoEnv()
		require.NoError(t, err)
		assert.True(t, goEnv.IsProductionMode())
		assert.False(t, goEnv.IsDevelopmentMode())
	})

	t.Run("development", func(t *testing.T) {
		t.Setenv("GO_MODE", "development")

		goEnv, err := env.NewGoEnv()
		require.NoError(t, err)
		assert.True(t, goEnv.IsDevelopmentMode())
		assert.False(t, goEnv.IsProductionMode())
	})

	t.Run("debug", func(t *testing.T) {
		t.Setenv("GO_MODE", "debug")

		goEnv, err := env.NewGoEnv()
		require.NoError(t, err)
		assert.True(t, goEnv.IsDebugMode())
	})

	t.Run("unset counts as production", func(t *testing.T) {
		// Setenv registers the restore; the variable itself goes away.
		t.Setenv("GO_MODE", "")
		require.NoError(t, os.Unsetenv("GO_MODE"))

		goEnv, err := env.NewGoEnv()
		require.NoError(t, err)
		assert.True(t, goEnv.IsProductionMode())
	})

	t.Run("unknown mode is rejected", func(t *testing.T) {
		t.Setenv("GO_MODE", "staging")

		_, err := env.NewGoEnv()
		assert.Error(t, err)
	})
}

func TestExecuteIfModeIsProduction(t *testing.T) {
	t.Run("runs in production", func(t *testing.T) {
		t.Setenv("GO_MODE", "production")
		goEnv, err := env.NewGoEnv()
		require.NoError(t, err)

		ran := false
		goEnv.ExecuteIfModeIsProduction(func() { ran = true })
		assert.True(t, ran)
	})

	t.Run("skipped in development", func(t *testing.T) {
		t.Setenv("GO_MODE", "development")
		goEnv, err := env.NewGoEnv()
		require.NoError(t, err)

		ran := false
		goEnv.ExecuteIfModeIsProduction(func() { ran = true })
		assert.False(t, ran)
	})
}
