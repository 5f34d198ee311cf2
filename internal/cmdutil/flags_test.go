package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageFlags_AddTo(t *testing.T) {
	var f ImageFlags
	cmd := &cobra.Command{Use: "test"}
	f.AddTo(cmd)

	flag := cmd.Flags().Lookup("image")
	require.NotNil(t, flag)
	assert.Equal(t, "i", flag.Shorthand)
	assert.Equal(t, "", flag.DefValue)
}

func TestPriorityFlags_AddTo(t *testing.T) {
	var f PriorityFlags
	cmd := &cobra.Command{Use: "test"}
	f.AddTo(cmd, 30)

	flag := cmd.Flags().Lookup("priority")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "30", flag.DefValue)

	require.NoError(t, cmd.Flags().Parse([]string{"-p", "5"}))
	assert.Equal(t, 5, f.Priority)
}

func TestFeatureFlags_AddTo(t *testing.T) {
	var f FeatureFlags
	cmd := &cobra.Command{Use: "test"}
	f.AddTo(cmd)

	for _, name := range []string{"add-fix", "add-init", "add-shutdown", "add-log", "add-finish", "add-health"} {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, "false", flag.DefValue)
	}

	require.NoError(t, cmd.Flags().Parse([]string{"--add-fix", "--add-log"}))
	assert.True(t, f.AddFix)
	assert.True(t, f.AddLog)
	assert.False(t, f.AddInit)
	assert.True(t, f.Prioritized())
}

func TestEventFlags_Hooks(t *testing.T) {
	var f EventFlags
	cmd := &cobra.Command{Use: "test"}
	f.AddTo(cmd)

	assert.Empty(t, f.Hooks())

	require.NoError(t, cmd.Flags().Parse([]string{"--post-shutdown", "--init"}))
	assert.Equal(t, []string{"init", "post-shutdown"}, f.Hooks())
}
