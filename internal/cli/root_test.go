package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandMetadata(t *testing.T) {
	assert.Equal(t, "vigil", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestRootCommandHasConfigFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag, "root command should have --config flag")
	assert.Equal(t, "string", flag.Value.Type())
}

func TestAllCommandsRegistered(t *testing.T) {
	want := []string{"watch", "check", "init", "version", "completion"}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range want {
		assert.True(t, registered[name], "command %q should be registered", name)
	}
}

func TestCheckCommandFlags(t *testing.T) {
	require.NotNil(t, checkCmd.Flags().Lookup("json"))
	require.NotNil(t, checkCmd.Flags().Lookup("url"))
}

func TestInitCommandFlags(t *testing.T) {
	require.NotNil(t, initCmd.Flags().Lookup("url"))

	force := initCmd.Flags().Lookup("force")
	require.NotNil(t, force)
	assert.Equal(t, "f", force.Shorthand)
}

func TestCompletionCommandValidArgs(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{"bash", "zsh", "fish", "powershell"},
		completionCmd.ValidArgs)
}
