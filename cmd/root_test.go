package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"serve", "research", "migrate", "token"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "aigos", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}

func TestResearchCommand_Flags(t *testing.T) {
	format := researchCmd.Flags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "json", format.DefValue)

	require.NotNil(t, researchCmd.Flags().Lookup("linkedin"))
	assert.Error(t, researchCmd.Args(researchCmd, nil))
	assert.NoError(t, researchCmd.Args(researchCmd, []string{"acme.io"}))
}

func TestTokenCommand_Flags(t *testing.T) {
	ttl := tokenCmd.Flags().Lookup("ttl")
	require.NotNil(t, ttl)
	assert.Equal(t, "24h0m0s", ttl.DefValue)
}
