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

	for _, name := range []string{"clean", "terms"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "basename", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestCleanCommand_Flags(t *testing.T) {
	for _, name := range []string{"prefix", "middle", "suffix", "concurrency"} {
		require.NotNil(t, cleanCmd.Flags().Lookup(name), "clean command should have --%s flag", name)
	}
	assert.Equal(t, "true", cleanCmd.Flags().Lookup("suffix").DefValue)
	assert.Equal(t, "4", cleanCmd.Flags().Lookup("concurrency").DefValue)
}

func TestTermsCommand_Flags(t *testing.T) {
	require.NotNil(t, termsCmd.Flags().Lookup("count"))
}
