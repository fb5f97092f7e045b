package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "cytraco", cmd.Use)
	assert.Equal(t, "Set up FTP and pair a BLE cycling trainer", cmd.Short)
	assert.True(t, cmd.SilenceErrors)
	assert.True(t, cmd.SilenceUsage)
}

func TestRoot_HasSubcommands(t *testing.T) {
	cmd := Root()

	expectedSubcommands := []string{"config", "version", "completion"}

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}

	for _, expected := range expectedSubcommands {
		assert.True(t, subcommands[expected], "Expected subcommand %s not found", expected)
	}
	assert.Len(t, cmd.Commands(), 3)
}

func TestRoot_Flags(t *testing.T) {
	cmd := Root()

	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{name: "demo", defValue: "false"},
		{name: "scan-timeout", defValue: (10 * time.Second).String()},
		{name: "connect-timeout", defValue: (10 * time.Second).String()},
		{name: "log-level", defValue: "warn"},
		{name: "log-format", defValue: "text"},
		{name: "metrics-textfile", defValue: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.defValue, flag.DefValue)
		})
	}

	config := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, config)
	assert.Equal(t, "c", config.Shorthand)
	assert.Empty(t, config.DefValue)
}

func TestRoot_RejectsArguments(t *testing.T) {
	cmd := Root()
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.Execute())
}
