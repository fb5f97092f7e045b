package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	path := ""
	cmd := Config(&path)

	require.NotNil(t, cmd)
	assert.Equal(t, "config", cmd.Use)

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"show", "path"}, names)
}

func TestConfigShow_OutputFlag(t *testing.T) {
	path := ""
	cmd := configShow(&path)

	flag := cmd.Flags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "o", flag.Shorthand)
	assert.Equal(t, "toml", flag.DefValue)
}

func TestConfig_InheritsRootConfigFlag(t *testing.T) {
	root := Root()
	root.SetArgs([]string{"config", "path", "--config", "/tmp/does-not-matter.toml"})

	require.NoError(t, root.Execute())
}
