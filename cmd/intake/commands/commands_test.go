package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "intake", cmd.Use)
	assert.True(t, cmd.SilenceUsage)

	for _, name := range []string{"config", "log-level", "log-format", "metrics-file"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRoot_HasSubcommands(t *testing.T) {
	cmd := Root()

	expected := []string{"new", "submit", "validate", "version", "completion"}
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, name := range expected {
		assert.Contains(t, names, name)
	}
}

func TestNew_Flags(t *testing.T) {
	cmd := New()

	flag := cmd.Flags().Lookup("renderer")
	require.NotNil(t, flag)
	assert.Equal(t, "r", flag.Shorthand)
	assert.Equal(t, "tui", flag.DefValue)

	flag = cmd.Flags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "o", flag.Shorthand)
	assert.Equal(t, "text", flag.DefValue)

	assert.Contains(t, cmd.Long, "Payment information (mock")
}

func TestSubmit_RequiresFile(t *testing.T) {
	root := Root()
	root.SetArgs([]string{"submit"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "file" not set`)
}

func TestValidate_Flags(t *testing.T) {
	cmd := Validate()

	flag := cmd.Flags().Lookup("step")
	require.NotNil(t, flag)
	assert.Equal(t, "1", flag.DefValue)
	assert.NotNil(t, cmd.Flags().Lookup("set"))
	assert.NotEmpty(t, cmd.Example)
}

func TestVersion_Output(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer SetVersionInfo(origVersion, origCommit, origDate)

	SetVersionInfo("1.2.3", "abc123", "2025-01-01")

	var out bytes.Buffer
	cmd := Version()
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "intake 1.2.3")
	assert.Contains(t, out.String(), "commit: abc123")
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			var out bytes.Buffer
			root := Root()
			root.SetOut(&out)
			root.SetArgs([]string{"completion", shell})

			require.NoError(t, root.Execute())
			assert.Contains(t, out.String(), "intake")
		})
	}
}

func TestCompletion_InvalidShell(t *testing.T) {
	root := Root()
	root.SetArgs([]string{"completion", "tcsh"})
	root.SetErr(&bytes.Buffer{})

	assert.Error(t, root.Execute())
}
