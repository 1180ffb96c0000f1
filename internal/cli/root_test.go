package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	t.Parallel()

	root := NewRootCmd("1.0.0", "abc123", "2024-01-01")

	want := []string{"init", "push", "pull", "update", "status", "token", "version"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, "command %s not registered", name)
		require.Equal(t, name, cmd.Name())
	}
}

func TestRootCommandShowsHelp(t *testing.T) {
	t.Parallel()

	root := NewRootCmd("1.0.0", "abc123", "2024-01-01")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "v1.0.0")
	require.Contains(t, out.String(), "Available Commands")
}

func TestPushCommandFlags(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"push", "update"} {
		cmd, _, err := NewRootCmd("1.0.0", "", "").Find([]string{name})
		require.NoError(t, err)
		require.NotNil(t, cmd.Flags().Lookup("message"), "%s needs --message", name)
		require.NotNil(t, cmd.Flags().Lookup("yes"), "%s needs --yes", name)
		require.NotNil(t, cmd.Flags().ShorthandLookup("m"))
		require.NotNil(t, cmd.Flags().ShorthandLookup("y"))
	}
}

func TestInitCommandFlags(t *testing.T) {
	t.Parallel()

	cmd, _, err := NewRootCmd("1.0.0", "", "").Find([]string{"init"})
	require.NoError(t, err)
	for _, flag := range []string{"vault", "repo", "use-existing", "no-interactive"} {
		require.NotNil(t, cmd.Flags().Lookup(flag), "init needs --%s", flag)
	}
}
