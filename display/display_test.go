package display

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCmd() (*cobra.Command, *cobra.Command) {
	root := &cobra.Command{Use: "root"}
	root.PersistentFlags().Bool("json", false, "")
	child := &cobra.Command{Use: "child", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(child)
	return root, child
}

func TestShouldOutputJSON(t *testing.T) {
	t.Setenv(envJSON, "")

	assert.False(t, ShouldOutputJSON(nil))

	root, child := newCmd()
	assert.False(t, ShouldOutputJSON(child))

	require.NoError(t, root.PersistentFlags().Set("json", "true"))
	assert.True(t, ShouldOutputJSON(child))
}

func TestShouldOutputJSON_LocalFlagWins(t *testing.T) {
	t.Setenv(envJSON, "true")

	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().Bool("json", false, "")
	require.NoError(t, cmd.Flags().Set("json", "false"))
	assert.False(t, ShouldOutputJSON(cmd))
}

func TestShouldOutputJSON_Env(t *testing.T) {
	t.Setenv(envJSON, "1")
	assert.True(t, ShouldOutputJSON(nil))

	_, child := newCmd()
	assert.True(t, ShouldOutputJSON(child))

	t.Setenv(envJSON, "nope")
	assert.False(t, ShouldOutputJSON(nil))
}

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputJSON(&buf, map[string]float64{"E Major": 0.5}))
	assert.Equal(t, "{\n  \"E Major\": 0.5\n}\n", buf.String())

	assert.Error(t, OutputJSON(&buf, make(chan int)))
}
