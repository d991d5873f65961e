package command_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/lisplet/cmd/lispletc/internal/command"
	"github.com/vcrobe/lisplet/cmd/lispletc/internal/view"
	"github.com/vcrobe/lisplet/tags"
)

func TestTagsCommandListsRegistry(t *testing.T) {
	buf := new(bytes.Buffer)
	cli := command.NewCLI(view.ViewHuman, buf, view.LogLevelSilent)

	cmd := command.NewTagsCommand(cli)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Tag")
	assert.Contains(t, out, "div")
	assert.Contains(t, out, "%text")
	assert.Contains(t, out, "pseudo")
	assert.Contains(t, out, fmt.Sprintf("%d tags", tags.Count()))
}

func TestVersionCommand(t *testing.T) {
	buf := new(bytes.Buffer)
	cli := command.NewCLI(view.ViewHuman, buf, view.LogLevelSilent)

	cmd := command.NewVersionCommand(cli)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "lispletc version")
}
