package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tungetti/pjatext/internal/command"
	"github.com/tungetti/pjatext/internal/errors"
	"github.com/tungetti/pjatext/internal/instruction"
	testutil "github.com/tungetti/pjatext/internal/testing"
)

func validate(cmd command.Command, tokens []string, position int, ops *command.Operations) command.Output {
	inst := instruction.Build(tokens)
	flag, _ := inst.FlagAt(position)
	return cmd.Validate(flag, inst, ops)
}

func TestSourceFile(t *testing.T) {
	fs := testutil.NewMockFileSystem().WithFile("notes.txt", "tac dog")
	cmd := NewSourceFile(fs)

	assert.Equal(t, "-f", cmd.Caller())
	assert.Equal(t, "--file", cmd.Alias())
	assert.NotEmpty(t, cmd.Description())

	t.Run("binds source", func(t *testing.T) {
		ops := command.NewOperations()
		out := validate(cmd, []string{"-f", "notes.txt"}, 0, ops)

		testutil.AssertOutputOk(t, out, "")
		assert.Equal(t, "notes.txt", ops.InputPath)
		assert.Equal(t, "tac dog", ops.Source)
	})

	t.Run("missing argument", func(t *testing.T) {
		ops := command.NewOperations()
		out := validate(cmd, []string{"-f", "-w"}, 0, ops)

		testutil.AssertOutputErr(t, out, errors.Argument, MsgArgumentRequired)
		assert.False(t, ops.HasSource())
	})

	t.Run("missing file", func(t *testing.T) {
		ops := command.NewOperations()
		out := validate(cmd, []string{"--file", "absent.txt"}, 0, ops)

		testutil.AssertOutputErr(t, out, errors.Resource, MsgFileNotFound)
		assert.Empty(t, ops.Source)
	})

	t.Run("execute reports nothing", func(t *testing.T) {
		out := cmd.Execute(&instruction.Flag{Name: "-f"}, command.NewOperations())
		assert.False(t, out.HasMessage())
	})
}

func TestOutputFile(t *testing.T) {
	cmd := NewOutputFile()

	ops := command.NewOperations()
	out := validate(cmd, []string{"-o", "report.txt"}, 0, ops)
	testutil.AssertOutputOk(t, out, "")
	assert.Equal(t, "report.txt", ops.OutputPath)

	ops = command.NewOperations()
	out = validate(cmd, []string{"--output"}, 0, ops)
	testutil.AssertOutputErr(t, out, errors.Argument, MsgArgumentRequired)
	assert.False(t, ops.HasOutput())
}

func TestInputFileIsInert(t *testing.T) {
	cmd := NewInputFile()
	ops := command.NewOperations()

	assert.Equal(t, "-i", cmd.Caller())
	assert.Equal(t, "--input", cmd.Alias())
	assert.True(t, validate(cmd, []string{"-i", "cmds.txt"}, 0, ops).IsOk())
	assert.False(t, cmd.Execute(&instruction.Flag{}, ops).HasMessage())
	assert.Equal(t, command.Operations{}, *ops)
}

func TestCommandSets(t *testing.T) {
	fs := testutil.NewMockFileSystem()

	base := Base(fs)
	assert.Len(t, base, 3)
	assert.Equal(t, "-f", base[0].Caller())
	assert.Equal(t, "-i", base[1].Caller())
	assert.Equal(t, "-o", base[2].Caller())

	seen := map[string]bool{}
	for _, cmd := range append(base, Operational(fs)...) {
		assert.False(t, seen[cmd.Caller()], "duplicate caller %s", cmd.Caller())
		assert.False(t, seen[cmd.Alias()], "duplicate alias %s", cmd.Alias())
		seen[cmd.Caller()] = true
		seen[cmd.Alias()] = true
		assert.NotEmpty(t, command.DescriptionOf(cmd), "%s has no description", cmd.Caller())
	}
	assert.Len(t, Operational(fs), 11)
}
