// Package engine runs one command line against the registered commands.
//
// A run parses the tokens into an instruction, optionally swaps it for the
// instruction stored in an input file, validates every flag in order and
// stops at the first failure, and finally executes the validated commands
// and renders their outputs into a report.
package engine

import (
	"fmt"

	"github.com/dustin/go-humanize"
	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/tungetti/pjatext/internal/command"
	"github.com/tungetti/pjatext/internal/commands"
	"github.com/tungetti/pjatext/internal/errors"
	"github.com/tungetti/pjatext/internal/fileio"
	"github.com/tungetti/pjatext/internal/instruction"
	"github.com/tungetti/pjatext/internal/logging"
)

// Engine-level report messages.
const (
	MsgInputNotAlone    = "Input file flag should be the only one!"
	MsgInputNoArgument  = "Input file flag requires an argument!"
	MsgInputInvalidFile = "Input file flag has invalid file as an argument!"
	MsgInvalidSource    = "Source file is invalid!"
	MsgInternalFailure  = "Command failed unexpectedly!"
)

// invalidFlag formats the report line for an unresolved flag name.
func invalidFlag(name string) string {
	return fmt.Sprintf("Invalid flag: [%s]", name)
}

// Engine dispatches instructions to registered commands.
// An Engine holds no per-run state, but it is not safe for concurrent Run
// calls since commands may share collaborators.
type Engine struct {
	registry *command.Registry
	fs       fileio.FileSystem
	logger   logging.Logger
}

// Option is a functional option for Engine.
type Option func(*Engine)

// WithFileSystem sets the file system used for input redirection, report
// output and the base commands.
func WithFileSystem(fs fileio.FileSystem) Option {
	return func(e *Engine) {
		e.fs = fs
	}
}

// WithLogger sets the logger for run diagnostics.
func WithLogger(logger logging.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine with the base commands registered.
func New(opts ...Option) *Engine {
	e := &Engine{
		registry: command.NewRegistry(),
		fs:       fileio.NewOS(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.WithPrefix("engine")

	e.Register(commands.Base(e.fs)...)
	return e
}

// Register adds commands. Commands whose names are already taken are
// ignored.
func (e *Engine) Register(cmds ...command.Command) *Engine {
	for _, cmd := range cmds {
		if !e.registry.Register(cmd) {
			e.logger.Debug("command ignored", "caller", cmd.Caller(), "alias", cmd.Alias())
		}
	}
	return e
}

// Registry returns the command registry.
func (e *Engine) Registry() *command.Registry {
	return e.registry
}

// FileSystem returns the engine's file system.
func (e *Engine) FileSystem() fileio.FileSystem {
	return e.fs
}

// run is the state of a single Run call.
type run struct {
	ops     *command.Operations
	outputs []command.Output
}

func (r *run) abort(out command.Output) {
	r.outputs = append(r.outputs, out)
	r.ops.Panic()
}

// Run executes tokens and returns the rendered report. When the report is
// redirected to a file, Run writes it there and returns "".
func (e *Engine) Run(tokens []string) (report string) {
	r := &run{ops: command.NewOperations()}

	defer func() {
		if rec := recover(); rec != nil {
			e.logger.Error("command panicked", "panic", rec)
			r.outputs = append(r.outputs, command.Fail(errors.Unknown, MsgInternalFailure))
			report = e.finish(r)
		}
	}()

	inst := instruction.Build(tokens)
	e.logger.Debug("instruction built", "flags", inst.Names())

	inst, ok := e.redirect(inst, r)
	if !ok {
		return e.finish(r)
	}

	validated := e.validate(inst, r)

	if !r.ops.Panicked && r.ops.Source == "" && r.ops.InputPath == "" {
		r.abort(command.Fail(errors.State, MsgInvalidSource))
	}
	if r.ops.Panicked {
		e.logger.Debug("run aborted", "outputs", len(r.outputs))
		return e.finish(r)
	}

	e.execute(validated, r)
	return e.finish(r)
}

// redirect replaces inst with the instruction stored in the input file when
// the input flag is present.
func (e *Engine) redirect(inst *instruction.Instruction, r *run) (*instruction.Instruction, bool) {
	if !inst.Contains(commands.InputFileCaller, commands.InputFileAlias) {
		return inst, true
	}

	if inst.Len() != 1 {
		r.abort(command.Fail(errors.Position, MsgInputNotAlone))
		return nil, false
	}

	flag, _ := inst.FlagAt(0)
	if !flag.HasArgument() {
		r.abort(command.Fail(errors.Argument, MsgInputNoArgument))
		return nil, false
	}
	if !e.fs.Exists(flag.Argument) {
		r.abort(command.Fail(errors.Resource, MsgInputInvalidFile))
		return nil, false
	}

	redirected := instruction.Build(instruction.Words(e.fs.ReadUnchecked(flag.Argument)))
	e.logger.Debug("instruction redirected", "file", flag.Argument, "flags", redirected.Names())
	return redirected, true
}

// validate resolves and validates each flag in order, stopping at the first
// failure. It returns the validated command/flag pairs in first-seen order;
// a command validated twice keeps its slot and takes the later flag.
func (e *Engine) validate(inst *instruction.Instruction, r *run) *orderedmap.OrderedMap {
	validated := orderedmap.New()

	for _, flag := range inst.Flags() {
		cmd, ok := e.registry.Resolve(flag.Name)
		if !ok {
			r.abort(command.Fail(errors.Resolution, invalidFlag(flag.Name)))
			e.logger.Debug("flag rejected", "flag", flag.Name, "reason", "unknown")
			break
		}

		out := cmd.Validate(flag, inst, r.ops)
		if out.IsErr() {
			r.abort(out)
			e.logger.Debug("flag rejected", "flag", flag.Name, "reason", out.Message)
			break
		}

		validated.Set(cmd, flag)
		e.logger.Debug("flag validated", "flag", flag.Name, "position", flag.Position)
	}

	if r.ops.HasSource() {
		e.logger.Debug("source bound", "file", r.ops.InputPath, "size", humanize.Bytes(uint64(len(r.ops.Source))))
	}
	return validated
}

// execute runs every validated command. Failures are reported, never fatal.
func (e *Engine) execute(validated *orderedmap.OrderedMap, r *run) {
	for pair := validated.Oldest(); pair != nil; pair = pair.Next() {
		cmd := pair.Key.(command.Command)
		flag := pair.Value.(*instruction.Flag)

		out := cmd.Execute(flag, r.ops)
		if out.IsErr() {
			e.logger.Warn("command failed", "flag", flag.Name, "message", out.Message)
		}
		if out.HasMessage() {
			r.outputs = append(r.outputs, out)
		}
	}
}

// finish renders the outputs and delivers the report. A report redirected
// to a file is never returned, even when the write fails.
func (e *Engine) finish(r *run) string {
	report := Render(r.outputs)
	if r.ops.HasOutput() {
		if err := e.fs.Write(r.ops.OutputPath, report); err != nil {
			e.logger.Warn("report not written", "file", r.ops.OutputPath, "error", err)
			return ""
		}
		e.logger.Debug("report written", "file", r.ops.OutputPath, "size", humanize.Bytes(uint64(len(report))))
		return ""
	}
	return report
}
