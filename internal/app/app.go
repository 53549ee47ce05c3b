package app

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/tungetti/pjatext/internal/commands"
	"github.com/tungetti/pjatext/internal/config"
	"github.com/tungetti/pjatext/internal/engine"
	"github.com/tungetti/pjatext/internal/errors"
	"github.com/tungetti/pjatext/internal/fileio"
	"github.com/tungetti/pjatext/internal/logging"
)

// App represents one pjatext invocation with its dependencies.
type App struct {
	container *Container
	version   string
	buildTime string
	gitCommit string

	fs     fileio.FileSystem
	logger logging.Logger
}

// Options configures the application.
type Options struct {
	Version   string
	BuildTime string
	GitCommit string

	// FileSystem replaces the operating system file access when set.
	FileSystem fileio.FileSystem

	// Logger replaces the configured logger when set.
	Logger logging.Logger
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		Version:   "unknown",
		BuildTime: "unknown",
		GitCommit: "unknown",
	}
}

// New creates a new application with the given options.
func New(opts Options) *App {
	return &App{
		container: NewContainer(),
		version:   opts.Version,
		buildTime: opts.BuildTime,
		gitCommit: opts.GitCommit,
		fs:        opts.FileSystem,
		logger:    opts.Logger,
	}
}

// Initialize sets up all application components in the correct order.
// The initialization order is:
// 1. Configuration
// 2. Logger
// 3. Engine and commands
//
// An empty configPath reads the file from the default location.
func (a *App) Initialize(configPath string) error {
	// 1. Load configuration
	cfg, err := a.loadConfig(configPath)
	if err != nil {
		return errors.Wrap(errors.Configuration, "failed to load config", err)
	}
	a.container.SetConfig(cfg)

	// 2. Initialize logger
	if a.logger != nil {
		a.container.SetLogger(a.logger, nil)
	} else {
		logger, closer, err := logging.Setup(logging.SetupOptions{
			Level:   cfg.LogLevel,
			File:    cfg.LogFile,
			NoColor: cfg.NoColor,
			Verbose: cfg.Verbose,
			Quiet:   cfg.Quiet,
		})
		if err != nil {
			return errors.Wrap(errors.Configuration, "failed to initialize logger", err)
		}
		a.container.SetLogger(logger, closer)
	}
	logger := a.container.GetLogger()

	logger.Debug("starting application",
		"version", a.version,
		"build_time", a.buildTime,
		"git_commit", a.gitCommit,
	)

	// 3. Build the engine
	opts := []engine.Option{engine.WithLogger(logger)}
	if a.fs != nil {
		opts = append(opts, engine.WithFileSystem(a.fs))
	}
	e := engine.New(opts...)
	e.Register(commands.Operational(e.FileSystem())...)
	a.container.SetEngine(e)

	if err := a.container.Validate(); err != nil {
		return err
	}

	logger.Debug("application initialized", "commands", e.Registry().Len())
	return nil
}

// Run executes one command line and returns the report.
func (a *App) Run(tokens []string) (report string, err error) {
	defer func() {
		if r := recover(); r != nil {
			report = ""
			err = a.handlePanic(r)
		}
	}()

	if err := a.container.Validate(); err != nil {
		return "", err
	}

	a.container.GetLogger().Debug("running", "tokens", len(tokens))
	return a.container.GetEngine().Run(tokens), nil
}

// DefaultArgs returns the configured default command line, if any.
func (a *App) DefaultArgs() ([]string, error) {
	cfg := a.container.GetConfig()
	if cfg == nil {
		return nil, errors.New(errors.Configuration, "config not initialized").
			WithOp("app.DefaultArgs")
	}
	return cfg.Args()
}

// Close releases resources held by the application.
func (a *App) Close() error {
	return a.container.Close()
}

// Container returns the dependency container.
func (a *App) Container() *Container {
	return a.container
}

// Version returns the application version.
func (a *App) Version() string {
	return a.version
}

// BuildTime returns the application build time.
func (a *App) BuildTime() string {
	return a.buildTime
}

// GitCommit returns the application git commit.
func (a *App) GitCommit() string {
	return a.gitCommit
}

func (a *App) loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadDefaultConfigAndValidate()
	}
	return config.NewLoader(path).LoadAndValidate()
}

// handlePanic handles a recovered panic and returns an error.
// It logs the panic with a stack trace if a logger is available.
func (a *App) handlePanic(r interface{}) error {
	stack := debug.Stack()
	logger := a.container.GetLogger()

	if logger != nil {
		logger.Error("panic recovered",
			"panic", fmt.Sprintf("%v", r),
			"stack", string(stack),
		)
	} else {
		fmt.Fprintf(os.Stderr, "PANIC: %v\n%s\n", r, stack)
	}

	return errors.Newf(errors.Unknown, "panic: %v", r)
}
