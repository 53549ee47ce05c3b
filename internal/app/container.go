// Package app assembles pjatext's dependencies for a single invocation:
// configuration, logger, and the dispatch engine with every built-in
// command registered.
package app

import (
	"io"
	"sync"

	"github.com/tungetti/pjatext/internal/config"
	"github.com/tungetti/pjatext/internal/engine"
	"github.com/tungetti/pjatext/internal/errors"
	"github.com/tungetti/pjatext/internal/logging"
)

// Container holds all application dependencies.
type Container struct {
	mu     sync.RWMutex
	Config *config.Config
	Logger logging.Logger
	Engine *engine.Engine

	closer io.Closer
}

// NewContainer creates a new dependency container.
func NewContainer() *Container {
	return &Container{}
}

// SetConfig sets the configuration.
func (c *Container) SetConfig(cfg *config.Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Config = cfg
}

// SetLogger sets the logger and the closer that releases its output.
// A nil closer is allowed.
func (c *Container) SetLogger(l logging.Logger, closer io.Closer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Logger = l
	c.closer = closer
}

// SetEngine sets the dispatch engine.
func (c *Container) SetEngine(e *engine.Engine) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Engine = e
}

// GetConfig returns the configuration.
func (c *Container) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Config
}

// GetLogger returns the logger.
func (c *Container) GetLogger() logging.Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Logger
}

// GetEngine returns the dispatch engine.
func (c *Container) GetEngine() *engine.Engine {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Engine
}

// Validate checks that all required dependencies are set.
func (c *Container) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.Config == nil {
		return errors.New(errors.Configuration, "config not initialized")
	}
	if c.Logger == nil {
		return errors.New(errors.Configuration, "logger not initialized")
	}
	if c.Engine == nil {
		return errors.New(errors.Configuration, "engine not initialized")
	}
	return nil
}

// Close releases the logger output. It is safe to call more than once.
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closer == nil {
		return nil
	}
	err := c.closer.Close()
	c.closer = nil
	if err != nil {
		return errors.Wrap(errors.IO, "failed to close log output", err).WithOp("app.Close")
	}
	return nil
}
