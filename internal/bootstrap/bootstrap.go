// Package bootstrap runs a process until it is interrupted and then shuts it down in order.
package bootstrap

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Hook is a named shutdown step.
type Hook struct {
	Name string
	Fn   func(ctx context.Context) error
}

// App tracks shutdown hooks and runs them in reverse registration order.
type App struct {
	logger          *zap.Logger
	shutdownTimeout time.Duration
	signals         []os.Signal

	mu    sync.Mutex
	hooks []Hook
}

// New creates an App. A nil logger is replaced with a no-op logger.
func New(logger *zap.Logger, shutdownTimeout time.Duration) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
		signals:         []os.Signal{os.Interrupt, syscall.SIGTERM},
	}
}

// AddShutdownHook registers fn under name. It is safe to call from inside Run.
func (a *App) AddShutdownHook(name string, fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, Hook{Name: name, Fn: fn})
}

// Run executes run until it returns or the process receives SIGINT or SIGTERM.
// Hooks run when ctx is done, or after run fails, so resources opened before Run are released either way.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, a.signals...)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutting down", zap.Error(context.Cause(ctx)))
		shutdownErr := a.shutdown()
		runErr := <-errCh
		return errors.Join(runErr, shutdownErr)
	case err := <-errCh:
		if err != nil {
			return errors.Join(err, a.shutdown())
		}
		return a.shutdown()
	}
}

func (a *App) shutdown() error {
	ctx := context.Background()
	if a.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.shutdownTimeout)
		defer cancel()
	}

	a.mu.Lock()
	hooks := make([]Hook, len(a.hooks))
	copy(hooks, a.hooks)
	a.hooks = nil
	a.mu.Unlock()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		hook := hooks[i]
		if err := hook.Fn(ctx); err != nil {
			a.logger.Error("shutdown hook failed", zap.String("hook", hook.Name), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		a.logger.Debug("shutdown hook finished", zap.String("hook", hook.Name))
	}
	return errors.Join(errs...)
}
