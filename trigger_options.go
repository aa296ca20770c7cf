package atexit

import (
	"os"
	"os/signal"
	"syscall"
)

// triggerConfig represents the configuration for shutdown triggers.
type triggerConfig struct {
	sysch <-chan os.Signal
	usrch []<-chan struct{}

	exitCode int
}

type TriggerOption func(*triggerConfig)

// WithCustomSystemSignal adds a custom OS signal channel
//
// Example:
//
//		ch := make(chan os.Signal, 1)
//		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM, ...other signals)
//	 	atexit.SetShutdownTrigger(ctx, WithCustomSystemSignal(ch))
func WithCustomSystemSignal(ch chan os.Signal) TriggerOption {
	return func(c *triggerConfig) {
		c.sysch = ch
	}
}

// WithSysSignal adds default OS signal handling for the shutdown trigger
//
// SIGINT (Signal Interrupt) - Typically sent when user presses Ctrl+C
// SIGTERM (Signal Terminate) - Polite request to terminate the program (e.g., from Docker or Kubernetes).
//
// Example:
//
//	atexit.SetShutdownTrigger(ctx, WithSysSignal())
func WithSysSignal() TriggerOption {
	return func(c *triggerConfig) {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

		c.sysch = ch
	}
}

// WithUserChanSignal adds custom user channels that will trigger the finalizer
// pass when closed. Useful for custom shutdown conditions beyond OS signals.
func WithUserChanSignal(uch ...<-chan struct{}) TriggerOption {
	return func(c *triggerConfig) {
		c.usrch = uch
	}
}

// WithExitCode makes the trigger goroutine call os.Exit with the given status
// once the finalizer pass completes. By default the trigger does not exit the
// process; the application observes completion via WaitShutdown and returns
// from main on its own.
//
// Example:
//
//	WithExitCode(0)
func WithExitCode(code int) TriggerOption {
	return func(c *triggerConfig) {
		c.exitCode = code
	}
}

// newDefaultTriggerConfig create default config
func newDefaultTriggerConfig() *triggerConfig {
	config := &triggerConfig{exitCode: noExit}
	WithSysSignal()(config)

	return config
}

// noExit marks "do not call os.Exit after the pass".
const noExit = -1
