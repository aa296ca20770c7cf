package atexit

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_WithCustomSystemSignal(t *testing.T) {
	t.Parallel()

	t.Run("ok/assigns_same_channel", func(t *testing.T) {
		t.Parallel()
		// arrange
		cfg := &triggerConfig{}
		ch := make(chan os.Signal, 1)

		// act
		WithCustomSystemSignal(ch)(cfg)

		// assert
		assert.NotNil(t, cfg)
		assert.NotNil(t, cfg.sysch)
	})

	t.Run("edge/nil", func(t *testing.T) {
		t.Parallel()
		// arrange
		cfg := &triggerConfig{}

		// act
		WithCustomSystemSignal(nil)(cfg)

		// assert
		assert.Nil(t, cfg.sysch)
	})
}

func Test_WithSysSignal(t *testing.T) {
	t.Run("ok/creates_buffered_channel_and_registers", func(t *testing.T) {
		// arrange
		cfg := &triggerConfig{}

		// act
		WithSysSignal()(cfg)

		// assert
		assert.NotNil(t, cfg.sysch)
		assert.Equal(t, 1, cap(cfg.sysch))
	})
}

func Test_WithUserChanSignal(t *testing.T) {
	t.Parallel()

	t.Run("ok/assigns_channels", func(t *testing.T) {
		t.Parallel()
		// arrange
		cfg := &triggerConfig{}
		ch1 := make(chan struct{})
		ch2 := make(chan struct{})

		// act
		WithUserChanSignal(ch1, ch2)(cfg)

		// assert
		assert.Len(t, cfg.usrch, 2)
	})
}

func Test_WithExitCode(t *testing.T) {
	t.Parallel()

	t.Run("ok/assigns_code", func(t *testing.T) {
		t.Parallel()
		// arrange
		cfg := &triggerConfig{exitCode: noExit}

		// act
		WithExitCode(3)(cfg)

		// assert
		assert.Equal(t, 3, cfg.exitCode)
	})
}

func Test_NewDefaultTriggerConfig(t *testing.T) {
	t.Run("ok/defaults", func(t *testing.T) {
		// arrange + act
		cfg := newDefaultTriggerConfig()

		// assert: system signals armed, no os.Exit after the pass
		assert.NotNil(t, cfg.sysch)
		assert.Equal(t, noExit, cfg.exitCode)
	})
}
