package atexit_test

// THESE ARE FORMAL TESTS TO INCREASE THE PROJECT'S TEST COVERAGE PERCENTAGE.

import (
	"context"
	"testing"
	"time"

	atexit "github.com/lif0/go-atexit"
	"github.com/stretchr/testify/assert"
)

func Test_Global(t *testing.T) {
	// arrange
	old := atexit.DefaultRegistry
	t.Cleanup(func() { atexit.DefaultRegistry = old })

	// act
	r := atexit.NewRegistry()
	atexit.SetGlobal(r)

	// assert
	assert.Equal(t, r, atexit.DefaultRegistry)

	// arrange
	userCh := make(chan struct{}, 1)
	atexit.SetShutdownTrigger(
		context.Background(),
		atexit.WithUserChanSignal(userCh),
	)

	var got []int

	// act
	err := atexit.Register(func(u any) { got = append(got, u.(int)) }, 1)
	// assert
	assert.NoError(t, err)

	// act
	err = atexit.RegisterFunc(func() { got = append(got, 2) })
	// assert
	assert.NoError(t, err)

	// act
	rc := atexit.RegisterFinalizer(func(u any) { got = append(got, u.(int)) }, 3, nil)
	// assert
	assert.Equal(t, 0, rc)
	assert.Equal(t, atexit.StatusArmed, r.Status())

	// act
	go func() {
		time.Sleep(time.Microsecond * 50)
		userCh <- struct{}{}
	}()

	atexit.WaitShutdown()
	atexit.WaitShutdown()
	atexit.WaitShutdown()

	// assert: global last-registered-first order
	assert.Equal(t, []int{3, 2, 1}, got)
	assert.Equal(t, atexit.StatusFired, r.Status())

	globalErr := atexit.GlobalError()
	assert.Len(t, globalErr, 0)
	assert.True(t, globalErr.IsEmpty())
}

func Test_Global_RunHook_ZeroRegistrations(t *testing.T) {
	// arrange
	old := atexit.DefaultRegistry
	t.Cleanup(func() { atexit.DefaultRegistry = old })
	atexit.SetGlobal(atexit.NewRegistry())

	// act + assert: the slot holds a no-op, firing it does nothing and
	// cannot fail
	assert.NotPanics(t, func() { atexit.RunHook() })
	assert.Equal(t, atexit.StatusInert, atexit.DefaultRegistry.Status())
}
