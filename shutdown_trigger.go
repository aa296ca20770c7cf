package atexit

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/lif0/pkg/concurrency/chanx"
)

// SetShutdownTrigger wires the external teardown mechanism to the global
// registry's shutdown hook.
//
// This global function takes a context for cancellation; if the context is
// canceled, the trigger will not activate, and the goroutine simply returns.
// It accepts options to specify signals or channels that will fire the hook.
// The hook fires at most once; a second trigger forces the process to exit.
func SetShutdownTrigger(ctx context.Context, opts ...TriggerOption) {
	c := newDefaultTriggerConfig()
	for _, opt := range opts {
		opt(c)
	}

	go func() {
		var once sync.Once // the hook is invoked exactly once
		singleUserChan := chanx.FanIn(ctx, c.usrch...)

		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-c.sysch:
				log.Printf("go-atexit: Received system signal - %s\n", sig.String())
			case <-singleUserChan:
				log.Printf("go-atexit: Received user trigger\n")
			}

			fired := false
			once.Do(func() {
				fired = true

				RunHook()
				log.Printf("go-atexit: Finalizer pass completed. Use atexit.GlobalError for checks errors\n")

				if c.exitCode != noExit {
					os.Exit(c.exitCode)
				}
			})

			if !fired {
				// Second or subsequent signal: Force exit
				log.Printf("go-atexit: Received additional signal - forcing exit\n")
				os.Exit(1)
			}
		}
	}()
}
