package main

import (
	"context"
	"fmt"
	"time"

	atexit "github.com/lif0/go-atexit"
)

var stopChan chan struct{}

func main() {
	// configure
	atexit.SetShutdownTrigger(
		context.Background(),
		atexit.WithSysSignal(),
		atexit.WithUserChanSignal(stopChan),
	)
	// <========

	counter := theCounter()

	// Persist the counter as the very last shutdown step.
	atexit.RegisterFunc(func() {
		_ = counter.flush()
	})

	fmt.Printf("Last counter: %d\n", counter.val)
	fmt.Println("Press Ctrl+C to quit")

	go func() {
		for {
			time.Sleep(500 * time.Millisecond)
			counter.Inc()
			fmt.Printf("counter: %v\n", counter.val)
		}
	}()

	atexit.WaitShutdown()
	fmt.Println("App finish")
}
