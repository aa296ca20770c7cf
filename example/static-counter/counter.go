package main

import (
	"fmt"
	"os"
	"strconv"

	atexit "github.com/lif0/go-atexit"
)

const filename = "counter.txt"

type counter struct {
	val int
}

var (
	counterGuard    atexit.Guard
	counterInstance *counter
)

// theCounter lazily constructs the process-wide counter, guarded so the file
// is read exactly once no matter how many call sites reach it first.
func theCounter() *counter {
	counterGuard.Do(func() {
		counterInstance = &counter{val: tryReadFile()}
	})

	return counterInstance
}

func (c *counter) Inc() {
	c.val++
}

func (c *counter) flush() error {
	if err := os.WriteFile(filename, []byte(strconv.Itoa(c.val)), 0o644); err != nil {
		return fmt.Errorf("error saving counter: %v", err)
	}

	return nil
}

func tryReadFile() int {
	data, err := os.ReadFile(filename)
	if err != nil {
		return 0
	}

	v, err := strconv.Atoi(string(data))
	if err != nil {
		return 0
	}

	return v
}
